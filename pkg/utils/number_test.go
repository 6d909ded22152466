package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{
			name:     "Deve arredondar para cima na metade",
			input:    1250.505,
			expected: 1250.51,
		},
		{
			name:     "Deve arredondar para baixo abaixo da metade",
			input:    10.124,
			expected: 10.12,
		},
		{
			name:     "Deve manter valor já com duas casas",
			input:    99.90,
			expected: 99.90,
		},
		{
			name:     "Deve retornar zero para zero",
			input:    0,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, RoundWithTwoDecimalPlace(tt.input), 0.0001)
		})
	}
}
