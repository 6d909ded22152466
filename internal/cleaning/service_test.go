package cleaning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/order-analytics-api/internal/domain"
	"github.com/vfg2006/order-analytics-api/internal/ingest"
)

func customerRecord(fields map[string]string) ingest.RawRecord {
	return ingest.RawRecord{Entity: domain.EntityCustomer, Fields: fields, Unit: 2}
}

func orderRecord(fields map[string]string) ingest.RawRecord {
	return ingest.RawRecord{Entity: domain.EntityOrder, Fields: fields, Unit: 1}
}

func TestCleaner_CleanCustomer(t *testing.T) {
	tests := []struct {
		name     string
		fields   map[string]string
		reason   domain.Reason
		validate func(t *testing.T, customer *domain.Customer)
	}{
		{
			name: "Deve aceitar cliente completo normalizando telefone e região",
			fields: map[string]string{
				"customer_id": "C001",
				"name":        "Asha Rao",
				"mobile":      "98765 43210",
				"region":      "South",
			},
			validate: func(t *testing.T, customer *domain.Customer) {
				assert.Equal(t, "C001", customer.ID)
				assert.Equal(t, "Asha Rao", customer.Name)
				assert.Equal(t, "+919876543210", customer.Mobile)
				assert.Equal(t, "south", customer.Region)
			},
		},
		{
			name: "Deve aceitar cliente sem telefone",
			fields: map[string]string{
				"customer_id": "C002",
				"name":        "Ravi Kumar",
				"region":      "North",
			},
			validate: func(t *testing.T, customer *domain.Customer) {
				assert.Empty(t, customer.Mobile)
			},
		},
		{
			name: "Deve preencher região ausente com o sentinela",
			fields: map[string]string{
				"customer_id": "C003",
				"name":        "Meera",
			},
			validate: func(t *testing.T, customer *domain.Customer) {
				assert.Equal(t, domain.UnknownRegion, customer.Region)
			},
		},
		{
			name: "Deve aceitar telefone com prefixo de país",
			fields: map[string]string{
				"customer_id": "C004",
				"mobile":      "+91-9876543210",
			},
			validate: func(t *testing.T, customer *domain.Customer) {
				assert.Equal(t, "+919876543210", customer.Mobile)
			},
		},
		{
			name: "Deve aceitar telefone com zero de tronco",
			fields: map[string]string{
				"customer_id": "C005",
				"mobile":      "09876543210",
			},
			validate: func(t *testing.T, customer *domain.Customer) {
				assert.Equal(t, "+919876543210", customer.Mobile)
			},
		},
		{
			name:   "Deve rejeitar cliente sem customer_id",
			fields: map[string]string{"name": "Sem ID", "mobile": "9876543210"},
			reason: domain.ReasonMissingRequiredField,
		},
		{
			name: "Deve rejeitar telefone com poucos dígitos",
			fields: map[string]string{
				"customer_id": "C006",
				"mobile":      "123-456",
			},
			reason: domain.ReasonMalformedFormat,
		},
		{
			name: "Deve rejeitar telefone com prefixo fora da faixa de celular",
			fields: map[string]string{
				"customer_id": "C007",
				"mobile":      "1234567890",
			},
			reason: domain.ReasonMalformedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaner := NewCleaner()

			customer, rejection := cleaner.CleanCustomer(customerRecord(tt.fields))

			if tt.reason != "" {
				require.Nil(t, customer)
				require.NotNil(t, rejection)
				assert.Equal(t, tt.reason, rejection.Reason)
				assert.Equal(t, domain.EntityCustomer, rejection.EntityType)
				assert.NotEmpty(t, rejection.ID)
				assert.Equal(t, 1, cleaner.Stats().Rejected(domain.EntityCustomer))
				return
			}

			require.Nil(t, rejection)
			require.NotNil(t, customer)
			assert.Equal(t, 1, cleaner.Stats().Accepted(domain.EntityCustomer))
			tt.validate(t, customer)
		})
	}
}

func TestCleaner_CleanOrder(t *testing.T) {
	tests := []struct {
		name     string
		fields   map[string]string
		reason   domain.Reason
		validate func(t *testing.T, order *domain.Order)
	}{
		{
			name: "Deve aceitar pedido completo",
			fields: map[string]string{
				"order_id":    "O001",
				"customer_id": "C001",
				"order_date":  "2024-03-15",
				"sku_id":      "sku-10",
				"amount":      "1250.505",
			},
			validate: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, "O001", order.ID)
				assert.Equal(t, "C001", order.CustomerID)
				assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), order.OrderDate)
				assert.Equal(t, "SKU-10", order.SKUID)
				assert.InDelta(t, 1250.51, order.Amount, 0.001)
			},
		},
		{
			name: "Deve aceitar valor com símbolo de moeda e separador de milhar",
			fields: map[string]string{
				"order_id":    "O002",
				"customer_id": "C001",
				"order_date":  "2024-03-15",
				"amount":      "₹1,250.50",
			},
			validate: func(t *testing.T, order *domain.Order) {
				assert.InDelta(t, 1250.50, order.Amount, 0.001)
			},
		},
		{
			name: "Deve aceitar data com hora descartando o componente de hora",
			fields: map[string]string{
				"order_id":    "O003",
				"customer_id": "C001",
				"order_date":  "2024-03-15T18:45:00",
				"amount":      "10",
			},
			validate: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), order.OrderDate)
			},
		},
		{
			name: "Deve aceitar data no formato dia/mês/ano",
			fields: map[string]string{
				"order_id":    "O004",
				"customer_id": "C001",
				"order_date":  "15/03/2024",
				"amount":      "10",
			},
			validate: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), order.OrderDate)
			},
		},
		{
			name: "Deve aceitar referência por celular quando não há customer_id",
			fields: map[string]string{
				"order_id":   "O005",
				"mobile":     "9876543210",
				"order_date": "2024-03-15",
				"amount":     "10",
			},
			validate: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, "9876543210", order.CustomerID)
			},
		},
		{
			name: "Deve preencher SKU ausente com o sentinela",
			fields: map[string]string{
				"order_id":    "O006",
				"customer_id": "C001",
				"order_date":  "2024-03-15",
				"amount":      "10",
			},
			validate: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, domain.UnknownSKU, order.SKUID)
			},
		},
		{
			name: "Deve rejeitar pedido sem order_id",
			fields: map[string]string{
				"customer_id": "C001",
				"order_date":  "2024-03-15",
				"amount":      "10",
			},
			reason: domain.ReasonMissingRequiredField,
		},
		{
			name: "Deve rejeitar pedido sem referência ao cliente",
			fields: map[string]string{
				"order_id":   "O007",
				"order_date": "2024-03-15",
				"amount":     "10",
			},
			reason: domain.ReasonMissingRequiredField,
		},
		{
			name: "Deve rejeitar pedido sem valor",
			fields: map[string]string{
				"order_id":    "O008",
				"customer_id": "C001",
				"order_date":  "2024-03-15",
			},
			reason: domain.ReasonMissingRequiredField,
		},
		{
			name: "Deve rejeitar valor não numérico",
			fields: map[string]string{
				"order_id":    "O009",
				"customer_id": "C001",
				"order_date":  "2024-03-15",
				"amount":      "dez reais",
			},
			reason: domain.ReasonMalformedFormat,
		},
		{
			name: "Deve rejeitar valor negativo",
			fields: map[string]string{
				"order_id":    "O010",
				"customer_id": "C001",
				"order_date":  "2024-03-15",
				"amount":      "-5.00",
			},
			reason: domain.ReasonMalformedFormat,
		},
		{
			name: "Deve rejeitar data que não casa com nenhum formato aceito",
			fields: map[string]string{
				"order_id":    "O011",
				"customer_id": "C001",
				"order_date":  "15 de março de 2024",
				"amount":      "10",
			},
			reason: domain.ReasonMalformedFormat,
		},
		{
			name: "Deve rejeitar pedido sem data",
			fields: map[string]string{
				"order_id":    "O012",
				"customer_id": "C001",
				"amount":      "10",
			},
			reason: domain.ReasonMalformedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaner := NewCleaner()

			order, rejection := cleaner.CleanOrder(orderRecord(tt.fields))

			if tt.reason != "" {
				require.Nil(t, order)
				require.NotNil(t, rejection)
				assert.Equal(t, tt.reason, rejection.Reason)
				assert.Equal(t, domain.EntityOrder, rejection.EntityType)
				assert.Equal(t, 1, cleaner.Stats().RejectedByReason(domain.EntityOrder, tt.reason))
				return
			}

			require.Nil(t, rejection)
			require.NotNil(t, order)
			assert.Equal(t, 1, cleaner.Stats().Accepted(domain.EntityOrder))
			tt.validate(t, order)
		})
	}
}

func TestNormalizeMobile(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		hasError bool
	}{
		{
			name:     "Deve normalizar número com separadores",
			input:    "(98765) 432-10",
			expected: "+919876543210",
		},
		{
			name:     "Deve remover prefixo de país",
			input:    "919876543210",
			expected: "+919876543210",
		},
		{
			name:     "Deve remover prefixo de país com sinal",
			input:    "+91 98765 43210",
			expected: "+919876543210",
		},
		{
			name:     "Deve remover zero de tronco",
			input:    "09876543210",
			expected: "+919876543210",
		},
		{
			name:     "Deve falhar com letras no número",
			input:    "98765abc10",
			hasError: true,
		},
		{
			name:     "Deve falhar com sinal de país fora do início",
			input:    "98+76543210",
			hasError: true,
		},
		{
			name:     "Deve falhar com menos de 10 dígitos",
			input:    "123-456",
			hasError: true,
		},
		{
			name:     "Deve falhar com primeiro dígito fora da faixa 6-9",
			input:    "5876543210",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NormalizeMobile(tt.input)

			if tt.hasError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCleaner_Stats(t *testing.T) {
	cleaner := NewCleaner()

	cleaner.CleanCustomer(customerRecord(map[string]string{"customer_id": "C001"}))
	cleaner.CleanCustomer(customerRecord(map[string]string{"name": "sem id"}))
	cleaner.CleanCustomer(customerRecord(map[string]string{"customer_id": "C002", "mobile": "123"}))

	assert.Equal(t, 1, cleaner.Stats().Accepted(domain.EntityCustomer))
	assert.Equal(t, 2, cleaner.Stats().Rejected(domain.EntityCustomer))
	assert.Equal(t, 1, cleaner.Stats().RejectedByReason(domain.EntityCustomer, domain.ReasonMissingRequiredField))
	assert.Equal(t, 1, cleaner.Stats().RejectedByReason(domain.EntityCustomer, domain.ReasonMalformedFormat))
}
