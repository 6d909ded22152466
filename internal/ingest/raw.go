// Package ingest converte as fontes brutas (CSV de clientes e XML de pedidos)
// em registros fracamente tipados, consumidos exclusivamente pelo cleaning.
package ingest

import (
	"time"

	"github.com/vfg2006/order-analytics-api/internal/domain"
	"github.com/vfg2006/order-analytics-api/pkg/utils"
)

// RawRecord é o único valor fracamente tipado do sistema. Apenas o
// Validator/Cleaner pode interpretar os campos; todo o restante do fluxo
// trabalha com tipos canônicos.
type RawRecord struct {
	Entity domain.EntityType
	Fields map[string]string
	Unit   int // linha (CSV) ou índice do elemento (XML), para diagnóstico
}

// newRejection cria um registro de rejeição de parsing, com ID próprio
func newRejection(entity domain.EntityType, reason domain.Reason, detail string, raw map[string]string) domain.Rejection {
	id, err := utils.GenerateID()
	if err != nil {
		id = "unknown"
	}

	return domain.Rejection{
		ID:         id,
		EntityType: entity,
		Reason:     reason,
		Detail:     detail,
		Raw:        raw,
		RejectedAt: time.Now().UTC(),
	}
}
