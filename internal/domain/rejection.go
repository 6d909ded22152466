package domain

import "time"

// Reason classifica o motivo de descarte de um registro de entrada
type Reason string

const (
	ReasonMissingRequiredField Reason = "missing_required_field"
	ReasonMalformedFormat      Reason = "malformed_format"
	ReasonReferentialViolation Reason = "referential_violation"
	ReasonDuplicateIdentifier  Reason = "duplicate_identifier"
)

// EntityType identifica a origem de um registro bruto
type EntityType string

const (
	EntityCustomer EntityType = "customer"
	EntityOrder    EntityType = "order"
)

// Rejection é o registro de auditoria de um dado excluído do armazenamento
// canônico. Nunca é descartado silenciosamente: sempre contado e logado.
type Rejection struct {
	ID         string            `json:"id"`
	EntityType EntityType        `json:"entity_type"`
	Reason     Reason            `json:"reason"`
	Detail     string            `json:"detail,omitempty"`
	Raw        map[string]string `json:"raw,omitempty"`
	RejectedAt time.Time         `json:"rejected_at"`
}

// CountByReason agrega uma lista de rejeições por motivo
func CountByReason(rejections []Rejection) map[Reason]int {
	counts := make(map[Reason]int)
	for _, r := range rejections {
		counts[r.Reason]++
	}
	return counts
}
