package domain

// UnknownRegion é o valor sentinela para clientes sem região informada
const UnknownRegion = "unknown"

// Customer representa um cliente canônico após limpeza e validação
type Customer struct {
	ID     string `json:"customer_id"`
	Name   string `json:"name"`
	Mobile string `json:"mobile,omitempty"`
	Region string `json:"region"`
}
