package domain

import "time"

// UnknownSKU é o valor sentinela para pedidos sem SKU informado
const UnknownSKU = "UNKNOWN"

// Order representa um pedido canônico após limpeza e validação.
// OrderDate é sempre uma data sem componente de hora, em UTC.
type Order struct {
	ID         string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	OrderDate  time.Time `json:"order_date"`
	SKUID      string    `json:"sku_id"`
	Amount     float64   `json:"amount"`
}
