// Package dataset mantém o espelho tabular em memória dos dados canônicos:
// duas tabelas ligadas (clientes e pedidos) sobre as quais o motor de KPIs
// em memória opera. As regras de deduplicação e de integridade referencial
// são as mesmas aplicadas pela carga relacional.
package dataset

import (
	"time"

	"github.com/vfg2006/order-analytics-api/internal/cleaning"
	"github.com/vfg2006/order-analytics-api/internal/domain"
	"github.com/vfg2006/order-analytics-api/pkg/utils"
)

// Dataset é imutável após a construção; os motores de KPI apenas leem
type Dataset struct {
	customers []domain.Customer
	orders    []domain.Order
}

// Build monta o espelho em memória a partir dos registros já limpos,
// aplicando primeiro-vence para identificadores duplicados e rejeitando
// pedidos cuja referência não resolve para um cliente carregado. Retorna o
// resumo da carga e as rejeições produzidas, nunca descartadas.
func Build(customers []domain.Customer, orders []domain.Order) (*Dataset, *domain.LoadSummary, []domain.Rejection) {
	summary := &domain.LoadSummary{Rejects: make(map[domain.Reason]int)}
	rejections := make([]domain.Rejection, 0)

	kept := make([]domain.Customer, 0, len(customers))
	seen := make(map[string]bool, len(customers))
	for _, customer := range customers {
		if seen[customer.ID] {
			summary.AddReject(domain.ReasonDuplicateIdentifier)
			rejections = append(rejections, buildRejection(
				domain.EntityCustomer,
				domain.ReasonDuplicateIdentifier,
				"customer_id duplicado: "+customer.ID,
			))
			continue
		}
		seen[customer.ID] = true
		kept = append(kept, customer)
	}

	index := domain.NewCustomerIndex(kept)

	keptOrders := make([]domain.Order, 0, len(orders))
	seenOrders := make(map[string]bool, len(orders))
	for _, order := range orders {
		if seenOrders[order.ID] {
			summary.AddReject(domain.ReasonDuplicateIdentifier)
			rejections = append(rejections, buildRejection(
				domain.EntityOrder,
				domain.ReasonDuplicateIdentifier,
				"order_id duplicado: "+order.ID,
			))
			continue
		}

		customer, ok := index.Resolve(order.CustomerID, cleaning.NormalizeMobile)
		if !ok {
			summary.AddReject(domain.ReasonReferentialViolation)
			rejections = append(rejections, buildRejection(
				domain.EntityOrder,
				domain.ReasonReferentialViolation,
				"pedido "+order.ID+" referencia cliente desconhecido: "+order.CustomerID,
			))
			continue
		}

		seenOrders[order.ID] = true
		order.CustomerID = customer.ID
		keptOrders = append(keptOrders, order)
	}

	summary.CustomersLoaded = len(kept)
	summary.OrdersLoaded = len(keptOrders)

	return &Dataset{
		customers: kept,
		orders:    keptOrders,
	}, summary, rejections
}

// Customers retorna a tabela de clientes carregada
func (d *Dataset) Customers() []domain.Customer {
	return d.customers
}

// Orders retorna a tabela de pedidos carregada
func (d *Dataset) Orders() []domain.Order {
	return d.orders
}

// MaxOrderDate retorna a maior data de pedido presente. A janela de top
// spenders é ancorada nesta data, não no relógio, para reprodutibilidade.
func (d *Dataset) MaxOrderDate() (time.Time, bool) {
	if len(d.orders) == 0 {
		return time.Time{}, false
	}

	max := d.orders[0].OrderDate
	for _, order := range d.orders[1:] {
		if order.OrderDate.After(max) {
			max = order.OrderDate
		}
	}
	return max, true
}

func buildRejection(entity domain.EntityType, reason domain.Reason, detail string) domain.Rejection {
	id, err := utils.GenerateID()
	if err != nil {
		id = "unknown"
	}

	return domain.Rejection{
		ID:         id,
		EntityType: entity,
		Reason:     reason,
		Detail:     detail,
		RejectedAt: time.Now().UTC(),
	}
}
