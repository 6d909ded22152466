package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/order-analytics-api/internal/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestBuild(t *testing.T) {
	customers := []domain.Customer{
		{ID: "C001", Name: "Asha Rao", Mobile: "+919876543210", Region: "south"},
		{ID: "C002", Name: "Ravi Kumar", Region: "north"},
		{ID: "C001", Name: "Asha Duplicada", Region: "east"},
	}
	orders := []domain.Order{
		{ID: "O001", CustomerID: "C001", OrderDate: day(2024, 3, 15), SKUID: "SKU-1", Amount: 100},
		{ID: "O002", CustomerID: "9876543210", OrderDate: day(2024, 3, 16), SKUID: "SKU-2", Amount: 50},
		{ID: "O003", CustomerID: "C999", OrderDate: day(2024, 3, 17), SKUID: "SKU-3", Amount: 25},
		{ID: "O001", CustomerID: "C002", OrderDate: day(2024, 3, 18), SKUID: "SKU-4", Amount: 75},
	}

	ds, summary, rejections := Build(customers, orders)

	// Primeiro-vence: a primeira ocorrência de C001 permanece
	require.Len(t, ds.Customers(), 2)
	assert.Equal(t, "Asha Rao", ds.Customers()[0].Name)
	assert.Equal(t, 2, summary.CustomersLoaded)

	// O002 resolve por celular para C001; O003 viola integridade; o segundo
	// O001 é duplicado
	require.Len(t, ds.Orders(), 2)
	assert.Equal(t, "C001", ds.Orders()[0].CustomerID)
	assert.Equal(t, "C001", ds.Orders()[1].CustomerID)
	assert.Equal(t, 2, summary.OrdersLoaded)

	assert.Equal(t, 2, summary.Rejects[domain.ReasonDuplicateIdentifier])
	assert.Equal(t, 1, summary.Rejects[domain.ReasonReferentialViolation])
	assert.Len(t, rejections, 3)
}

func TestBuild_ContabilidadeCompleta(t *testing.T) {
	// Todo registro que entra ou é carregado ou é rejeitado, nunca os dois
	customers := []domain.Customer{
		{ID: "C001"}, {ID: "C002"}, {ID: "C002"}, {ID: "C003"},
	}
	orders := []domain.Order{
		{ID: "O001", CustomerID: "C001", OrderDate: day(2024, 1, 1), Amount: 10},
		{ID: "O002", CustomerID: "C404", OrderDate: day(2024, 1, 2), Amount: 10},
		{ID: "O002", CustomerID: "C001", OrderDate: day(2024, 1, 3), Amount: 10},
	}

	_, summary, rejections := Build(customers, orders)

	customerRejects := 0
	orderRejects := 0
	for _, rejection := range rejections {
		switch rejection.EntityType {
		case domain.EntityCustomer:
			customerRejects++
		case domain.EntityOrder:
			orderRejects++
		}
	}

	assert.Equal(t, len(customers), summary.CustomersLoaded+customerRejects)
	assert.Equal(t, len(orders), summary.OrdersLoaded+orderRejects)
	assert.Equal(t, summary.TotalRejects(), len(rejections))
}

func TestBuild_Vazio(t *testing.T) {
	ds, summary, rejections := Build(nil, nil)

	assert.Empty(t, ds.Customers())
	assert.Empty(t, ds.Orders())
	assert.Zero(t, summary.CustomersLoaded)
	assert.Zero(t, summary.OrdersLoaded)
	assert.Empty(t, rejections)

	_, ok := ds.MaxOrderDate()
	assert.False(t, ok)
}

func TestDataset_MaxOrderDate(t *testing.T) {
	customers := []domain.Customer{{ID: "C001"}}
	orders := []domain.Order{
		{ID: "O001", CustomerID: "C001", OrderDate: day(2024, 3, 10), Amount: 10},
		{ID: "O002", CustomerID: "C001", OrderDate: day(2024, 4, 2), Amount: 10},
		{ID: "O003", CustomerID: "C001", OrderDate: day(2024, 1, 30), Amount: 10},
	}

	ds, _, _ := Build(customers, orders)

	max, ok := ds.MaxOrderDate()
	require.True(t, ok)
	assert.Equal(t, day(2024, 4, 2), max)
}
