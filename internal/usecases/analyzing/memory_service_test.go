package analyzing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/order-analytics-api/internal/dataset"
	"github.com/vfg2006/order-analytics-api/internal/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func buildDataset(t *testing.T, customers []domain.Customer, orders []domain.Order) *dataset.Dataset {
	t.Helper()

	ds, _, rejections := dataset.Build(customers, orders)
	require.Empty(t, rejections, "o cenário do teste não deve produzir rejeições")
	return ds
}

func TestMemoryService_RepeatCustomers(t *testing.T) {
	customers := []domain.Customer{
		{ID: "C001", Name: "Asha Rao", Region: "south"},
		{ID: "C002", Name: "Ravi Kumar", Region: "north"},
		{ID: "C003", Name: "Meera", Region: "west"},
	}
	orders := []domain.Order{
		{ID: "O001", CustomerID: "C001", OrderDate: day(2024, 1, 10), Amount: 10},
		{ID: "O002", CustomerID: "C001", OrderDate: day(2024, 2, 11), Amount: 20},
		{ID: "O003", CustomerID: "C002", OrderDate: day(2024, 1, 12), Amount: 30},
		{ID: "O004", CustomerID: "C002", OrderDate: day(2024, 3, 13), Amount: 40},
		{ID: "O005", CustomerID: "C003", OrderDate: day(2024, 1, 14), Amount: 50},
	}

	service := NewMemoryService(buildDataset(t, customers, orders))

	results, err := service.RepeatCustomers(context.Background())

	require.NoError(t, err)
	// C003 tem um único pedido e fica de fora; empate em 2 pedidos é
	// desfeito por customer_id crescente
	require.Len(t, results, 2)
	assert.Equal(t, domain.RepeatCustomer{CustomerID: "C001", Name: "Asha Rao", OrderCount: 2}, results[0])
	assert.Equal(t, domain.RepeatCustomer{CustomerID: "C002", Name: "Ravi Kumar", OrderCount: 2}, results[1])
}

func TestMemoryService_MonthlyOrderTrends(t *testing.T) {
	customers := []domain.Customer{{ID: "C001", Region: "south"}}
	orders := []domain.Order{
		{ID: "O001", CustomerID: "C001", OrderDate: day(2024, 2, 5), Amount: 100.105},
		{ID: "O002", CustomerID: "C001", OrderDate: day(2024, 2, 20), Amount: 50},
		{ID: "O003", CustomerID: "C001", OrderDate: day(2023, 12, 31), Amount: 25},
		{ID: "O004", CustomerID: "C001", OrderDate: day(2024, 4, 1), Amount: 75},
	}

	service := NewMemoryService(buildDataset(t, customers, orders))

	results, err := service.MonthlyOrderTrends(context.Background())

	require.NoError(t, err)
	// Ordem cronológica, sem meses inventados para as lacunas
	require.Len(t, results, 3)
	assert.Equal(t, domain.MonthlyTrend{Year: 2023, Month: 12, OrderCount: 1, TotalRevenue: 25}, results[0])
	assert.Equal(t, domain.MonthlyTrend{Year: 2024, Month: 2, OrderCount: 2, TotalRevenue: 150.11}, results[1])
	assert.Equal(t, domain.MonthlyTrend{Year: 2024, Month: 4, OrderCount: 1, TotalRevenue: 75}, results[2])
}

func TestMemoryService_RegionalRevenue(t *testing.T) {
	customers := []domain.Customer{
		{ID: "C001", Region: "south"},
		{ID: "C002", Region: "north"},
		{ID: "C003", Region: domain.UnknownRegion},
	}
	orders := []domain.Order{
		{ID: "O001", CustomerID: "C001", OrderDate: day(2024, 1, 1), Amount: 100},
		{ID: "O002", CustomerID: "C001", OrderDate: day(2024, 1, 2), Amount: 50},
		{ID: "O003", CustomerID: "C002", OrderDate: day(2024, 1, 3), Amount: 150},
		{ID: "O004", CustomerID: "C003", OrderDate: day(2024, 1, 4), Amount: 10},
	}

	service := NewMemoryService(buildDataset(t, customers, orders))

	results, err := service.RegionalRevenue(context.Background())

	require.NoError(t, err)
	require.Len(t, results, 3)

	// Empate em receita total (150) desfeito por região crescente
	assert.Equal(t, domain.RegionRevenue{Region: "north", OrderCount: 1, TotalRevenue: 150, AvgOrderValue: 150}, results[0])
	assert.Equal(t, domain.RegionRevenue{Region: "south", OrderCount: 2, TotalRevenue: 150, AvgOrderValue: 75}, results[1])
	assert.Equal(t, domain.RegionRevenue{Region: "unknown", OrderCount: 1, TotalRevenue: 10, AvgOrderValue: 10}, results[2])
}

func TestMemoryService_TopSpenders(t *testing.T) {
	customers := []domain.Customer{
		{ID: "C001", Name: "Asha Rao"},
		{ID: "C002", Name: "Ravi Kumar"},
		{ID: "C003", Name: "Meera"},
	}
	// Maior data presente: 2024-03-31; janela de 30 dias corta em 2024-03-01
	orders := []domain.Order{
		{ID: "O001", CustomerID: "C001", OrderDate: day(2024, 3, 31), Amount: 100},
		{ID: "O002", CustomerID: "C002", OrderDate: day(2024, 3, 1), Amount: 200},
		{ID: "O003", CustomerID: "C003", OrderDate: day(2024, 2, 29), Amount: 999},
		{ID: "O004", CustomerID: "C001", OrderDate: day(2024, 3, 10), Amount: 100},
	}

	service := NewMemoryService(buildDataset(t, customers, orders))

	results, err := service.TopSpenders(context.Background(), 30, 10)

	require.NoError(t, err)
	// O pedido de 2024-03-01 está exatamente no corte e entra; o de
	// 2024-02-29 fica fora da janela
	require.Len(t, results, 2)
	assert.Equal(t, domain.TopSpender{CustomerID: "C001", Name: "Asha Rao", TotalSpend: 200, OrderCount: 2}, results[0])
	assert.Equal(t, domain.TopSpender{CustomerID: "C002", Name: "Ravi Kumar", TotalSpend: 200, OrderCount: 1}, results[1])
}

func TestMemoryService_TopSpenders_Limite(t *testing.T) {
	customers := []domain.Customer{
		{ID: "C001"}, {ID: "C002"}, {ID: "C003"},
	}
	orders := []domain.Order{
		{ID: "O001", CustomerID: "C001", OrderDate: day(2024, 3, 10), Amount: 300},
		{ID: "O002", CustomerID: "C002", OrderDate: day(2024, 3, 11), Amount: 200},
		{ID: "O003", CustomerID: "C003", OrderDate: day(2024, 3, 12), Amount: 100},
	}

	service := NewMemoryService(buildDataset(t, customers, orders))

	tests := []struct {
		name     string
		limit    int
		expected []string
	}{
		{
			name:     "Deve truncar no limite quando há mais compradores",
			limit:    2,
			expected: []string{"C001", "C002"},
		},
		{
			name:     "Deve retornar todos quando o limite excede os compradores",
			limit:    10,
			expected: []string{"C001", "C002", "C003"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := service.TopSpenders(context.Background(), 30, tt.limit)

			require.NoError(t, err)
			require.Len(t, results, len(tt.expected))
			for i, customerID := range tt.expected {
				assert.Equal(t, customerID, results[i].CustomerID)
			}
		})
	}
}

func TestMemoryService_DatasetVazio(t *testing.T) {
	ds, _, _ := dataset.Build(nil, nil)
	service := NewMemoryService(ds)
	ctx := context.Background()

	repeat, err := service.RepeatCustomers(ctx)
	require.NoError(t, err)
	assert.Empty(t, repeat)

	trends, err := service.MonthlyOrderTrends(ctx)
	require.NoError(t, err)
	assert.Empty(t, trends)

	regions, err := service.RegionalRevenue(ctx)
	require.NoError(t, err)
	assert.Empty(t, regions)

	spenders, err := service.TopSpenders(ctx, 30, 10)
	require.NoError(t, err)
	assert.Empty(t, spenders)
}

func TestBuildReport(t *testing.T) {
	customers := []domain.Customer{{ID: "C001", Name: "Asha Rao", Region: "south"}}
	orders := []domain.Order{
		{ID: "O001", CustomerID: "C001", OrderDate: day(2024, 3, 10), Amount: 100},
		{ID: "O002", CustomerID: "C001", OrderDate: day(2024, 3, 20), Amount: 50},
	}

	service := NewMemoryService(buildDataset(t, customers, orders))

	report, err := BuildReport(context.Background(), service, 30, 10)

	require.NoError(t, err)
	assert.Equal(t, 30, report.WindowDays)
	assert.Equal(t, 10, report.SpenderLimit)
	assert.Len(t, report.RepeatCustomers, 1)
	assert.Len(t, report.MonthlyTrends, 1)
	assert.Len(t, report.RegionalRevenue, 1)
	assert.Len(t, report.TopSpenders, 1)
}
