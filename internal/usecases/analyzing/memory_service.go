package analyzing

import (
	"context"
	"sort"

	"github.com/vfg2006/order-analytics-api/internal/dataset"
	"github.com/vfg2006/order-analytics-api/internal/domain"
	"github.com/vfg2006/order-analytics-api/pkg/utils"
)

// MemoryService é o motor em memória: cada KPI é uma sequência de
// operações de filtro, agrupamento e agregação sobre o espelho tabular.
// Os critérios de ordenação, desempate e arredondamento são os mesmos das
// sentenças SQL do motor relacional.
type MemoryService struct {
	ds        *dataset.Dataset
	customers map[string]domain.Customer
}

func NewMemoryService(ds *dataset.Dataset) *MemoryService {
	customers := make(map[string]domain.Customer, len(ds.Customers()))
	for _, customer := range ds.Customers() {
		customers[customer.ID] = customer
	}

	return &MemoryService{
		ds:        ds,
		customers: customers,
	}
}

func (s *MemoryService) RepeatCustomers(_ context.Context) ([]domain.RepeatCustomer, error) {
	counts := make(map[string]int)
	for _, order := range s.ds.Orders() {
		counts[order.CustomerID]++
	}

	results := make([]domain.RepeatCustomer, 0)
	for customerID, count := range counts {
		if count < 2 {
			continue
		}
		results = append(results, domain.RepeatCustomer{
			CustomerID: customerID,
			Name:       s.customers[customerID].Name,
			OrderCount: count,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].OrderCount != results[j].OrderCount {
			return results[i].OrderCount > results[j].OrderCount
		}
		return results[i].CustomerID < results[j].CustomerID
	})

	return results, nil
}

func (s *MemoryService) MonthlyOrderTrends(_ context.Context) ([]domain.MonthlyTrend, error) {
	type yearMonth struct {
		year  int
		month int
	}

	groups := make(map[yearMonth]*domain.MonthlyTrend)
	for _, order := range s.ds.Orders() {
		key := yearMonth{year: order.OrderDate.Year(), month: int(order.OrderDate.Month())}
		trend, ok := groups[key]
		if !ok {
			trend = &domain.MonthlyTrend{Year: key.year, Month: key.month}
			groups[key] = trend
		}
		trend.OrderCount++
		trend.TotalRevenue += order.Amount
	}

	results := make([]domain.MonthlyTrend, 0, len(groups))
	for _, trend := range groups {
		trend.TotalRevenue = utils.RoundWithTwoDecimalPlace(trend.TotalRevenue)
		results = append(results, *trend)
	}

	// Ordem cronológica: apenas os meses presentes, sem inventar lacunas
	sort.Slice(results, func(i, j int) bool {
		if results[i].Year != results[j].Year {
			return results[i].Year < results[j].Year
		}
		return results[i].Month < results[j].Month
	})

	return results, nil
}

func (s *MemoryService) RegionalRevenue(_ context.Context) ([]domain.RegionRevenue, error) {
	type regionAggregate struct {
		orderCount   int
		totalRevenue float64
	}

	groups := make(map[string]*regionAggregate)
	for _, order := range s.ds.Orders() {
		region := s.customers[order.CustomerID].Region
		aggregate, ok := groups[region]
		if !ok {
			aggregate = &regionAggregate{}
			groups[region] = aggregate
		}
		aggregate.orderCount++
		aggregate.totalRevenue += order.Amount
	}

	results := make([]domain.RegionRevenue, 0, len(groups))
	for region, aggregate := range groups {
		results = append(results, domain.RegionRevenue{
			Region:        region,
			OrderCount:    aggregate.orderCount,
			TotalRevenue:  utils.RoundWithTwoDecimalPlace(aggregate.totalRevenue),
			AvgOrderValue: utils.RoundWithTwoDecimalPlace(aggregate.totalRevenue / float64(aggregate.orderCount)),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].TotalRevenue != results[j].TotalRevenue {
			return results[i].TotalRevenue > results[j].TotalRevenue
		}
		return results[i].Region < results[j].Region
	})

	return results, nil
}

func (s *MemoryService) TopSpenders(_ context.Context, days, limit int) ([]domain.TopSpender, error) {
	maxDate, ok := s.ds.MaxOrderDate()
	if !ok {
		return []domain.TopSpender{}, nil
	}

	// Janela ancorada na maior data presente nos dados, não no relógio
	cutoff := maxDate.AddDate(0, 0, -days)

	type spenderAggregate struct {
		totalSpend float64
		orderCount int
	}

	groups := make(map[string]*spenderAggregate)
	for _, order := range s.ds.Orders() {
		if order.OrderDate.Before(cutoff) {
			continue
		}
		aggregate, ok := groups[order.CustomerID]
		if !ok {
			aggregate = &spenderAggregate{}
			groups[order.CustomerID] = aggregate
		}
		aggregate.totalSpend += order.Amount
		aggregate.orderCount++
	}

	results := make([]domain.TopSpender, 0, len(groups))
	for customerID, aggregate := range groups {
		results = append(results, domain.TopSpender{
			CustomerID: customerID,
			Name:       s.customers[customerID].Name,
			TotalSpend: utils.RoundWithTwoDecimalPlace(aggregate.totalSpend),
			OrderCount: aggregate.orderCount,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].TotalSpend != results[j].TotalSpend {
			return results[i].TotalSpend > results[j].TotalSpend
		}
		return results[i].CustomerID < results[j].CustomerID
	})

	if len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}
