// Package analyzing expõe os dois motores de KPI sobre o mesmo contrato
// lógico: um declarativo, por agregação SQL, outro imperativo, por
// agrupamento em memória. Para a mesma entrada, os dois produzem os mesmos
// conjuntos de linhas e valores, dentro da tolerância de arredondamento.
package analyzing

import (
	"context"

	"github.com/vfg2006/order-analytics-api/internal/domain"
)

// Analyzer é o contrato comum dos dois motores. Nenhum método altera
// estado compartilhado; cada KPI é independente dos demais e pode ser
// calculado em qualquer ordem, inclusive de forma intercalada.
type Analyzer interface {
	RepeatCustomers(ctx context.Context) ([]domain.RepeatCustomer, error)
	MonthlyOrderTrends(ctx context.Context) ([]domain.MonthlyTrend, error)
	RegionalRevenue(ctx context.Context) ([]domain.RegionRevenue, error)
	TopSpenders(ctx context.Context, days, limit int) ([]domain.TopSpender, error)
}

// BuildReport calcula os quatro KPIs de uma vez com o motor informado
func BuildReport(ctx context.Context, analyzer Analyzer, days, limit int) (*domain.KPIReport, error) {
	repeatCustomers, err := analyzer.RepeatCustomers(ctx)
	if err != nil {
		return nil, err
	}

	monthlyTrends, err := analyzer.MonthlyOrderTrends(ctx)
	if err != nil {
		return nil, err
	}

	regionalRevenue, err := analyzer.RegionalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	topSpenders, err := analyzer.TopSpenders(ctx, days, limit)
	if err != nil {
		return nil, err
	}

	return &domain.KPIReport{
		RepeatCustomers: repeatCustomers,
		MonthlyTrends:   monthlyTrends,
		RegionalRevenue: regionalRevenue,
		TopSpenders:     topSpenders,
		WindowDays:      days,
		SpenderLimit:    limit,
	}, nil
}
