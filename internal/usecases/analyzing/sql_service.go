package analyzing

import (
	"context"

	"github.com/vfg2006/order-analytics-api/infrastructure/repository"
	"github.com/vfg2006/order-analytics-api/internal/domain"
)

// SQLService é o motor relacional: cada KPI é uma única sentença de
// agregação executada pelo repositório contra o armazenamento persistido
type SQLService struct {
	kpiRepo repository.KPIRepository
}

func NewSQLService(kpiRepo repository.KPIRepository) *SQLService {
	return &SQLService{
		kpiRepo: kpiRepo,
	}
}

func (s *SQLService) RepeatCustomers(ctx context.Context) ([]domain.RepeatCustomer, error) {
	return s.kpiRepo.RepeatCustomers(ctx)
}

func (s *SQLService) MonthlyOrderTrends(ctx context.Context) ([]domain.MonthlyTrend, error) {
	return s.kpiRepo.MonthlyOrderTrends(ctx)
}

func (s *SQLService) RegionalRevenue(ctx context.Context) ([]domain.RegionRevenue, error) {
	return s.kpiRepo.RegionalRevenue(ctx)
}

func (s *SQLService) TopSpenders(ctx context.Context, days, limit int) ([]domain.TopSpender, error) {
	return s.kpiRepo.TopSpenders(ctx, days, limit)
}
