package analyzing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/order-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/order-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestSQLService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKPIRepo := mocks.NewMockKPIRepository(ctrl)
	service := NewSQLService(mockKPIRepo)
	ctx := context.Background()

	expectedRepeat := []domain.RepeatCustomer{{CustomerID: "C001", Name: "Asha Rao", OrderCount: 3}}
	mockKPIRepo.EXPECT().RepeatCustomers(gomock.Any()).Return(expectedRepeat, nil)

	repeat, err := service.RepeatCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, expectedRepeat, repeat)

	expectedTrends := []domain.MonthlyTrend{{Year: 2024, Month: 3, OrderCount: 2, TotalRevenue: 150}}
	mockKPIRepo.EXPECT().MonthlyOrderTrends(gomock.Any()).Return(expectedTrends, nil)

	trends, err := service.MonthlyOrderTrends(ctx)
	require.NoError(t, err)
	assert.Equal(t, expectedTrends, trends)

	expectedRegions := []domain.RegionRevenue{{Region: "south", OrderCount: 2, TotalRevenue: 150, AvgOrderValue: 75}}
	mockKPIRepo.EXPECT().RegionalRevenue(gomock.Any()).Return(expectedRegions, nil)

	regions, err := service.RegionalRevenue(ctx)
	require.NoError(t, err)
	assert.Equal(t, expectedRegions, regions)

	expectedSpenders := []domain.TopSpender{{CustomerID: "C001", Name: "Asha Rao", TotalSpend: 150, OrderCount: 2}}
	mockKPIRepo.EXPECT().TopSpenders(gomock.Any(), 30, 10).Return(expectedSpenders, nil)

	spenders, err := service.TopSpenders(ctx, 30, 10)
	require.NoError(t, err)
	assert.Equal(t, expectedSpenders, spenders)
}

func TestBuildReport_PropagaErro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKPIRepo := mocks.NewMockKPIRepository(ctrl)
	service := NewSQLService(mockKPIRepo)

	mockKPIRepo.EXPECT().RepeatCustomers(gomock.Any()).Return(nil, assert.AnError)

	report, err := BuildReport(context.Background(), service, 30, 10)

	assert.Error(t, err)
	assert.Nil(t, report)
}
