package handler

import (
	"net/http"

	"github.com/vfg2006/order-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/order-analytics-api/internal/config"
	"github.com/vfg2006/order-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/order-analytics-api/internal/usecases/loading"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// KPIs expõe os quatro indicadores calculados pelo motor relacional.
// Todas as rotas são somente leitura e seguras para intercalar.
func KPIs(service analyzing.Analyzer, kpiCfg config.KPI) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/kpis/repeat-customers",
			Method:  http.MethodGet,
			Handler: GetRepeatCustomers(service),
		},
		{
			Path:    "/v1/kpis/monthly-trends",
			Method:  http.MethodGet,
			Handler: GetMonthlyTrends(service),
		},
		{
			Path:    "/v1/kpis/regional-revenue",
			Method:  http.MethodGet,
			Handler: GetRegionalRevenue(service),
		},
		{
			Path:    "/v1/kpis/top-spenders",
			Method:  http.MethodGet,
			Handler: GetTopSpenders(service, kpiCfg),
		},
	}
}

func Loads(loader loading.Loader, tracker *loading.Tracker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/load/summary",
			Method:  http.MethodGet,
			Handler: GetLoadSummary(tracker),
		},
		{
			Path:    "/v1/load/rejections",
			Method:  http.MethodGet,
			Handler: GetRejections(tracker),
		},
		{
			Path:    "/v1/load/run",
			Method:  http.MethodPost,
			Handler: RunLoad(loader, tracker),
		},
	}
}
