package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/order-analytics-api/internal/config"
	"github.com/vfg2006/order-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/order-analytics-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logrus.Error("Erro ao enviar resposta:", err)
	}
}

// GetRepeatCustomers retorna os clientes com dois ou mais pedidos
func GetRepeatCustomers(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := service.RepeatCustomers(r.Context())
		if err != nil {
			logrus.Error("Erro ao calcular repeat customers:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular repeat customers", nil)
			return
		}

		writeJSON(w, results)
	}
}

// GetMonthlyTrends retorna a tendência mensal de pedidos
func GetMonthlyTrends(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := service.MonthlyOrderTrends(r.Context())
		if err != nil {
			logrus.Error("Erro ao calcular tendência mensal:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular tendência mensal", nil)
			return
		}

		writeJSON(w, results)
	}
}

// GetRegionalRevenue retorna a receita agregada por região
func GetRegionalRevenue(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := service.RegionalRevenue(r.Context())
		if err != nil {
			logrus.Error("Erro ao calcular receita regional:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular receita regional", nil)
			return
		}

		writeJSON(w, results)
	}
}

// GetTopSpenders retorna os maiores compradores na janela de N dias.
// Os parâmetros days e limit são opcionais; os defaults vêm da configuração.
func GetTopSpenders(service analyzing.Analyzer, kpiCfg config.KPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days, err := positiveQueryParam(r, "days", kpiCfg.TopSpendersWindowDays)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "parâmetro days inválido", nil)
			return
		}

		limit, err := positiveQueryParam(r, "limit", kpiCfg.TopSpendersLimit)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "parâmetro limit inválido", nil)
			return
		}

		results, err := service.TopSpenders(r.Context(), days, limit)
		if err != nil {
			logrus.Error("Erro ao calcular top spenders:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular top spenders", nil)
			return
		}

		writeJSON(w, results)
	}
}

func positiveQueryParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, strconv.ErrRange
	}

	return value, nil
}
