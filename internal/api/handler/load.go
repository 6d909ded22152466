package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/order-analytics-api/internal/domain"
	"github.com/vfg2006/order-analytics-api/internal/usecases/loading"
	"github.com/vfg2006/order-analytics-api/pkg/apiErrors"
)

type loadStatusResponse struct {
	Summary     *domain.LoadSummary `json:"summary"`
	CompletedAt time.Time           `json:"completed_at"`
}

// GetLoadSummary retorna o resumo da última carga concluída
func GetLoadSummary(tracker *loading.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, _, completedAt := tracker.Last()
		if summary == nil {
			apiErrors.WriteError(w, apiErrors.ErrLoadNotCompleted, "Nenhuma carga concluída até o momento", nil)
			return
		}

		writeJSON(w, loadStatusResponse{Summary: summary, CompletedAt: completedAt})
	}
}

// GetRejections retorna as rejeições da última carga concluída
func GetRejections(tracker *loading.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, rejections, _ := tracker.Last()
		if summary == nil {
			apiErrors.WriteError(w, apiErrors.ErrLoadNotCompleted, "Nenhuma carga concluída até o momento", nil)
			return
		}

		writeJSON(w, rejections)
	}
}

// RunLoad dispara uma recarga completa das fontes para o armazenamento
// canônico. A carga é drop-and-recreate: termina com um resumo ou falha
// fatalmente, sem estado parcial.
func RunLoad(loader loading.Loader, tracker *loading.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, rejections, err := loader.Run(r.Context())
		if err != nil {
			logrus.Error("Erro ao executar recarga:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao executar recarga", nil)
			return
		}

		tracker.Record(summary, rejections)
		writeJSON(w, summary)
	}
}
