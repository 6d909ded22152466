package loading

import (
	"sync"
	"time"

	"github.com/vfg2006/order-analytics-api/internal/domain"
)

// Tracker guarda o resultado da última carga concluída, para consulta pelo
// servidor e pelo agendador. Após a carga não há escrita no armazenamento
// canônico, então as leituras podem se intercalar livremente.
type Tracker struct {
	mu          sync.RWMutex
	summary     *domain.LoadSummary
	rejections  []domain.Rejection
	completedAt time.Time
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Record registra o desfecho de uma carga concluída
func (t *Tracker) Record(summary *domain.LoadSummary, rejections []domain.Rejection) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.summary = summary
	t.rejections = rejections
	t.completedAt = time.Now().UTC()
}

// Last retorna o resumo da última carga, ou nil se nenhuma carga terminou
func (t *Tracker) Last() (*domain.LoadSummary, []domain.Rejection, time.Time) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.summary, t.rejections, t.completedAt
}
