// Package scheduler agenda a recarga periódica do armazenamento canônico a
// partir das fontes, quando o processo roda em modo servidor.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/order-analytics-api/internal/config"
	"github.com/vfg2006/order-analytics-api/internal/usecases/loading"
)

// RefreshSyncService gerencia o agendamento da recarga das fontes
type RefreshSyncService struct {
	scheduler           *gocron.Scheduler
	config              config.RefreshSync
	loader              loading.Loader
	tracker             *loading.Tracker
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewRefreshSyncService(
	loader loading.Loader,
	tracker *loading.Tracker,
	appConfig *config.Config,
) *RefreshSyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.RefreshSync.CronSchedule,
		"sync_enabled":  appConfig.RefreshSync.Enabled,
	}).Info("Configuração do agendador de recarga carregada")

	return &RefreshSyncService{
		scheduler: scheduler,
		config:    appConfig.RefreshSync,
		loader:    loader,
		tracker:   tracker,
	}
}

// Start inicia o agendador
func (s *RefreshSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Recarga periódica desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga das fontes")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSources(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga das fontes: %w", err)
	}

	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga das fontes")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *RefreshSyncService) syncSources(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Recarga anterior ainda em andamento, pulando execução")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	summary, rejections, err := s.loader.Run(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro na recarga periódica das fontes")
		return
	}

	s.tracker.Record(summary, rejections)

	logrus.WithFields(logrus.Fields{
		"customers_loaded": summary.CustomersLoaded,
		"orders_loaded":    summary.OrdersLoaded,
		"total_rejects":    summary.TotalRejects(),
	}).Info("Recarga periódica concluída")
}
