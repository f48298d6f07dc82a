package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-pilot-api/internal/config"
	"github.com/vfg2006/profit-pilot-api/internal/usecases/insighting"
)

//go:generate mockgen -source=insights_refresh.go -destination=mocks/job.go -package=mocks

// Job é um processo agendado que também pode ser disparado manualmente
type Job interface {
	Start(ctx context.Context) error
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// InsightRefreshConfig representa a configuração do agendador de insights
type InsightRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// InsightRefreshService regera periodicamente os insights em cache
type InsightRefreshService struct {
	scheduler           *gocron.Scheduler
	config              InsightRefreshConfig
	insighter           insighting.Insighter
	syncRunning         bool
	syncMutex           sync.Mutex
	wg                  sync.WaitGroup
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastInsights        int
	lastFallback        bool
}

func NewInsightRefreshService(insighter insighting.Insighter, appConfig *config.Config) *InsightRefreshService {
	refreshConfig := InsightRefreshConfig{
		CronSchedule: appConfig.InsightRefresh.CronSchedule,
		SyncEnabled:  appConfig.InsightRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"sync_enabled":  refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de insights carregada")

	return &InsightRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		insighter: insighter,
	}
}

// Start inicia o agendador
func (s *InsightRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização de insights desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização de insights")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshInsights(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de insights: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização de insights")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *InsightRefreshService) refreshInsights(ctx context.Context) {
	if !s.markRunning() {
		logrus.Info("Atualização de insights já em andamento, ignorando")
		return
	}

	s.runRefresh(ctx)
}

// markRunning reserva a execução; só um chamador por vez recebe true
func (s *InsightRefreshService) markRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()

	return true
}

// runRefresh executa uma atualização já reservada por markRunning
func (s *InsightRefreshService) runRefresh(ctx context.Context) {
	startTime := time.Now()
	logrus.Info("Iniciando atualização de insights")

	response := s.insighter.Refresh(ctx)

	insights, fallback := 0, false
	if response != nil {
		insights, fallback = len(response.Insights), response.Fallback
	}

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastInsights = insights
	s.lastFallback = fallback
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"insights": insights,
		"fallback": fallback,
	}).Info("Atualização de insights concluída")
}

// TriggerManualSync dispara uma atualização em segundo plano.
// Retorna false quando já existe uma execução em andamento.
func (s *InsightRefreshService) TriggerManualSync() bool {
	if !s.markRunning() {
		logrus.Info("Atualização de insights já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando atualização manual de insights")

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		// A requisição que disparou a atualização termina antes dela
		s.runRefresh(context.Background())
	}()

	return true
}

// Wait aguarda as atualizações manuais em andamento
func (s *InsightRefreshService) Wait() {
	s.wg.Wait()
}

// GetStatus retorna o status atual do agendador
func (s *InsightRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_insights":          s.lastInsights,
		"last_fallback":          s.lastFallback,
	}
}
