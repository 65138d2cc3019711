package scheduler

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/config"
)

const pingTimeout = 5 * time.Second

// StatsSource é o pool observado pelo job; *postgres.Connection satisfaz a interface.
type StatsSource interface {
	Ping(ctx context.Context) error
	Stats() sql.DBStats
}

// PoolStatsStatus guarda o resultado da última coleta
type PoolStatsStatus struct {
	LastRunAt time.Time
	LastError error
	Stats     sql.DBStats
	Runs      int
}

// PoolStatsService agenda a verificação periódica do pool de conexões
type PoolStatsService struct {
	scheduler *gocron.Scheduler
	config    config.PoolStats
	source    StatsSource
	mu        sync.Mutex
	status    PoolStatsStatus
}

func NewPoolStatsService(source StatsSource, cfg config.PoolStats) *PoolStatsService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CronSchedule,
		"enabled":       cfg.Enabled,
	}).Info("Configuração do job de estatísticas do pool carregada")

	return &PoolStatsService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		source:    source,
	}
}

// Start inicia o agendador; o job para quando ctx é cancelado
func (s *PoolStatsService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Job de estatísticas do pool desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando job de estatísticas do pool")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.collect(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar job de estatísticas do pool: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando job de estatísticas do pool")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *PoolStatsService) collect(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	err := s.source.Ping(pingCtx)
	stats := s.source.Stats()

	s.mu.Lock()
	s.status = PoolStatsStatus{
		LastRunAt: time.Now(),
		LastError: err,
		Stats:     stats,
		Runs:      s.status.Runs + 1,
	}
	s.mu.Unlock()

	entry := logrus.WithFields(logrus.Fields{
		"open_connections": stats.OpenConnections,
		"in_use":           stats.InUse,
		"idle":             stats.Idle,
		"wait_count":       stats.WaitCount,
		"wait_duration":    stats.WaitDuration.String(),
		"max_open":         stats.MaxOpenConnections,
	})
	if err != nil {
		entry.WithError(err).Error("Banco de dados não respondeu ao ping")
		return
	}
	entry.Info("Estatísticas do pool de conexões")
}

func (s *PoolStatsService) Status() PoolStatsStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}
