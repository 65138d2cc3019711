package scheduler

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/config"
)

type fakeSource struct {
	pingErr error
	stats   sql.DBStats
}

func (f *fakeSource) Ping(context.Context) error { return f.pingErr }
func (f *fakeSource) Stats() sql.DBStats         { return f.stats }

func TestPoolStatsService_Collect(t *testing.T) {
	source := &fakeSource{stats: sql.DBStats{OpenConnections: 3, InUse: 1, Idle: 2}}
	service := NewPoolStatsService(source, config.PoolStats{CronSchedule: "* * * * *"})

	service.collect(context.Background())
	status := service.Status()

	assert.Equal(t, 1, status.Runs)
	assert.NoError(t, status.LastError)
	assert.Equal(t, 3, status.Stats.OpenConnections)
	assert.False(t, status.LastRunAt.IsZero())

	source.pingErr = errors.New("conexão recusada")
	service.collect(context.Background())

	status = service.Status()
	assert.Equal(t, 2, status.Runs)
	assert.EqualError(t, status.LastError, "conexão recusada")
}

func TestPoolStatsService_StartDisabled(t *testing.T) {
	service := NewPoolStatsService(&fakeSource{}, config.PoolStats{Enabled: false})

	require.NoError(t, service.Start(context.Background()))
	assert.Equal(t, 0, service.Status().Runs)
}

func TestPoolStatsService_StartInvalidCron(t *testing.T) {
	service := NewPoolStatsService(&fakeSource{}, config.PoolStats{Enabled: true, CronSchedule: "não é cron"})

	assert.Error(t, service.Start(context.Background()))
}

func TestPoolStatsService_StartAndStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	service := NewPoolStatsService(&fakeSource{}, config.PoolStats{Enabled: true, CronSchedule: "*/5 * * * *"})

	require.NoError(t, service.Start(ctx))
	assert.True(t, service.scheduler.IsRunning())
	cancel()
}
