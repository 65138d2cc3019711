package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/infrastructure/migration"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/api"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/scheduler"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analytics"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Database.AutoMigrate {
		if err := migration.RunMigrations(cfg.Database.DSN); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrations")
		}
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	salesRepo := repository.NewSalesRepository(pgConn)
	analyticsService := analytics.NewService(salesRepo)

	poolStatsService := scheduler.NewPoolStatsService(pgConn, cfg.PoolStats)
	if err := poolStatsService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o job de estatísticas do pool")
	}

	server, err := api.New(cfg, analyticsService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria o pool de conexões com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.WithFields(logrus.Fields{
		"host":           dbConfig.Host,
		"database":       dbConfig.Name,
		"max_open_conns": dbConfig.MaxOpenConns,
	}).Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
