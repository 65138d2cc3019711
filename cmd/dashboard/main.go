package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/api"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/dashboard"
	"github.com/vfg2006/sales-analytics-api/internal/reporting"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := reporting.NewAPIClient(cfg.Dashboard.APIBaseURL, cfg.Dashboard.APITimeout)
	builder := reporting.NewBuilder(client)

	logrus.WithFields(logrus.Fields{
		"api_base_url": cfg.Dashboard.APIBaseURL,
		"api_timeout":  cfg.Dashboard.APITimeout.String(),
	}).Info("Dashboard configurado")

	server := api.NewServer(cfg.Dashboard.Address(), dashboard.NewHandler(builder))
	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
