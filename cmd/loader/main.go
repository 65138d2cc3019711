package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/infrastructure/migration"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/ingestion"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		csvPath   string
		encoding  string
		batchSize int
		migrate   bool
	)

	cmd := &cobra.Command{
		Use:           "loader",
		Short:         "Carrega o CSV de vendas na tabela sales",
		Long:          "Lê o CSV de vendas, normaliza o cabeçalho e substitui todo o conteúdo da tabela sales em uma única transação.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return fmt.Errorf("carregar configuração: %w", err)
			}
			log.Setup(cfg.App.LogLevel)

			if !cmd.Flags().Changed("csv") {
				csvPath = cfg.Loader.CSVPath
			}
			if !cmd.Flags().Changed("encoding") {
				encoding = cfg.Loader.Encoding
			}
			if !cmd.Flags().Changed("batch-size") {
				batchSize = cfg.Loader.BatchSize
			}
			if !cmd.Flags().Changed("migrate") {
				migrate = cfg.Database.AutoMigrate
			}

			if migrate {
				if err := migration.RunMigrations(cfg.Database.DSN); err != nil {
					return err
				}
			}

			conn, err := postgres.NewConnection(cmd.Context(), cfg.Database)
			if err != nil {
				return fmt.Errorf("conectar ao PostgreSQL: %w", err)
			}
			defer conn.Close()

			loader := ingestion.NewLoader(repository.NewSalesWriter(conn))
			result, err := loader.LoadFile(cmd.Context(), csvPath, ingestion.Options{
				Encoding:  encoding,
				BatchSize: batchSize,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Carga %s: %d linhas inseridas, %d descartadas\n",
				result.RunID, result.Inserted, result.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "data/sales_data.csv", "Caminho do CSV de vendas")
	cmd.Flags().StringVar(&encoding, "encoding", "cp1252", "Codificação do CSV (utf-8 ou cp1252)")
	cmd.Flags().IntVar(&batchSize, "batch-size", 500, "Quantidade de linhas por INSERT")
	cmd.Flags().BoolVar(&migrate, "migrate", true, "Aplica as migrations antes da carga")

	return cmd
}
