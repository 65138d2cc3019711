// Package testutil monta bancos SQLite temporários com o schema de produção
// para os testes de repositório e do loader.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/infrastructure/migration"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	_ "modernc.org/sqlite"
)

// NewSQLiteConnection cria um arquivo SQLite em t.TempDir(), aplica as migrations
// e devolve uma conexão com placeholders "?".
func NewSQLiteConnection(t *testing.T) *postgres.Connection {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sales.db")
	require.NoError(t, migration.RunMigrations("sqlite://"+path))

	db, err := sql.Open("sqlite", path+"?_time_format=sqlite")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	return postgres.Wrap(db, squirrel.Question)
}

// SeedSales substitui o conteúdo da tabela pelos registros informados.
func SeedSales(t *testing.T, conn *postgres.Connection, records ...domain.SalesRecord) {
	t.Helper()

	_, err := repository.NewSalesWriter(conn).ReplaceAll(context.Background(), records, 0)
	require.NoError(t, err)
}

// Sale monta um registro válido com os campos que importam para as agregações;
// o restante recebe valores fixos.
func Sale(orderNumber int64, year int, month int, country string, productLine string, sales float64) domain.SalesRecord {
	return domain.SalesRecord{
		OrderNumber:     orderNumber,
		QuantityOrdered: 1,
		PriceEach:       sales,
		OrderLineNumber: 1,
		Sales:           sales,
		OrderDate:       time.Date(year, time.Month(month), 15, 0, 0, 0, 0, time.UTC),
		Status:          "Shipped",
		QtrID:           int64((month-1)/3 + 1),
		MonthID:         int64(month),
		YearID:          int64(year),
		ProductLine:     productLine,
		MSRP:            100,
		ProductCode:     "S10_1678",
		CustomerName:    "Land of Toys Inc.",
		Country:         country,
		DealSize:        "Small",
	}
}
