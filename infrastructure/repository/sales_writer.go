package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const defaultBatchSize = 500

//go:generate mockgen -source=sales_writer.go -destination=mocks/mock_sales_writer.go -package=mocks

// SalesWriter grava a carga completa da tabela sales (usado pelo loader de CSV).
type SalesWriter interface {
	// ReplaceAll apaga o conteúdo atual e insere records em lotes, tudo em uma única transação.
	ReplaceAll(ctx context.Context, records []domain.SalesRecord, batchSize int) (int64, error)
}

type salesWriter struct {
	conn *postgres.Connection
}

func NewSalesWriter(conn *postgres.Connection) SalesWriter {
	return &salesWriter{conn: conn}
}

func (w *salesWriter) ReplaceAll(ctx context.Context, records []domain.SalesRecord, batchSize int) (int64, error) {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	var inserted int64
	err := w.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteSQL, deleteArgs, err := w.conn.StatementBuilder().Delete(salesTable).ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return wrapExecError(err)
		}

		for start := 0; start < len(records); start += batchSize {
			end := min(start+batchSize, len(records))

			insert := w.conn.StatementBuilder().
				Insert(salesTable).
				Columns(salesColumns...)
			for _, rec := range records[start:end] {
				insert = insert.Values(salesRecordValues(rec)...)
			}

			insertSQL, args, err := insert.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			result, err := tx.ExecContext(ctx, insertSQL, args...)
			if err != nil {
				return wrapExecError(err)
			}

			affected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
			}
			inserted += affected
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

// salesRecordValues segue a ordem de salesColumns
func salesRecordValues(r domain.SalesRecord) []interface{} {
	return []interface{}{
		r.OrderNumber,
		r.QuantityOrdered,
		r.PriceEach,
		r.OrderLineNumber,
		r.Sales,
		r.OrderDate,
		r.Status,
		r.QtrID,
		r.MonthID,
		r.YearID,
		r.ProductLine,
		r.MSRP,
		r.ProductCode,
		r.CustomerName,
		r.Phone,
		r.AddressLine1,
		r.AddressLine2,
		r.City,
		r.State,
		r.PostalCode,
		r.Country,
		r.Territory,
		r.ContactLastName,
		r.ContactFirstName,
		r.DealSize,
	}
}

func wrapExecError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}
