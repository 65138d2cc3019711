package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/sales-analytics-api/internal/config"
)

// Connection é o pool de conexões compartilhado pelos repositórios. Placeholder
// define o formato dos parâmetros gerados pelo squirrel para o driver em uso.
type Connection struct {
	*sql.DB
	Placeholder squirrel.PlaceholderFormat
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Connection{DB: db, Placeholder: squirrel.Dollar}, nil
}

// Wrap adapta um *sql.DB já aberto (por exemplo, SQLite em testes).
func Wrap(db *sql.DB, placeholder squirrel.PlaceholderFormat) *Connection {
	return &Connection{DB: db, Placeholder: placeholder}
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// StatementBuilder retorna um builder do squirrel já com o formato de placeholder da conexão
func (c *Connection) StatementBuilder() squirrel.StatementBuilderType {
	if c.Placeholder == nil {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(c.Placeholder)
}

// RunInTransaction run a query in the transaction
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return rbErr
		}
		return err
	}

	return tx.Commit()
}
