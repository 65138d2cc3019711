package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const (
	salesTable = "sales"

	// CAST(... AS NUMERIC) é aceito tanto pelo PostgreSQL quanto pelo SQLite
	totalSalesExpr    = `ROUND(CAST(SUM("SALES") AS NUMERIC), 2)`
	avgOrderValueExpr = `ROUND(CAST(AVG("SALES") AS NUMERIC), 2)`
	totalOrdersExpr   = `COUNT(DISTINCT "ORDERNUMBER")`
)

// salesColumns segue a ordem de scanSalesRecord
var salesColumns = []string{
	`"ORDERNUMBER"`, `"QUANTITYORDERED"`, `"PRICEEACH"`, `"ORDERLINENUMBER"`, `"SALES"`,
	`"ORDERDATE"`, `"STATUS"`, `"QTR_ID"`, `"MONTH_ID"`, `"YEAR_ID"`, `"PRODUCTLINE"`,
	`"MSRP"`, `"PRODUCTCODE"`, `"CUSTOMERNAME"`, `"PHONE"`, `"ADDRESSLINE1"`,
	`"ADDRESSLINE2"`, `"CITY"`, `"STATE"`, `"POSTALCODE"`, `"COUNTRY"`, `"TERRITORY"`,
	`"CONTACTLASTNAME"`, `"CONTACTFIRSTNAME"`, `"DEALSIZE"`,
}

var dimensionColumns = map[domain.Dimension]string{
	domain.DimensionCountry:     `"COUNTRY"`,
	domain.DimensionYear:        `"YEAR_ID"`,
	domain.DimensionProductLine: `"PRODUCTLINE"`,
	domain.DimensionDealSize:    `"DEALSIZE"`,
	domain.DimensionStatus:      `"STATUS"`,
}

//go:generate mockgen -source=sales.go -destination=mocks/mock_sales.go -package=mocks

// SalesRepository executa as consultas de leitura e agregação sobre a tabela sales.
type SalesRepository interface {
	// ListSales retorna os registros filtrados do mais recente para o mais antigo; limit 0 não limita.
	ListSales(ctx context.Context, filter domain.SalesFilter, limit uint64) ([]domain.SalesRecord, error)
	GetKPI(ctx context.Context, filter domain.SalesFilter) (*domain.KPI, error)
	// SummarizeByDimension agrega SALES pela dimensão; topN 0 retorna todos os grupos.
	SummarizeByDimension(ctx context.Context, dimension domain.Dimension, filter domain.SalesFilter, topN uint64) ([]domain.DimensionTotal, error)
	SummarizeByMonth(ctx context.Context, filter domain.SalesFilter) ([]domain.MonthTotal, error)
}

type salesRepository struct {
	conn *postgres.Connection
}

func NewSalesRepository(conn *postgres.Connection) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

func (r *salesRepository) ListSales(ctx context.Context, filter domain.SalesFilter, limit uint64) ([]domain.SalesRecord, error) {
	query := r.conn.StatementBuilder().
		Select(salesColumns...).
		From(salesTable).
		OrderBy(`"ORDERDATE" DESC`, `"ORDERNUMBER" DESC`, `"ORDERLINENUMBER" ASC`)

	query, err := applyFilter(query, filter)
	if err != nil {
		return nil, err
	}

	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := r.query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.SalesRecord, 0)
	for rows.Next() {
		record, err := scanSalesRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de venda: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *salesRepository) GetKPI(ctx context.Context, filter domain.SalesFilter) (*domain.KPI, error) {
	query := r.conn.StatementBuilder().
		Select(
			totalSalesExpr+" AS total_revenue",
			totalOrdersExpr+" AS total_orders",
			avgOrderValueExpr+" AS avg_order_value",
		).
		From(salesTable)

	query, err := applyFilter(query, filter)
	if err != nil {
		return nil, err
	}

	rows, err := r.query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	kpi := &domain.KPI{}
	if rows.Next() {
		var revenue, avg sql.NullFloat64
		if err := rows.Scan(&revenue, &kpi.TotalOrders, &avg); err != nil {
			return nil, fmt.Errorf("erro ao escanear KPI: %w", err)
		}
		kpi.TotalRevenue = nullFloatPtr(revenue)
		kpi.AvgOrderValue = nullFloatPtr(avg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return kpi, nil
}

func (r *salesRepository) SummarizeByDimension(
	ctx context.Context,
	dimension domain.Dimension,
	filter domain.SalesFilter,
	topN uint64,
) ([]domain.DimensionTotal, error) {
	column, ok := dimensionColumns[dimension]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDimension, dimension)
	}

	query := r.conn.StatementBuilder().
		Select(
			fmt.Sprintf("%s AS %s", column, dimension),
			totalSalesExpr+" AS total_sales",
		).
		From(salesTable).
		GroupBy(column)

	query, err := applyFilter(query, filter)
	if err != nil {
		return nil, err
	}

	// Ano é uma série temporal; as demais dimensões são rankings (empate desfeito pelo valor)
	if dimension == domain.DimensionYear {
		query = query.OrderBy(column + " ASC")
	} else {
		query = query.OrderBy("total_sales DESC", column+" ASC")
	}

	if topN > 0 {
		query = query.Limit(topN)
	}

	rows, err := r.query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make([]domain.DimensionTotal, 0)
	for rows.Next() {
		total, err := scanDimensionTotal(rows, dimension)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear total por %s: %w", dimension, err)
		}
		totals = append(totals, total)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}

func (r *salesRepository) SummarizeByMonth(ctx context.Context, filter domain.SalesFilter) ([]domain.MonthTotal, error) {
	query := r.conn.StatementBuilder().
		Select(
			`"YEAR_ID" AS year`,
			`"MONTH_ID" AS month`,
			totalSalesExpr+" AS total_sales",
		).
		From(salesTable).
		GroupBy(`"YEAR_ID"`, `"MONTH_ID"`).
		OrderBy(`"YEAR_ID" ASC`, `"MONTH_ID" ASC`)

	query, err := applyFilter(query, filter)
	if err != nil {
		return nil, err
	}

	rows, err := r.query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make([]domain.MonthTotal, 0)
	for rows.Next() {
		var total domain.MonthTotal
		var sales sql.NullFloat64
		if err := rows.Scan(&total.Year, &total.Month, &sales); err != nil {
			return nil, fmt.Errorf("erro ao escanear total mensal: %w", err)
		}
		total.TotalSales = sales.Float64
		totals = append(totals, total)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}

// query gera o SQL parametrizado e o executa no pool usando o contexto da requisição
func (r *salesRepository) query(ctx context.Context, query squirrel.SelectBuilder) (*sql.Rows, error) {
	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"query": strings.Join(strings.Fields(sqlQuery), " "),
		"args":  len(args),
	}).Debug("repository: executando consulta")

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, wrapExecError(err)
	}

	return rows, nil
}

func scanSalesRecord(rows *sql.Rows) (domain.SalesRecord, error) {
	var record domain.SalesRecord
	var phone, address1, address2, city, state, postalCode, territory, lastName, firstName sql.NullString

	err := rows.Scan(
		&record.OrderNumber,
		&record.QuantityOrdered,
		&record.PriceEach,
		&record.OrderLineNumber,
		&record.Sales,
		orderDateScanner{dest: &record.OrderDate},
		&record.Status,
		&record.QtrID,
		&record.MonthID,
		&record.YearID,
		&record.ProductLine,
		&record.MSRP,
		&record.ProductCode,
		&record.CustomerName,
		&phone,
		&address1,
		&address2,
		&city,
		&state,
		&postalCode,
		&record.Country,
		&territory,
		&lastName,
		&firstName,
		&record.DealSize,
	)
	if err != nil {
		return record, err
	}

	record.Phone = nullStringPtr(phone)
	record.AddressLine1 = nullStringPtr(address1)
	record.AddressLine2 = nullStringPtr(address2)
	record.City = nullStringPtr(city)
	record.State = nullStringPtr(state)
	record.PostalCode = nullStringPtr(postalCode)
	record.Territory = nullStringPtr(territory)
	record.ContactLastName = nullStringPtr(lastName)
	record.ContactFirstName = nullStringPtr(firstName)

	return record, nil
}

func scanDimensionTotal(rows *sql.Rows, dimension domain.Dimension) (domain.DimensionTotal, error) {
	total := domain.DimensionTotal{Dimension: dimension}
	var sales sql.NullFloat64

	if dimension == domain.DimensionYear {
		var year sql.NullInt64
		if err := rows.Scan(&year, &sales); err != nil {
			return total, err
		}
		if year.Valid {
			total.Value = year.Int64
		}
	} else {
		var value sql.NullString
		if err := rows.Scan(&value, &sales); err != nil {
			return total, err
		}
		if value.Valid {
			total.Value = value.String
		}
	}

	total.TotalSales = sales.Float64
	return total, nil
}

// Formatos em que drivers sem suporte nativo a TIMESTAMP (SQLite) devolvem datas
var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	time.RFC3339Nano,
	time.DateTime,
	time.DateOnly,
}

// orderDateScanner aceita ORDERDATE como time.Time ou texto
type orderDateScanner struct {
	dest *time.Time
}

func (s orderDateScanner) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case time.Time:
		*s.dest = v
		return nil
	case nil:
		*s.dest = time.Time{}
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("tipo não suportado para ORDERDATE: %T", src)
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			*s.dest = t
			return nil
		}
	}

	return fmt.Errorf("ORDERDATE em formato desconhecido: %q", raw)
}

func nullStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullFloatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}
