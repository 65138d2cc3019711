// Package ingestion carrega o CSV de vendas na tabela sales.
package ingestion

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
	"golang.org/x/text/encoding/charmap"
)

var (
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
	ErrMissingColumns      = errors.New("missing required columns")
	ErrEmptyFile           = errors.New("csv file has no header")
)

// Colunas que precisam existir no cabeçalho; as descritivas podem faltar e viram NULL.
var requiredColumns = []string{
	"ORDERNUMBER", "QUANTITYORDERED", "PRICEEACH", "ORDERLINENUMBER", "SALES",
	"ORDERDATE", "STATUS", "QTR_ID", "MONTH_ID", "YEAR_ID", "PRODUCTLINE",
	"MSRP", "PRODUCTCODE", "CUSTOMERNAME", "COUNTRY", "DEALSIZE",
}

type Options struct {
	Encoding  string
	BatchSize int
}

// Result resume uma execução do loader
type Result struct {
	RunID    string
	Read     int64
	Inserted int64
	Skipped  int64
	Duration time.Duration
}

type Loader struct {
	writer repository.SalesWriter
}

func NewLoader(writer repository.SalesWriter) *Loader {
	return &Loader{writer: writer}
}

func (l *Loader) LoadFile(ctx context.Context, path string, opts Options) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir %s", path)
	}
	defer file.Close()

	return l.Load(ctx, file, opts)
}

// Load substitui todo o conteúdo da tabela pelas linhas válidas do CSV.
// Linhas inválidas são descartadas e contadas; falha na gravação não altera a tabela.
func (l *Loader) Load(ctx context.Context, r io.Reader, opts Options) (*Result, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar identificador da carga")
	}

	startedAt := time.Now()
	logger := logrus.WithField("run_id", runID)
	logger.WithField("encoding", opts.Encoding).Info("Iniciando carga do CSV de vendas")

	records, skipped, err := ParseRecords(r, opts.Encoding)
	if err != nil {
		return nil, err
	}

	inserted, err := l.writer.ReplaceAll(ctx, records, opts.BatchSize)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gravar vendas")
	}

	result := &Result{
		RunID:    runID,
		Read:     int64(len(records)) + skipped,
		Inserted: inserted,
		Skipped:  skipped,
		Duration: time.Since(startedAt),
	}

	logger.WithFields(logrus.Fields{
		"read":     result.Read,
		"inserted": result.Inserted,
		"skipped":  result.Skipped,
		"duration": result.Duration.String(),
	}).Info("Carga do CSV concluída")

	return result, nil
}

// ParseRecords lê o CSV e devolve as linhas válidas e a quantidade descartada.
func ParseRecords(r io.Reader, encoding string) ([]domain.SalesRecord, int64, error) {
	decoded, err := decode(r, encoding)
	if err != nil {
		return nil, 0, err
	}

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, 0, ErrEmptyFile
	}
	if err != nil {
		return nil, 0, errors.Wrap(err, "erro ao ler cabeçalho")
	}

	columns := indexColumns(header)
	if missing := missingColumns(columns); len(missing) > 0 {
		return nil, 0, errors.Wrapf(ErrMissingColumns, "%s", strings.Join(missing, ", "))
	}

	records := make([]domain.SalesRecord, 0)
	var skipped int64
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logrus.WithError(err).WithField("line", line).Warn("Linha ilegível descartada")
			skipped++
			continue
		}

		record, err := parseRow(row, columns)
		if err != nil {
			logrus.WithError(err).WithField("line", line).Warn("Linha inválida descartada")
			skipped++
			continue
		}
		records = append(records, record)
	}

	return records, skipped, nil
}

func decode(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf-8", "utf8":
		return r, nil
	case "cp1252", "windows-1252", "latin1", "iso-8859-1":
		return charmap.Windows1252.NewDecoder().Reader(r), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedEncoding, "%q", encoding)
	}
}

// indexColumns normaliza os nomes (trim + maiúsculas) e mapeia para a posição no CSV
func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, exists := columns[name]; !exists {
			columns[name] = i
		}
	}
	return columns
}

func missingColumns(columns map[string]int) []string {
	missing := make([]string, 0)
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

type rowParser struct {
	row     []string
	columns map[string]int
	err     error
}

func (p *rowParser) text(column string) string {
	i, ok := p.columns[column]
	if !ok || i >= len(p.row) {
		return ""
	}
	return strings.TrimSpace(p.row[i])
}

func (p *rowParser) required(column string) string {
	value := p.text(column)
	if value == "" && p.err == nil {
		p.err = fmt.Errorf("coluna %s vazia", column)
	}
	return value
}

func (p *rowParser) nullable(column string) *string {
	value := p.text(column)
	if value == "" {
		return nil
	}
	return &value
}

func (p *rowParser) integer(column string) int64 {
	raw := p.required(column)
	if p.err != nil {
		return 0
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		p.err = fmt.Errorf("coluna %s: %q não é inteiro", column, raw)
	}
	return n
}

func (p *rowParser) float(column string) float64 {
	raw := p.required(column)
	if p.err != nil {
		return 0
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.err = fmt.Errorf("coluna %s: %q não é numérico", column, raw)
	}
	return f
}

func (p *rowParser) date(column string) time.Time {
	raw := p.required(column)
	if p.err != nil {
		return time.Time{}
	}

	t, err := utils.ParseOrderDate(raw)
	if err != nil {
		p.err = fmt.Errorf("coluna %s: %w", column, err)
	}
	return t
}

func parseRow(row []string, columns map[string]int) (domain.SalesRecord, error) {
	p := &rowParser{row: row, columns: columns}

	record := domain.SalesRecord{
		OrderNumber:      p.integer("ORDERNUMBER"),
		QuantityOrdered:  p.integer("QUANTITYORDERED"),
		PriceEach:        p.float("PRICEEACH"),
		OrderLineNumber:  p.integer("ORDERLINENUMBER"),
		Sales:            p.float("SALES"),
		OrderDate:        p.date("ORDERDATE"),
		Status:           p.required("STATUS"),
		QtrID:            p.integer("QTR_ID"),
		MonthID:          p.integer("MONTH_ID"),
		YearID:           p.integer("YEAR_ID"),
		ProductLine:      p.required("PRODUCTLINE"),
		MSRP:             p.integer("MSRP"),
		ProductCode:      p.required("PRODUCTCODE"),
		CustomerName:     p.required("CUSTOMERNAME"),
		Phone:            p.nullable("PHONE"),
		AddressLine1:     p.nullable("ADDRESSLINE1"),
		AddressLine2:     p.nullable("ADDRESSLINE2"),
		City:             p.nullable("CITY"),
		State:            p.nullable("STATE"),
		PostalCode:       p.nullable("POSTALCODE"),
		Country:          p.required("COUNTRY"),
		Territory:        p.nullable("TERRITORY"),
		ContactLastName:  p.nullable("CONTACTLASTNAME"),
		ContactFirstName: p.nullable("CONTACTFIRSTNAME"),
		DealSize:         p.required("DEALSIZE"),
	}

	return record, p.err
}
