package analytics

import (
	"context"

	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

// LatestSalesLimit é o tamanho fixo da listagem sem filtros
const LatestSalesLimit uint64 = 100

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// AnalyticsService expõe uma operação por formato de requisição do dashboard.
type AnalyticsService interface {
	LatestSales(ctx context.Context) ([]domain.SalesRecord, error)
	FilteredSales(ctx context.Context, filter domain.SalesFilter) ([]domain.SalesRecord, error)
	KPI(ctx context.Context) (*domain.KPI, error)
	FilteredKPI(ctx context.Context, filter domain.SalesFilter) (*domain.KPI, error)
	SummaryByDimension(ctx context.Context, dimension domain.Dimension) ([]domain.DimensionTotal, error)
	// FilteredSummaryByDimension só aceita dimensões com SupportsTopN.
	FilteredSummaryByDimension(ctx context.Context, dimension domain.Dimension, filter domain.SalesFilter, topN uint64) ([]domain.DimensionTotal, error)
	SummaryByMonth(ctx context.Context) ([]domain.MonthTotal, error)
	FilteredSummaryByMonth(ctx context.Context, filter domain.SalesFilter) ([]domain.MonthTotal, error)
}

type Service struct {
	salesRepository repository.SalesRepository
}

func NewService(salesRepository repository.SalesRepository) AnalyticsService {
	return &Service{
		salesRepository: salesRepository,
	}
}

func (s *Service) LatestSales(ctx context.Context) ([]domain.SalesRecord, error) {
	return s.listSales(ctx, domain.SalesFilter{}, LatestSalesLimit)
}

func (s *Service) FilteredSales(ctx context.Context, filter domain.SalesFilter) ([]domain.SalesRecord, error) {
	return s.listSales(ctx, filter, 0)
}

func (s *Service) listSales(ctx context.Context, filter domain.SalesFilter, limit uint64) ([]domain.SalesRecord, error) {
	records, err := s.salesRepository.ListSales(ctx, filter, limit)
	if err != nil {
		logFilter(ctx, filter).WithError(err).Error("Erro ao listar vendas")
		return nil, NewAnalyticsError(ErrFetchSales, apiErrors.ErrDatabaseOperation, "Falha ao consultar vendas no banco de dados")
	}

	logFilter(ctx, filter).WithField("rows", len(records)).Debug("Vendas listadas")
	return records, nil
}

func (s *Service) KPI(ctx context.Context) (*domain.KPI, error) {
	return s.FilteredKPI(ctx, domain.SalesFilter{})
}

func (s *Service) FilteredKPI(ctx context.Context, filter domain.SalesFilter) (*domain.KPI, error) {
	kpi, err := s.salesRepository.GetKPI(ctx, filter)
	if err != nil {
		logFilter(ctx, filter).WithError(err).Error("Erro ao calcular KPI")
		return nil, NewAnalyticsError(ErrFetchKPI, apiErrors.ErrDatabaseOperation, "Falha ao calcular KPI no banco de dados")
	}

	return kpi, nil
}

func (s *Service) SummaryByDimension(ctx context.Context, dimension domain.Dimension) ([]domain.DimensionTotal, error) {
	return s.summarize(ctx, dimension, domain.SalesFilter{}, 0)
}

func (s *Service) FilteredSummaryByDimension(
	ctx context.Context,
	dimension domain.Dimension,
	filter domain.SalesFilter,
	topN uint64,
) ([]domain.DimensionTotal, error) {
	if !dimension.SupportsTopN() {
		return nil, NewAnalyticsError(ErrUnsupportedDimension, apiErrors.ErrInvalidRequest, string(dimension))
	}
	if topN == 0 {
		return nil, NewAnalyticsError(domain.ErrInvalidTopN, apiErrors.ErrInvalidFormat, "top_n deve ser maior que zero")
	}

	return s.summarize(ctx, dimension, filter, topN)
}

func (s *Service) summarize(
	ctx context.Context,
	dimension domain.Dimension,
	filter domain.SalesFilter,
	topN uint64,
) ([]domain.DimensionTotal, error) {
	if !dimension.Valid() {
		return nil, NewAnalyticsError(domain.ErrUnknownDimension, apiErrors.ErrInvalidRequest, string(dimension))
	}

	totals, err := s.salesRepository.SummarizeByDimension(ctx, dimension, filter, topN)
	if err != nil {
		logFilter(ctx, filter).WithFields(log.Fields{
			"dimension": dimension,
			"top_n":     topN,
		}).WithError(err).Error("Erro ao agregar vendas")
		return nil, NewAnalyticsError(ErrFetchSummary, apiErrors.ErrDatabaseOperation, "Falha ao agregar vendas no banco de dados")
	}

	return totals, nil
}

func (s *Service) SummaryByMonth(ctx context.Context) ([]domain.MonthTotal, error) {
	return s.FilteredSummaryByMonth(ctx, domain.SalesFilter{})
}

func (s *Service) FilteredSummaryByMonth(ctx context.Context, filter domain.SalesFilter) ([]domain.MonthTotal, error) {
	totals, err := s.salesRepository.SummarizeByMonth(ctx, filter)
	if err != nil {
		logFilter(ctx, filter).WithError(err).Error("Erro ao agregar vendas por mês")
		return nil, NewAnalyticsError(ErrFetchSummary, apiErrors.ErrDatabaseOperation, "Falha ao agregar vendas no banco de dados")
	}

	return totals, nil
}

func logFilter(ctx context.Context, filter domain.SalesFilter) log.Logger {
	fields := log.Fields{}
	if filter.Year != nil {
		fields["year"] = *filter.Year
	}
	if filter.Country != nil {
		fields["country"] = *filter.Country
	}
	return log.ForContext(ctx).WithFields(fields)
}
