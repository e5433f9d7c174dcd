package reporting

import (
	"context"

	"github.com/vfg2006/transactions-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/transactions-dashboard-api/internal/domain"
	"github.com/vfg2006/transactions-dashboard-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

type Reporter interface {
	Statistics(ctx context.Context, month string) (*domain.Statistics, error)
	BarChart(ctx context.Context, month string) ([]domain.PriceBucket, error)
	PieChart(ctx context.Context, month string) ([]domain.SoldGroup, error)
	MonthlyReport(ctx context.Context, month string) (*domain.MonthlyReport, error)
}

type Service struct {
	transactionRepo repository.TransactionRepository
}

func NewService(transactionRepo repository.TransactionRepository) Reporter {
	return &Service{
		transactionRepo: transactionRepo,
	}
}

// Statistics agrega total de vendas e contagens de vendidos/não vendidos
// do mês informado, em todos os anos. Mês sem transações devolve zeros.
func (s *Service) Statistics(ctx context.Context, month string) (*domain.Statistics, error) {
	resolved, err := domain.ResolveMonth(month)
	if err != nil {
		return nil, err
	}

	statistics, err := s.transactionRepo.StatisticsByMonth(ctx, resolved)
	if err != nil {
		return nil, err
	}

	statistics.TotalSales = utils.RoundWithTwoDecimalPlace(statistics.TotalSales)
	return statistics, nil
}

// BarChart devolve o histograma de preços do mês com todas as faixas
// configuradas, inclusive as vazias, na ordem das faixas.
func (s *Service) BarChart(ctx context.Context, month string) ([]domain.PriceBucket, error) {
	resolved, err := domain.ResolveMonth(month)
	if err != nil {
		return nil, err
	}

	histogram, err := s.transactionRepo.PriceHistogramByMonth(ctx, resolved)
	if err != nil {
		return nil, err
	}

	return domain.FillPriceBuckets(histogram), nil
}

// PieChart agrupa as transações do mês pela flag sold. Só grupos com pelo
// menos uma transação aparecem; a ordem entre eles não é garantida.
func (s *Service) PieChart(ctx context.Context, month string) ([]domain.SoldGroup, error) {
	resolved, err := domain.ResolveMonth(month)
	if err != nil {
		return nil, err
	}

	return s.transactionRepo.CountBySoldByMonth(ctx, resolved)
}

// MonthlyReport combina estatísticas, barras e pizza do mês em uma única
// resposta, buscando os três agregados em paralelo.
func (s *Service) MonthlyReport(ctx context.Context, month string) (*domain.MonthlyReport, error) {
	resolved, err := domain.ResolveMonth(month)
	if err != nil {
		return nil, err
	}

	report := &domain.MonthlyReport{}
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		statistics, err := s.transactionRepo.StatisticsByMonth(groupCtx, resolved)
		if err != nil {
			return err
		}
		statistics.TotalSales = utils.RoundWithTwoDecimalPlace(statistics.TotalSales)
		report.Statistics = statistics
		return nil
	})

	group.Go(func() error {
		histogram, err := s.transactionRepo.PriceHistogramByMonth(groupCtx, resolved)
		if err != nil {
			return err
		}
		report.BarChart = domain.FillPriceBuckets(histogram)
		return nil
	})

	group.Go(func() error {
		groups, err := s.transactionRepo.CountBySoldByMonth(groupCtx, resolved)
		if err != nil {
			return err
		}
		report.PieChart = groups
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return report, nil
}
