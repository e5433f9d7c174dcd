package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/transactions-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/transactions-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_Statistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepository(ctrl)
	service := NewService(mockRepo)

	ctx := context.Background()

	t.Run("Mês com uma venda de 150 vendida", func(t *testing.T) {
		mockRepo.EXPECT().
			StatisticsByMonth(gomock.Any(), time.March).
			Return(&domain.Statistics{TotalSales: 150, TotalSoldItems: 1, TotalNotSoldItems: 0}, nil)

		statistics, err := service.Statistics(ctx, "March")
		assert.NoError(t, err)
		assert.Equal(t, 150.0, statistics.TotalSales)
		assert.Equal(t, 1, statistics.TotalSoldItems)
		assert.Equal(t, 0, statistics.TotalNotSoldItems)
	})

	t.Run("Total de vendas é arredondado para duas casas", func(t *testing.T) {
		mockRepo.EXPECT().
			StatisticsByMonth(gomock.Any(), time.June).
			Return(&domain.Statistics{TotalSales: 1234.5678, TotalSoldItems: 3, TotalNotSoldItems: 2}, nil)

		statistics, err := service.Statistics(ctx, "June")
		assert.NoError(t, err)
		assert.Equal(t, 1234.57, statistics.TotalSales)
	})

	t.Run("Mês sem transações devolve zeros", func(t *testing.T) {
		mockRepo.EXPECT().
			StatisticsByMonth(gomock.Any(), time.December).
			Return(&domain.Statistics{}, nil)

		statistics, err := service.Statistics(ctx, "December")
		assert.NoError(t, err)
		assert.Equal(t, &domain.Statistics{}, statistics)
	})

	t.Run("Mês inválido falha sem consultar o banco", func(t *testing.T) {
		_, err := service.Statistics(ctx, "Marchh")

		var invalidMonth *domain.InvalidMonthError
		assert.ErrorAs(t, err, &invalidMonth)
		assert.Equal(t, "Marchh", invalidMonth.Name)
	})
}

func TestService_BarChart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepository(ctrl)
	service := NewService(mockRepo)

	ctx := context.Background()

	t.Run("Uma venda de 150 cai na faixa 100-200 e o resto fica zerado", func(t *testing.T) {
		mockRepo.EXPECT().
			PriceHistogramByMonth(gomock.Any(), time.March).
			Return(map[int]int{1: 1}, nil)

		buckets, err := service.BarChart(ctx, "March")
		assert.NoError(t, err)
		assert.Len(t, buckets, domain.PriceBucketCount+1)

		for i, bucket := range buckets {
			if i == 1 {
				assert.Equal(t, domain.PriceBucket{Range: "100-200", Count: 1}, bucket)
				continue
			}
			assert.Equal(t, 0, bucket.Count)
		}
	})

	t.Run("Soma das faixas bate com o total de transações do mês", func(t *testing.T) {
		mockRepo.EXPECT().
			PriceHistogramByMonth(gomock.Any(), time.July).
			Return(map[int]int{0: 2, 4: 3, domain.PriceBucketOverflow: 5}, nil)

		buckets, err := service.BarChart(ctx, "July")
		assert.NoError(t, err)

		total := 0
		for _, bucket := range buckets {
			total += bucket.Count
		}
		assert.Equal(t, 10, total)
	})

	t.Run("Mês inválido falha sem consultar o banco", func(t *testing.T) {
		_, err := service.BarChart(ctx, "Julyy")

		var invalidMonth *domain.InvalidMonthError
		assert.ErrorAs(t, err, &invalidMonth)
	})
}

func TestService_PieChart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepository(ctrl)
	service := NewService(mockRepo)

	ctx := context.Background()

	t.Run("Só grupos observados aparecem", func(t *testing.T) {
		mockRepo.EXPECT().
			CountBySoldByMonth(gomock.Any(), time.March).
			Return([]domain.SoldGroup{{Sold: true, Count: 1}}, nil)

		groups, err := service.PieChart(ctx, "March")
		assert.NoError(t, err)
		assert.Equal(t, []domain.SoldGroup{{Sold: true, Count: 1}}, groups)
	})

	t.Run("Mês inválido falha sem consultar o banco", func(t *testing.T) {
		_, err := service.PieChart(ctx, "janeiro")

		var invalidMonth *domain.InvalidMonthError
		assert.ErrorAs(t, err, &invalidMonth)
	})
}

func TestService_MonthlyReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepository(ctrl)
	service := NewService(mockRepo)

	ctx := context.Background()

	t.Run("Relatório combina os três agregados", func(t *testing.T) {
		mockRepo.EXPECT().
			StatisticsByMonth(gomock.Any(), time.March).
			Return(&domain.Statistics{TotalSales: 150, TotalSoldItems: 1}, nil)
		mockRepo.EXPECT().
			PriceHistogramByMonth(gomock.Any(), time.March).
			Return(map[int]int{1: 1}, nil)
		mockRepo.EXPECT().
			CountBySoldByMonth(gomock.Any(), time.March).
			Return([]domain.SoldGroup{{Sold: true, Count: 1}}, nil)

		report, err := service.MonthlyReport(ctx, "March")
		assert.NoError(t, err)
		assert.Equal(t, 150.0, report.Statistics.TotalSales)
		assert.Len(t, report.BarChart, domain.PriceBucketCount+1)
		assert.Equal(t, 1, report.BarChart[1].Count)
		assert.Equal(t, []domain.SoldGroup{{Sold: true, Count: 1}}, report.PieChart)
	})

	t.Run("Erro em um agregado derruba o relatório inteiro", func(t *testing.T) {
		mockRepo.EXPECT().
			StatisticsByMonth(gomock.Any(), time.May).
			Return(nil, assert.AnError)
		mockRepo.EXPECT().
			PriceHistogramByMonth(gomock.Any(), time.May).
			Return(map[int]int{}, nil).
			AnyTimes()
		mockRepo.EXPECT().
			CountBySoldByMonth(gomock.Any(), time.May).
			Return(nil, nil).
			AnyTimes()

		report, err := service.MonthlyReport(ctx, "May")
		assert.Error(t, err)
		assert.Nil(t, report)
	})

	t.Run("Mês inválido falha sem consultar o banco", func(t *testing.T) {
		_, err := service.MonthlyReport(ctx, "Smarch")

		var invalidMonth *domain.InvalidMonthError
		assert.ErrorAs(t, err, &invalidMonth)
	})
}
