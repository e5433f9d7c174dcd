package seeding

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/transactions-dashboard-api/infrastructure/integrator/seedsource"
	sourcemocks "github.com/vfg2006/transactions-dashboard-api/infrastructure/integrator/seedsource/mocks"
	"github.com/vfg2006/transactions-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/transactions-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_Initialize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := sourcemocks.NewMockClient(ctrl)
	mockRepo := mocks.NewMockTransactionRepository(ctrl)
	service := NewService(mockSource, mockRepo)

	ctx := context.Background()

	t.Run("Importa o feed transformando os itens", func(t *testing.T) {
		mockSource.EXPECT().
			FetchTransactions().
			Return([]seedsource.SourceItem{
				{
					Title:       "Widget",
					Description: "Small widget",
					Price:       150,
					Category:    "tools",
					Sold:        true,
					DateOfSale:  "2022-03-15T00:00:00Z",
					Image:       "https://example.com/widget.png",
				},
				{
					Title:      "Gadget",
					Price:      999.99,
					DateOfSale: "2021-11-27",
					// sold ausente no feed: não vendido
				},
			}, nil)

		mockRepo.EXPECT().
			ReplaceAll(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, transactions []*domain.Transaction) (int, error) {
				assert.Len(t, transactions, 2)

				widget := transactions[0]
				assert.NotEmpty(t, widget.ID)
				assert.Equal(t, "Widget", widget.Title)
				assert.Equal(t, 150.0, widget.Price)
				assert.True(t, widget.Sold)
				assert.Equal(t, time.March, widget.DateOfSale.Month())

				gadget := transactions[1]
				assert.NotEmpty(t, gadget.ID)
				assert.NotEqual(t, widget.ID, gadget.ID)
				assert.False(t, gadget.Sold)
				assert.Equal(t, time.November, gadget.DateOfSale.Month())

				return len(transactions), nil
			})

		count, err := service.Initialize(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("Falha no feed não toca o banco", func(t *testing.T) {
		mockSource.EXPECT().
			FetchTransactions().
			Return(nil, assert.AnError)

		count, err := service.Initialize(ctx)
		assert.Equal(t, 0, count)
		assert.True(t, errors.Is(err, ErrSeedSourceUnreachable))
	})

	t.Run("Itens inválidos são descartados sem derrubar a carga", func(t *testing.T) {
		mockSource.EXPECT().
			FetchTransactions().
			Return([]seedsource.SourceItem{
				{Title: "Data inválida", Price: 10, DateOfSale: "15/03/2022"},
				{Title: "Preço negativo", Price: -5, DateOfSale: "2022-03-15"},
				{Title: "Válido", Price: 10, DateOfSale: "2022-03-15"},
			}, nil)

		mockRepo.EXPECT().
			ReplaceAll(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, transactions []*domain.Transaction) (int, error) {
				assert.Len(t, transactions, 1)
				assert.Equal(t, "Válido", transactions[0].Title)
				return 1, nil
			})

		count, err := service.Initialize(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Erro do banco é propagado", func(t *testing.T) {
		mockSource.EXPECT().
			FetchTransactions().
			Return([]seedsource.SourceItem{
				{Title: "Widget", Price: 1, DateOfSale: "2022-03-15"},
			}, nil)

		mockRepo.EXPECT().
			ReplaceAll(ctx, gomock.Any()).
			Return(0, assert.AnError)

		count, err := service.Initialize(ctx)
		assert.Equal(t, 0, count)
		assert.Error(t, err)
		assert.False(t, errors.Is(err, ErrSeedSourceUnreachable))
	})
}

func TestParseSaleDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "RFC3339", input: "2022-03-15T10:30:00Z", wantErr: false},
		{name: "Somente data", input: "2022-03-15", wantErr: false},
		{name: "Formato brasileiro não é aceito", input: "15/03/2022", wantErr: true},
		{name: "Vazio", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSaleDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
