package seeding

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transactions-dashboard-api/infrastructure/integrator/seedsource"
	"github.com/vfg2006/transactions-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/transactions-dashboard-api/internal/domain"
	"github.com/vfg2006/transactions-dashboard-api/pkg/utils"
)

// Formatos de data aceitos no campo dateOfSale do feed
var saleDateLayouts = []string{
	time.RFC3339,
	time.DateOnly,
}

type Seeder interface {
	Initialize(ctx context.Context) (int, error)
}

type Service struct {
	sourceClient    seedsource.Client
	transactionRepo repository.TransactionRepository
	seedMutex       sync.Mutex
}

func NewService(
	sourceClient seedsource.Client,
	transactionRepo repository.TransactionRepository,
) Seeder {
	return &Service{
		sourceClient:    sourceClient,
		transactionRepo: transactionRepo,
	}
}

// Initialize busca o feed externo, transforma os itens e substitui todas as
// transações do banco pelo lote novo, tudo dentro de uma transação SQL.
// Se o fetch falhar, o banco não é tocado. Devolve o total inserido.
func (s *Service) Initialize(ctx context.Context) (int, error) {
	if !s.seedMutex.TryLock() {
		return 0, ErrSeedInProgress
	}
	defer s.seedMutex.Unlock()

	startTime := time.Now()
	logrus.Info("Iniciando importação do feed de transações")

	items, err := s.sourceClient.FetchTransactions()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSeedSourceUnreachable, err)
	}

	transactions, skipped := s.transform(items)
	if skipped > 0 {
		logrus.WithFields(logrus.Fields{
			"received": len(items),
			"skipped":  skipped,
		}).Warn("Itens do feed descartados por dados inválidos")
	}

	count, err := s.transactionRepo.ReplaceAll(ctx, transactions)
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"inserted": count,
		"elapsed":  time.Since(startTime).String(),
	}).Info("Importação do feed concluída")

	return count, nil
}

// transform converte os itens crus do feed em transações: identificador
// novo, preço não negativo e data de venda válida. Itens fora dessas
// regras são descartados.
func (s *Service) transform(items []seedsource.SourceItem) ([]*domain.Transaction, int) {
	transactions := make([]*domain.Transaction, 0, len(items))
	skipped := 0

	for i, item := range items {
		id, err := utils.GenerateID()
		if err != nil {
			logrus.WithError(err).WithField("index", i).Warn("Erro ao gerar identificador, item descartado")
			skipped++
			continue
		}

		if item.Price < 0 {
			logrus.WithFields(logrus.Fields{
				"index": i,
				"title": item.Title,
			}).Warn("Preço negativo no feed, item descartado")
			skipped++
			continue
		}

		dateOfSale, err := parseSaleDate(item.DateOfSale)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"index":        i,
				"date_of_sale": item.DateOfSale,
			}).Warn("Data de venda inválida no feed, item descartado")
			skipped++
			continue
		}

		transactions = append(transactions, &domain.Transaction{
			ID:          id,
			Title:       item.Title,
			Description: item.Description,
			Price:       float64(item.Price),
			Category:    item.Category,
			Sold:        item.Sold,
			DateOfSale:  dateOfSale,
			Image:       item.Image,
		})
	}

	return transactions, skipped
}

func parseSaleDate(value string) (time.Time, error) {
	for _, layout := range saleDateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("data de venda fora dos formatos aceitos: %q", value)
}
