package browsing

import (
	"context"

	"github.com/vfg2006/transactions-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/transactions-dashboard-api/internal/domain"
)

// ListParams são os parâmetros já normalizados da listagem. Month é o nome
// completo do mês em inglês; a borda HTTP aplica os defaults antes de
// chegar aqui.
type ListParams struct {
	Month   string
	Page    int
	PerPage int
	Search  string
}

type TransactionBrowser interface {
	ListTransactions(ctx context.Context, params ListParams) (*domain.TransactionPage, error)
}

type Service struct {
	transactionRepo repository.TransactionRepository
}

func NewService(transactionRepo repository.TransactionRepository) TransactionBrowser {
	return &Service{
		transactionRepo: transactionRepo,
	}
}

// ListTransactions devolve a página pedida das transações cujo mês da data
// de venda (em qualquer ano) é o mês informado e cujo título ou descrição
// contém o termo de busca. O total é contado pelo mesmo predicado,
// independente da paginação.
func (s *Service) ListTransactions(ctx context.Context, params ListParams) (*domain.TransactionPage, error) {
	month, err := domain.ResolveMonth(params.Month)
	if err != nil {
		return nil, err
	}

	page := params.Page
	if page < 1 {
		page = 1
	}

	perPage := params.PerPage
	if perPage < 1 {
		perPage = 1
	}

	filters := &domain.TransactionFilters{
		Month:  month,
		Search: params.Search,
		Offset: (page - 1) * perPage,
		Limit:  perPage,
	}

	transactions, err := s.transactionRepo.FindByMonth(ctx, filters)
	if err != nil {
		return nil, err
	}

	total, err := s.transactionRepo.CountByMonth(ctx, filters)
	if err != nil {
		return nil, err
	}

	return &domain.TransactionPage{
		Transactions: transactions,
		Total:        total,
		Page:         page,
		PerPage:      perPage,
		TotalPages:   (total + perPage - 1) / perPage,
	}, nil
}
