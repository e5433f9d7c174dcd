package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/transactions-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/transactions-dashboard-api/internal/domain"
)

const (
	transactionsTable   = "transactions t"
	transactionsColumns = "t.id, t.title, t.description, t.price, t.category, t.sold, t.date_of_sale, t.image"

	// Tamanho máximo de cada INSERT na carga do seed
	insertBatchSize = 500
)

type TransactionRepository interface {
	FindByMonth(ctx context.Context, filters *domain.TransactionFilters) ([]*domain.Transaction, error)
	CountByMonth(ctx context.Context, filters *domain.TransactionFilters) (int, error)
	StatisticsByMonth(ctx context.Context, month time.Month) (*domain.Statistics, error)
	PriceHistogramByMonth(ctx context.Context, month time.Month) (map[int]int, error)
	CountBySoldByMonth(ctx context.Context, month time.Month) ([]domain.SoldGroup, error)
	ReplaceAll(ctx context.Context, transactions []*domain.Transaction) (int, error)
}

type transactionRepository struct {
	conn *postgres.Connection
}

func NewTransactionRepository(conn *postgres.Connection) TransactionRepository {
	return &transactionRepository{
		conn: conn,
	}
}

// monthPredicate filtra pelo mês da data de venda em qualquer ano.
// O índice idx_transactions_sale_month cobre exatamente esta expressão.
func monthPredicate(month time.Month) squirrel.Sqlizer {
	return squirrel.Expr("EXTRACT(MONTH FROM t.date_of_sale) = ?", int(month))
}

// searchPredicate casa o termo em título OU descrição, sem diferenciar
// caixa. Termo vazio vira ILIKE '%%', que casa com tudo.
func searchPredicate(search string) squirrel.Sqlizer {
	pattern := "%" + search + "%"
	return squirrel.Or{
		squirrel.ILike{"t.title": pattern},
		squirrel.ILike{"t.description": pattern},
	}
}

func (r *transactionRepository) FindByMonth(ctx context.Context, filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	query, args, err := squirrel.
		Select(transactionsColumns).
		From(transactionsTable).
		Where(monthPredicate(filters.Month)).
		Where(searchPredicate(filters.Search)).
		OrderBy("t.date_of_sale ASC", "t.id ASC").
		Offset(uint64(filters.Offset)).
		Limit(uint64(filters.Limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		transaction, err := r.scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear transação: %w", err)
		}
		transactions = append(transactions, transaction)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return transactions, nil
}

func (r *transactionRepository) CountByMonth(ctx context.Context, filters *domain.TransactionFilters) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(transactionsTable).
		Where(monthPredicate(filters.Month)).
		Where(searchPredicate(filters.Search)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar transações: %w", err)
	}

	return total, nil
}

// StatisticsByMonth agrega soma de preços e contagens de vendidos/não
// vendidos em uma única passada pelo banco.
func (r *transactionRepository) StatisticsByMonth(ctx context.Context, month time.Month) (*domain.Statistics, error) {
	query, args, err := squirrel.
		Select(
			"COALESCE(SUM(t.price), 0)",
			"COUNT(*) FILTER (WHERE t.sold)",
			"COUNT(*) FILTER (WHERE NOT t.sold)",
		).
		From(transactionsTable).
		Where(monthPredicate(month)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	statistics := &domain.Statistics{}
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&statistics.TotalSales,
		&statistics.TotalSoldItems,
		&statistics.TotalNotSoldItems,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar estatísticas: %w", err)
	}

	return statistics, nil
}

// PriceHistogramByMonth devolve o histograma esparso de preços, indexado
// pela faixa (0 = [0,100), ..., domain.PriceBucketOverflow = preço >= 1000).
// Faixas sem transação não aparecem no mapa.
func (r *transactionRepository) PriceHistogramByMonth(ctx context.Context, month time.Month) (map[int]int, error) {
	bucketExpr := fmt.Sprintf(
		"width_bucket(t.price, 0, %d, %d) AS bucket",
		domain.PriceBucketCount*domain.PriceBucketWidth,
		domain.PriceBucketCount,
	)

	query, args, err := squirrel.
		Select(bucketExpr, "COUNT(*)").
		From(transactionsTable).
		Where(monthPredicate(month)).
		GroupBy("bucket").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	histogram := make(map[int]int)
	for rows.Next() {
		var bucket, count int
		if err := rows.Scan(&bucket, &count); err != nil {
			return nil, fmt.Errorf("erro ao escanear faixa de preço: %w", err)
		}

		// width_bucket devolve 1..N para as faixas e N+1 para overflow
		index := bucket - 1
		if index > domain.PriceBucketOverflow {
			index = domain.PriceBucketOverflow
		}
		histogram[index] += count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return histogram, nil
}

// CountBySoldByMonth agrupa as transações do mês pela flag sold. Só os
// grupos observados são devolvidos.
func (r *transactionRepository) CountBySoldByMonth(ctx context.Context, month time.Month) ([]domain.SoldGroup, error) {
	query, args, err := squirrel.
		Select("t.sold", "COUNT(*)").
		From(transactionsTable).
		Where(monthPredicate(month)).
		GroupBy("t.sold").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	groups := make([]domain.SoldGroup, 0, 2)
	for rows.Next() {
		var group domain.SoldGroup
		if err := rows.Scan(&group.Sold, &group.Count); err != nil {
			return nil, fmt.Errorf("erro ao escanear grupo: %w", err)
		}
		groups = append(groups, group)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return groups, nil
}

// ReplaceAll descarta todas as transações e insere o lote novo dentro de
// uma única transação SQL. Se qualquer passo falhar, o conjunto anterior
// permanece intacto e nenhum leitor observa o estado intermediário.
func (r *transactionRepository) ReplaceAll(ctx context.Context, transactions []*domain.Transaction) (int, error) {
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteQuery, deleteArgs, err := squirrel.
			Delete("transactions").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao limpar transações existentes: %w", err)
		}

		for start := 0; start < len(transactions); start += insertBatchSize {
			end := start + insertBatchSize
			if end > len(transactions) {
				end = len(transactions)
			}

			insert := squirrel.StatementBuilder.
				Insert("transactions").
				Columns("id", "title", "description", "price", "category", "sold", "date_of_sale", "image").
				PlaceholderFormat(squirrel.Dollar)

			for _, transaction := range transactions[start:end] {
				insert = insert.Values(
					transaction.ID,
					transaction.Title,
					transaction.Description,
					transaction.Price,
					transaction.Category,
					transaction.Sold,
					transaction.DateOfSale,
					transaction.Image,
				)
			}

			insertQuery, insertArgs, err := insert.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("erro ao inserir lote de transações: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(transactions), nil
}

func (r *transactionRepository) scanTransaction(rows *sql.Rows) (*domain.Transaction, error) {
	transaction := &domain.Transaction{}

	err := rows.Scan(
		&transaction.ID,
		&transaction.Title,
		&transaction.Description,
		&transaction.Price,
		&transaction.Category,
		&transaction.Sold,
		&transaction.DateOfSale,
		&transaction.Image,
	)
	if err != nil {
		return nil, err
	}

	return transaction, nil
}
