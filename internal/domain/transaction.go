package domain

import "time"

// Transaction representa um registro de venda de produto carregado pelo seed.
// O registro é imutável depois do seed: o serviço só faz leitura.
type Transaction struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Sold        bool      `json:"sold"`
	DateOfSale  time.Time `json:"dateOfSale"`
	Image       string    `json:"image"`
}

// TransactionFilters são os filtros aplicados na listagem de transações.
// Month filtra pelo mês da data de venda, ignorando o ano.
type TransactionFilters struct {
	Month  time.Month
	Search string
	Offset int
	Limit  int
}

// TransactionPage é uma página de transações com o total de registros
// que casam com o filtro, independente da paginação.
type TransactionPage struct {
	Transactions []*Transaction `json:"transactions"`
	Total        int            `json:"total"`
	Page         int            `json:"page"`
	PerPage      int            `json:"perPage"`
	TotalPages   int            `json:"totalPages"`
}
