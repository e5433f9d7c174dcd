package handler

import (
	"net/http"

	"github.com/vfg2006/transactions-dashboard-api/internal/config"
	"github.com/vfg2006/transactions-dashboard-api/internal/usecases/browsing"
	"github.com/vfg2006/transactions-dashboard-api/pkg/log"
)

// ListTransactions lista as transações do mês com busca e paginação
func ListTransactions(service browsing.TransactionBrowser, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		perPage := intParam(r, "per_page", cfg.Query.PerPage)
		if perPage > cfg.Query.MaxPerPage {
			perPage = cfg.Query.MaxPerPage
		}

		params := browsing.ListParams{
			Month:   monthParam(r, cfg),
			Page:    intParam(r, "page", cfg.Query.DefaultPage),
			PerPage: perPage,
			Search:  r.URL.Query().Get("search"),
		}

		logger.WithFields(log.Fields{
			"month":    params.Month,
			"page":     params.Page,
			"per_page": params.PerPage,
			"search":   params.Search,
		}).Info("transactions: listando transações")

		page, err := service.ListTransactions(r.Context(), params)
		if err != nil {
			logger.WithError(err).WithField("month", params.Month).
				Error("transactions: erro ao listar transações")
			writeServiceError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"month": params.Month,
			"total": page.Total,
		}).Info("transactions: listagem concluída")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(page); err != nil {
			logger.WithError(err).Error("transactions: erro ao codificar resposta")
		}
	})
}
