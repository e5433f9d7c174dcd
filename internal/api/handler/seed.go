package handler

import (
	"net/http"

	"github.com/vfg2006/transactions-dashboard-api/internal/usecases/seeding"
	"github.com/vfg2006/transactions-dashboard-api/pkg/log"
)

type seedResponse struct {
	InitializedCount int `json:"initializedCount"`
}

// SeedTransactions importa o feed externo substituindo todas as
// transações. Operação administrativa; só uma execução por vez.
func SeedTransactions(service seeding.Seeder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("seed: iniciando importação do feed")

		count, err := service.Initialize(r.Context())
		if err != nil {
			logger.WithError(err).Error("seed: erro na importação do feed")
			writeServiceError(w, err)
			return
		}

		logger.WithField("initialized_count", count).Info("seed: importação concluída")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(seedResponse{InitializedCount: count}); err != nil {
			logger.WithError(err).Error("seed: erro ao codificar resposta")
		}
	})
}
