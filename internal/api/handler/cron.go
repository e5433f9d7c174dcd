package handler

import (
	"net/http"

	"github.com/vfg2006/transactions-dashboard-api/internal/scheduler"
	"github.com/vfg2006/transactions-dashboard-api/pkg/log"
)

// GetCronStatus retorna o estado do agendador de reimportação do seed
func GetCronStatus(service *scheduler.SeedSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.Status()); err != nil {
			logger.WithError(err).Error("cron: erro ao codificar resposta")
		}
	})
}
