package handler

import (
	"net/http"

	"github.com/vfg2006/transactions-dashboard-api/internal/config"
	"github.com/vfg2006/transactions-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/transactions-dashboard-api/pkg/log"
)

// GetStatistics retorna o total de vendas e as contagens de itens
// vendidos e não vendidos do mês
func GetStatistics(service reporting.Reporter, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		month := monthParam(r, cfg)

		statistics, err := service.Statistics(r.Context(), month)
		if err != nil {
			logger.WithError(err).WithField("month", month).
				Error("statistics: erro ao agregar estatísticas")
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(statistics); err != nil {
			logger.WithError(err).Error("statistics: erro ao codificar resposta")
		}
	})
}

// GetBarChart retorna as faixas de preço do mês para o gráfico de barras
func GetBarChart(service reporting.Reporter, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		month := monthParam(r, cfg)

		buckets, err := service.BarChart(r.Context(), month)
		if err != nil {
			logger.WithError(err).WithField("month", month).
				Error("bar-chart: erro ao montar histograma")
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(buckets); err != nil {
			logger.WithError(err).Error("bar-chart: erro ao codificar resposta")
		}
	})
}

// GetPieChart retorna os grupos vendido/não vendido do mês
func GetPieChart(service reporting.Reporter, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		month := monthParam(r, cfg)

		groups, err := service.PieChart(r.Context(), month)
		if err != nil {
			logger.WithError(err).WithField("month", month).
				Error("pie-chart: erro ao agrupar transações")
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(groups); err != nil {
			logger.WithError(err).Error("pie-chart: erro ao codificar resposta")
		}
	})
}

// GetMonthlyReport retorna estatísticas, barras e pizza do mês em uma
// única resposta, para o dashboard montar a tela com uma requisição
func GetMonthlyReport(service reporting.Reporter, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		month := monthParam(r, cfg)

		logger.WithField("month", month).Info("report: montando relatório combinado")

		report, err := service.MonthlyReport(r.Context(), month)
		if err != nil {
			logger.WithError(err).WithField("month", month).
				Error("report: erro ao montar relatório combinado")
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("report: erro ao codificar resposta")
		}
	})
}
