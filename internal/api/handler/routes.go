package handler

import (
	"net/http"

	"github.com/vfg2006/transactions-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/transactions-dashboard-api/internal/config"
	"github.com/vfg2006/transactions-dashboard-api/internal/scheduler"
	"github.com/vfg2006/transactions-dashboard-api/internal/usecases/browsing"
	"github.com/vfg2006/transactions-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/transactions-dashboard-api/internal/usecases/seeding"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Transactions(service browsing.TransactionBrowser, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/transactions",
			Method:  http.MethodGet,
			Handler: ListTransactions(service, cfg),
		},
	}
}

func Reports(service reporting.Reporter, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/transactions/statistics",
			Method:  http.MethodGet,
			Handler: GetStatistics(service, cfg),
		},
		{
			Path:    "/v1/transactions/bar-chart",
			Method:  http.MethodGet,
			Handler: GetBarChart(service, cfg),
		},
		{
			Path:    "/v1/transactions/pie-chart",
			Method:  http.MethodGet,
			Handler: GetPieChart(service, cfg),
		},
		{
			Path:    "/v1/transactions/report",
			Method:  http.MethodGet,
			Handler: GetMonthlyReport(service, cfg),
		},
	}
}

func Seed(service seeding.Seeder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/transactions/seed",
			Method:  http.MethodPost,
			Handler: SeedTransactions(service),
		},
	}
}

func Cron(service *scheduler.SeedSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(service),
		},
	}
}
