package seedsource

import (
	"net/http"
	"time"

	"github.com/vfg2006/transactions-dashboard-api/internal/config"
)

type Client interface {
	FetchTransactions() ([]SourceItem, error)
}

type SeedSourceClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria o cliente do feed externo de transações.
func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.SeedSource.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &SeedSourceClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
