package seedsource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Price tolera o formato irregular do feed: preço numérico ou string
// numérica. Valores nulos viram zero.
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		*p = 0
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("preço inválido no feed: %q", raw)
	}

	*p = Price(value)
	return nil
}

// SourceItem é um item cru do feed, antes da transformação do seed.
// A flag sold pode estar ausente no feed; ausente significa não vendido.
type SourceItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       Price  `json:"price"`
	Category    string `json:"category"`
	Sold        bool   `json:"sold"`
	DateOfSale  string `json:"dateOfSale"`
	Image       string `json:"image"`
}

func (c *SeedSourceClient) FetchTransactions() ([]SourceItem, error) {
	var items []SourceItem

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.SeedSource.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL do feed: %w", err)
	}

	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	// Verificar o código de status da resposta.
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição ao feed falhou com status: %s", resp.Status)
	}

	// Decodificar a resposta JSON.
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta do feed: %w", err)
	}

	return items, nil
}
