package seedsource

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/transactions-dashboard-api/internal/config"
)

func newTestClient(url string) Client {
	return NewClient(&config.Config{
		SeedSource: config.SeedSource{
			URL:            url,
			TimeoutSeconds: 5,
		},
	})
}

func TestPrice_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected float64
		wantErr  bool
	}{
		{name: "Número", payload: `{"price": 329.85}`, expected: 329.85},
		{name: "String numérica", payload: `{"price": "114"}`, expected: 114},
		{name: "Nulo vira zero", payload: `{"price": null}`, expected: 0},
		{name: "String vazia vira zero", payload: `{"price": ""}`, expected: 0},
		{name: "String não numérica", payload: `{"price": "abc"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item SourceItem
			err := json.Unmarshal([]byte(tt.payload), &item)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, float64(item.Price))
		})
	}
}

func TestSeedSourceClient_FetchTransactions(t *testing.T) {
	t.Run("Feed válido é decodificado", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[
				{"title":"Widget","description":"Small widget","price":150,"category":"tools","sold":true,"dateOfSale":"2022-03-15T00:00:00Z","image":"https://example.com/w.png"},
				{"title":"Gadget","price":"99.9","dateOfSale":"2021-11-27"}
			]`))
		}))
		defer server.Close()

		items, err := newTestClient(server.URL).FetchTransactions()
		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, "Widget", items[0].Title)
		assert.True(t, items[0].Sold)
		assert.Equal(t, 99.9, float64(items[1].Price))
		assert.False(t, items[1].Sold)
	})

	t.Run("Status diferente de 200 falha", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).FetchTransactions()
		assert.Error(t, err)
	})

	t.Run("Resposta que não é um array falha", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"message":"not an array"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).FetchTransactions()
		assert.Error(t, err)
	})
}
