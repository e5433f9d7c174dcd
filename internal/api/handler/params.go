package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/transactions-dashboard-api/internal/config"
	"github.com/vfg2006/transactions-dashboard-api/internal/domain"
	"github.com/vfg2006/transactions-dashboard-api/internal/usecases/seeding"
	"github.com/vfg2006/transactions-dashboard-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// monthParam lê o parâmetro month aplicando o default configurado.
// O default é o mesmo para todos os endpoints que recebem mês.
func monthParam(r *http.Request, cfg *config.Config) string {
	month := r.URL.Query().Get("month")
	if month == "" {
		return cfg.Query.DefaultMonth
	}
	return month
}

// intParam lê um parâmetro numérico positivo, caindo no fallback quando
// ausente ou inválido.
func intParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}

	return value
}

// writeServiceError mapeia erros dos usecases para os códigos da API
func writeServiceError(w http.ResponseWriter, err error) {
	var invalidMonth *domain.InvalidMonthError

	switch {
	case errors.As(err, &invalidMonth):
		apiErrors.WriteError(w, apiErrors.ErrInvalidMonth, "Nome de mês não reconhecido", invalidMonth.Name)
	case errors.Is(err, seeding.ErrSeedInProgress):
		apiErrors.WriteError(w, apiErrors.ErrSeedInProgress, "Já existe uma importação do seed em andamento", nil)
	case errors.Is(err, seeding.ErrSeedSourceUnreachable):
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar o feed de transações", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar o banco de dados", nil)
	}
}
