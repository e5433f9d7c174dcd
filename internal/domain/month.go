package domain

import (
	"fmt"
	"time"
)

// monthsByName mapeia os doze nomes completos de mês em inglês.
// O mapeamento é explícito de propósito: parsing de data dependente de
// locale aceitava entradas inesperadas e rejeitava outras conforme o host.
var monthsByName = map[string]time.Month{
	"January":   time.January,
	"February":  time.February,
	"March":     time.March,
	"April":     time.April,
	"May":       time.May,
	"June":      time.June,
	"July":      time.July,
	"August":    time.August,
	"September": time.September,
	"October":   time.October,
	"November":  time.November,
	"December":  time.December,
}

// InvalidMonthError indica que o nome de mês informado não é um dos doze
// nomes canônicos. Carrega o valor recebido para diagnóstico.
type InvalidMonthError struct {
	Name string
}

func (e *InvalidMonthError) Error() string {
	return fmt.Sprintf("invalid month name: %q", e.Name)
}

// ResolveMonth converte um nome de mês ("January".."December") para
// time.Month. Nomes abreviados ou com caixa diferente são rejeitados.
func ResolveMonth(name string) (time.Month, error) {
	month, ok := monthsByName[name]
	if !ok {
		return 0, &InvalidMonthError{Name: name}
	}
	return month, nil
}
