package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveMonth(t *testing.T) {
	valid := map[string]time.Month{
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

	for name, expected := range valid {
		t.Run(name, func(t *testing.T) {
			month, err := ResolveMonth(name)
			assert.NoError(t, err)
			assert.Equal(t, expected, month)
		})
	}
}

func TestResolveMonth_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Nome com erro de digitação", input: "Marchh"},
		{name: "Caixa baixa é rejeitada", input: "march"},
		{name: "Abreviação é rejeitada", input: "Mar"},
		{name: "Número não é nome de mês", input: "3"},
		{name: "Vazio", input: ""},
		{name: "Espaços ao redor não são normalizados", input: " March "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveMonth(tt.input)
			assert.Error(t, err)

			var invalidMonth *InvalidMonthError
			assert.ErrorAs(t, err, &invalidMonth)
			assert.Equal(t, tt.input, invalidMonth.Name)
		})
	}
}
