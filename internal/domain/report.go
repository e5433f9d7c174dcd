package domain

import "fmt"

const (
	// PriceBucketWidth é a largura de cada faixa de preço do gráfico de barras.
	PriceBucketWidth = 100

	// PriceBucketCount é a quantidade de faixas numéricas antes do overflow.
	PriceBucketCount = 10

	// PriceBucketOverflow é o índice da faixa de overflow (preço >= 1000).
	PriceBucketOverflow = PriceBucketCount
)

// Statistics agrega as vendas de um mês (em todos os anos).
type Statistics struct {
	TotalSales        float64 `json:"totalSales"`
	TotalSoldItems    int     `json:"totalSoldItems"`
	TotalNotSoldItems int     `json:"totalNotSoldItems"`
}

// PriceBucket é uma faixa de preço do gráfico de barras com a contagem
// de transações cujo preço cai na faixa [min, max).
type PriceBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// SoldGroup é um grupo do gráfico de pizza: transações vendidas ou não.
type SoldGroup struct {
	Sold  bool `json:"sold"`
	Count int  `json:"count"`
}

// MonthlyReport combina os três agregados de um mês em uma única resposta.
type MonthlyReport struct {
	Statistics *Statistics   `json:"statistics"`
	BarChart   []PriceBucket `json:"barChart"`
	PieChart   []SoldGroup   `json:"pieChart"`
}

// PriceBucketLabel devolve o rótulo da faixa de índice i (0 = "0-100").
// O índice PriceBucketOverflow vira o rótulo da faixa aberta final.
func PriceBucketLabel(i int) string {
	if i >= PriceBucketOverflow {
		return fmt.Sprintf("%d-above", PriceBucketCount*PriceBucketWidth)
	}
	return fmt.Sprintf("%d-%d", i*PriceBucketWidth, (i+1)*PriceBucketWidth)
}

// FillPriceBuckets materializa o histograma esparso vindo do banco em todas
// as faixas configuradas, preenchendo com zero as que não têm transações.
// A ordem segue as faixas numéricas, com o overflow por último.
func FillPriceBuckets(counts map[int]int) []PriceBucket {
	buckets := make([]PriceBucket, 0, PriceBucketCount+1)
	for i := 0; i <= PriceBucketOverflow; i++ {
		buckets = append(buckets, PriceBucket{
			Range: PriceBucketLabel(i),
			Count: counts[i],
		})
	}
	return buckets
}
