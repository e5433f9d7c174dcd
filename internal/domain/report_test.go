package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceBucketLabel(t *testing.T) {
	assert.Equal(t, "0-100", PriceBucketLabel(0))
	assert.Equal(t, "100-200", PriceBucketLabel(1))
	assert.Equal(t, "900-1000", PriceBucketLabel(9))
	assert.Equal(t, "1000-above", PriceBucketLabel(PriceBucketOverflow))
}

func TestFillPriceBuckets(t *testing.T) {
	t.Run("Histograma vazio gera todas as faixas zeradas", func(t *testing.T) {
		buckets := FillPriceBuckets(map[int]int{})

		assert.Len(t, buckets, PriceBucketCount+1)
		for _, bucket := range buckets {
			assert.Equal(t, 0, bucket.Count)
		}
	})

	t.Run("Faixas esparsas são preenchidas na ordem com overflow no fim", func(t *testing.T) {
		buckets := FillPriceBuckets(map[int]int{
			1:                   3,
			9:                   1,
			PriceBucketOverflow: 2,
		})

		assert.Len(t, buckets, PriceBucketCount+1)
		assert.Equal(t, PriceBucket{Range: "0-100", Count: 0}, buckets[0])
		assert.Equal(t, PriceBucket{Range: "100-200", Count: 3}, buckets[1])
		assert.Equal(t, PriceBucket{Range: "900-1000", Count: 1}, buckets[9])
		assert.Equal(t, PriceBucket{Range: "1000-above", Count: 2}, buckets[10])

		total := 0
		for _, bucket := range buckets {
			total += bucket.Count
		}
		assert.Equal(t, 6, total)
	})
}
