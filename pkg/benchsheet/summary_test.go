package benchsheet

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"
)

func TestSummarize(t *testing.T) {
	assert.Nil(t, Summarize(nil))

	row := func(count, shortest, average, longest, p99 string) models.Row {
		return models.Row{
			Count:    decimal.RequireFromString(count),
			Shortest: decimal.RequireFromString(shortest),
			Average:  decimal.RequireFromString(average),
			Longest:  decimal.RequireFromString(longest),
			P99:      decimal.RequireFromString(p99),
		}
	}

	s := Summarize([]models.Row{
		row("1000", "2", "4", "30", "20"),
		row("500", "1", "8", "90", "60"),
		row("1500", "3", "6", "40", "25"),
	})
	require.NotNil(t, s)

	assert.Equal(t, 3, s.Rows)
	assert.Equal(t, 3000.0, s.TotalRequests)
	assert.InDelta(t, 6.0, s.MeanAverage, 1e-9)
	assert.InDelta(t, 6.0, s.MedianAverage, 1e-9)
	assert.Equal(t, 1.0, s.MinShortest)
	assert.Equal(t, 90.0, s.MaxLongest)
	assert.Equal(t, 60.0, s.MaxP99)
}
