package benchsheet

import (
	"github.com/montanaflynn/stats"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"
)

// Summarize aggregates the latency columns of the appended rows.
// It returns nil when rows is empty.
func Summarize(rows []models.Row) *models.LatencySummary {
	if len(rows) == 0 {
		return nil
	}

	counts := make(stats.Float64Data, 0, len(rows))
	averages := make(stats.Float64Data, 0, len(rows))
	shortest := make(stats.Float64Data, 0, len(rows))
	longest := make(stats.Float64Data, 0, len(rows))
	p99 := make(stats.Float64Data, 0, len(rows))
	for _, r := range rows {
		counts = append(counts, r.Count.InexactFloat64())
		averages = append(averages, r.Average.InexactFloat64())
		shortest = append(shortest, r.Shortest.InexactFloat64())
		longest = append(longest, r.Longest.InexactFloat64())
		p99 = append(p99, r.P99.InexactFloat64())
	}

	// stats only errors on empty input.
	total, _ := counts.Sum()
	mean, _ := averages.Mean()
	median, _ := averages.Median()
	minShortest, _ := shortest.Min()
	maxLongest, _ := longest.Max()
	maxP99, _ := p99.Max()

	return &models.LatencySummary{
		Rows:          len(rows),
		TotalRequests: total,
		MeanAverage:   mean,
		MedianAverage: median,
		MinShortest:   minShortest,
		MaxLongest:    maxLongest,
		MaxP99:        maxP99,
	}
}
