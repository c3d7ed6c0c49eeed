package metrics

import (
	"folio/internal/domain"

	"github.com/montanaflynn/stats"
)

// ReturnVolatility is the sample standard deviation of
// period returns. Fewer than two periods have no spread
func ReturnVolatility(periods []domain.PerformanceSnapshot) (float64, error) {
	if len(periods) < 2 {
		return 0, nil
	}
	returns := make(stats.Float64Data, 0, len(periods))
	for _, p := range periods {
		returns = append(returns, p.Performance().InexactFloat64())
	}
	return stats.StandardDeviationSample(returns)
}
