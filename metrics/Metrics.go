// Package metrics implements summary statistics for collections of
// episodic returns
package metrics

import (
	"fmt"
	"sort"

	"github.com/samuelfneumann/gorollout/utils/floatutils"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the summary statistics of a collection of episodic
// returns. StdDev is the population standard deviation, since the
// returns are the complete evaluation rather than a sample of it.
type Summary struct {
	Mean   float64
	StdDev float64
	Median float64
	IQM    float64
	Min    float64
	Max    float64
}

// Summarize computes the summary statistics of the argument returns
func Summarize(returns []float64) (Summary, error) {
	if len(returns) == 0 {
		return Summary{}, fmt.Errorf("summarize: no returns to " +
			"summarize")
	}

	sorted := append([]float64{}, returns...)
	sort.Float64s(sorted)

	return Summary{
		Mean:   stat.Mean(returns, nil),
		StdDev: stat.PopStdDev(returns, nil),
		Median: median(sorted),
		IQM:    interquartileMean(sorted),
		Min:    floatutils.Min(returns...),
		Max:    floatutils.Max(returns...),
	}, nil
}

// median returns the median of sorted data, averaging the two middle
// values when the length is even
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// interquartileMean returns the mean of the middle half of sorted
// data. The number of values dropped from each tail truncates
// downward, so collections of fewer than four values lose nothing.
func interquartileMean(sorted []float64) float64 {
	drop := len(sorted) / 4
	return stat.Mean(sorted[drop:len(sorted)-drop], nil)
}

// String returns the Summary in printable form, one statistic per
// line
func (s Summary) String() string {
	return fmt.Sprintf("mean: %.2f\nstd: %.2f\nmedian: %.2f\niqm: %.2f",
		s.Mean, s.StdDev, s.Median, s.IQM)
}
