package chart

import (
	"math"
	"sort"

	"github.com/uyouii/discrete-statistics/common"
	"github.com/uyouii/discrete-statistics/model"
	"github.com/uyouii/discrete-statistics/pmf"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// BarSeries flattens a PMF mapping into bar chart categories sorted
// ascending by value. The probabilities are passed through unrounded,
// rounding is the renderer's choice.
func BarSeries[T pmf.Number](pmfMap map[T]float64) []model.Bar {
	res := make([]model.Bar, 0, len(pmfMap))
	for v, p := range pmfMap {
		res = append(res, model.Bar{Value: float64(v), Height: p})
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Value < res[j].Value
	})
	return res
}

// Histogram bins the sample into binCount equal width bins spanning
// [min, max]. The counts sum to len(sample); the last bin includes the
// maximum. Density is count / (n * width), so the bin areas sum to 1.
func Histogram(sample []float64, binCount int) ([]model.HistogramBin, error) {
	if len(sample) == 0 || binCount < 1 {
		return nil, common.ErrorInvalidValue
	}

	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)

	min, max := sorted[0], sorted[len(sorted)-1]
	if min == max {
		// zero width bin, no meaningful density
		return []model.HistogramBin{{
			Lower: min,
			Upper: max,
			Count: len(sample),
		}}, nil
	}

	edges := floats.Span(make([]float64, binCount+1), min, max)

	// stat.Histogram requires the maximum value to fall strictly below the
	// highest divider, so the binning copy bumps it by one ulp
	dividers := make([]float64, len(edges))
	copy(dividers, edges)
	dividers[len(dividers)-1] = math.Nextafter(max, math.Inf(1))

	counts := stat.Histogram(nil, dividers, sorted, nil)

	n := float64(len(sample))
	width := (max - min) / float64(binCount)

	res := make([]model.HistogramBin, 0, binCount)
	for i, cnt := range counts {
		res = append(res, model.HistogramBin{
			Lower:   edges[i],
			Upper:   edges[i+1],
			Count:   int(cnt),
			Density: cnt / (n * width),
		})
	}
	return res, nil
}
