package pmf

import (
	"github.com/uyouii/discrete-statistics/common"
	"gonum.org/v1/gonum/stat"
)

// Number covers the key kinds expectation and variance are defined over.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func splitPmf[T Number](pmfMap map[T]float64) ([]float64, []float64) {
	xs := make([]float64, 0, len(pmfMap))
	probs := make([]float64, 0, len(pmfMap))
	for v, p := range pmfMap {
		xs = append(xs, float64(v))
		probs = append(probs, p)
	}
	return xs, probs
}

// ExpectedValue computes the probability weighted mean of the PMF keys.
// Pass the unrounded probabilities, rounded ones shift the result.
func ExpectedValue[T Number](pmfMap map[T]float64) (float64, error) {
	if len(pmfMap) == 0 {
		return 0, common.ErrorInvalidValue
	}
	xs, probs := splitPmf(pmfMap)
	return stat.Mean(xs, probs), nil
}

// Variance computes the probability weighted squared deviation about the
// expected value, computing the expected value itself first.
func Variance[T Number](pmfMap map[T]float64) (float64, error) {
	mean, err := ExpectedValue(pmfMap)
	if err != nil {
		return 0, err
	}
	return VarianceAboutMean(pmfMap, mean)
}

// VarianceAboutMean takes an already computed mean so callers needing both
// moments walk the mapping once less.
func VarianceAboutMean[T Number](pmfMap map[T]float64, mean float64) (float64, error) {
	if len(pmfMap) == 0 {
		return 0, common.ErrorInvalidValue
	}
	xs, probs := splitPmf(pmfMap)
	return stat.MomentAbout(2, xs, mean, probs), nil
}
