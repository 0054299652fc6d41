package pmf

import (
	"github.com/uyouii/discrete-statistics/common"
)

// DiscreteProber is the probability mass interface of gonum's discrete
// distributions, e.g. distuv.Binomial and distuv.Poisson.
type DiscreteProber interface {
	Prob(x float64) float64
}

// TheoreticalPmf evaluates dist over the given support, producing a mapping
// a caller can overlay against the empirical PMF of the same sample.
func TheoreticalPmf(dist DiscreteProber, support []float64) (map[float64]float64, error) {
	if dist == nil || len(support) == 0 {
		return nil, common.ErrorInvalidValue
	}

	res := make(map[float64]float64, len(support))
	for _, x := range support {
		res[x] = dist.Prob(x)
	}
	return res, nil
}
