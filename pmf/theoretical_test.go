package pmf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/discrete-statistics/common"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestTheoreticalPmfPoisson(t *testing.T) {
	poisson := distuv.Poisson{Lambda: 2}
	support := []float64{0, 1, 2, 3, 4}

	probs, err := TheoreticalPmf(poisson, support)
	require.NoError(t, err)

	require.Len(t, probs, len(support))
	for _, x := range support {
		assert.InDelta(t, poisson.Prob(x), probs[x], 1e-15)
	}
}

func TestTheoreticalPmfBinomial(t *testing.T) {
	binomial := distuv.Binomial{N: 10, P: 0.5}

	probs, err := TheoreticalPmf(binomial, []float64{5})
	require.NoError(t, err)
	assert.InDelta(t, 0.24609375, probs[5], 1e-9)
}

func TestTheoreticalPmfInvalidInput(t *testing.T) {
	_, err := TheoreticalPmf(nil, []float64{1, 2})
	require.ErrorIs(t, err, common.ErrorInvalidValue)

	_, err = TheoreticalPmf(distuv.Poisson{Lambda: 1}, nil)
	require.ErrorIs(t, err, common.ErrorInvalidValue)
}
