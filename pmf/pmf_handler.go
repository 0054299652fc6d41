package pmf

import (
	"context"
	"fmt"
	"math"

	"github.com/uyouii/discrete-statistics/common"
	"github.com/uyouii/discrete-statistics/model"
	"github.com/uyouii/discrete-statistics/utils"
	"go.uber.org/zap"
)

func getMinCalculatePointCnt() int {
	return PmfMinCalculatePointCnt
}

// CalculatePmfSummary builds the empirical PMF of the sample and derives
// expected value, variance and stddev from the unrounded probabilities.
// Rounding is applied after the moments are computed, only to the
// returned display table. If round is not positive the default display
// precision is used.
func CalculatePmfSummary(ctx context.Context, sample []float64, round int32) (*model.PmfSummary, error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if err := recover(); err != nil {
			logger.Error("CalculatePmfSummary recover panic error!", zap.Any("err", err),
				zap.String("panic info", utils.GetPanicInfo()), zap.Any("sample", sample))
		}
	}()

	if len(sample) < getMinCalculatePointCnt() {
		logger.Error("point too little, skip calculate", zap.Int("cnt", len(sample)))
		return nil, common.ErrorInvalidValue
	}

	if round <= 0 {
		round = DefaultDisplayRound
	}

	empirical, err := NewEmpiricalPMF(sample)
	if err != nil {
		logger.Error("NewEmpiricalPMF failed", zap.Error(err))
		return nil, err
	}

	probs := empirical.Pmf()

	mean, err := ExpectedValue(probs)
	if err != nil {
		logger.Error("ExpectedValue failed", zap.Error(err))
		return nil, err
	}

	variance, err := VarianceAboutMean(probs, mean)
	if err != nil {
		logger.Error("VarianceAboutMean failed", zap.Error(err))
		return nil, err
	}

	displayProbs := map[string]float64{}
	for _, v := range empirical.Support() {
		displayProbs[fmt.Sprintf("%v", v)] = utils.FormatFloat(probs[v], round)
	}

	return &model.PmfSummary{
		SampleSize:    empirical.SampleSize(),
		Probabilities: displayProbs,
		ExpectedValue: utils.FormatFloat(mean, MomentDisplayRound),
		Variance:      utils.FormatFloat(variance, MomentDisplayRound),
		Stddev:        utils.FormatFloat(math.Sqrt(variance), MomentDisplayRound),
	}, nil
}
