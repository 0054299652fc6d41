package model

import "fmt"

// Bar is one category of a bar chart: a discrete value and the height
// drawn for it. For a PMF the height is the probability of the value.
type Bar struct {
	Value  float64 `json:"x"`
	Height float64 `json:"y"`
}

// HistogramBin is one half-open bin [Lower, Upper) of a histogram.
// The final bin of a series also includes its upper edge.
type HistogramBin struct {
	Lower   float64 `json:"lower"`
	Upper   float64 `json:"upper"`
	Count   int     `json:"count"`
	Density float64 `json:"density,omitempty"`
}

// PmfSummary is the display form of an empirical PMF: the rounded
// probability table plus the moments derived from the unrounded
// probabilities. Probabilities is keyed by the formatted value, because
// json cannot key a map by float.
type PmfSummary struct {
	SampleSize    int                `json:"sample_size,omitempty"`
	Probabilities map[string]float64 `json:"probabilities,omitempty"`
	ExpectedValue float64            `json:"expected_value,omitempty"`
	Variance      float64            `json:"variance,omitempty"`
	Stddev        float64            `json:"stddev,omitempty"`
}

func (s *PmfSummary) GetProbability(value float64) (float64, bool) {
	if s == nil || s.Probabilities == nil {
		return 0, false
	}
	valueStr := fmt.Sprintf("%v", value)
	prob, ok := s.Probabilities[valueStr]
	return prob, ok
}
