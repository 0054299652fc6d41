package pmf

import (
	"github.com/uyouii/discrete-statistics/common"
	"github.com/uyouii/discrete-statistics/utils"
)

// EmpiricalPMF holds a finite discrete sample and derives the frequency
// and probability mappings from it in a single pass. The sample is copied
// on construction and never mutated afterwards.
type EmpiricalPMF[T comparable] struct {
	sample []T

	// distinct values in first-encountered order, kept for presentation;
	// nothing may rely on this order for correctness
	support []T

	freqs  map[T]int
	probs  map[T]float64
	fitted bool
}

func NewEmpiricalPMF[T comparable](sample []T) (*EmpiricalPMF[T], error) {
	if len(sample) == 0 {
		return nil, common.ErrorInvalidValue
	}

	cp := make([]T, len(sample))
	copy(cp, sample)

	return &EmpiricalPMF[T]{sample: cp}, nil
}

func (p *EmpiricalPMF[T]) fit() {
	if p.fitted {
		return
	}

	freqs := make(map[T]int, len(p.sample))
	support := []T{}
	for _, v := range p.sample {
		if _, ok := freqs[v]; !ok {
			support = append(support, v)
		}
		freqs[v]++
	}

	n := float64(len(p.sample))
	probs := make(map[T]float64, len(freqs))
	for v, cnt := range freqs {
		probs[v] = float64(cnt) / n
	}

	p.freqs = freqs
	p.probs = probs
	p.support = support
	p.fitted = true
}

// Frequencies returns the count of each distinct value in the sample.
// The counts sum to SampleSize.
func (p *EmpiricalPMF[T]) Frequencies() map[T]int {
	p.fit()
	res := make(map[T]int, len(p.freqs))
	for v, cnt := range p.freqs {
		res[v] = cnt
	}
	return res
}

// Pmf returns the unrounded probability of each distinct value, the count
// divided by the sample size. The probabilities sum to 1 up to floating
// point error.
func (p *EmpiricalPMF[T]) Pmf() map[T]float64 {
	p.fit()
	res := make(map[T]float64, len(p.probs))
	for v, prob := range p.probs {
		res[v] = prob
	}
	return res
}

// RoundedPmf is Pmf with each probability rounded to round decimal places.
// Display only: the rounded values may not sum to exactly 1 and must not
// feed ExpectedValue or Variance.
func (p *EmpiricalPMF[T]) RoundedPmf(round int32) map[T]float64 {
	p.fit()
	res := make(map[T]float64, len(p.probs))
	for v, prob := range p.probs {
		res[v] = utils.FormatFloat(prob, round)
	}
	return res
}

// Support returns the distinct sample values in first-encountered order.
func (p *EmpiricalPMF[T]) Support() []T {
	p.fit()
	res := make([]T, len(p.support))
	copy(res, p.support)
	return res
}

func (p *EmpiricalPMF[T]) SampleSize() int {
	return len(p.sample)
}

// Frequencies is the one-shot form for callers that only need the counts.
func Frequencies[T comparable](sample []T) (map[T]int, error) {
	empirical, err := NewEmpiricalPMF(sample)
	if err != nil {
		return nil, err
	}
	return empirical.Frequencies(), nil
}

// Pmf is the one-shot form for callers that only need the probabilities.
func Pmf[T comparable](sample []T) (map[T]float64, error) {
	empirical, err := NewEmpiricalPMF(sample)
	if err != nil {
		return nil, err
	}
	return empirical.Pmf(), nil
}
