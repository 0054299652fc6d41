package pmf

const (
	// DefaultDisplayRound matches the 2 decimal probability tables used
	// in teaching material.
	DefaultDisplayRound = 2

	// moments are shown with more precision than the probability table,
	// 2 decimals would hide the difference between nearby samples
	MomentDisplayRound = 4

	PmfMinCalculatePointCnt = 1
)
