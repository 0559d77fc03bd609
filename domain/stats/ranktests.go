package stats

import (
	"math"

	"heatlab/domain/core"
)

// MannWhitneyU runs the two-sample rank-sum test. Values are pooled and
// ranked with tie-averaging; U is the smaller of U1 and U2 and the p-value
// comes from the normal approximation of U. Either group empty returns the
// neutral {U: 0, p: 1}.
func MannWhitneyU(g1, g2 Sample) TestResult {
	n1 := len(g1)
	n2 := len(g2)
	if n1 == 0 || n2 == 0 {
		return TestResult{Name: "U", PValue: 1}
	}

	pooled := make([]float64, 0, n1+n2)
	pooled = append(pooled, g1...)
	pooled = append(pooled, g2...)
	ranks := tieAveragedRanks(pooled)

	r1 := 0.0
	for _, r := range ranks[:n1] {
		r1 += r
	}
	u1 := r1 - float64(n1*(n1+1))/2
	u2 := float64(n1*n2) - u1
	u := math.Min(u1, u2)

	sd := math.Sqrt(float64(n1*n2*(n1+n2+1)) / 12)
	if sd == 0 {
		sd = 1
	}
	z := (u - float64(n1*n2)/2) / sd

	return TestResult{
		Name:      "U",
		Statistic: u,
		PValue:    normalTwoSidedPValue(z),
		Z:         z,
	}
}

// WilcoxonSignedRank runs the paired signed-rank test. Zero differences are
// dropped before ranking; the surviving absolute differences are ranked with
// tie-averaging and W is the smaller of the positive and negative rank sums.
// The p-value uses the normal approximation of W. All differences zero
// returns the neutral {W: 0, p: 1}. Mismatched lengths are a caller error.
func WilcoxonSignedRank(g1, g2 Sample) (TestResult, error) {
	if len(g1) != len(g2) {
		return TestResult{}, core.NewLengthMismatchError("wilcoxon signed-rank test", len(g1), len(g2))
	}

	diffs := make([]float64, 0, len(g1))
	abs := make([]float64, 0, len(g1))
	for i := range g1 {
		d := g1[i] - g2[i]
		if d == 0 {
			continue
		}
		diffs = append(diffs, d)
		abs = append(abs, math.Abs(d))
	}
	if len(diffs) == 0 {
		return TestResult{Name: "W", PValue: 1}, nil
	}

	ranks := tieAveragedRanks(abs)
	var wPlus, wMinus float64
	for i, d := range diffs {
		if d > 0 {
			wPlus += ranks[i]
		} else {
			wMinus += ranks[i]
		}
	}
	w := math.Min(wPlus, wMinus)

	n := float64(len(diffs))
	mean := n * (n + 1) / 4
	sd := math.Sqrt(n * (n + 1) * (2*n + 1) / 24)
	if sd == 0 {
		sd = 1
	}
	z := (w - mean) / sd

	return TestResult{
		Name:      "W",
		Statistic: w,
		PValue:    normalTwoSidedPValue(z),
		Z:         z,
	}, nil
}
