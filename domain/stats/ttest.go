package stats

import (
	"math"

	"heatlab/domain/core"
)

// TTest compares two samples. With paired set it runs a one-sample t-test on
// the element-wise differences (requiring equal lengths); otherwise it runs
// Welch's unequal-variance t-test. Either group empty is a degenerate call
// and returns the neutral {t: 0, p: 1, df: 0}.
//
// A computed standard deviation or standard error of exactly 0 is
// substituted with 1 before dividing, so identical samples come out as
// t=0, p=1 rather than NaN.
func TTest(g1, g2 Sample, paired bool) (TestResult, error) {
	if paired && len(g1) != len(g2) {
		return TestResult{}, core.NewLengthMismatchError("paired t-test", len(g1), len(g2))
	}
	if len(g1) == 0 || len(g2) == 0 {
		return TestResult{Name: "t", PValue: 1}, nil
	}
	if paired {
		return pairedTTest(g1, g2), nil
	}
	return welchTTest(g1, g2), nil
}

func pairedTTest(g1, g2 Sample) TestResult {
	n := len(g1)
	diffs := make([]float64, n)
	for i := range g1 {
		diffs[i] = g1[i] - g2[i]
	}

	sd := Std(diffs, true)
	if sd == 0 {
		sd = 1
	}
	t := Mean(diffs) / (sd / math.Sqrt(float64(n)))
	df := float64(n - 1)

	return TestResult{
		Name:      "t",
		Statistic: t,
		PValue:    TTestPValue(t, df),
		DF:        df,
	}
}

func welchTTest(g1, g2 Sample) TestResult {
	n1 := float64(len(g1))
	n2 := float64(len(g2))
	v1 := sampleVariance(g1)
	v2 := sampleVariance(g2)

	se := math.Sqrt(v1/n1 + v2/n2)
	if se == 0 {
		se = 1
	}
	t := (Mean(g1) - Mean(g2)) / se

	// Welch-Satterthwaite degrees of freedom. Single-element groups leave
	// the denominator undefined; df stays 0 and the p-value is neutral.
	var df float64
	num := (v1/n1 + v2/n2) * (v1/n1 + v2/n2)
	den := (v1/n1)*(v1/n1)/(n1-1) + (v2/n2)*(v2/n2)/(n2-1)
	if den > 0 {
		df = num / den
	}

	return TestResult{
		Name:      "t",
		Statistic: t,
		PValue:    TTestPValue(t, df),
		DF:        df,
	}
}
