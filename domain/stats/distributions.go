package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// CDF lookups live here so every test draws its p-values from the same
// special-functions provider. Degrees of freedom at or below zero always
// yield the neutral p-value 1.

// TTestPValue returns the two-sided p-value for a t statistic under
// Student's t distribution with df degrees of freedom. df may be fractional
// (Welch-Satterthwaite).
func TTestPValue(t, df float64) float64 {
	if df <= 0 || math.IsNaN(df) {
		return 1
	}
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return clampP(2 * (1 - dist.CDF(math.Abs(t))))
}

// FTestPValue returns the upper-tail p-value for an F statistic with
// (df1, df2) degrees of freedom.
func FTestPValue(f, df1, df2 float64) float64 {
	if df1 <= 0 || df2 <= 0 {
		return 1
	}
	dist := distuv.F{D1: df1, D2: df2}
	return clampP(1 - dist.CDF(f))
}

// ChiSquarePValue returns the upper-tail p-value for a chi-squared statistic
// with df degrees of freedom.
func ChiSquarePValue(x, df float64) float64 {
	if df <= 0 {
		return 1
	}
	dist := distuv.ChiSquared{K: df}
	return clampP(1 - dist.CDF(x))
}

// NormalCDF returns the standard normal cumulative distribution at z.
func NormalCDF(z float64) float64 {
	return distuv.UnitNormal.CDF(z)
}

// normalTwoSidedPValue converts a z score into a two-sided p-value. The rank
// tests use this plain normal approximation with no continuity or exactness
// correction for small n.
func normalTwoSidedPValue(z float64) float64 {
	return clampP(2 * (1 - NormalCDF(math.Abs(z))))
}

func clampP(p float64) float64 {
	switch {
	case math.IsNaN(p):
		return 1
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
