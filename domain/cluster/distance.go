package cluster

import "math"

// Vector is one row or column of a heatmap matrix. A NaN entry marks a
// missing measurement.
type Vector = []float64

// Matrix is an ordered set of equal-length vectors.
type Matrix = [][]float64

// Distance returns the Euclidean distance between a and b, computed only
// over positions where both entries are present. Missing entries are skipped
// pairwise, never imputed. When no position is jointly present the vectors
// are incomparable and the result is +Inf.
//
// Distance(a, b) == Distance(b, a) for all inputs.
func Distance(a, b Vector) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	sum := 0.0
	valid := 0
	for i := 0; i < n; i++ {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			continue
		}
		d := a[i] - b[i]
		sum += d * d
		valid++
	}

	if valid == 0 {
		return math.Inf(1)
	}
	return math.Sqrt(sum)
}
