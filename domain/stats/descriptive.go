package stats

import (
	"math"

	mstats "github.com/montanaflynn/stats"
)

// Mean returns the arithmetic mean, or 0 for an empty sample.
func Mean(values Sample) float64 {
	if len(values) == 0 {
		return 0
	}
	m, _ := mstats.Mean(values)
	return m
}

// Median returns the middle value (average of the two middle values for even
// n), or 0 for an empty sample.
func Median(values Sample) float64 {
	if len(values) == 0 {
		return 0
	}
	m, _ := mstats.Median(values)
	return m
}

// Quartile returns Q1/Q2/Q3 by the median-of-halves rule: the sorted sample
// is split around the median, excluding the middle element when n is odd,
// and Q1/Q3 are the medians of the halves. Empty input yields {0, 0, 0}.
func Quartile(values Sample) Quartiles {
	if len(values) == 0 {
		return Quartiles{}
	}
	q, err := mstats.Quartile(values)
	if err != nil {
		return Quartiles{}
	}
	// A single-element sample leaves both halves empty; fall back to the
	// median so the result stays a real number.
	if math.IsNaN(q.Q1) {
		q.Q1 = q.Q2
	}
	if math.IsNaN(q.Q3) {
		q.Q3 = q.Q2
	}
	return Quartiles{Q1: q.Q1, Q2: q.Q2, Q3: q.Q3}
}

// Std returns the standard deviation. The sample variant divides by n-1, the
// population variant by n. Samples too small to define the chosen variant
// yield 0.
func Std(values Sample, sample bool) float64 {
	if len(values) == 0 {
		return 0
	}
	if sample {
		if len(values) < 2 {
			return 0
		}
		sd, _ := mstats.StandardDeviationSample(values)
		return sd
	}
	sd, _ := mstats.StandardDeviationPopulation(values)
	return sd
}

// SEM returns the standard error of the mean: sample std / sqrt(n), or 0 for
// an empty sample.
func SEM(values Sample) float64 {
	if len(values) == 0 {
		return 0
	}
	return Std(values, true) / math.Sqrt(float64(len(values)))
}

// sampleVariance divides by n-1, returning 0 when fewer than two values
// exist.
func sampleVariance(values Sample) float64 {
	if len(values) < 2 {
		return 0
	}
	v, _ := mstats.SampleVariance(values)
	return v
}
