// Package stats is the stateless hypothesis-testing library behind the
// significance annotations of the charting UI: descriptive statistics,
// two-sample and k-sample tests, and Bonferroni-corrected post-hoc
// comparisons. All functions are pure; degenerate inputs return neutral
// sentinel values instead of failing, except where a sample-size mismatch
// makes the test mathematically undefined.
package stats

// Sample is one experimental group's measurements. Unlike heatmap vectors,
// samples tolerate no missing values: every entry must be a real number.
type Sample = []float64

// TestResult captures one hypothesis test: the statistic (whose name varies
// by test: t, U, W, F, H), the two-sided p-value in [0, 1], and whichever
// auxiliary quantities the test defines.
type TestResult struct {
	Name      string  `json:"name"`
	Statistic float64 `json:"statistic"`
	PValue    float64 `json:"p_value"`
	DF        float64 `json:"df,omitempty"`
	DF2       float64 `json:"df2,omitempty"` // denominator df, F tests only
	Z         float64 `json:"z,omitempty"`   // normal-approximation score, rank tests only
}

// PostHocResult is one pairwise comparison from a multiple-comparison
// procedure.
type PostHocResult struct {
	IndexA       int     `json:"index_a"`
	IndexB       int     `json:"index_b"`
	LabelA       string  `json:"label_a"`
	LabelB       string  `json:"label_b"`
	RawP         float64 `json:"raw_p"`
	CorrectedP   float64 `json:"corrected_p"`
	Significance string  `json:"significance"`
}

// Quartiles holds the three quartile cut points of a sample.
type Quartiles struct {
	Q1 float64 `json:"q1"`
	Q2 float64 `json:"q2"`
	Q3 float64 `json:"q3"`
}
