package stats

import (
	"fmt"
	"math"
)

// BonferroniPostHoc runs every pairwise unpaired t-test across the groups
// and applies the Bonferroni correction: corrected p = min(raw p * C, 1)
// where C = k(k-1)/2. The significance tier of each pair is derived from the
// corrected p-value. Labels beyond the provided list fall back to a
// positional name.
func BonferroniPostHoc(groups []Sample, labels []string) []PostHocResult {
	k := len(groups)
	comparisons := k * (k - 1) / 2
	results := make([]PostHocResult, 0, comparisons)

	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			// Unpaired t-tests never fail on length, only paired calls do.
			res, _ := TTest(groups[i], groups[j], false)
			corrected := math.Min(res.PValue*float64(comparisons), 1)
			results = append(results, PostHocResult{
				IndexA:       i,
				IndexB:       j,
				LabelA:       groupLabel(labels, i),
				LabelB:       groupLabel(labels, j),
				RawP:         res.PValue,
				CorrectedP:   corrected,
				Significance: SignificanceLevel(corrected),
			})
		}
	}
	return results
}

func groupLabel(labels []string, i int) string {
	if i < len(labels) && labels[i] != "" {
		return labels[i]
	}
	return fmt.Sprintf("group %d", i+1)
}

// SignificanceLevel maps a p-value onto the conventional star tiers.
func SignificanceLevel(p float64) string {
	switch {
	case p < 0.001:
		return "***"
	case p < 0.01:
		return "**"
	case p < 0.05:
		return "*"
	default:
		return "ns"
	}
}

// FormatPValue renders a p-value for display: values below 1e-4 collapse to
// "p < 0.0001", values below 1e-3 keep four decimals, everything else three.
func FormatPValue(p float64) string {
	switch {
	case p < 0.0001:
		return "p < 0.0001"
	case p < 0.001:
		return fmt.Sprintf("p = %.4f", p)
	default:
		return fmt.Sprintf("p = %.3f", p)
	}
}
