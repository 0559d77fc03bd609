package stats

// OneWayANOVA runs the classic between/within sum-of-squares decomposition
// across k groups: F = MSB/MSW with (k-1, N-k) degrees of freedom. When the
// within degrees of freedom are not positive the result is the neutral
// {F: 0, p: 1}. A within mean square of exactly 0 is substituted with 1
// before dividing.
func OneWayANOVA(groups []Sample) TestResult {
	k := len(groups)
	total := 0
	grand := 0.0
	for _, g := range groups {
		total += len(g)
		for _, v := range g {
			grand += v
		}
	}

	dfB := float64(k - 1)
	dfW := float64(total - k)
	if dfB <= 0 || dfW <= 0 {
		return TestResult{Name: "F", PValue: 1}
	}
	grandMean := grand / float64(total)

	var ssb, ssw float64
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		m := Mean(g)
		diff := m - grandMean
		ssb += float64(len(g)) * diff * diff
		for _, v := range g {
			d := v - m
			ssw += d * d
		}
	}

	msb := ssb / dfB
	msw := ssw / dfW
	if msw == 0 {
		msw = 1
	}
	f := msb / msw

	return TestResult{
		Name:      "F",
		Statistic: f,
		PValue:    FTestPValue(f, dfB, dfW),
		DF:        dfB,
		DF2:       dfW,
	}
}

// KruskalWallis runs the rank-based k-group test: pooled tie-averaged ranks,
// the standard tie-agnostic H statistic, and a chi-squared p-value with k-1
// degrees of freedom. Fewer than two groups, or no data at all, returns the
// neutral {H: 0, p: 1}.
func KruskalWallis(groups []Sample) TestResult {
	k := len(groups)
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	if k < 2 || total == 0 {
		return TestResult{Name: "H", PValue: 1}
	}

	pooled := make([]float64, 0, total)
	for _, g := range groups {
		pooled = append(pooled, g...)
	}
	ranks := tieAveragedRanks(pooled)

	n := float64(total)
	h := 0.0
	offset := 0
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		sum := 0.0
		for i := range g {
			sum += ranks[offset+i]
		}
		h += sum * sum / float64(len(g))
		offset += len(g)
	}
	h = 12/(n*(n+1))*h - 3*(n+1)

	df := float64(k - 1)
	return TestResult{
		Name:      "H",
		Statistic: h,
		PValue:    ChiSquarePValue(h, df),
		DF:        df,
	}
}
