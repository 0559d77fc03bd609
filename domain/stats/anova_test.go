package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestANOVAIdenticalGroups(t *testing.T) {
	groups := []Sample{{1, 2, 3}, {1, 2, 3}, {1, 2, 3}}
	res := OneWayANOVA(groups)

	assert.Equal(t, "F", res.Name)
	assert.Equal(t, 0.0, res.Statistic)
	assert.InDelta(t, 1.0, res.PValue, 1e-9)
	assert.Equal(t, 2.0, res.DF)
	assert.Equal(t, 6.0, res.DF2)
}

func TestANOVASeparatedGroups(t *testing.T) {
	groups := []Sample{
		{1.0, 1.2, 0.9, 1.1},
		{5.0, 5.1, 4.8, 5.2},
		{9.0, 9.3, 8.9, 9.1},
	}
	res := OneWayANOVA(groups)
	assert.Greater(t, res.Statistic, 100.0)
	assert.Less(t, res.PValue, 0.001)
}

func TestANOVADegenerateWithinDF(t *testing.T) {
	want := TestResult{Name: "F", PValue: 1}

	// One value per group: N-k == 0.
	assert.Equal(t, want, OneWayANOVA([]Sample{{1}, {2}, {3}}))
	// A single group: k-1 == 0.
	assert.Equal(t, want, OneWayANOVA([]Sample{{1, 2, 3}}))
	// Nothing at all.
	assert.Equal(t, want, OneWayANOVA(nil))
}

func TestANOVAZeroWithinVariance(t *testing.T) {
	// Constant but different groups: MSW is 0 and gets the unit guard, so
	// F stays finite and strongly significant.
	groups := []Sample{{1, 1, 1}, {9, 9, 9}}
	res := OneWayANOVA(groups)
	assert.Greater(t, res.Statistic, 0.0)
	assert.Less(t, res.PValue, 0.05)
}

func TestKruskalWallisKnownStatistic(t *testing.T) {
	// Fully separated groups over ranks 1..9: H works out to exactly 7.2.
	groups := []Sample{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	res := KruskalWallis(groups)

	assert.Equal(t, "H", res.Name)
	assert.InDelta(t, 7.2, res.Statistic, 1e-9)
	assert.Equal(t, 2.0, res.DF)
	assert.Less(t, res.PValue, 0.05)
}

func TestKruskalWallisDegenerate(t *testing.T) {
	want := TestResult{Name: "H", PValue: 1}
	assert.Equal(t, want, KruskalWallis(nil))
	assert.Equal(t, want, KruskalWallis([]Sample{{1, 2, 3}}))
	assert.Equal(t, want, KruskalWallis([]Sample{{}, {}}))
}

func TestKruskalWallisTiedValues(t *testing.T) {
	// Identical groups: every rank sum matches its expectation, H ~ 0.
	groups := []Sample{{1, 2}, {1, 2}, {1, 2}}
	res := KruskalWallis(groups)
	assert.InDelta(t, 0.0, res.Statistic, 1e-9)
	assert.InDelta(t, 1.0, res.PValue, 1e-9)
}
