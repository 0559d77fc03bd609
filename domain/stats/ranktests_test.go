package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heatlab/domain/core"
)

func TestTieAveragedRanks(t *testing.T) {
	assert.Equal(t, []float64{1, 2.5, 2.5, 4}, tieAveragedRanks([]float64{1, 2, 2, 3}))
	assert.Equal(t, []float64{2, 2, 2}, tieAveragedRanks([]float64{5, 5, 5}))
	assert.Equal(t, []float64{3, 1, 2}, tieAveragedRanks([]float64{9, 1, 4}))
	assert.Empty(t, tieAveragedRanks(nil))
}

func TestMannWhitneyCompleteSeparation(t *testing.T) {
	res := MannWhitneyU(Sample{1, 2, 3}, Sample{4, 5, 6})
	assert.Equal(t, "U", res.Name)
	assert.Equal(t, 0.0, res.Statistic)
	assert.Less(t, res.PValue, 0.05)
	assert.Less(t, res.Z, 0.0)
}

func TestMannWhitneyEmptyGroup(t *testing.T) {
	want := TestResult{Name: "U", PValue: 1}
	assert.Equal(t, want, MannWhitneyU(Sample{}, Sample{1, 2}))
	assert.Equal(t, want, MannWhitneyU(Sample{1, 2}, Sample{}))
}

func TestMannWhitneyIdenticalGroups(t *testing.T) {
	res := MannWhitneyU(Sample{1, 2, 3}, Sample{1, 2, 3})
	// Full overlap: U1 == U2 == n1*n2/2, z == 0.
	assert.InDelta(t, 4.5, res.Statistic, 1e-12)
	assert.InDelta(t, 0.0, res.Z, 1e-12)
	assert.InDelta(t, 1.0, res.PValue, 1e-9)
}

func TestMannWhitneyTieHandling(t *testing.T) {
	// Ties across groups get averaged ranks, keeping U1+U2 == n1*n2.
	g1 := Sample{1, 2, 2}
	g2 := Sample{2, 3, 4}
	res := MannWhitneyU(g1, g2)
	assert.GreaterOrEqual(t, res.Statistic, 0.0)
	assert.LessOrEqual(t, res.Statistic, 4.5)
}

func TestWilcoxonLengthMismatch(t *testing.T) {
	_, err := WilcoxonSignedRank(Sample{1, 2, 3}, Sample{1, 2})
	require.Error(t, err)
	assert.True(t, core.IsInvalidInput(err))
}

func TestWilcoxonAllZeroDifferences(t *testing.T) {
	res, err := WilcoxonSignedRank(Sample{1, 2, 3}, Sample{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, TestResult{Name: "W", PValue: 1}, res)
}

func TestWilcoxonOneSidedShift(t *testing.T) {
	g1 := Sample{1, 2, 3, 4, 5}
	g2 := Sample{2, 3, 4, 5, 6}
	res, err := WilcoxonSignedRank(g1, g2)
	require.NoError(t, err)

	// Every difference is -1: W+ is 0.
	assert.Equal(t, 0.0, res.Statistic)
	assert.Less(t, res.PValue, 0.05)
}

func TestWilcoxonDropsZeroDifferences(t *testing.T) {
	g1 := Sample{1, 5, 3, 9}
	g2 := Sample{1, 2, 3, 4}
	res, err := WilcoxonSignedRank(g1, g2)
	require.NoError(t, err)

	// Two zero differences dropped; the two positive ones rank 1 and 2.
	assert.Equal(t, 0.0, res.Statistic) // W- side is empty
	assert.Equal(t, "W", res.Name)
}
