package setcover_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/basketsplit/familygen"
	"github.com/katalvlaran/basketsplit/setcover"
)

// oneToFive is the universe shared by the grouping scenarios.
var oneToFive = []int{1, 2, 3, 4, 5}

// bruteForceMin enumerates every sub-family and returns the size of the
// smallest one that covers the universe, or -1 when none does.
func bruteForceMin(in familygen.Instance) int {
	solver := in.Solver()
	best := -1
	m := len(in.Subsets)
	for mask := 0; mask < 1<<m; mask++ {
		var c setcover.Cover[string]
		for i := 0; i < m; i++ {
			if mask&(1<<i) != 0 {
				c = append(c, in.Subsets[i].Descriptor)
			}
		}
		if solver.IsCover(c) && (best < 0 || len(c) < best) {
			best = len(c)
		}
	}

	return best
}

// assertDistinct fails when a descriptor appears twice in c.
func assertDistinct[D comparable](t *testing.T, c setcover.Cover[D]) {
	t.Helper()
	seen := make(map[D]bool, len(c))
	for _, d := range c {
		assert.False(t, seen[d], "descriptor %v repeated in %v", d, c)
		seen[d] = true
	}
}

func TestFindBestCover_ScenarioA(t *testing.T) {
	solver := setcover.FromMap(oneToFive, map[string][]int{
		"Gr 1": {1, 2, 3},
		"Gr 2": {2, 4},
		"Gr 3": {3, 4},
		"Gr 4": {4, 5},
	})

	res := solver.FindBestCover(setcover.MinCardinality[string]())
	require.True(t, res.Found)
	assert.True(t, res.Exhaustive)
	assert.Len(t, res.Cover, 2)
	assert.Equal(t, setcover.Cover[string]{"Gr 1", "Gr 4"}, res.Cover)
	assert.True(t, solver.IsCover(res.Cover))
}

func TestFindBestCover_ScenarioB(t *testing.T) {
	solver := setcover.FromMap(oneToFive, map[string][]int{
		"Gr 1": {1, 2, 3},
		"Gr 2": {1, 2, 3, 5},
		"Gr 3": {1, 2, 3, 4},
		"Gr 4": {3, 4, 5},
		"Gr 5": {2, 4, 5},
	})

	res := solver.FindBestCover(setcover.MinCardinality[string]())
	require.True(t, res.Found)
	assert.Len(t, res.Cover, 2)
	assert.True(t, solver.IsCover(res.Cover))
	assertDistinct(t, res.Cover)
}

func TestFindBestCover_EmptyUniverse(t *testing.T) {
	solver := setcover.FromMap([]int{}, map[string][]int{"Gr 1": {1}})

	res := solver.FindBestCover(setcover.MinCardinality[string]())
	require.True(t, res.Found)
	assert.Empty(t, res.Cover)
	assert.Equal(t, 1, res.Nodes)
}

func TestFindBestCover_EmptyFamily(t *testing.T) {
	solver := setcover.New[int, string](oneToFive, nil)

	res := solver.FindBestCover(nil)
	assert.False(t, res.Found)
	assert.True(t, res.Exhaustive)
	assert.Equal(t, oneToFive, solver.Uncoverable())
}

func TestFindBestCover_UncoveredItemIsAbsent(t *testing.T) {
	solver := setcover.FromMap(oneToFive, map[string][]int{
		"Gr 1": {1, 2, 3},
		"Gr 2": {4},
	})

	res := solver.FindBestCover(setcover.MinCardinality[string]())
	assert.False(t, res.Found)
	assert.Nil(t, res.Cover)
	assert.Equal(t, []int{5}, solver.Uncoverable())
}

func TestFindBestCover_NilComparatorIsMinCardinality(t *testing.T) {
	solver := setcover.FromMap(oneToFive, map[string][]int{
		"a": {1}, "b": {2}, "c": {3}, "d": {4}, "e": {5},
		"all": {1, 2, 3, 4, 5},
	})

	res := solver.FindBestCover(nil)
	require.True(t, res.Found)
	assert.Equal(t, setcover.Cover[string]{"all"}, res.Cover)
}

func TestNew_UniverseAndItemsNormalization(t *testing.T) {
	// Duplicates collapse onto their first occurrence; foreign items are ignored.
	solver := setcover.New([]string{"b", "a", "b"}, []setcover.Subset[string, string]{
		{Descriptor: "x", Items: []string{"a", "zzz"}},
		{Descriptor: "y", Items: []string{"b"}},
	})

	assert.Equal(t, []string{"b", "a"}, solver.Universe())
	assert.Equal(t, []string{"x", "y"}, solver.Descriptors())

	res := solver.FindBestCover(nil)
	require.True(t, res.Found)
	assert.Equal(t, setcover.Cover[string]{"x", "y"}, res.Cover)
}

func TestFromMap_SortsDescriptors(t *testing.T) {
	solver := setcover.FromMap([]int{1}, map[string][]int{"c": {1}, "a": {1}, "b": {1}})
	assert.Equal(t, []string{"a", "b", "c"}, solver.Descriptors())

	// Among equals, the first cover in branching order wins.
	res := solver.FindBestCover(setcover.MinCardinality[string]())
	assert.Equal(t, setcover.Cover[string]{"a"}, res.Cover)
}

func TestIsCover(t *testing.T) {
	solver := setcover.FromMap(oneToFive, map[string][]int{
		"Gr 1": {1, 2, 3},
		"Gr 4": {4, 5},
	})

	assert.Nil(t, solver.Uncoverable(), "every item has a subset")
	assert.True(t, solver.IsCover(setcover.Cover[string]{"Gr 1", "Gr 4"}))
	assert.False(t, solver.IsCover(setcover.Cover[string]{"Gr 1"}))
	assert.False(t, solver.IsCover(setcover.Cover[string]{"Gr 1", "Gr 4", "Gr 4"}), "repeated descriptor")
	assert.False(t, solver.IsCover(setcover.Cover[string]{"Gr 1", "Gr 9"}), "unknown descriptor")
}

func TestFindBestCover_MatchesBruteForce(t *testing.T) {
	for seed := int64(0); seed < 40; seed++ {
		in, err := familygen.Random(9, 7, 0.3, familygen.WithSeed(seed))
		require.NoError(t, err)

		want := bruteForceMin(in)
		res := in.Solver().FindBestCover(setcover.MinCardinality[string]())
		if want < 0 {
			assert.False(t, res.Found, "seed %d: expected no cover", seed)
			continue
		}
		require.True(t, res.Found, "seed %d: expected a cover", seed)
		assert.Len(t, res.Cover, want, "seed %d", seed)
		assert.True(t, in.Solver().IsCover(res.Cover), "seed %d", seed)
		assertDistinct(t, res.Cover)
	}
}

func TestFindBestCover_Deterministic(t *testing.T) {
	in, err := familygen.Random(10, 8, 0.35, familygen.WithSeed(7), familygen.WithCoverable())
	require.NoError(t, err)
	solver := in.Solver()

	first := solver.FindBestCover(setcover.MinCardinality[string]())
	require.True(t, first.Found)
	for i := 0; i < 5; i++ {
		again := solver.FindBestCover(setcover.MinCardinality[string]())
		assert.Equal(t, first, again)
	}
}

func TestFindBestCover_WindowsOptimum(t *testing.T) {
	in, err := familygen.Windows(11, 3)
	require.NoError(t, err)

	res := in.Solver().FindBestCover(setcover.MinCardinality[string]())
	require.True(t, res.Found)
	assert.Len(t, res.Cover, 4) // ceil(11/3)
}
