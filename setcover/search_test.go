package setcover_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/basketsplit/familygen"
	"github.com/katalvlaran/basketsplit/setcover"
)

func scenarioA() *setcover.Solver[int, string] {
	return setcover.FromMap(oneToFive, map[string][]int{
		"Gr 1": {1, 2, 3},
		"Gr 2": {2, 4},
		"Gr 3": {3, 4},
		"Gr 4": {4, 5},
	})
}

func TestSearch_NoOptionsEqualsFindBestCover(t *testing.T) {
	solver := scenarioA()
	res, err := solver.Search(setcover.MinCardinality[string]())
	require.NoError(t, err)
	assert.Equal(t, solver.FindBestCover(setcover.MinCardinality[string]()), res)
	assert.True(t, res.Exhaustive)
	assert.Positive(t, res.Nodes)
}

func TestSearch_NodeBudget(t *testing.T) {
	res, err := scenarioA().Search(setcover.MinCardinality[string](), setcover.WithMaxNodes(1))
	require.ErrorIs(t, err, setcover.ErrBudgetExceeded)
	assert.False(t, res.Exhaustive)
	assert.False(t, res.Found)
	assert.Equal(t, 1, res.Nodes)
}

func TestSearch_GenerousNodeBudget(t *testing.T) {
	full := scenarioA().FindBestCover(nil)

	res, err := scenarioA().Search(nil, setcover.WithMaxNodes(full.Nodes))
	require.NoError(t, err)
	assert.Equal(t, full, res)
}

func TestSearch_BudgetKeepsIncumbent(t *testing.T) {
	// Stop after enough nodes to reach the first leaf but not the optimum.
	in, err := familygen.Windows(30, 2)
	require.NoError(t, err)

	res, err := in.Solver().Search(nil, setcover.WithMaxNodes(200))
	require.ErrorIs(t, err, setcover.ErrBudgetExceeded)
	require.True(t, res.Found)
	assert.True(t, in.Solver().IsCover(res.Cover))
	assert.Equal(t, 200, res.Nodes)
}

func TestSearch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := scenarioA().Search(nil, setcover.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, res.Found)
}

func TestSearch_TimeLimit(t *testing.T) {
	// Exhausting 40 width-2 windows takes far more than 1024 nodes, so the
	// first deadline check trips.
	in, err := familygen.Windows(40, 2)
	require.NoError(t, err)

	res, err := in.Solver().Search(nil, setcover.WithTimeLimit(time.Nanosecond))
	require.ErrorIs(t, err, setcover.ErrBudgetExceeded)
	assert.False(t, res.Exhaustive)
	assert.Equal(t, 1024, res.Nodes)
}

func TestOptions_Validation(t *testing.T) {
	assert.Panics(t, func() { setcover.WithMaxNodes(-1) })
	assert.Panics(t, func() { setcover.WithTimeLimit(-time.Second) })

	o := setcover.DefaultOptions()
	setcover.WithContext(nil)(&o)
	assert.NotNil(t, o.Ctx)
}
