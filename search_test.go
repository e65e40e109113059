package covertree_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nearspace/covertree"
	"github.com/nearspace/covertree/color"
	"github.com/nearspace/covertree/testutil"
)

func TestFindNearestBatch_MatchesIndividualQueries(t *testing.T) {
	rng := testutil.NewRNG(11)
	points := append(
		[]color.Color{color.FromHexCode(0x000000), color.FromHexCode(0xFFFFFF)},
		rng.Colors(100)...,
	)
	tree, err := covertree.Build(points, color.RGBDistance)
	require.NoError(t, err)

	queries := rng.Colors(64)
	results, err := tree.FindNearestBatch(context.Background(), queries)
	require.NoError(t, err)
	require.Len(t, results, len(queries))

	for i, q := range queries {
		want, err := tree.FindNearest(q)
		require.NoError(t, err)
		assert.Equal(t, want, results[i], "query %d (%s)", i, q)
	}
}

func TestFindNearestBatch_EmptyTree(t *testing.T) {
	tree, err := covertree.New(testutil.AbsDistance)
	require.NoError(t, err)

	_, err = tree.FindNearestBatch(context.Background(), []float64{1, 2})
	assert.ErrorIs(t, err, covertree.ErrEmptyTree)
}

func TestFindNearestBatch_NoQueries(t *testing.T) {
	tree, err := covertree.Build([]float64{0, 1}, testutil.AbsDistance)
	require.NoError(t, err)

	results, err := tree.FindNearestBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFindNearestBatch_CanceledContext(t *testing.T) {
	tree, err := covertree.Build([]float64{0, 1, 2, 5, 20}, testutil.AbsDistance)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = tree.FindNearestBatch(ctx, []float64{3, 12})
	assert.ErrorIs(t, err, context.Canceled)
}
