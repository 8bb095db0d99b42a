package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/palletpack/internal/model"
)

func TestOrientationsBaseOnly(t *testing.T) {
	p := model.Product{Length: 10, Width: 20, Height: 30}
	orients := orientations(p, false)
	require.Len(t, orients, 1)
	assert.Equal(t, orientation{10, 20, 30}, orients[0])
}

func TestOrientationsHorizontalSwap(t *testing.T) {
	p := model.Product{Length: 10, Width: 20, Height: 30, RotatableHorizontal: true}
	orients := orientations(p, false)
	require.Len(t, orients, 2)
	assert.Equal(t, orientation{20, 10, 30}, orients[1])
}

func TestOrientationsDedupWhenSquareFootprint(t *testing.T) {
	p := model.Product{Length: 10, Width: 10, Height: 30, RotatableHorizontal: true}
	orients := orientations(p, false)
	assert.Len(t, orients, 1, "swap should be deduplicated when length==width")
}

func TestOrientationsFullRotationDedup(t *testing.T) {
	p := model.Product{Length: 10, Width: 10, Height: 10, RotatableHorizontal: true}
	orients := orientations(p, true)
	assert.Len(t, orients, 1, "a cube should collapse to 1 orientation under full rotation")

	p2 := model.Product{Length: 10, Width: 20, Height: 30}
	orients2 := orientations(p2, true)
	assert.Len(t, orients2, 6, "a fully asymmetric box should have 6 distinct orientations")
}

func TestGroupProductsPreservesOrder(t *testing.T) {
	products := []model.Product{
		{ID: "a1", Code: "A", Length: 1, Width: 1, Height: 1, Weight: 1},
		{ID: "b1", Code: "B", Length: 2, Width: 2, Height: 2, Weight: 2},
		{ID: "a2", Code: "A", Length: 1, Width: 1, Height: 1, Weight: 1},
	}
	order, groups := groupProducts(products)
	require.Len(t, order, 2)
	assert.Equal(t, "A", order[0].code, "group A should appear first (insertion order)")
	assert.Len(t, groups[order[0]], 2)
}
