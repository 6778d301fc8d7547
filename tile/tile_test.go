package tile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phillip-keldenich/tiling-problem/geom"
	"github.com/phillip-keldenich/tiling-problem/tile"
)

// numberedTile carries distinct single-label edges so permutations are visible.
func numberedTile() tile.TileType {
	return tile.NewTileType("numbered",
		[]float64{1}, []float64{2}, []float64{3}, []float64{4},
		geom.Drawing{})
}

func TestNewTileType_NormalizesEdges(t *testing.T) {
	bottom := []float64{3, 1, 2}
	tt := tile.NewTileType("t", bottom, nil, nil, nil, geom.Drawing{})
	require.Equal(t, tile.EdgeList{1, 2, 3}, tt.Edges[tile.SideBottom])
	// The caller's slice must stay untouched.
	require.Equal(t, []float64{3, 1, 2}, bottom)
}

func TestTileTypeRotate_Permutation(t *testing.T) {
	r := numberedTile().Rotate(1)
	require.Equal(t, tile.EdgeList{4}, r.Edges[tile.SideBottom], "left should become bottom")
	require.Equal(t, tile.EdgeList{1}, r.Edges[tile.SideRight])
	require.Equal(t, tile.EdgeList{2}, r.Edges[tile.SideTop])
	require.Equal(t, tile.EdgeList{3}, r.Edges[tile.SideLeft])
}

// TestTileTypeRotate_FullTurn applies rotate(1) four times and expects all
// four edge lists back in their original positions and values.
func TestTileTypeRotate_FullTurn(t *testing.T) {
	tt := numberedTile()
	r := tt.Rotate(1).Rotate(1).Rotate(1).Rotate(1)
	require.Equal(t, tt.Edges, r.Edges)
}

func TestTileTypeReflect_AxisX(t *testing.T) {
	r, err := numberedTile().Reflect(geom.AxisX)
	require.NoError(t, err)
	require.Equal(t, tile.EdgeList{-1}, r.Edges[tile.SideBottom])
	require.Equal(t, tile.EdgeList{-3}, r.Edges[tile.SideTop])
	require.Equal(t, tile.EdgeList{4}, r.Edges[tile.SideRight], "left and right swap unnegated")
	require.Equal(t, tile.EdgeList{2}, r.Edges[tile.SideLeft])
}

func TestTileTypeReflect_AxisY(t *testing.T) {
	r, err := numberedTile().Reflect(geom.AxisY)
	require.NoError(t, err)
	require.Equal(t, tile.EdgeList{3}, r.Edges[tile.SideBottom], "bottom and top swap unnegated")
	require.Equal(t, tile.EdgeList{1}, r.Edges[tile.SideTop])
	require.Equal(t, tile.EdgeList{-2}, r.Edges[tile.SideRight])
	require.Equal(t, tile.EdgeList{-4}, r.Edges[tile.SideLeft])
}

func TestTileTypeReflect_InvalidAxis(t *testing.T) {
	_, err := numberedTile().Reflect(geom.Axis(3))
	require.ErrorIs(t, err, geom.ErrInvalidAxis)
}

func TestBoundaries_Order(t *testing.T) {
	b := numberedTile().Boundaries()
	require.Equal(t, tile.EdgeList{1}, b[tile.SideBottom])
	require.Equal(t, tile.EdgeList{2}, b[tile.SideRight])
	require.Equal(t, tile.EdgeList{3}, b[tile.SideTop])
	require.Equal(t, tile.EdgeList{4}, b[tile.SideLeft])
}

func TestEdgeList_NegateRenormalizes(t *testing.T) {
	e := tile.NewEdgeList([]float64{1, 3})
	require.Equal(t, tile.EdgeList{-3, -1}, e.Negate())
}

func TestEdgeList_Key(t *testing.T) {
	a := tile.NewEdgeList([]float64{2, 1})
	b := tile.NewEdgeList([]float64{1, 2})
	c := tile.NewEdgeList([]float64{1, 2, 2})
	require.Equal(t, a.Key(), b.Key())
	require.NotEqual(t, a.Key(), c.Key())
}
