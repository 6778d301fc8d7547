package tile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phillip-keldenich/tiling-problem/geom"
	"github.com/phillip-keldenich/tiling-problem/tile"
)

// asymmetricTile has a drawing with no rotational or mirror symmetry, so
// every one of the eight transforms yields a geometrically distinct result.
func asymmetricTile(name string) tile.TileType {
	d := geom.Drawing{Vertices: []geom.Vertex{{At: geom.Point{X: 0.3, Y: 0.1}}}}

	return tile.NewTileType(name, []float64{1}, []float64{2}, []float64{3}, []float64{4}, d)
}

// symmetricTile has an empty drawing, invariant under every transform.
func symmetricTile(name string) tile.TileType {
	return tile.NewTileType(name, nil, nil, nil, nil, geom.Drawing{})
}

func TestOrientations_FullSymmetryGroup(t *testing.T) {
	orients, err := tile.Orientations([]tile.TileType{asymmetricTile("a")}, tile.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, orients, 8, "asymmetric tile should admit 4 rotations × {id, mirror}")
	for _, o := range orients {
		require.Equal(t, 0, o.ActualIndex)
	}
}

func TestOrientations_SymmetricCollapsesToIdentity(t *testing.T) {
	orients, err := tile.Orientations([]tile.TileType{symmetricTile("s")}, tile.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, orients, 1, "all transforms of a symmetric drawing are duplicates")
	require.Equal(t, 0, orients[0].ActualIndex)
}

func TestOrientations_RotationsOnly(t *testing.T) {
	opts := tile.Options{AllowRotations: true, AllowReflections: false}
	orients, err := tile.Orientations([]tile.TileType{asymmetricTile("a")}, opts)
	require.NoError(t, err)
	require.Len(t, orients, 4)
}

func TestOrientations_NoTransforms(t *testing.T) {
	opts := tile.Options{}
	orients, err := tile.Orientations([]tile.TileType{asymmetricTile("a"), asymmetricTile("b")}, opts)
	require.NoError(t, err)
	// Identical drawings: the second base type merges into the first.
	require.Len(t, orients, 1)
	require.Equal(t, 0, orients[0].ActualIndex, "first-generated orientation keeps its index")
}

// TestOrientations_CrossCatalogDedup checks that duplicates are detected
// across base types, not just within one, and that the first-seen
// ActualIndex wins.
func TestOrientations_CrossCatalogDedup(t *testing.T) {
	a := asymmetricTile("a")
	b := asymmetricTile("b").Rotate(1) // a rotation of the same drawing
	orients, err := tile.Orientations([]tile.TileType{a, b}, tile.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, orients, 8)
	for _, o := range orients {
		require.Equal(t, 0, o.ActualIndex)
	}
}

// TestOrientations_Idempotent runs the generator twice on the same catalog
// and expects identical lengths and identical ActualIndex tagging.
func TestOrientations_Idempotent(t *testing.T) {
	catalog := []tile.TileType{asymmetricTile("a"), symmetricTile("s")}
	first, err := tile.Orientations(catalog, tile.DefaultOptions())
	require.NoError(t, err)
	second, err := tile.Orientations(catalog, tile.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, len(first), len(second))
	for i := range first {
		require.Equal(t, first[i].ActualIndex, second[i].ActualIndex)
	}
}

func TestBoundaryRegistry_DenseIDs(t *testing.T) {
	orients, err := tile.Orientations([]tile.TileType{numberedTile()}, tile.Options{})
	require.NoError(t, err)
	reg := tile.NewBoundaryRegistry(orients)
	// Four sides with distinct single labels: four boundary types, assigned
	// in visit order bottom, right, top, left.
	require.Equal(t, 4, reg.Len())
	id, ok := reg.ID(tile.NewEdgeList([]float64{1}))
	require.True(t, ok)
	require.Equal(t, 0, id)
	id, ok = reg.ID(tile.NewEdgeList([]float64{4}))
	require.True(t, ok)
	require.Equal(t, 3, id)
	_, ok = reg.ID(tile.NewEdgeList([]float64{9}))
	require.False(t, ok)
}

func TestBoundaryRegistry_SideMembership(t *testing.T) {
	orients, err := tile.Orientations([]tile.TileType{numberedTile()}, tile.Options{})
	require.NoError(t, err)
	require.Len(t, orients, 1)
	reg := tile.NewBoundaryRegistry(orients)

	bottomID, _ := reg.ID(tile.NewEdgeList([]float64{1}))
	require.Equal(t, []int{0}, reg.WithSide(tile.SideBottom, bottomID))
	require.Empty(t, reg.WithSide(tile.SideTop, bottomID))
}

// TestBoundaryRegistry_SharedBoundaries merges identical lists across sides
// and orientations into one id.
func TestBoundaryRegistry_SharedBoundaries(t *testing.T) {
	uniform := tile.NewTileType("u",
		[]float64{5}, []float64{5}, []float64{5}, []float64{5}, geom.Drawing{})
	orients, err := tile.Orientations([]tile.TileType{uniform}, tile.Options{})
	require.NoError(t, err)
	reg := tile.NewBoundaryRegistry(orients)
	require.Equal(t, 1, reg.Len())
	id, _ := reg.ID(tile.NewEdgeList([]float64{5}))
	for side := tile.Side(0); side < tile.NumSides; side++ {
		require.Equal(t, []int{0}, reg.WithSide(side, id))
	}
}
