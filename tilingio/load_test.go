package tilingio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phillip-keldenich/tiling-problem/tile"
	"github.com/phillip-keldenich/tiling-problem/tiling"
	"github.com/phillip-keldenich/tiling-problem/tilingio"
)

const sampleDoc = `{
  "instance_name": "pair",
  "tile_types": [
    {
      "name": "a",
      "bottom_edges": [],
      "right_edges": [3, 1],
      "top_edges": [],
      "left_edges": [],
      "drawing": {
        "segments": [
          {"local_start": [-0.5, -0.5], "local_end": [0.5, 0.5]}
        ],
        "vertices": [
          {"location": [0.25, -0.25]}
        ]
      }
    },
    {
      "name": "b",
      "bottom_edges": [],
      "right_edges": [],
      "top_edges": [],
      "left_edges": [1, 3],
      "drawing": {"segments": [], "vertices": [{"location": [0, 0]}]}
    }
  ],
  "tile_type_counts": [1, 1],
  "width": 2,
  "height": 1
}`

func TestParse_Valid(t *testing.T) {
	inst, err := tilingio.Parse([]byte(sampleDoc))
	require.NoError(t, err)
	require.Equal(t, "pair", inst.Name)
	require.Equal(t, 2, inst.Width)
	require.Equal(t, 1, inst.Height)
	require.Equal(t, []int{1, 1}, inst.Counts)
	require.Len(t, inst.TileTypes, 2)

	a := inst.TileTypes[0]
	require.Equal(t, "a", a.Name)
	// Edge lists arrive normalized (sorted ascending).
	require.Equal(t, tile.EdgeList{1, 3}, a.Edges[tile.SideRight])
	require.Len(t, a.Drawing.Segments, 1)
	require.Len(t, a.Drawing.Vertices, 1)
	require.Equal(t, 0.25, a.Drawing.Vertices[0].At.X)
	require.Equal(t, -0.25, a.Drawing.Vertices[0].At.Y)
}

func TestParse_LoadedInstanceSolves(t *testing.T) {
	inst, err := tilingio.Load(strings.NewReader(sampleDoc))
	require.NoError(t, err)
	sol, err := tiling.Solve(inst, tiling.DefaultSolveOptions())
	require.NoError(t, err)
	require.Len(t, sol, 2)
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := tilingio.Parse([]byte(`{"instance_name": `))
	require.Error(t, err)
	require.Contains(t, err.Error(), "tilingio")
}

func TestParse_ValidationErrorsPassThrough(t *testing.T) {
	doc := `{
	  "instance_name": "bad",
	  "tile_types": [],
	  "tile_type_counts": [1],
	  "width": 1,
	  "height": 1
	}`
	_, err := tilingio.Parse([]byte(doc))
	require.ErrorIs(t, err, tiling.ErrCountMismatch)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := tilingio.LoadFile("does-not-exist.json")
	require.Error(t, err)
}
