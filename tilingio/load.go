package tilingio

import (
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"

	"github.com/phillip-keldenich/tiling-problem/geom"
	"github.com/phillip-keldenich/tiling-problem/tile"
	"github.com/phillip-keldenich/tiling-problem/tiling"
)

// segmentDoc is one drawable segment; coordinates are [x, y] pairs in the
// tile-local frame.
type segmentDoc struct {
	LocalStart [2]float64 `json:"local_start"`
	LocalEnd   [2]float64 `json:"local_end"`
}

// vertexDoc is one drawable vertex.
type vertexDoc struct {
	Location [2]float64 `json:"location"`
}

type drawingDoc struct {
	Segments []segmentDoc `json:"segments"`
	Vertices []vertexDoc  `json:"vertices"`
}

type tileTypeDoc struct {
	Name        string     `json:"name"`
	BottomEdges []float64  `json:"bottom_edges"`
	RightEdges  []float64  `json:"right_edges"`
	TopEdges    []float64  `json:"top_edges"`
	LeftEdges   []float64  `json:"left_edges"`
	Drawing     drawingDoc `json:"drawing"`
}

type instanceDoc struct {
	InstanceName   string        `json:"instance_name"`
	TileTypes      []tileTypeDoc `json:"tile_types"`
	TileTypeCounts []int         `json:"tile_type_counts"`
	Width          int           `json:"width"`
	Height         int           `json:"height"`
}

// Parse decodes a JSON instance document and validates it into a
// tiling.Instance. Validation errors from the core (count mismatch,
// negative counts, bad dimensions) pass through unwrapped so callers can
// match them with errors.Is.
func Parse(data []byte) (*tiling.Instance, error) {
	var doc instanceDoc
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("tilingio: decode instance: %w", err)
	}

	types := make([]tile.TileType, len(doc.TileTypes))
	for i, td := range doc.TileTypes {
		types[i] = tile.NewTileType(td.Name,
			td.BottomEdges, td.RightEdges, td.TopEdges, td.LeftEdges,
			drawingFromDoc(td.Drawing))
	}

	return tiling.NewInstance(doc.InstanceName, types, doc.TileTypeCounts, doc.Width, doc.Height)
}

// Load reads and parses an instance document from r.
func Load(r io.Reader) (*tiling.Instance, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("tilingio: read instance: %w", err)
	}

	return Parse(data)
}

// LoadFile reads and parses an instance document from a file.
func LoadFile(path string) (*tiling.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tilingio: open instance: %w", err)
	}
	defer f.Close()

	return Load(f)
}

func drawingFromDoc(d drawingDoc) geom.Drawing {
	out := geom.Drawing{
		Segments: make([]geom.Segment, len(d.Segments)),
		Vertices: make([]geom.Vertex, len(d.Vertices)),
	}
	for i, s := range d.Segments {
		out.Segments[i] = geom.Segment{
			Start: geom.Point{X: s.LocalStart[0], Y: s.LocalStart[1]},
			End:   geom.Point{X: s.LocalEnd[0], Y: s.LocalEnd[1]},
		}
	}
	for i, v := range d.Vertices {
		out.Vertices[i] = geom.Vertex{At: geom.Point{X: v.Location[0], Y: v.Location[1]}}
	}

	return out
}
