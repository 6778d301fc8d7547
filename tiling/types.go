package tiling

import (
	"errors"

	"github.com/phillip-keldenich/tiling-problem/tile"
)

// Sentinel errors for instance validation and solving.
var (
	// ErrCountMismatch indicates tile types and counts differ in length.
	ErrCountMismatch = errors.New("tiling: tile types and tile type counts must have the same length")
	// ErrNegativeCount indicates a negative required tile count.
	ErrNegativeCount = errors.New("tiling: tile type counts must be non-negative")
	// ErrBadDimensions indicates a non-positive grid width or height.
	ErrBadDimensions = errors.New("tiling: width and height must be positive")
	// ErrNoSolution is the expected outcome when the engine proves that no
	// assignment exists. It is a result, not a fault.
	ErrNoSolution = errors.New("tiling: no solution exists")
	// ErrSolver indicates the engine terminated with an unexpected status.
	ErrSolver = errors.New("tiling: solver failed")
	// ErrIntegrity indicates extraction found zero or multiple active
	// orientations for a cell. With a correctly built model this cannot
	// happen; it signals a modeling or solver bug.
	ErrIntegrity = errors.New("tiling: solution integrity violation")
)

// Cell addresses one grid position, 0 ≤ X < width and 0 ≤ Y < height.
type Cell struct {
	X, Y int
}

// Instance is one tiling problem statement. Counts is parallel to
// TileTypes and states exactly how many cells each base type must occupy.
// Build instances with NewInstance so the invariants hold.
type Instance struct {
	Name      string
	TileTypes []tile.TileType
	Counts    []int
	Width     int
	Height    int
}

// NewInstance validates and returns an instance. It returns
// ErrCountMismatch if types and counts differ in length, ErrNegativeCount
// for any negative count, and ErrBadDimensions for non-positive width or
// height. Edge-label normalization already happened in tile.NewTileType,
// so the inputs are stored as given.
func NewInstance(name string, types []tile.TileType, counts []int, width, height int) (*Instance, error) {
	if len(types) != len(counts) {
		return nil, ErrCountMismatch
	}
	for _, c := range counts {
		if c < 0 {
			return nil, ErrNegativeCount
		}
	}
	if width < 1 || height < 1 {
		return nil, ErrBadDimensions
	}

	return &Instance{
		Name:      name,
		TileTypes: types,
		Counts:    counts,
		Width:     width,
		Height:    height,
	}, nil
}

// NumCells returns width×height.
func (in *Instance) NumCells() int {
	return in.Width * in.Height
}

// InBounds reports whether (x,y) lies within the target grid.
func (in *Instance) InBounds(x, y int) bool {
	return x >= 0 && x < in.Width && y >= 0 && y < in.Height
}

// index maps a cell to its row-major position: y*Width + x.
func (in *Instance) index(c Cell) int {
	return c.Y*in.Width + c.X
}

// Solution is the total mapping from every grid cell to the orientation
// occupying it. It is only ever produced fully populated.
type Solution map[Cell]tile.Orientation
