package tile

import "github.com/phillip-keldenich/tiling-problem/geom"

// Options controls which symmetry transforms the orientation generator
// may apply to each base tile type.
type Options struct {
	// AllowRotations enables the three non-trivial quarter-turn rotations.
	AllowRotations bool
	// AllowReflections enables the x, y and composed x-then-y reflections.
	AllowReflections bool
}

// DefaultOptions returns Options with both rotations and reflections enabled.
func DefaultOptions() Options {
	return Options{AllowRotations: true, AllowReflections: true}
}

// reflectionCombos lists the reflection compositions to apply, identity
// first. The "xy" entry composes reflect-x then reflect-y; for axis-aligned
// mirrors the order is immaterial (the result is a half-turn either way).
var reflectionCombos = [][]geom.Axis{
	nil,
	{geom.AxisX},
	{geom.AxisY},
	{geom.AxisX, geom.AxisY},
}

// Orientations expands the base catalog into the list of distinct
// orientations. For each base type at catalog position i it applies every
// allowed reflection combination, then every allowed rotation, and keeps
// the result only if its drawing differs from every orientation already
// accepted, across the whole catalog, so two base types whose drawings
// coincide under some transform merge into one orientation carrying the
// first-seen ActualIndex. Generation order (base type outermost, reflection,
// then rotation) therefore decides which index wins a duplicate.
func Orientations(types []TileType, opts Options) ([]Orientation, error) {
	combos := reflectionCombos[:1]
	if opts.AllowReflections {
		combos = reflectionCombos
	}
	rotations := 1
	if opts.AllowRotations {
		rotations = 4
	}

	var result []Orientation
	for actualIndex, base := range types {
		for _, combo := range combos {
			reflected := base
			for _, axis := range combo {
				var err error
				reflected, err = reflected.Reflect(axis)
				if err != nil {
					return nil, err
				}
			}
			for rot := 0; rot < rotations; rot++ {
				candidate := reflected.Rotate(rot)
				if duplicate(candidate, result) {
					continue
				}
				result = append(result, Orientation{TileType: candidate, ActualIndex: actualIndex})
			}
		}
	}

	return result, nil
}

// duplicate reports whether candidate's drawing coincides with any already
// accepted orientation.
func duplicate(candidate TileType, accepted []Orientation) bool {
	for _, o := range accepted {
		if candidate.AlmostEqual(o.TileType) {
			return true
		}
	}

	return false
}
