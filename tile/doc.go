// Package tile models square tile types for edge-matching tiling puzzles
// and expands them into their distinct symmetry orientations.
//
// What:
//
//   - TileType: four canonically sorted edge-label lists (bottom, right,
//     top, left) plus a geom.Drawing; Rotate and Reflect yield new values.
//   - Orientation: a rotated/reflected variant of a TileType that remembers
//     the catalog position of its base type (ActualIndex).
//   - Orientations: enumerates rotation×reflection combinations per base
//     type and deduplicates geometrically identical results across the
//     whole catalog (drawing equality; first-generated wins).
//   - BoundaryRegistry: assigns a dense integer id to every distinct
//     edge-label list appearing on any side of any orientation, and
//     records which orientations exhibit each id on each side.
//
// Why:
//
//   - The constraint encoding of the puzzle needs a compact, duplicate-free
//     orientation list and a dense boundary-type id space; both are built
//     here, once per solve.
//
// Complexity: orientation generation is O(k²) pairwise drawing comparisons
// for k generated candidates (catalogs are tens of tiles, not thousands);
// registry construction is O(k).
package tile
