// Package geom provides the drawable primitives of a tile (points,
// segments, vertices and whole drawings) together with the exact
// quarter-turn transforms used during catalog expansion.
//
// What:
//
//   - Point, Segment, Vertex, Drawing: immutable values in a tile-local
//     frame (origin at the tile center, half-extent 1 on each axis).
//   - Rotate(amount): rotation by amount×90° about the origin, using
//     exact quarter-turn constants so repeated calls never drift.
//   - Reflect(axis): mirror across the vertical (AxisX) or horizontal
//     (AxisY) axis; any other axis value is a configuration error.
//   - Translate(dx, dy): final layout placement only.
//   - AlmostEqual: ε-tolerant multiset equality of drawings, used to
//     deduplicate symmetry-equivalent tile orientations.
//
// Why:
//
//   - Tile symmetry reduction compares rotated/reflected drawings for
//     geometric identity; exactness of the quarter-turn math and the
//     ε predicate is what makes that comparison reliable.
//
// Complexity: transforms are O(n) in drawing size; Drawing.AlmostEqual
// is O(n²) greedy matching, acceptable for the small drawings involved.
package geom
