// Package render draws solved tilings. Each cell's orientation drawing is
// translated from its tile-local frame (origin at tile center, half-extent
// 1) to the cell's position at (2x, 2y), with gray cell boundaries drawn
// underneath the tile segments and vertices.
//
// Two writers are provided: WriteSVG emits a scalable vector document;
// WritePNG rasterizes the same layout through golang.org/x/image/vector.
// Rendering carries no decision logic; it consumes only the Solution
// mapping and the orientations' drawings.
package render
