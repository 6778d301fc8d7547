// Package tilingio loads tiling problem instances from their JSON
// document form and hands them to the core as validated values.
//
// The document shape follows the declarative instance format: an instance
// name, a list of tile types (each with four numeric edge-label lists and
// a drawing made of segment/vertex coordinate pairs), a parallel list of
// required counts, and the target grid dimensions. All normalization
// (edge-list sorting) and validation (count/type length match,
// non-negative counts, positive dimensions) runs exactly once, inside
// tile.NewTileType and tiling.NewInstance.
package tilingio
