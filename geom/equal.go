package geom

import "math"

// AlmostEqualPoints reports whether p and q lie within eps of each other
// (Euclidean distance). Pass Epsilon unless a caller needs a custom tolerance.
func AlmostEqualPoints(p, q Point, eps float64) bool {
	return math.Hypot(p.X-q.X, p.Y-q.Y) < eps
}

// AlmostEqualSegments reports whether the endpoints of s1 and s2 correspond
// under either orientation; segments are undirected.
func AlmostEqualSegments(s1, s2 Segment, eps float64) bool {
	if AlmostEqualPoints(s1.Start, s2.Start, eps) && AlmostEqualPoints(s1.End, s2.End, eps) {
		return true
	}

	return AlmostEqualPoints(s1.Start, s2.End, eps) && AlmostEqualPoints(s1.End, s2.Start, eps)
}

// AlmostEqual reports whether every vertex and segment of d finds a distinct
// ε-close counterpart in other (greedy first-match removal). It is an
// unordered multiset comparison in a shared frame, not a congruence check:
// both drawings are expected to sit at the tile-local origin already.
// Complexity: O(n²) pairwise tests; drawings are small.
func (d Drawing) AlmostEqual(other Drawing) bool {
	usedV := make([]bool, len(other.Vertices))
	for _, v := range d.Vertices {
		found := false
		for i, ov := range other.Vertices {
			if usedV[i] {
				continue
			}
			if AlmostEqualPoints(v.At, ov.At, Epsilon) {
				usedV[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	usedS := make([]bool, len(other.Segments))
	for _, s := range d.Segments {
		found := false
		for i, os := range other.Segments {
			if usedS[i] {
				continue
			}
			if AlmostEqualSegments(s, os, Epsilon) {
				usedS[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
