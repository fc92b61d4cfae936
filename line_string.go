/*
 * SPDX-FileCopyrightText: © The geo authors
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import "iter"

// LineString is an ordered sequence of points. A length of zero or one is
// legal at this layer; whether a ring is properly closed is the caller's
// concern.
type LineString[T Num] interface {
	Geometry[T]

	// NumPoints reports the number of points in the sequence.
	NumPoints() int

	// Point returns the i-th point, or ok=false when i is out of bounds.
	// It never panics.
	Point(i int) (Point[T], bool)

	// Points returns a finite, restartable iterator over all points. Its
	// length equals NumPoints.
	Points() iter.Seq[Point[T]]
}

// FirstPoint returns the first point of ls, or ok=false when ls is empty.
func FirstPoint[T Num](ls LineString[T]) (Point[T], bool) {
	return ls.Point(0)
}

// LastPoint returns the last point of ls, or ok=false when ls is empty.
func LastPoint[T Num](ls LineString[T]) (Point[T], bool) {
	return ls.Point(ls.NumPoints() - 1)
}

// Lines iterates over the NumPoints-1 consecutive segments of ls. A line
// string with fewer than two points yields nothing.
func Lines[T Num](ls LineString[T]) iter.Seq[Line[T]] {
	return func(yield func(Line[T]) bool) {
		var prev Coord[T]
		first := true
		for p := range ls.Points() {
			cur := Coord[T]{X: p.X(), Y: p.Y()}
			if !first && !yield(Line[T]{Start: prev, End: cur}) {
				return
			}
			prev, first = cur, false
		}
	}
}
