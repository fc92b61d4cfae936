/*
 * SPDX-FileCopyrightText: © The geo authors
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import "iter"

// Polygon is one exterior ring plus zero or more interior rings (holes).
// Under the Simple Features convention the exterior is wound
// counter-clockwise and interiors clockwise; a violated convention does not
// error, it flips the sign of area contributions downstream.
type Polygon[T Num] interface {
	Geometry[T]

	// Exterior returns the exterior ring. It is always present: a polygon
	// whose exterior has zero points returns an empty LineString, which is
	// distinct from "no polygon".
	Exterior() LineString[T]

	// NumInteriors reports the number of interior rings, never counting
	// the exterior.
	NumInteriors() int

	// Interior returns the i-th interior ring, zero-based over holes only:
	// Interior(0) is the first hole, never the exterior. ok=false when i is
	// out of bounds.
	Interior(i int) (LineString[T], bool)

	// Interiors returns a restartable iterator over the interior rings.
	Interiors() iter.Seq[LineString[T]]
}
