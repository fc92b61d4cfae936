/*
 * SPDX-FileCopyrightText: © The geo authors
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import "iter"

// MultiPoint is a homogeneous ordered sequence of points.
type MultiPoint[T Num] interface {
	Geometry[T]

	NumPoints() int
	// Point returns the i-th member, or ok=false when i is out of bounds.
	Point(i int) (Point[T], bool)
	Points() iter.Seq[Point[T]]
}

// MultiLineString is a homogeneous ordered sequence of line strings.
type MultiLineString[T Num] interface {
	Geometry[T]

	NumLineStrings() int
	// LineString returns the i-th member, or ok=false when i is out of bounds.
	LineString(i int) (LineString[T], bool)
	LineStrings() iter.Seq[LineString[T]]
}

// MultiPolygon is a homogeneous ordered sequence of polygons.
type MultiPolygon[T Num] interface {
	Geometry[T]

	NumPolygons() int
	// Polygon returns the i-th member, or ok=false when i is out of bounds.
	Polygon(i int) (Polygon[T], bool)
	Polygons() iter.Seq[Polygon[T]]
}
