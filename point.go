/*
 * SPDX-FileCopyrightText: © The geo authors
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

// Coord is a plain (x, y) coordinate pair, read by value. It is the one
// concrete data type in the hierarchy; everything else is a view.
type Coord[T Num] struct {
	X, Y T
}

// Point is a single coordinate pair. Both accessors are total.
type Point[T Num] interface {
	Geometry[T]

	X() T
	Y() T
}

// Line is a directed segment between two consecutive points of a
// LineString, produced by Lines.
type Line[T Num] struct {
	Start, End Coord[T]
}
