/*
 * SPDX-FileCopyrightText: © The geo authors
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import "iter"

// GeometryCollection is a heterogeneous ordered sequence of geometries,
// including nested collections.
type GeometryCollection[T Num] interface {
	Geometry[T]

	NumGeometries() int
	// Geometry returns the i-th member, or ok=false when i is out of bounds.
	Geometry(i int) (Geometry[T], bool)
	Geometries() iter.Seq[Geometry[T]]
}
