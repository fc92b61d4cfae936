/*
 * SPDX-FileCopyrightText: © The geo authors
 * SPDX-License-Identifier: Apache-2.0
 */

package columnar

import (
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/kylebarron/geo"
)

// PointArray decodes a struct<x, y> array into point views.
type PointArray[T geo.Num] struct {
	pts pointStorage[T]
}

// NewPointArray validates that a holds two floating coordinate columns of
// the backend's element type and wraps it. The type check happens here
// once; Value never asserts.
func NewPointArray[T geo.Num](a *array.Struct) (*PointArray[T], error) {
	pts, err := newPointStorage[T](a)
	if err != nil {
		return nil, err
	}
	return &PointArray[T]{pts: pts}, nil
}

// Len reports the number of rows.
func (a *PointArray[T]) Len() int { return a.pts.coords.Len() }

// Value returns the point view at row, or ok=false when row is out of
// bounds or null.
func (a *PointArray[T]) Value(row int) (geo.Point[T], bool) {
	return a.pts.value(row)
}

// Point is a geo.Point view over one row of coordinate storage. The (x, y)
// pair is read from the backing columns only when an accessor runs.
type Point[T geo.Num] struct {
	storage pointStorage[T]
	row     int
}

func (p Point[T]) Kind() geo.Kind          { return geo.KindPoint }
func (p Point[T]) Accept(v geo.Visitor[T]) { v.VisitPoint(p) }
func (p Point[T]) X() T                    { return p.storage.xs.Value(p.row) }
func (p Point[T]) Y() T                    { return p.storage.ys.Value(p.row) }
