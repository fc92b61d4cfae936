/*
 * SPDX-FileCopyrightText: © The geo authors
 * SPDX-License-Identifier: Apache-2.0
 */

package columnar

import (
	"iter"

	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/kylebarron/geo"
)

// LineStringArray decodes a list<struct<x, y>> array into line string
// views.
type LineStringArray[T geo.Num] struct {
	rows listStorage
	pts  pointStorage[T]
}

// NewLineStringArray validates the nested encoding of a and wraps it.
func NewLineStringArray[T geo.Num](a *array.List) (*LineStringArray[T], error) {
	pts, err := newPointStorage[T](a.ListValues())
	if err != nil {
		return nil, err
	}
	if err := requireNoNulls(pts.coords, "line string coordinates"); err != nil {
		return nil, err
	}
	return &LineStringArray[T]{rows: listStorage{list: a}, pts: pts}, nil
}

// Len reports the number of rows.
func (a *LineStringArray[T]) Len() int { return a.rows.list.Len() }

// Value returns the line string view at row, or ok=false when row is out
// of bounds or null. No coordinate data is copied; the view records the
// child range only.
func (a *LineStringArray[T]) Value(row int) (geo.LineString[T], bool) {
	start, n, ok := a.rows.rangeOf(row)
	if !ok {
		return nil, false
	}
	return LineString[T]{pts: a.pts, start: start, n: n}, true
}

// LineString is a geo.LineString view over a sub-range of point storage.
type LineString[T geo.Num] struct {
	pts   pointStorage[T]
	start int
	n     int
}

func (ls LineString[T]) Kind() geo.Kind          { return geo.KindLineString }
func (ls LineString[T]) Accept(v geo.Visitor[T]) { v.VisitLineString(ls) }

func (ls LineString[T]) NumPoints() int { return ls.n }

func (ls LineString[T]) Point(i int) (geo.Point[T], bool) {
	if i < 0 || i >= ls.n {
		return nil, false
	}
	return Point[T]{storage: ls.pts, row: ls.start + i}, true
}

func (ls LineString[T]) Points() iter.Seq[geo.Point[T]] {
	return func(yield func(geo.Point[T]) bool) {
		for i := range ls.n {
			if !yield(Point[T]{storage: ls.pts, row: ls.start + i}) {
				return
			}
		}
	}
}
