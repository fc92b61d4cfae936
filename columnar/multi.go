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

// MultiPointArray decodes a list<struct<x, y>> array into multi-point
// views. The physical shape is that of LineStringArray; the semantics
// differ.
type MultiPointArray[T geo.Num] struct {
	rows listStorage
	pts  pointStorage[T]
}

// NewMultiPointArray validates the nested encoding of a and wraps it.
func NewMultiPointArray[T geo.Num](a *array.List) (*MultiPointArray[T], error) {
	pts, err := newPointStorage[T](a.ListValues())
	if err != nil {
		return nil, err
	}
	if err := requireNoNulls(pts.coords, "multi-point members"); err != nil {
		return nil, err
	}
	return &MultiPointArray[T]{rows: listStorage{list: a}, pts: pts}, nil
}

// Len reports the number of rows.
func (a *MultiPointArray[T]) Len() int { return a.rows.list.Len() }

// Value returns the multi-point view at row, or ok=false when row is out
// of bounds or null.
func (a *MultiPointArray[T]) Value(row int) (geo.MultiPoint[T], bool) {
	start, n, ok := a.rows.rangeOf(row)
	if !ok {
		return nil, false
	}
	return MultiPoint[T]{pts: a.pts, start: start, n: n}, true
}

// MultiPoint is a geo.MultiPoint view over a sub-range of point storage.
type MultiPoint[T geo.Num] struct {
	pts   pointStorage[T]
	start int
	n     int
}

func (mp MultiPoint[T]) Kind() geo.Kind          { return geo.KindMultiPoint }
func (mp MultiPoint[T]) Accept(v geo.Visitor[T]) { v.VisitMultiPoint(mp) }

func (mp MultiPoint[T]) NumPoints() int { return mp.n }

func (mp MultiPoint[T]) Point(i int) (geo.Point[T], bool) {
	if i < 0 || i >= mp.n {
		return nil, false
	}
	return Point[T]{storage: mp.pts, row: mp.start + i}, true
}

func (mp MultiPoint[T]) Points() iter.Seq[geo.Point[T]] {
	return func(yield func(geo.Point[T]) bool) {
		for i := range mp.n {
			if !yield(Point[T]{storage: mp.pts, row: mp.start + i}) {
				return
			}
		}
	}
}

// MultiLineStringArray decodes a list<list<struct<x, y>>> array into
// multi-line-string views.
type MultiLineStringArray[T geo.Num] struct {
	rows  listStorage // multi -> line strings
	lines listStorage // line string -> points
	pts   pointStorage[T]
}

// NewMultiLineStringArray validates the nested encoding of a and wraps it.
func NewMultiLineStringArray[T geo.Num](a *array.List) (*MultiLineStringArray[T], error) {
	lines, err := asListStorage(a.ListValues(), "multi-linestring members")
	if err != nil {
		return nil, err
	}
	if err := requireNoNulls(lines.list, "multi-linestring members"); err != nil {
		return nil, err
	}
	pts, err := newPointStorage[T](lines.list.ListValues())
	if err != nil {
		return nil, err
	}
	if err := requireNoNulls(pts.coords, "line string coordinates"); err != nil {
		return nil, err
	}
	return &MultiLineStringArray[T]{rows: listStorage{list: a}, lines: lines, pts: pts}, nil
}

// Len reports the number of rows.
func (a *MultiLineStringArray[T]) Len() int { return a.rows.list.Len() }

// Value returns the multi-line-string view at row, or ok=false when row is
// out of bounds or null.
func (a *MultiLineStringArray[T]) Value(row int) (geo.MultiLineString[T], bool) {
	start, n, ok := a.rows.rangeOf(row)
	if !ok {
		return nil, false
	}
	return MultiLineString[T]{lines: a.lines, pts: a.pts, start: start, n: n}, true
}

// MultiLineString is a geo.MultiLineString view over a sub-range of line
// string storage.
type MultiLineString[T geo.Num] struct {
	lines listStorage
	pts   pointStorage[T]
	start int
	n     int
}

func (ml MultiLineString[T]) Kind() geo.Kind          { return geo.KindMultiLineString }
func (ml MultiLineString[T]) Accept(v geo.Visitor[T]) { v.VisitMultiLineString(ml) }

func (ml MultiLineString[T]) NumLineStrings() int { return ml.n }

func (ml MultiLineString[T]) LineString(i int) (geo.LineString[T], bool) {
	if i < 0 || i >= ml.n {
		return nil, false
	}
	return ml.member(i), true
}

func (ml MultiLineString[T]) LineStrings() iter.Seq[geo.LineString[T]] {
	return func(yield func(geo.LineString[T]) bool) {
		for i := range ml.n {
			if !yield(ml.member(i)) {
				return
			}
		}
	}
}

func (ml MultiLineString[T]) member(i int) LineString[T] {
	start, n := ml.lines.nestedRange(ml.start + i)
	return LineString[T]{pts: ml.pts, start: start, n: n}
}

// MultiPolygonArray decodes a list<list<list<struct<x, y>>>> array into
// multi-polygon views.
type MultiPolygonArray[T geo.Num] struct {
	rows  listStorage // multi -> polygons
	polys listStorage // polygon -> rings
	rings listStorage // ring -> points
	pts   pointStorage[T]
}

// NewMultiPolygonArray validates the nested encoding of a and wraps it.
func NewMultiPolygonArray[T geo.Num](a *array.List) (*MultiPolygonArray[T], error) {
	polys, err := asListStorage(a.ListValues(), "multi-polygon members")
	if err != nil {
		return nil, err
	}
	if err := requireNoNulls(polys.list, "multi-polygon members"); err != nil {
		return nil, err
	}
	rings, err := asListStorage(polys.list.ListValues(), "polygon rings")
	if err != nil {
		return nil, err
	}
	if err := requireNoNulls(rings.list, "polygon rings"); err != nil {
		return nil, err
	}
	pts, err := newPointStorage[T](rings.list.ListValues())
	if err != nil {
		return nil, err
	}
	if err := requireNoNulls(pts.coords, "ring coordinates"); err != nil {
		return nil, err
	}
	return &MultiPolygonArray[T]{
		rows:  listStorage{list: a},
		polys: polys,
		rings: rings,
		pts:   pts,
	}, nil
}

// Len reports the number of rows.
func (a *MultiPolygonArray[T]) Len() int { return a.rows.list.Len() }

// Value returns the multi-polygon view at row, or ok=false when row is out
// of bounds or null.
func (a *MultiPolygonArray[T]) Value(row int) (geo.MultiPolygon[T], bool) {
	start, n, ok := a.rows.rangeOf(row)
	if !ok {
		return nil, false
	}
	return MultiPolygon[T]{polys: a.polys, rings: a.rings, pts: a.pts, start: start, n: n}, true
}

// MultiPolygon is a geo.MultiPolygon view over a sub-range of polygon
// storage.
type MultiPolygon[T geo.Num] struct {
	polys listStorage
	rings listStorage
	pts   pointStorage[T]
	start int
	n     int
}

func (mp MultiPolygon[T]) Kind() geo.Kind          { return geo.KindMultiPolygon }
func (mp MultiPolygon[T]) Accept(v geo.Visitor[T]) { v.VisitMultiPolygon(mp) }

func (mp MultiPolygon[T]) NumPolygons() int { return mp.n }

func (mp MultiPolygon[T]) Polygon(i int) (geo.Polygon[T], bool) {
	if i < 0 || i >= mp.n {
		return nil, false
	}
	return mp.member(i), true
}

func (mp MultiPolygon[T]) Polygons() iter.Seq[geo.Polygon[T]] {
	return func(yield func(geo.Polygon[T]) bool) {
		for i := range mp.n {
			if !yield(mp.member(i)) {
				return
			}
		}
	}
}

func (mp MultiPolygon[T]) member(i int) Polygon[T] {
	start, n := mp.polys.nestedRange(mp.start + i)
	return Polygon[T]{rings: mp.rings, pts: mp.pts, start: start, n: n}
}
