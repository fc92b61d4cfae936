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

// PolygonArray decodes a list<list<struct<x, y>>> array into polygon
// views. Ring 0 of each row is the exterior; rings 1..N are interiors.
type PolygonArray[T geo.Num] struct {
	rows  listStorage // polygon -> rings
	rings listStorage // ring -> points
	pts   pointStorage[T]
}

// NewPolygonArray validates the nested encoding of a and wraps it.
func NewPolygonArray[T geo.Num](a *array.List) (*PolygonArray[T], error) {
	rings, err := asListStorage(a.ListValues(), "polygon rings")
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
	return &PolygonArray[T]{rows: listStorage{list: a}, rings: rings, pts: pts}, nil
}

// Len reports the number of rows.
func (a *PolygonArray[T]) Len() int { return a.rows.list.Len() }

// Value returns the polygon view at row, or ok=false when row is out of
// bounds or null.
func (a *PolygonArray[T]) Value(row int) (geo.Polygon[T], bool) {
	start, n, ok := a.rows.rangeOf(row)
	if !ok {
		return nil, false
	}
	return Polygon[T]{rings: a.rings, pts: a.pts, start: start, n: n}, true
}

// Polygon is a geo.Polygon view over a sub-range of ring storage.
type Polygon[T geo.Num] struct {
	rings listStorage
	pts   pointStorage[T]
	start int // first physical ring of this polygon
	n     int // total rings, exterior included
}

func (p Polygon[T]) Kind() geo.Kind          { return geo.KindPolygon }
func (p Polygon[T]) Accept(v geo.Visitor[T]) { v.VisitPolygon(p) }

// Exterior returns physical ring 0. A polygon stored with no rings at all
// yields an empty line string: the exterior is always present, it is
// never "no polygon".
func (p Polygon[T]) Exterior() geo.LineString[T] {
	if p.n > 0 {
		return p.ring(0)
	}
	return LineString[T]{pts: p.pts}
}

func (p Polygon[T]) NumInteriors() int {
	if p.n > 0 {
		return p.n - 1
	}
	return 0
}

// Interior maps the public hole index to physical ring i+1: Interior(0) is
// the first hole, never the exterior.
func (p Polygon[T]) Interior(i int) (geo.LineString[T], bool) {
	if i < 0 || i >= p.NumInteriors() {
		return nil, false
	}
	return p.ring(i + 1), true
}

func (p Polygon[T]) Interiors() iter.Seq[geo.LineString[T]] {
	return func(yield func(geo.LineString[T]) bool) {
		for i := range p.NumInteriors() {
			if !yield(p.ring(i + 1)) {
				return
			}
		}
	}
}

func (p Polygon[T]) ring(i int) LineString[T] {
	start, n := p.rings.nestedRange(p.start + i)
	return LineString[T]{pts: p.pts, start: start, n: n}
}
