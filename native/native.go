/*
 * SPDX-FileCopyrightText: © The geo authors
 * SPDX-License-Identifier: Apache-2.0
 */

// Package native implements the geo view interfaces over owned go-geom
// structures resident in memory. It is the reference backend: no decoding
// happens here, only bounds-checked reads of coordinate slices, so it is the
// baseline that algorithm results from other backends are validated against.
package native

import (
	"iter"

	"github.com/pkg/errors"
	geomlib "github.com/twpayne/go-geom"

	"github.com/kylebarron/geo"
	"github.com/kylebarron/geo/x"
)

// Wrap adapts any 2D go-geom value into the geo view hierarchy. Layouts with
// additional dimensions are rejected; this package only reads (x, y) pairs.
func Wrap(g geomlib.T) (geo.Geometry[float64], error) {
	// A collection's stride is derived from its members and is zero when
	// empty, so members are validated individually.
	if gc, ok := g.(*geomlib.GeometryCollection); ok {
		for i := range gc.NumGeoms() {
			if _, err := Wrap(gc.Geom(i)); err != nil {
				return nil, errors.Wrapf(err, "collection member %d", i)
			}
		}
		return GeometryCollection{G: gc}, nil
	}
	if g.Stride() != 2 {
		return nil, errors.Errorf("native: only 2D coordinates are supported, got stride %d", g.Stride())
	}
	switch v := g.(type) {
	case *geomlib.Point:
		return Point{v}, nil
	case *geomlib.LineString:
		return LineString{v}, nil
	case *geomlib.LinearRing:
		return LineString{v}, nil
	case *geomlib.Polygon:
		return Polygon{v}, nil
	case *geomlib.MultiPoint:
		return MultiPoint{v}, nil
	case *geomlib.MultiLineString:
		return MultiLineString{v}, nil
	case *geomlib.MultiPolygon:
		return MultiPolygon{v}, nil
	default:
		return nil, errors.Errorf("native: unsupported geometry type %T", g)
	}
}

// Point is a geo.Point view over a *geom.Point.
type Point struct {
	G *geomlib.Point
}

func (p Point) Kind() geo.Kind                { return geo.KindPoint }
func (p Point) Accept(v geo.Visitor[float64]) { v.VisitPoint(p) }
func (p Point) X() float64                    { return p.G.X() }
func (p Point) Y() float64                    { return p.G.Y() }

// coordSeq is the read surface shared by *geom.LineString and
// *geom.LinearRing; polygon rings are LinearRings in go-geom but both are
// plain coordinate sequences to this package.
type coordSeq interface {
	NumCoords() int
	Coord(i int) geomlib.Coord
}

// coordPoint is a point view over one coordinate of a sequence,
// materialized only when an accessor runs.
type coordPoint struct {
	seq coordSeq
	i   int
}

func (p coordPoint) Kind() geo.Kind                { return geo.KindPoint }
func (p coordPoint) Accept(v geo.Visitor[float64]) { v.VisitPoint(p) }
func (p coordPoint) X() float64                    { return p.seq.Coord(p.i)[0] }
func (p coordPoint) Y() float64                    { return p.seq.Coord(p.i)[1] }

// LineString is a geo.LineString view over a go-geom coordinate sequence.
type LineString struct {
	G coordSeq
}

func (ls LineString) Kind() geo.Kind                { return geo.KindLineString }
func (ls LineString) Accept(v geo.Visitor[float64]) { v.VisitLineString(ls) }

func (ls LineString) NumPoints() int { return ls.G.NumCoords() }

func (ls LineString) Point(i int) (geo.Point[float64], bool) {
	if i < 0 || i >= ls.G.NumCoords() {
		return nil, false
	}
	return coordPoint{seq: ls.G, i: i}, true
}

func (ls LineString) Points() iter.Seq[geo.Point[float64]] {
	return func(yield func(geo.Point[float64]) bool) {
		for i := range ls.G.NumCoords() {
			if !yield(coordPoint{seq: ls.G, i: i}) {
				return
			}
		}
	}
}

// Polygon is a geo.Polygon view over a *geom.Polygon. go-geom stores the
// exterior as linear ring 0; holes follow.
type Polygon struct {
	G *geomlib.Polygon
}

func (p Polygon) Kind() geo.Kind                { return geo.KindPolygon }
func (p Polygon) Accept(v geo.Visitor[float64]) { v.VisitPolygon(p) }

func (p Polygon) Exterior() geo.LineString[float64] {
	if p.G.NumLinearRings() == 0 {
		return LineString{G: geomlib.NewLinearRing(p.G.Layout())}
	}
	return LineString{G: p.G.LinearRing(0)}
}

func (p Polygon) NumInteriors() int {
	if n := p.G.NumLinearRings(); n > 0 {
		return n - 1
	}
	return 0
}

func (p Polygon) Interior(i int) (geo.LineString[float64], bool) {
	if i < 0 || i >= p.NumInteriors() {
		return nil, false
	}
	return LineString{G: p.G.LinearRing(i + 1)}, true
}

func (p Polygon) Interiors() iter.Seq[geo.LineString[float64]] {
	return func(yield func(geo.LineString[float64]) bool) {
		for i := range p.NumInteriors() {
			if !yield(LineString{G: p.G.LinearRing(i + 1)}) {
				return
			}
		}
	}
}

// MultiPoint is a geo.MultiPoint view over a *geom.MultiPoint.
type MultiPoint struct {
	G *geomlib.MultiPoint
}

func (mp MultiPoint) Kind() geo.Kind                { return geo.KindMultiPoint }
func (mp MultiPoint) Accept(v geo.Visitor[float64]) { v.VisitMultiPoint(mp) }

func (mp MultiPoint) NumPoints() int { return mp.G.NumPoints() }

func (mp MultiPoint) Point(i int) (geo.Point[float64], bool) {
	if i < 0 || i >= mp.G.NumPoints() {
		return nil, false
	}
	return Point{G: mp.G.Point(i)}, true
}

func (mp MultiPoint) Points() iter.Seq[geo.Point[float64]] {
	return func(yield func(geo.Point[float64]) bool) {
		for i := range mp.G.NumPoints() {
			if !yield(Point{G: mp.G.Point(i)}) {
				return
			}
		}
	}
}

// MultiLineString is a geo.MultiLineString view over a *geom.MultiLineString.
type MultiLineString struct {
	G *geomlib.MultiLineString
}

func (ml MultiLineString) Kind() geo.Kind                { return geo.KindMultiLineString }
func (ml MultiLineString) Accept(v geo.Visitor[float64]) { v.VisitMultiLineString(ml) }

func (ml MultiLineString) NumLineStrings() int { return ml.G.NumLineStrings() }

func (ml MultiLineString) LineString(i int) (geo.LineString[float64], bool) {
	if i < 0 || i >= ml.G.NumLineStrings() {
		return nil, false
	}
	return LineString{G: ml.G.LineString(i)}, true
}

func (ml MultiLineString) LineStrings() iter.Seq[geo.LineString[float64]] {
	return func(yield func(geo.LineString[float64]) bool) {
		for i := range ml.G.NumLineStrings() {
			if !yield(LineString{G: ml.G.LineString(i)}) {
				return
			}
		}
	}
}

// MultiPolygon is a geo.MultiPolygon view over a *geom.MultiPolygon.
type MultiPolygon struct {
	G *geomlib.MultiPolygon
}

func (mp MultiPolygon) Kind() geo.Kind                { return geo.KindMultiPolygon }
func (mp MultiPolygon) Accept(v geo.Visitor[float64]) { v.VisitMultiPolygon(mp) }

func (mp MultiPolygon) NumPolygons() int { return mp.G.NumPolygons() }

func (mp MultiPolygon) Polygon(i int) (geo.Polygon[float64], bool) {
	if i < 0 || i >= mp.G.NumPolygons() {
		return nil, false
	}
	return Polygon{G: mp.G.Polygon(i)}, true
}

func (mp MultiPolygon) Polygons() iter.Seq[geo.Polygon[float64]] {
	return func(yield func(geo.Polygon[float64]) bool) {
		for i := range mp.G.NumPolygons() {
			if !yield(Polygon{G: mp.G.Polygon(i)}) {
				return
			}
		}
	}
}

// GeometryCollection is a geo.GeometryCollection view over a
// *geom.GeometryCollection. Wrap validates every member up front; a
// collection built around unvalidated members fails loudly on access
// rather than dropping them.
type GeometryCollection struct {
	G *geomlib.GeometryCollection
}

func (gc GeometryCollection) Kind() geo.Kind                { return geo.KindGeometryCollection }
func (gc GeometryCollection) Accept(v geo.Visitor[float64]) { v.VisitGeometryCollection(gc) }

func (gc GeometryCollection) NumGeometries() int { return gc.G.NumGeoms() }

func (gc GeometryCollection) Geometry(i int) (geo.Geometry[float64], bool) {
	if i < 0 || i >= gc.G.NumGeoms() {
		return nil, false
	}
	g, err := Wrap(gc.G.Geom(i))
	x.Checkf(err, "collection member %d", i)
	return g, true
}

func (gc GeometryCollection) Geometries() iter.Seq[geo.Geometry[float64]] {
	return func(yield func(geo.Geometry[float64]) bool) {
		for i := range gc.G.NumGeoms() {
			g, ok := gc.Geometry(i)
			if !ok {
				return
			}
			if !yield(g) {
				return
			}
		}
	}
}
