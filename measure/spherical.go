/*
 * SPDX-FileCopyrightText: © The geo authors
 * SPDX-License-Identifier: Apache-2.0
 */

package measure

import (
	"github.com/golang/geo/s2"

	"github.com/kylebarron/geo"
)

// EarthRadiusMeters is the radius of the earth in meters (in a spherical
// earth model).
const EarthRadiusMeters = 1000 * 6371

// SphericalPerimeter returns the perimeter of g in meters on a spherical
// earth model. Same zero and recursion rules as GeodesicPerimeter; use it
// when speed matters more than the ellipsoidal correction.
func SphericalPerimeter(g geo.Geometry[float64]) float64 {
	v := &sphericalVisitor{}
	g.Accept(v)
	return v.perimeter
}

// SphericalAreaUnsigned returns the unsigned area of g in square meters on
// a spherical earth model. Rings are assumed to enclose less than one
// hemisphere; bigger loops are flipped, matching how convention-agnostic
// inputs are handled elsewhere in this codebase's lineage.
func SphericalAreaUnsigned(g geo.Geometry[float64]) float64 {
	v := &sphericalVisitor{}
	g.Accept(v)
	return v.area
}

type sphericalVisitor struct {
	perimeter float64
	area      float64
}

func (v *sphericalVisitor) VisitPoint(geo.Point[float64])                     {}
func (v *sphericalVisitor) VisitLineString(geo.LineString[float64])           {}
func (v *sphericalVisitor) VisitMultiPoint(geo.MultiPoint[float64])           {}
func (v *sphericalVisitor) VisitMultiLineString(geo.MultiLineString[float64]) {}

func (v *sphericalVisitor) VisitPolygon(p geo.Polygon[float64]) {
	v.perimeter += sphericalRingLength(p.Exterior())
	outer := sphericalRingArea(p.Exterior())
	var inner float64
	for ring := range p.Interiors() {
		v.perimeter += sphericalRingLength(ring)
		inner += sphericalRingArea(ring)
	}
	v.area += outer - inner
}

func (v *sphericalVisitor) VisitMultiPolygon(mp geo.MultiPolygon[float64]) {
	for p := range mp.Polygons() {
		v.VisitPolygon(p)
	}
}

func (v *sphericalVisitor) VisitGeometryCollection(gc geo.GeometryCollection[float64]) {
	for g := range gc.Geometries() {
		g.Accept(v)
	}
}

func sphericalRingLength(ring geo.LineString[float64]) float64 {
	var total float64
	for l := range geo.Lines(ring) {
		a := pointFromCoord(l.Start)
		b := pointFromCoord(l.End)
		total += a.Distance(b).Radians() * EarthRadiusMeters
	}
	return total
}

// sphericalRingArea returns the area enclosed by ring on the unit sphere,
// scaled to square meters. Rings with fewer than four points (a closed
// triangle needs four, the last repeating the first) enclose nothing.
func sphericalRingArea(ring geo.LineString[float64]) float64 {
	l := loopFromRing(ring)
	if l == nil {
		return 0
	}
	return l.Area() * EarthRadiusMeters * EarthRadiusMeters
}

// loopFromRing converts a closed ring view to an s2.Loop. s2 requires CCW
// orientation and no repeated closing point, while ring storage repeats
// the first point and carries either winding; the loop is built CCW by a
// planar shoelace check and corrected by the cap bound when that fast
// approximation was wrong.
func loopFromRing(ring geo.LineString[float64]) *s2.Loop {
	if ring.NumPoints() < 4 {
		return nil
	}
	cw := isClockwise(ring)
	l := buildLoop(ring, cw)
	if l.CapBound().Radius().Degrees() > 90 {
		l = buildLoop(ring, !cw)
	}
	return l
}

// isClockwise uses the planar shoelace formula as a fast approximation; it
// is wrong for rings containing a pole or crossing the antimeridian, which
// the cap-bound check in loopFromRing catches.
func isClockwise(ring geo.LineString[float64]) bool {
	var a float64
	n := ring.NumPoints()
	for i := range n {
		p1, ok1 := ring.Point(i)
		p2, ok2 := ring.Point((i + 1) % n)
		if !ok1 || !ok2 {
			continue
		}
		a += (p2.X() - p1.X()) * (p1.Y() + p2.Y())
	}
	return a > 0
}

func buildLoop(ring geo.LineString[float64], reverse bool) *s2.Loop {
	// The closing point is dropped: s2 loops are implicitly closed.
	n := ring.NumPoints() - 1
	pts := make([]s2.Point, 0, n)
	for i := range n {
		j := i
		if reverse {
			j = n - i
		}
		p, ok := ring.Point(j)
		if !ok {
			continue
		}
		pts = append(pts, pointFromCoord(geo.Coord[float64]{X: p.X(), Y: p.Y()}))
	}
	return s2.LoopFromPoints(pts)
}

func pointFromCoord(c geo.Coord[float64]) s2.Point {
	// Coordinates are (longitude, latitude) pairs, per GeoJSON.
	return s2.PointFromLatLng(s2.LatLngFromDegrees(c.Y, c.X))
}
