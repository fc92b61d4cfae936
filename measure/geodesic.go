/*
 * SPDX-FileCopyrightText: © The geo authors
 * SPDX-License-Identifier: Apache-2.0
 */

// Package measure computes perimeter and area of any geometry view,
// oblivious to the backend that supplied it. The geodesic functions use
// Karney's polygon-area accumulation on the WGS84 ellipsoid via
// geographiclib; the spherical functions use the cheaper spherical earth
// model on s2. This package only feeds coordinates to those libraries, it
// reimplements neither integration.
package measure

import (
	"math"

	geographic "github.com/pymaxion/geographiclib-go/geodesic"

	"github.com/kylebarron/geo"
)

// GeodesicPerimeterAreaSigned returns the perimeter (meters) and signed
// area (square meters) of g on the WGS84 ellipsoid.
//
// Exterior rings are assumed wound counter-clockwise and interior rings
// clockwise, per the Simple Features convention. The polygon is assumed
// smaller than half the earth. A negative area means either reversed input
// winding or a polygon covering more than a hemisphere; both surface as
// the same value and the caller disambiguates.
func GeodesicPerimeterAreaSigned(g geo.Geometry[float64]) (perimeter, area float64) {
	v := &geodesicVisitor{sign: true}
	g.Accept(v)
	return v.perimeter, v.area
}

// GeodesicPerimeterAreaUnsigned returns the perimeter and unsigned area of
// g on the WGS84 ellipsoid. Valid for polygons of any size, up to the
// whole globe, but requires convention-following input winding: a reversed
// ring yields an incorrect result, not merely a sign-flipped one.
func GeodesicPerimeterAreaUnsigned(g geo.Geometry[float64]) (perimeter, area float64) {
	v := &geodesicVisitor{sign: false}
	g.Accept(v)
	return v.perimeter, v.area
}

// GeodesicAreaSigned returns the signed area of g in square meters. See
// GeodesicPerimeterAreaSigned for the winding and size assumptions.
func GeodesicAreaSigned(g geo.Geometry[float64]) float64 {
	_, area := GeodesicPerimeterAreaSigned(g)
	return area
}

// GeodesicAreaUnsigned returns the unsigned area of g in square meters.
// See GeodesicPerimeterAreaUnsigned for the winding requirement.
func GeodesicAreaUnsigned(g geo.Geometry[float64]) float64 {
	_, area := GeodesicPerimeterAreaUnsigned(g)
	return area
}

// GeodesicPerimeter returns the perimeter of g in meters. For a polygon
// this is the length of the exterior ring plus all interior rings; the
// signed/unsigned distinction does not apply to length. Zero- and
// one-dimensional geometries have perimeter zero.
func GeodesicPerimeter(g geo.Geometry[float64]) float64 {
	perimeter, _ := GeodesicPerimeterAreaSigned(g)
	return perimeter
}

// geodesicVisitor accumulates perimeter and area over the geometry sum.
// Points, line strings and their multi variants contribute exactly zero;
// multi-polygons and collections sum their members recursively.
type geodesicVisitor struct {
	sign      bool
	perimeter float64
	area      float64
}

func (v *geodesicVisitor) VisitPoint(geo.Point[float64])                     {}
func (v *geodesicVisitor) VisitLineString(geo.LineString[float64])           {}
func (v *geodesicVisitor) VisitMultiPoint(geo.MultiPoint[float64])           {}
func (v *geodesicVisitor) VisitMultiLineString(geo.MultiLineString[float64]) {}

func (v *geodesicVisitor) VisitPolygon(p geo.Polygon[float64]) {
	perimeter, area := polygonPerimeterArea(p, v.sign)
	v.perimeter += perimeter
	v.area += area
}

func (v *geodesicVisitor) VisitMultiPolygon(mp geo.MultiPolygon[float64]) {
	for p := range mp.Polygons() {
		v.VisitPolygon(p)
	}
}

func (v *geodesicVisitor) VisitGeometryCollection(gc geo.GeometryCollection[float64]) {
	for g := range gc.Geometries() {
		g.Accept(v)
	}
}

func polygonPerimeterArea(p geo.Polygon[float64], sign bool) (float64, float64) {
	// Exterior accumulated counter-clockwise positive.
	outerPerimeter, outerArea := ringPerimeterArea(p.Exterior(), false, sign)

	// Interior rings accumulated clockwise positive; their absolute areas
	// are summed and subtracted from the exterior's.
	var innerPerimeter, innerArea float64
	for ring := range p.Interiors() {
		perimeter, area := ringPerimeterArea(ring, true, sign)
		innerPerimeter += perimeter
		innerArea += math.Abs(area)
	}

	// Holes always subtract, even when a stray sign artifact left the
	// exterior negative.
	if outerArea < 0 && innerArea > 0 {
		innerArea = -innerArea
	}
	return outerPerimeter + innerPerimeter, outerArea - innerArea
}

// ringPerimeterArea feeds one ring's (lat, lon) stream into the Karney
// accumulator. reverse selects clockwise-positive winding; sign selects
// the signed result. Degenerate rings (fewer than three points) come back
// as zero area and zero-or-segment perimeter.
func ringPerimeterArea(ring geo.LineString[float64], reverse, sign bool) (float64, float64) {
	pa := geographic.NewPolygonArea(geographic.WGS84, false)
	for p := range ring.Points() {
		pa.AddPoint(p.Y(), p.X())
	}
	r := pa.Compute(reverse, sign)
	return r.Perimeter, r.Area
}
