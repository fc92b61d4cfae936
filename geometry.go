/*
 * SPDX-FileCopyrightText: © The geo authors
 * SPDX-License-Identifier: Apache-2.0
 */

// Package geo defines a read-only view abstraction over planar geometries.
//
// The interfaces here describe the logical structure of simple-feature
// geometries (points, line strings, polygons and their multi/collection
// variants) without fixing a physical representation. Algorithms written
// against these interfaces run unchanged over owned in-memory structures
// (package native) and over Arrow-style columnar arrays (package columnar),
// in both cases without copying or re-encoding coordinate data.
//
// Every value implementing these interfaces is an immutable view: accessors
// are pure reads with no hidden caching, so views may be shared across
// goroutines without synchronization.
package geo

import "golang.org/x/exp/constraints"

// Num constrains the coordinate element type of a geometry. Backends
// instantiate the hierarchy once for their storage's element type,
// typically float64.
type Num interface {
	constraints.Float
}

// Kind identifies the variant held by a Geometry value.
type Kind int

const (
	KindPoint Kind = iota
	KindLineString
	KindPolygon
	KindMultiPoint
	KindMultiLineString
	KindMultiPolygon
	KindGeometryCollection
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindLineString:
		return "LineString"
	case KindPolygon:
		return "Polygon"
	case KindMultiPoint:
		return "MultiPoint"
	case KindMultiLineString:
		return "MultiLineString"
	case KindMultiPolygon:
		return "MultiPolygon"
	case KindGeometryCollection:
		return "GeometryCollection"
	default:
		return "Unknown"
	}
}

// Geometry is the closed sum over the seven geometry kinds. Algorithms that
// must handle any shape dispatch through Accept; because Visitor has one
// method per kind, adding a kind is a compile-time-visible change to every
// algorithm rather than a silently ignored default case.
type Geometry[T Num] interface {
	// Kind reports which variant this geometry is.
	Kind() Kind

	// Accept calls the Visitor method corresponding to this geometry's kind.
	Accept(v Visitor[T])
}

// Visitor dispatches over the variants of a Geometry. Implementations carry
// their own accumulator state; Accept invokes exactly one method.
type Visitor[T Num] interface {
	VisitPoint(Point[T])
	VisitLineString(LineString[T])
	VisitPolygon(Polygon[T])
	VisitMultiPoint(MultiPoint[T])
	VisitMultiLineString(MultiLineString[T])
	VisitMultiPolygon(MultiPolygon[T])
	VisitGeometryCollection(GeometryCollection[T])
}
