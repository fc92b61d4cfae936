/*
 * SPDX-FileCopyrightText: © The geo authors
 * SPDX-License-Identifier: Apache-2.0
 */

package columnar

import (
	"iter"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/pkg/errors"

	"github.com/kylebarron/geo"
	"github.com/kylebarron/geo/x"
)

// Union field names identifying the concrete encoding of each child.
const (
	FieldPoint           = "point"
	FieldLineString      = "linestring"
	FieldPolygon         = "polygon"
	FieldMultiPoint      = "multipoint"
	FieldMultiLineString = "multilinestring"
	FieldMultiPolygon    = "multipolygon"
)

// GeometryArray decodes a dense union of the six concrete encodings into
// values of the full geometry sum. Each union child is named after its
// encoding (see the Field constants); the child arrays are validated and
// wrapped once at construction, and per-row access only follows the
// union's child id and value offset.
//
// Dense unions carry no validity bitmap of their own; an absent geometry
// is a null slot in the selected child.
type GeometryArray[T geo.Num] struct {
	u        *array.DenseUnion
	decoders []func(row int) (geo.Geometry[T], bool)
}

// NewGeometryArray validates every child of u against its declared
// encoding and wraps it.
func NewGeometryArray[T geo.Num](u *array.DenseUnion) (*GeometryArray[T], error) {
	fields := u.UnionType().Fields()
	decoders := make([]func(row int) (geo.Geometry[T], bool), len(fields))
	for i, f := range fields {
		d, err := newChildDecoder[T](f.Name, u.Field(i))
		if err != nil {
			return nil, errors.Wrapf(err, "union field %q", f.Name)
		}
		decoders[i] = d
	}
	return &GeometryArray[T]{u: u, decoders: decoders}, nil
}

func newChildDecoder[T geo.Num](name string, child arrow.Array) (func(row int) (geo.Geometry[T], bool), error) {
	if name == FieldPoint {
		s, ok := child.(*array.Struct)
		if !ok {
			return nil, errors.Errorf("columnar: point child must be struct-encoded, got %s", child.DataType())
		}
		pa, err := NewPointArray[T](s)
		if err != nil {
			return nil, err
		}
		return asGeometry[T](pa.Value), nil
	}

	l, ok := child.(*array.List)
	if !ok {
		return nil, errors.Errorf("columnar: %s child must be list-encoded, got %s", name, child.DataType())
	}
	switch name {
	case FieldLineString:
		a, err := NewLineStringArray[T](l)
		if err != nil {
			return nil, err
		}
		return asGeometry[T](a.Value), nil
	case FieldPolygon:
		a, err := NewPolygonArray[T](l)
		if err != nil {
			return nil, err
		}
		return asGeometry[T](a.Value), nil
	case FieldMultiPoint:
		a, err := NewMultiPointArray[T](l)
		if err != nil {
			return nil, err
		}
		return asGeometry[T](a.Value), nil
	case FieldMultiLineString:
		a, err := NewMultiLineStringArray[T](l)
		if err != nil {
			return nil, err
		}
		return asGeometry[T](a.Value), nil
	case FieldMultiPolygon:
		a, err := NewMultiPolygonArray[T](l)
		if err != nil {
			return nil, err
		}
		return asGeometry[T](a.Value), nil
	default:
		return nil, errors.Errorf("columnar: unknown geometry union field %q", name)
	}
}

// asGeometry lifts a concrete per-row accessor to the geometry sum.
func asGeometry[T geo.Num, G geo.Geometry[T]](value func(int) (G, bool)) func(int) (geo.Geometry[T], bool) {
	return func(row int) (geo.Geometry[T], bool) {
		v, ok := value(row)
		if !ok {
			return nil, false
		}
		return v, true
	}
}

// Len reports the number of rows.
func (a *GeometryArray[T]) Len() int { return a.u.Len() }

// Value returns the geometry at row, or ok=false when row is out of
// bounds or the selected child slot is null.
func (a *GeometryArray[T]) Value(row int) (geo.Geometry[T], bool) {
	if row < 0 || row >= a.u.Len() {
		return nil, false
	}
	id := a.u.ChildID(row)
	return a.decoders[id](int(a.u.ValueOffset(row)))
}

// GeometryCollectionArray decodes a list over a geometry union into
// heterogeneous collection views.
type GeometryCollectionArray[T geo.Num] struct {
	rows  listStorage
	geoms *GeometryArray[T]
}

// NewGeometryCollectionArray validates the nested encoding of a and wraps
// it. Unlike a standalone geometry union, a collection's members cannot be
// absent: a null slot in any union child is rejected here.
func NewGeometryCollectionArray[T geo.Num](a *array.List) (*GeometryCollectionArray[T], error) {
	u, ok := a.ListValues().(*array.DenseUnion)
	if !ok {
		return nil, errors.Errorf(
			"columnar: collection members must be union-encoded, got %s", a.ListValues().DataType())
	}
	for i, f := range u.UnionType().Fields() {
		if err := requireNoNulls(u.Field(i), "collection members ("+f.Name+")"); err != nil {
			return nil, err
		}
	}
	geoms, err := NewGeometryArray[T](u)
	if err != nil {
		return nil, err
	}
	return &GeometryCollectionArray[T]{rows: listStorage{list: a}, geoms: geoms}, nil
}

// Len reports the number of rows.
func (a *GeometryCollectionArray[T]) Len() int { return a.rows.list.Len() }

// Value returns the collection view at row, or ok=false when row is out of
// bounds or null.
func (a *GeometryCollectionArray[T]) Value(row int) (geo.GeometryCollection[T], bool) {
	start, n, ok := a.rows.rangeOf(row)
	if !ok {
		return nil, false
	}
	return GeometryCollection[T]{geoms: a.geoms, start: start, n: n}, true
}

// GeometryCollection is a geo.GeometryCollection view over a sub-range of
// a geometry union.
type GeometryCollection[T geo.Num] struct {
	geoms *GeometryArray[T]
	start int
	n     int
}

func (gc GeometryCollection[T]) Kind() geo.Kind          { return geo.KindGeometryCollection }
func (gc GeometryCollection[T]) Accept(v geo.Visitor[T]) { v.VisitGeometryCollection(gc) }

func (gc GeometryCollection[T]) NumGeometries() int { return gc.n }

func (gc GeometryCollection[T]) Geometry(i int) (geo.Geometry[T], bool) {
	if i < 0 || i >= gc.n {
		return nil, false
	}
	return gc.member(i), true
}

func (gc GeometryCollection[T]) Geometries() iter.Seq[geo.Geometry[T]] {
	return func(yield func(geo.Geometry[T]) bool) {
		for i := range gc.n {
			if !yield(gc.member(i)) {
				return
			}
		}
	}
}

// member decodes one collection member. Construction rejected null union
// slots, so an absent member here is corrupt storage.
func (gc GeometryCollection[T]) member(i int) geo.Geometry[T] {
	g, ok := gc.geoms.Value(gc.start + i)
	x.AssertTruef(ok, "columnar: collection member %d absent", gc.start+i)
	return g
}
