/*
 * SPDX-FileCopyrightText: © The geo authors
 * SPDX-License-Identifier: Apache-2.0
 */

// Package columnar implements the geo view interfaces over Arrow nested
// arrays, so algorithms can run against millions of geometries stored
// contiguously without materializing owned copies.
//
// The physical encoding follows GeoArrow separated coordinates: a point is
// a struct of two floating-point child columns, a line string is a list of
// points, a polygon a list of rings (ring 0 the exterior), multi shapes one
// further list level, and heterogeneous geometry a dense union of the six
// concrete encodings. Decoding a row records offsets into the backing
// array; the (x, y) values are read only when an accessor runs.
//
// Physical types are checked once at construction, which returns an error
// on mismatch; accessors afterwards never type-assert. A null row always
// reports absent before any offset arithmetic happens. Below the row
// level the encodings are non-nullable: a null ring, member or coordinate
// has no geometric meaning, so construction rejects arrays carrying one,
// and offset state that cannot come from a well-formed array fails loudly
// instead of producing wrong geometry.
package columnar

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/kylebarron/geo"
	"github.com/kylebarron/geo/x"
)

// floatColumn is the read surface of a primitive floating-point column.
// *array.Float64 satisfies floatColumn[float64] and *array.Float32
// satisfies floatColumn[float32]; the assertion happens once, in
// newPointStorage.
type floatColumn[T geo.Num] interface {
	arrow.Array
	Value(i int) T
}

// pointStorage is the leaf level every shape bottoms out in: a struct
// array of two coordinate columns addressed by row index.
type pointStorage[T geo.Num] struct {
	coords *array.Struct
	xs, ys floatColumn[T]
}

func newPointStorage[T geo.Num](a arrow.Array) (pointStorage[T], error) {
	s, ok := a.(*array.Struct)
	if !ok {
		return pointStorage[T]{}, errors.Errorf(
			"columnar: coordinates must be struct-encoded, got %s", a.DataType())
	}
	if s.NumField() != 2 {
		return pointStorage[T]{}, errors.Errorf(
			"columnar: coordinate struct must have exactly 2 fields (x, y), got %d", s.NumField())
	}
	xs, ok := s.Field(0).(floatColumn[T])
	if !ok {
		return pointStorage[T]{}, errors.Errorf(
			"columnar: x column has type %s, want the backend's floating element type", s.Field(0).DataType())
	}
	ys, ok := s.Field(1).(floatColumn[T])
	if !ok {
		return pointStorage[T]{}, errors.Errorf(
			"columnar: y column has type %s, want the backend's floating element type", s.Field(1).DataType())
	}
	if glog.V(2) {
		st := s.DataType().(*arrow.StructType)
		glog.Infof("columnar: coordinate storage of %d rows, fields %q %q",
			s.Len(), st.Field(0).Name, st.Field(1).Name)
	}
	return pointStorage[T]{coords: s, xs: xs, ys: ys}, nil
}

// value returns the point view at row, or ok=false when row is out of
// bounds or null. The null check precedes every coordinate read.
func (ps pointStorage[T]) value(row int) (geo.Point[T], bool) {
	if row < 0 || row >= ps.coords.Len() || ps.coords.IsNull(row) {
		return nil, false
	}
	return Point[T]{storage: ps, row: row}, true
}

// listStorage is one level of variable-length nesting: row i spans the
// child range [offset[i], offset[i+1]).
type listStorage struct {
	list *array.List
}

func asListStorage(a arrow.Array, what string) (listStorage, error) {
	l, ok := a.(*array.List)
	if !ok {
		return listStorage{}, errors.Errorf("columnar: %s must be list-encoded, got %s", what, a.DataType())
	}
	return listStorage{list: l}, nil
}

// rangeOf resolves row to a child range. ok=false when the row is out of
// bounds or null; inverted offsets cannot come from a well-formed array
// and abort instead of yielding garbage geometry.
func (l listStorage) rangeOf(row int) (start, n int, ok bool) {
	if row < 0 || row >= l.list.Len() || l.list.IsNull(row) {
		return 0, 0, false
	}
	s, e := l.list.ValueOffsets(row)
	x.AssertTruef(s <= e, "columnar: inverted list offsets [%d, %d) at row %d", s, e, row)
	return int(s), int(e - s), true
}

// nestedRange is rangeOf for levels below the row, whose validity was
// checked at construction. The index is known to be in bounds and
// non-null; only the offsets can still be wrong.
func (l listStorage) nestedRange(row int) (start, n int) {
	s, e := l.list.ValueOffsets(row)
	x.AssertTruef(s <= e, "columnar: inverted list offsets [%d, %d) at index %d", s, e, row)
	return int(s), int(e - s)
}

// requireNoNulls rejects arrays that carry nulls below the row level. A
// null coordinate or nested element has no geometric meaning; accepting
// one would shorten coordinate streams silently.
func requireNoNulls(a arrow.Array, what string) error {
	if n := a.NullN(); n != 0 {
		return errors.Errorf("columnar: %s must be non-nullable, found %d null elements", what, n)
	}
	return nil
}
