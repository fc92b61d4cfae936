/*
 * SPDX-FileCopyrightText: © The geo authors
 * SPDX-License-Identifier: Apache-2.0
 */

package columnar

import (
	"sync"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/require"

	"github.com/kylebarron/geo"
)

var coordType = arrow.StructOf(
	arrow.Field{Name: "x", Type: arrow.PrimitiveTypes.Float64},
	arrow.Field{Name: "y", Type: arrow.PrimitiveTypes.Float64},
)

func appendCoord(sb *array.StructBuilder, x, y float64) {
	sb.Append(true)
	sb.FieldBuilder(0).(*array.Float64Builder).Append(x)
	sb.FieldBuilder(1).(*array.Float64Builder).Append(y)
}

// buildPoints encodes one struct row per coordinate; a nil entry becomes a
// null row.
func buildPoints(t *testing.T, rows []*[2]float64) *array.Struct {
	t.Helper()
	sb := array.NewStructBuilder(memory.DefaultAllocator, coordType)
	defer sb.Release()
	for _, r := range rows {
		if r == nil {
			sb.AppendNull()
			continue
		}
		appendCoord(sb, r[0], r[1])
	}
	return sb.NewArray().(*array.Struct)
}

// buildLists encodes rows of coordinate sequences as list<struct<x, y>>; a
// nil row becomes a null list.
func buildLists(t *testing.T, rows [][][2]float64, nulls map[int]bool) *array.List {
	t.Helper()
	lb := array.NewListBuilder(memory.DefaultAllocator, coordType)
	defer lb.Release()
	vb := lb.ValueBuilder().(*array.StructBuilder)
	for i, row := range rows {
		if nulls[i] {
			lb.AppendNull()
			continue
		}
		lb.Append(true)
		for _, c := range row {
			appendCoord(vb, c[0], c[1])
		}
	}
	return lb.NewArray().(*array.List)
}

// buildRingLists encodes rows of ring sequences as list<list<struct>>.
func buildRingLists(t *testing.T, rows [][][][2]float64, nulls map[int]bool) *array.List {
	t.Helper()
	lb := array.NewListBuilder(memory.DefaultAllocator, arrow.ListOf(coordType))
	defer lb.Release()
	rb := lb.ValueBuilder().(*array.ListBuilder)
	vb := rb.ValueBuilder().(*array.StructBuilder)
	for i, row := range rows {
		if nulls[i] {
			lb.AppendNull()
			continue
		}
		lb.Append(true)
		for _, ring := range row {
			rb.Append(true)
			for _, c := range ring {
				appendCoord(vb, c[0], c[1])
			}
		}
	}
	return lb.NewArray().(*array.List)
}

func TestPointArray(t *testing.T) {
	a, err := NewPointArray[float64](buildPoints(t, []*[2]float64{
		{1.5, 2.5}, nil, {-3, 4},
	}))
	require.NoError(t, err)
	require.Equal(t, 3, a.Len())

	p, ok := a.Value(0)
	require.True(t, ok)
	require.Equal(t, 1.5, p.X())
	require.Equal(t, 2.5, p.Y())
	require.Equal(t, geo.KindPoint, p.Kind())

	// Null row reports absent before any offset arithmetic.
	_, ok = a.Value(1)
	require.False(t, ok)

	p, ok = a.Value(2)
	require.True(t, ok)
	require.Equal(t, -3.0, p.X())

	for _, oob := range []int{-1, 3} {
		_, ok = a.Value(oob)
		require.False(t, ok)
	}
}

func TestPointArrayFloat32(t *testing.T) {
	ct := arrow.StructOf(
		arrow.Field{Name: "x", Type: arrow.PrimitiveTypes.Float32},
		arrow.Field{Name: "y", Type: arrow.PrimitiveTypes.Float32},
	)
	sb := array.NewStructBuilder(memory.DefaultAllocator, ct)
	defer sb.Release()
	sb.Append(true)
	sb.FieldBuilder(0).(*array.Float32Builder).Append(1)
	sb.FieldBuilder(1).(*array.Float32Builder).Append(2)
	arr := sb.NewArray().(*array.Struct)

	// The element type is checked once, at construction.
	_, err := NewPointArray[float64](arr)
	require.Error(t, err)

	a, err := NewPointArray[float32](arr)
	require.NoError(t, err)
	p, ok := a.Value(0)
	require.True(t, ok)
	require.Equal(t, float32(1), p.X())
}

func TestPointArrayRejectsMalformed(t *testing.T) {
	bad := arrow.StructOf(
		arrow.Field{Name: "x", Type: arrow.PrimitiveTypes.Int64},
		arrow.Field{Name: "y", Type: arrow.PrimitiveTypes.Int64},
	)
	sb := array.NewStructBuilder(memory.DefaultAllocator, bad)
	defer sb.Release()
	_, err := NewPointArray[float64](sb.NewArray().(*array.Struct))
	require.Error(t, err)

	one := arrow.StructOf(arrow.Field{Name: "x", Type: arrow.PrimitiveTypes.Float64})
	sb2 := array.NewStructBuilder(memory.DefaultAllocator, one)
	defer sb2.Release()
	_, err = NewPointArray[float64](sb2.NewArray().(*array.Struct))
	require.Error(t, err)
}

func TestLineStringArray(t *testing.T) {
	a, err := NewLineStringArray[float64](buildLists(t, [][][2]float64{
		{{0, 0}, {1, 1}, {2, 0}},
		nil,
		{},
		{{7, 8}},
	}, map[int]bool{1: true}))
	require.NoError(t, err)
	require.Equal(t, 4, a.Len())

	ls, ok := a.Value(0)
	require.True(t, ok)
	require.Equal(t, 3, ls.NumPoints())

	// Indexed access agrees with traversal.
	i := 0
	for p := range ls.Points() {
		q, ok := ls.Point(i)
		require.True(t, ok)
		require.Equal(t, q.X(), p.X())
		require.Equal(t, q.Y(), p.Y())
		i++
	}
	require.Equal(t, ls.NumPoints(), i)
	_, ok = ls.Point(3)
	require.False(t, ok)

	_, ok = a.Value(1)
	require.False(t, ok)

	empty, ok := a.Value(2)
	require.True(t, ok)
	require.Equal(t, 0, empty.NumPoints())

	short, ok := a.Value(3)
	require.True(t, ok)
	p, ok := short.Point(0)
	require.True(t, ok)
	require.Equal(t, 7.0, p.X())
	require.Equal(t, 8.0, p.Y())
}

func TestLineStringArrayRejectsMalformed(t *testing.T) {
	lb := array.NewListBuilder(memory.DefaultAllocator, arrow.PrimitiveTypes.Float64)
	defer lb.Release()
	_, err := NewLineStringArray[float64](lb.NewArray().(*array.List))
	require.Error(t, err)
}

func TestPolygonArray(t *testing.T) {
	a, err := NewPolygonArray[float64](buildRingLists(t, [][][][2]float64{
		{ // exterior plus two holes
			{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
			{{1, 1}, {1, 2}, {2, 2}, {2, 1}, {1, 1}},
			{{5, 5}, {5, 6}, {6, 6}, {6, 5}, {5, 5}},
		},
		nil,
		{}, // present polygon with no rings at all
		{ // exterior only
			{{0, 0}, {1, 0}, {1, 1}, {0, 0}},
		},
	}, map[int]bool{1: true}))
	require.NoError(t, err)
	require.Equal(t, 4, a.Len())

	p, ok := a.Value(0)
	require.True(t, ok)
	require.Equal(t, 2, p.NumInteriors())
	require.Equal(t, 5, p.Exterior().NumPoints())

	// Interior(0) is the first hole (physical ring 1), never the exterior.
	hole, ok := p.Interior(0)
	require.True(t, ok)
	first, ok := geo.FirstPoint[float64](hole)
	require.True(t, ok)
	require.Equal(t, 1.0, first.X())
	require.Equal(t, 1.0, first.Y())

	hole, ok = p.Interior(1)
	require.True(t, ok)
	first, ok = geo.FirstPoint[float64](hole)
	require.True(t, ok)
	require.Equal(t, 5.0, first.X())

	_, ok = p.Interior(2)
	require.False(t, ok)
	_, ok = p.Interior(-1)
	require.False(t, ok)

	_, ok = a.Value(1)
	require.False(t, ok)

	ringless, ok := a.Value(2)
	require.True(t, ok)
	require.Equal(t, 0, ringless.NumInteriors())
	require.Equal(t, 0, ringless.Exterior().NumPoints())

	solid, ok := a.Value(3)
	require.True(t, ok)
	require.Equal(t, 0, solid.NumInteriors())
	require.Equal(t, 4, solid.Exterior().NumPoints())
}

func TestPolygonArrayRejectsMalformed(t *testing.T) {
	// list<struct> is a line string encoding, not a polygon encoding.
	_, err := NewPolygonArray[float64](buildLists(t, [][][2]float64{{{0, 0}}}, nil))
	require.Error(t, err)
}

func TestMultiPointArray(t *testing.T) {
	a, err := NewMultiPointArray[float64](buildLists(t, [][][2]float64{
		{{1, 2}, {3, 4}},
		nil,
	}, map[int]bool{1: true}))
	require.NoError(t, err)

	mp, ok := a.Value(0)
	require.True(t, ok)
	require.Equal(t, 2, mp.NumPoints())
	p, ok := mp.Point(1)
	require.True(t, ok)
	require.Equal(t, 3.0, p.X())
	_, ok = mp.Point(2)
	require.False(t, ok)

	_, ok = a.Value(1)
	require.False(t, ok)
}

func TestMultiLineStringArray(t *testing.T) {
	a, err := NewMultiLineStringArray[float64](buildRingLists(t, [][][][2]float64{
		{
			{{0, 0}, {1, 1}},
			{{2, 2}, {3, 3}, {4, 4}},
		},
	}, nil))
	require.NoError(t, err)

	ml, ok := a.Value(0)
	require.True(t, ok)
	require.Equal(t, 2, ml.NumLineStrings())
	ls, ok := ml.LineString(1)
	require.True(t, ok)
	require.Equal(t, 3, ls.NumPoints())
	_, ok = ml.LineString(2)
	require.False(t, ok)
}

func buildMultiPolygons(t *testing.T, rows [][][][][2]float64, nulls map[int]bool) *array.List {
	t.Helper()
	lb := array.NewListBuilder(memory.DefaultAllocator, arrow.ListOf(arrow.ListOf(coordType)))
	defer lb.Release()
	pb := lb.ValueBuilder().(*array.ListBuilder)
	rb := pb.ValueBuilder().(*array.ListBuilder)
	vb := rb.ValueBuilder().(*array.StructBuilder)
	for i, row := range rows {
		if nulls[i] {
			lb.AppendNull()
			continue
		}
		lb.Append(true)
		for _, poly := range row {
			pb.Append(true)
			for _, ring := range poly {
				rb.Append(true)
				for _, c := range ring {
					appendCoord(vb, c[0], c[1])
				}
			}
		}
	}
	return lb.NewArray().(*array.List)
}

func TestMultiPolygonArray(t *testing.T) {
	a, err := NewMultiPolygonArray[float64](buildMultiPolygons(t, [][][][][2]float64{
		{
			{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}},
			{
				{{10, 10}, {20, 10}, {20, 20}, {10, 10}},
				{{12, 12}, {13, 12}, {13, 13}, {12, 12}},
			},
		},
	}, nil))
	require.NoError(t, err)

	mp, ok := a.Value(0)
	require.True(t, ok)
	require.Equal(t, 2, mp.NumPolygons())

	p, ok := mp.Polygon(1)
	require.True(t, ok)
	require.Equal(t, 1, p.NumInteriors())
	first, ok := geo.FirstPoint[float64](p.Exterior())
	require.True(t, ok)
	require.Equal(t, 10.0, first.X())

	_, ok = mp.Polygon(2)
	require.False(t, ok)
}

func TestGeometryArrayUnion(t *testing.T) {
	unionType := arrow.DenseUnionOf([]arrow.Field{
		{Name: FieldPoint, Type: coordType},
		{Name: FieldPolygon, Type: arrow.ListOf(arrow.ListOf(coordType))},
	}, []arrow.UnionTypeCode{0, 1})

	ub := array.NewDenseUnionBuilder(memory.DefaultAllocator, unionType)
	defer ub.Release()
	pointB := ub.Child(0).(*array.StructBuilder)
	polyB := ub.Child(1).(*array.ListBuilder)
	ringB := polyB.ValueBuilder().(*array.ListBuilder)
	coordB := ringB.ValueBuilder().(*array.StructBuilder)

	ub.Append(0)
	appendCoord(pointB, 1, 2)

	ub.Append(1)
	polyB.Append(true)
	ringB.Append(true)
	for _, c := range [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 0}} {
		appendCoord(coordB, c[0], c[1])
	}

	ub.Append(0)
	pointB.AppendNull()

	u := ub.NewArray().(*array.DenseUnion)
	a, err := NewGeometryArray[float64](u)
	require.NoError(t, err)
	require.Equal(t, 3, a.Len())

	g, ok := a.Value(0)
	require.True(t, ok)
	require.Equal(t, geo.KindPoint, g.Kind())

	g, ok = a.Value(1)
	require.True(t, ok)
	require.Equal(t, geo.KindPolygon, g.Kind())
	p := g.(geo.Polygon[float64])
	require.Equal(t, 4, p.Exterior().NumPoints())

	// Absence is a null slot in the selected child.
	_, ok = a.Value(2)
	require.False(t, ok)

	_, ok = a.Value(3)
	require.False(t, ok)
}

func TestGeometryCollectionArray(t *testing.T) {
	unionType := arrow.DenseUnionOf([]arrow.Field{
		{Name: FieldPoint, Type: coordType},
		{Name: FieldLineString, Type: arrow.ListOf(coordType)},
	}, []arrow.UnionTypeCode{0, 1})

	lb := array.NewListBuilder(memory.DefaultAllocator, unionType)
	defer lb.Release()
	ub := lb.ValueBuilder().(*array.DenseUnionBuilder)
	pointB := ub.Child(0).(*array.StructBuilder)
	lineB := ub.Child(1).(*array.ListBuilder)
	lineCoordB := lineB.ValueBuilder().(*array.StructBuilder)

	// Row 0: {point, linestring}; row 1: null; row 2: {}.
	lb.Append(true)
	ub.Append(0)
	appendCoord(pointB, 5, 6)
	ub.Append(1)
	lineB.Append(true)
	appendCoord(lineCoordB, 0, 0)
	appendCoord(lineCoordB, 1, 1)
	lb.AppendNull()
	lb.Append(true)

	a, err := NewGeometryCollectionArray[float64](lb.NewArray().(*array.List))
	require.NoError(t, err)
	require.Equal(t, 3, a.Len())

	gc, ok := a.Value(0)
	require.True(t, ok)
	require.Equal(t, 2, gc.NumGeometries())
	g, ok := gc.Geometry(0)
	require.True(t, ok)
	require.Equal(t, geo.KindPoint, g.Kind())
	g, ok = gc.Geometry(1)
	require.True(t, ok)
	require.Equal(t, geo.KindLineString, g.Kind())
	_, ok = gc.Geometry(2)
	require.False(t, ok)

	_, ok = a.Value(1)
	require.False(t, ok)

	empty, ok := a.Value(2)
	require.True(t, ok)
	require.Equal(t, 0, empty.NumGeometries())
}

func TestConcurrentReads(t *testing.T) {
	rows := make([][][2]float64, 64)
	for i := range rows {
		f := float64(i)
		rows[i] = [][2]float64{{f, f}, {f + 1, f}, {f + 1, f + 1}}
	}
	a, err := NewLineStringArray[float64](buildLists(t, rows, nil))
	require.NoError(t, err)

	// Views are read-only; concurrent traversal needs no coordination
	// beyond splitting row ranges.
	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for row := start; row < a.Len(); row += 8 {
				ls, ok := a.Value(row)
				if !ok {
					t.Errorf("row %d absent", row)
					return
				}
				n := 0
				for p := range ls.Points() {
					if p.X() < 0 {
						t.Errorf("row %d: bad x", row)
					}
					n++
				}
				if n != 3 {
					t.Errorf("row %d: got %d points", row, n)
				}
			}
		}(w)
	}
	wg.Wait()
}

func TestNestedNullsRejected(t *testing.T) {
	// Below the row level a null has no geometric meaning. Accepting one
	// would let traversal yield fewer elements than NumPoints and friends
	// report, silently shortening every downstream coordinate stream, so
	// construction rejects it.
	t.Run("line string coordinate", func(t *testing.T) {
		lb := array.NewListBuilder(memory.DefaultAllocator, coordType)
		defer lb.Release()
		vb := lb.ValueBuilder().(*array.StructBuilder)
		lb.Append(true)
		appendCoord(vb, 0, 0)
		vb.AppendNull()
		appendCoord(vb, 2, 2)
		_, err := NewLineStringArray[float64](lb.NewArray().(*array.List))
		require.ErrorContains(t, err, "non-nullable")
	})

	t.Run("multi-point member", func(t *testing.T) {
		lb := array.NewListBuilder(memory.DefaultAllocator, coordType)
		defer lb.Release()
		vb := lb.ValueBuilder().(*array.StructBuilder)
		lb.Append(true)
		appendCoord(vb, 1, 2)
		vb.AppendNull()
		_, err := NewMultiPointArray[float64](lb.NewArray().(*array.List))
		require.ErrorContains(t, err, "non-nullable")
	})

	t.Run("polygon ring", func(t *testing.T) {
		lb := array.NewListBuilder(memory.DefaultAllocator, arrow.ListOf(coordType))
		defer lb.Release()
		rb := lb.ValueBuilder().(*array.ListBuilder)
		vb := rb.ValueBuilder().(*array.StructBuilder)
		lb.Append(true)
		rb.Append(true)
		for _, c := range [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 0}} {
			appendCoord(vb, c[0], c[1])
		}
		rb.AppendNull()
		_, err := NewPolygonArray[float64](lb.NewArray().(*array.List))
		require.ErrorContains(t, err, "non-nullable")
	})

	t.Run("ring coordinate", func(t *testing.T) {
		lb := array.NewListBuilder(memory.DefaultAllocator, arrow.ListOf(coordType))
		defer lb.Release()
		rb := lb.ValueBuilder().(*array.ListBuilder)
		vb := rb.ValueBuilder().(*array.StructBuilder)
		lb.Append(true)
		rb.Append(true)
		appendCoord(vb, 0, 0)
		vb.AppendNull()
		appendCoord(vb, 1, 1)
		_, err := NewPolygonArray[float64](lb.NewArray().(*array.List))
		require.ErrorContains(t, err, "non-nullable")
	})

	t.Run("multi-linestring member", func(t *testing.T) {
		lb := array.NewListBuilder(memory.DefaultAllocator, arrow.ListOf(coordType))
		defer lb.Release()
		rb := lb.ValueBuilder().(*array.ListBuilder)
		lb.Append(true)
		rb.AppendNull()
		_, err := NewMultiLineStringArray[float64](lb.NewArray().(*array.List))
		require.ErrorContains(t, err, "non-nullable")
	})

	t.Run("multi-polygon member", func(t *testing.T) {
		lb := array.NewListBuilder(memory.DefaultAllocator, arrow.ListOf(arrow.ListOf(coordType)))
		defer lb.Release()
		pb := lb.ValueBuilder().(*array.ListBuilder)
		lb.Append(true)
		pb.AppendNull()
		_, err := NewMultiPolygonArray[float64](lb.NewArray().(*array.List))
		require.ErrorContains(t, err, "non-nullable")
	})

	t.Run("collection member", func(t *testing.T) {
		unionType := arrow.DenseUnionOf([]arrow.Field{
			{Name: FieldPoint, Type: coordType},
		}, []arrow.UnionTypeCode{0})
		lb := array.NewListBuilder(memory.DefaultAllocator, unionType)
		defer lb.Release()
		ub := lb.ValueBuilder().(*array.DenseUnionBuilder)
		pointB := ub.Child(0).(*array.StructBuilder)
		lb.Append(true)
		ub.Append(0)
		pointB.AppendNull()
		_, err := NewGeometryCollectionArray[float64](lb.NewArray().(*array.List))
		require.ErrorContains(t, err, "non-nullable")
	})
}
