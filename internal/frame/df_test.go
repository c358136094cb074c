package frame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testDF() *DF {
	x, _ := NewCol("x", []float64{1, -2, 3, 0, 2, 3.5})
	y, _ := NewCol("y", []int{1, -5, 6, 1, 4, 5})
	z, _ := NewCol("z", []string{"f", "a", "c", "c", "e", "b"})
	dfx, e := NewDF(x, y, z)
	if e != nil {
		panic(e)
	}

	return dfx
}

func TestNewDF(t *testing.T) {
	x, _ := NewCol("x", []int{1, 2})
	short, _ := NewCol("y", []int{1})
	_, e := NewDF(x, short)
	assert.NotNil(t, e)

	dup, _ := NewCol("x", []int{3, 4})
	_, e = NewDF(x, dup)
	assert.NotNil(t, e)

	_, e = NewDF()
	assert.NotNil(t, e)
}

func TestDF_Sort(t *testing.T) {
	dfx := testDF()
	e := dfx.Sort(Asc("y"), Asc("x"))
	assert.Nil(t, e)

	yc, _ := dfx.Column("y")
	assert.Equal(t, []int{-5, 1, 1, 4, 5, 6}, yc.Ints())

	// the x=0 row sorts before the x=1 row on the second key
	xc, _ := dfx.Column("x")
	assert.Equal(t, []float64{-2, 0, 1, 2, 3.5, 3}, xc.Floats())
}

func TestDF_SortDescending(t *testing.T) {
	dfx := testDF()
	e := dfx.Sort(Desc("y"))
	assert.Nil(t, e)

	yc, _ := dfx.Column("y")
	assert.Equal(t, []int{6, 5, 4, 1, 1, -5}, yc.Ints())
}

func TestDF_SortStable(t *testing.T) {
	a, _ := NewCol("k", []int{1, 1, 1, 0})
	b, _ := NewCol("v", []string{"first", "second", "third", "last"})
	dfx, _ := NewDF(a, b)

	e := dfx.Sort(Desc("k"))
	assert.Nil(t, e)

	vc, _ := dfx.Column("v")
	assert.Equal(t, []string{"first", "second", "third", "last"}, vc.Strings())
}

func TestDF_DropKeep(t *testing.T) {
	dfx := testDF()
	assert.Nil(t, dfx.DropColumns("y"))
	assert.Equal(t, []string{"x", "z"}, dfx.ColumnNames())
	assert.NotNil(t, dfx.DropColumns("nope"))

	sub, e := dfx.KeepColumns("z")
	assert.Nil(t, e)
	assert.Equal(t, []string{"z"}, sub.ColumnNames())
	assert.Equal(t, 6, sub.RowCount())

	_, e = dfx.KeepColumns("y")
	assert.NotNil(t, e)
}

func TestDF_AppendColumn(t *testing.T) {
	dfx := testDF()

	w, _ := NewCol("w", []int{0, 0, 0, 0, 0, 0})
	assert.Nil(t, dfx.AppendColumn(w))

	short, _ := NewCol("s", []int{1})
	assert.NotNil(t, dfx.AppendColumn(short))

	dup, _ := NewCol("x", []int{0, 0, 0, 0, 0, 0})
	assert.NotNil(t, dfx.AppendColumn(dup))
}

func TestDF_GroupBy(t *testing.T) {
	r, _ := NewCol("r", []string{"b", "a", "b", "a", "b"})
	y, _ := NewCol("y", []int{1, 1, 1, 2, 2})
	dfx, _ := NewDF(r, y)

	groups, e := dfx.GroupBy("r", "y")
	assert.Nil(t, e)
	assert.Equal(t, 4, len(groups))

	// first-appearance order
	assert.Equal(t, []any{"b", 1}, groups[0].Key)
	assert.Equal(t, []int{0, 2}, groups[0].Rows)
	assert.Equal(t, []any{"a", 1}, groups[1].Key)
	assert.Equal(t, []any{"a", 2}, groups[2].Key)
	assert.Equal(t, []any{"b", 2}, groups[3].Key)
	assert.Equal(t, []int{4}, groups[3].Rows)
}

func TestCol_MissingMask(t *testing.T) {
	c, _ := NewCol("x", []int{10, 20, 30})
	assert.Equal(t, 0, c.MissingCount())

	c.SetMissing(1)
	assert.Equal(t, 1, c.MissingCount())
	assert.True(t, c.IsMissing(1))
	assert.False(t, c.IsMissing(0))

	// the mask survives a copy and follows rows through a sort
	cp := c.Copy()
	assert.Equal(t, 1, cp.MissingCount())

	dfx, _ := NewDF(c)
	assert.Nil(t, dfx.Sort(Desc("x")))
	assert.Equal(t, []int{30, 20, 10}, c.Ints())
	assert.True(t, c.IsMissing(1)) // the mask moved with the 20
}

func TestVector_Types(t *testing.T) {
	v, e := NewVector([]time.Time{time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC)})
	assert.Nil(t, e)
	assert.Equal(t, DTdate, v.VectorType())

	_, e = NewVector([]uint8{1})
	assert.NotNil(t, e)

	b := MakeVector(DTbool, 2)
	b.SetBool(true, 1)
	assert.Equal(t, []bool{false, true}, b.AsBool())

	i := MakeVector(DTint, 3)
	i.SetInt(7, 0)
	assert.Equal(t, []float64{7, 0, 0}, i.AsFloat())
}
