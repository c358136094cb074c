package frame

import (
	"fmt"
	"time"
)

// Col is a named Vector plus an optional missing mask. The mask marks rows
// whose source cell was blank or could not be parsed and was coerced; it
// travels with the column through copies and sorts.
type Col struct {
	name    string
	vec     *Vector
	missing []bool
}

// NewCol builds a column over data, which must be a supported slice type.
func NewCol(name string, data any) (*Col, error) {
	var (
		v *Vector
		e error
	)
	if v, e = NewVector(data); e != nil {
		return nil, fmt.Errorf("column %s: %w", name, e)
	}

	return &Col{name: name, vec: v}, nil
}

func (c *Col) Name() string {
	return c.name
}

func (c *Col) Rename(to string) {
	c.name = to
}

func (c *Col) DataType() DataTypes {
	return c.vec.VectorType()
}

func (c *Col) Len() int {
	return c.vec.Len()
}

// Data returns the underlying vector. Mutating it mutates the column.
func (c *Col) Data() *Vector {
	return c.vec
}

func (c *Col) Element(indx int) any {
	return c.vec.Element(indx)
}

// SetMissing marks row indx as missing, allocating the mask on first use.
func (c *Col) SetMissing(indx int) {
	if c.missing == nil {
		c.missing = make([]bool, c.Len())
	}

	c.missing[indx] = true
}

func (c *Col) IsMissing(indx int) bool {
	if c.missing == nil {
		return false
	}

	return c.missing[indx]
}

func (c *Col) MissingCount() int {
	n := 0
	for _, m := range c.missing {
		if m {
			n++
		}
	}

	return n
}

func (c *Col) Copy() *Col {
	col := &Col{name: c.name, vec: c.vec.Copy()}
	if c.missing != nil {
		col.missing = make([]bool, len(c.missing))
		copy(col.missing, c.missing)
	}

	return col
}

func (c *Col) Swap(i, j int) {
	c.vec.Swap(i, j)
	if c.missing != nil {
		c.missing[i], c.missing[j] = c.missing[j], c.missing[i]
	}
}

func (c *Col) Less(i, j int) bool {
	return c.vec.Less(i, j)
}

// Floats, Ints, Strings, Dates, Bools expose the typed data.

func (c *Col) Floats() []float64 { return c.vec.AsFloat() }

func (c *Col) Ints() []int { return c.vec.AsInt() }

func (c *Col) Strings() []string { return c.vec.AsString() }

func (c *Col) Dates() []time.Time { return c.vec.AsDate() }

func (c *Col) Bools() []bool { return c.vec.AsBool() }
