package frame

import (
	"fmt"
	"sort"
	"strings"
)

// DF is an ordered set of equal-length columns.
type DF struct {
	cols []*Col
}

// NewDF builds a dataframe; all columns must have the same length and
// distinct names.
func NewDF(cols ...*Col) (*DF, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("no columns in NewDF")
	}

	rowCount := cols[0].Len()
	seen := make(map[string]bool)
	for ind := 0; ind < len(cols); ind++ {
		if cols[ind].Len() != rowCount {
			return nil, fmt.Errorf("length mismatch: column %s has %d rows, want %d",
				cols[ind].Name(), cols[ind].Len(), rowCount)
		}

		if seen[cols[ind].Name()] {
			return nil, fmt.Errorf("duplicate column name: %s", cols[ind].Name())
		}
		seen[cols[ind].Name()] = true
	}

	return &DF{cols: cols}, nil
}

func (df *DF) RowCount() int {
	return df.cols[0].Len()
}

func (df *DF) ColumnCount() int {
	return len(df.cols)
}

func (df *DF) ColumnNames() []string {
	names := make([]string, len(df.cols))
	for ind := 0; ind < len(df.cols); ind++ {
		names[ind] = df.cols[ind].Name()
	}

	return names
}

func (df *DF) Column(colName string) (*Col, error) {
	for _, c := range df.cols {
		if c.Name() == colName {
			return c, nil
		}
	}

	return nil, fmt.Errorf("column %s not found", colName)
}

func (df *DF) HasColumn(colName string) bool {
	_, e := df.Column(colName)
	return e == nil
}

func (df *DF) AppendColumn(col *Col) error {
	if df.HasColumn(col.Name()) {
		return fmt.Errorf("duplicate column name: %s", col.Name())
	}

	if col.Len() != df.RowCount() {
		return fmt.Errorf("length mismatch: df has %d rows, column %s has %d",
			df.RowCount(), col.Name(), col.Len())
	}

	df.cols = append(df.cols, col)

	return nil
}

func (df *DF) DropColumns(colNames ...string) error {
	for _, nm := range colNames {
		if !df.HasColumn(nm) {
			return fmt.Errorf("column %s not found", nm)
		}
	}

	var kept []*Col
	for _, c := range df.cols {
		drop := false
		for _, nm := range colNames {
			if c.Name() == nm {
				drop = true
				break
			}
		}

		if !drop {
			kept = append(kept, c)
		}
	}

	if len(kept) == 0 {
		return fmt.Errorf("no columns left")
	}

	df.cols = kept

	return nil
}

// KeepColumns returns a new DF sharing the named columns, in the order given.
func (df *DF) KeepColumns(colNames ...string) (*DF, error) {
	var cols []*Col
	for _, nm := range colNames {
		var (
			c *Col
			e error
		)
		if c, e = df.Column(nm); e != nil {
			return nil, e
		}

		cols = append(cols, c)
	}

	return NewDF(cols...)
}

func (df *DF) Copy() *DF {
	cols := make([]*Col, len(df.cols))
	for ind := 0; ind < len(df.cols); ind++ {
		cols[ind] = df.cols[ind].Copy()
	}

	return &DF{cols: cols}
}

// ***************** Sort *****************

// SortKey names a sort column and its direction.
type SortKey struct {
	Col        string
	Descending bool
}

// Asc and Desc build sort keys.
func Asc(col string) SortKey { return SortKey{Col: col} }

func Desc(col string) SortKey { return SortKey{Col: col, Descending: true} }

type dfSorter struct {
	df *DF
	by []SortKey
	// resolved once up front
	cols []*Col
}

func (s *dfSorter) Len() int { return s.df.RowCount() }

func (s *dfSorter) Swap(i, j int) {
	for _, c := range s.df.cols {
		c.Swap(i, j)
	}
}

func (s *dfSorter) Less(i, j int) bool {
	for ind := 0; ind < len(s.cols); ind++ {
		c := s.cols[ind]
		a, b := i, j
		if s.by[ind].Descending {
			a, b = j, i
		}

		if c.Less(a, b) {
			return true
		}

		if c.Less(b, a) {
			return false
		}
		// equal on this key, keep checking
	}

	return false
}

// Sort orders the rows of df in place. The sort is stable, so equal keys
// keep their prior relative order.
func (df *DF) Sort(keys ...SortKey) error {
	s := &dfSorter{df: df, by: keys}
	for _, k := range keys {
		var (
			c *Col
			e error
		)
		if c, e = df.Column(k.Col); e != nil {
			return e
		}

		s.cols = append(s.cols, c)
	}

	sort.Stable(s)

	return nil
}

// ***************** GroupBy *****************

// Group is the set of row indices sharing one key tuple.
type Group struct {
	Key  []any
	Rows []int
}

// GroupBy partitions rows by the values of the key columns. Groups come back
// in first-appearance order, which makes downstream summaries deterministic.
func (df *DF) GroupBy(keys ...string) ([]Group, error) {
	var cols []*Col
	for _, nm := range keys {
		var (
			c *Col
			e error
		)
		if c, e = df.Column(nm); e != nil {
			return nil, e
		}

		cols = append(cols, c)
	}

	var (
		order  []string
		groups = make(map[string]*Group)
	)

	for row := 0; row < df.RowCount(); row++ {
		var parts []string
		var keyVals []any
		for _, c := range cols {
			v := c.Element(row)
			parts = append(parts, fmt.Sprintf("%v", v))
			keyVals = append(keyVals, v)
		}

		k := strings.Join(parts, "\x1f")
		g, ok := groups[k]
		if !ok {
			g = &Group{Key: keyVals}
			groups[k] = g
			order = append(order, k)
		}

		g.Rows = append(g.Rows, row)
	}

	out := make([]Group, len(order))
	for ind, k := range order {
		out[ind] = *groups[k]
	}

	return out, nil
}
