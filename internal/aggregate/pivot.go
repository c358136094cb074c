package aggregate

import (
	"sort"

	"shootings/internal/frame"
	"shootings/internal/ingest"
)

// PivotRegionYear reshapes the long (region, year, count) table into a wide
// table: one row per year (ascending), one int column per region (region
// names ascending), and a trailing MAX column with the row-wise maximum.
// A (year, region) pair absent from the long table becomes zero, not a gap.
func PivotRegionYear(long *frame.DF) (*frame.DF, error) {
	regionCol, e := long.Column(ingest.ColBoro)
	if e != nil {
		return nil, e
	}

	yearCol, e := long.Column(ingest.ColYear)
	if e != nil {
		return nil, e
	}

	countCol, e := long.Column(ColCount)
	if e != nil {
		return nil, e
	}

	regions := distinctStrings(regionCol.Strings())
	years := distinctInts(yearCol.Ints())

	yearPos := make(map[int]int, len(years))
	for ind, y := range years {
		yearPos[y] = ind
	}

	cells := make(map[string][]int, len(regions))
	for _, r := range regions {
		cells[r] = make([]int, len(years))
	}

	rs, ys, cs := regionCol.Strings(), yearCol.Ints(), countCol.Ints()
	for row := 0; row < long.RowCount(); row++ {
		cells[rs[row]][yearPos[ys[row]]] = cs[row]
	}

	yc, e := frame.NewCol(ingest.ColYear, years)
	if e != nil {
		return nil, e
	}

	cols := []*frame.Col{yc}
	for _, r := range regions {
		c, e := frame.NewCol(r, cells[r])
		if e != nil {
			return nil, e
		}

		cols = append(cols, c)
	}

	maxes := make([]int, len(years))
	for ind := range years {
		mx := 0
		for _, r := range regions {
			if v := cells[r][ind]; v > mx {
				mx = v
			}
		}

		maxes[ind] = mx
	}

	mc, e := frame.NewCol(ColMax, maxes)
	if e != nil {
		return nil, e
	}

	cols = append(cols, mc)

	return frame.NewDF(cols...)
}

func distinctStrings(xs []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}

	sort.Strings(out)

	return out
}

func distinctInts(xs []int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}

	sort.Ints(out)

	return out
}
