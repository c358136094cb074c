// Package aggregate computes the descriptive summaries of the cleaned
// incident table: by weekday, by year, by region, and by region and year.
// Every count is a plain row tally.
package aggregate

import (
	"time"

	"shootings/internal/frame"
	"shootings/internal/ingest"
)

// Column names of the summary tables.
const (
	ColWeekday = "WEEKDAY"
	ColCount   = "COUNT"
	ColPct     = "PCT"
	ColMax     = "MAX"
)

// WeekdaySummary counts incidents per weekday. Labels follow Go's
// time.Weekday English names with the week starting on Sunday; rows are
// sorted by descending count and ties keep calendar order (the sort is
// stable over a Sunday-first layout).
func WeekdaySummary(df *frame.DF) (*frame.DF, error) {
	dateCol, e := df.Column(ingest.ColOccurDate)
	if e != nil {
		return nil, e
	}

	var counts [7]int
	for _, d := range dateCol.Dates() {
		counts[d.Weekday()]++
	}

	var (
		labels  []string
		tallies []int
	)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if counts[wd] == 0 {
			continue
		}

		labels = append(labels, wd.String())
		tallies = append(tallies, counts[wd])
	}

	out, e := countDF(ColWeekday, labels, tallies, df.RowCount())
	if e != nil {
		return nil, e
	}

	if e := out.Sort(frame.Desc(ColCount)); e != nil {
		return nil, e
	}

	return out, nil
}

// YearlySummary counts incidents per calendar year, ascending by year.
func YearlySummary(df *frame.DF) (*frame.DF, error) {
	groups, e := df.GroupBy(ingest.ColYear)
	if e != nil {
		return nil, e
	}

	years := make([]int, len(groups))
	tallies := make([]int, len(groups))
	for ind, g := range groups {
		years[ind] = g.Key[0].(int)
		tallies[ind] = len(g.Rows)
	}

	yearCol, e := frame.NewCol(ingest.ColYear, years)
	if e != nil {
		return nil, e
	}

	countCol, e := frame.NewCol(ColCount, tallies)
	if e != nil {
		return nil, e
	}

	out, e := frame.NewDF(yearCol, countCol)
	if e != nil {
		return nil, e
	}

	if e := out.Sort(frame.Asc(ingest.ColYear)); e != nil {
		return nil, e
	}

	return out, nil
}

// RegionSummary counts incidents per region over the full period with each
// region's percentage share, sorted descending by count then region name.
func RegionSummary(df *frame.DF) (*frame.DF, error) {
	groups, e := df.GroupBy(ingest.ColBoro)
	if e != nil {
		return nil, e
	}

	regions := make([]string, len(groups))
	tallies := make([]int, len(groups))
	for ind, g := range groups {
		regions[ind] = g.Key[0].(string)
		tallies[ind] = len(g.Rows)
	}

	out, e := countDF(ingest.ColBoro, regions, tallies, df.RowCount())
	if e != nil {
		return nil, e
	}

	if e := out.Sort(frame.Desc(ColCount), frame.Asc(ingest.ColBoro)); e != nil {
		return nil, e
	}

	return out, nil
}

// RegionYearSummary counts incidents per (region, year) pair, sorted by
// region then year.
func RegionYearSummary(df *frame.DF) (*frame.DF, error) {
	groups, e := df.GroupBy(ingest.ColBoro, ingest.ColYear)
	if e != nil {
		return nil, e
	}

	regions := make([]string, len(groups))
	years := make([]int, len(groups))
	tallies := make([]int, len(groups))
	for ind, g := range groups {
		regions[ind] = g.Key[0].(string)
		years[ind] = g.Key[1].(int)
		tallies[ind] = len(g.Rows)
	}

	regionCol, e := frame.NewCol(ingest.ColBoro, regions)
	if e != nil {
		return nil, e
	}

	yearCol, e := frame.NewCol(ingest.ColYear, years)
	if e != nil {
		return nil, e
	}

	countCol, e := frame.NewCol(ColCount, tallies)
	if e != nil {
		return nil, e
	}

	out, e := frame.NewDF(regionCol, yearCol, countCol)
	if e != nil {
		return nil, e
	}

	if e := out.Sort(frame.Asc(ingest.ColBoro), frame.Asc(ingest.ColYear)); e != nil {
		return nil, e
	}

	return out, nil
}

// countDF assembles a (label, count, pct) table.
func countDF(labelName string, labels []string, tallies []int, total int) (*frame.DF, error) {
	pcts := make([]float64, len(tallies))
	for ind := 0; ind < len(tallies); ind++ {
		pcts[ind] = 100 * float64(tallies[ind]) / float64(total)
	}

	labelCol, e := frame.NewCol(labelName, labels)
	if e != nil {
		return nil, e
	}

	countCol, e := frame.NewCol(ColCount, tallies)
	if e != nil {
		return nil, e
	}

	pctCol, e := frame.NewCol(ColPct, pcts)
	if e != nil {
		return nil, e
	}

	return frame.NewDF(labelCol, countCol, pctCol)
}
