// Package clean normalizes the loaded incident table: date coercion, year
// derivation, pruning of unused sparse columns, and a missing-value audit.
package clean

import (
	"fmt"
	"time"

	"shootings/internal/frame"
	"shootings/internal/ingest"
)

// DateLayout is the expected form of OCCUR_DATE values (month/day/year).
const DateLayout = "01/02/2006"

// PrunedColumns carry missing values and are not used downstream.
var PrunedColumns = []string{
	ingest.ColJurisdiction,
	ingest.ColLocationDesc,
	ingest.ColPerpAgeGroup,
	ingest.ColPerpSex,
	ingest.ColPerpRace,
}

// MalformedDateError reports a date value outside the expected layout.
// It is fatal: a bad date would silently corrupt every downstream summary.
type MalformedDateError struct {
	Row   int
	Value string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed date %q at row %d, want layout %s", e.Value, e.Row, DateLayout)
}

// MissingValueError reports a retained column that still has missing values
// after pruning. It means the pruned-column list is stale.
type MissingValueError struct {
	Column string
	Count  int
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("column %s has %d missing values after cleaning", e.Column, e.Count)
}

// Audit holds per-column missing counts before and after cleaning.
type Audit struct {
	Before map[string]int
	After  map[string]int
}

// Clean returns a new table with OCCUR_DATE re-typed to a calendar date, a
// derived YEAR column, and the pruned columns removed. Row count is
// unchanged. The returned audit proves the retained columns are complete.
func Clean(df *frame.DF, layout string) (*frame.DF, *Audit, error) {
	if layout == "" {
		layout = DateLayout
	}

	out := df.Copy()
	audit := &Audit{Before: missingCounts(out)}

	dateCol, e := out.Column(ingest.ColOccurDate)
	if e != nil {
		return nil, nil, e
	}

	raw := dateCol.Strings()
	dates := make([]time.Time, len(raw))
	years := make([]int, len(raw))
	for ind := 0; ind < len(raw); ind++ {
		d, e := time.Parse(layout, raw[ind])
		if e != nil {
			return nil, nil, &MalformedDateError{Row: ind + 1, Value: raw[ind]}
		}

		dates[ind] = d
		years[ind] = d.Year()
	}

	if e := out.DropColumns(ingest.ColOccurDate); e != nil {
		return nil, nil, e
	}

	parsed, e := frame.NewCol(ingest.ColOccurDate, dates)
	if e != nil {
		return nil, nil, e
	}

	yearCol, e := frame.NewCol(ingest.ColYear, years)
	if e != nil {
		return nil, nil, e
	}

	if e := out.AppendColumn(parsed); e != nil {
		return nil, nil, e
	}

	if e := out.AppendColumn(yearCol); e != nil {
		return nil, nil, e
	}

	if e := out.DropColumns(PrunedColumns...); e != nil {
		return nil, nil, e
	}

	audit.After = missingCounts(out)
	for _, nm := range out.ColumnNames() {
		if n := audit.After[nm]; n != 0 {
			return nil, nil, &MissingValueError{Column: nm, Count: n}
		}
	}

	return out, audit, nil
}

func missingCounts(df *frame.DF) map[string]int {
	out := make(map[string]int, df.ColumnCount())
	for _, nm := range df.ColumnNames() {
		c, _ := df.Column(nm)
		out[nm] = c.MissingCount()
	}

	return out
}
