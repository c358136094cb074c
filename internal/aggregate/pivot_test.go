package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shootings/internal/ingest"
)

func TestPivotRegionYear(t *testing.T) {
	// B has no 2021 incidents: the pivot must hold zero, not a gap
	df := cleanedDF(
		[]time.Time{day(2020, 1, 5), day(2021, 1, 5), day(2020, 2, 5), day(2020, 3, 5)},
		[]string{"B", "A", "A", "B"},
	)

	long, e := RegionYearSummary(df)
	assert.Nil(t, e)

	wide, e := PivotRegionYear(long)
	assert.Nil(t, e)
	assert.Equal(t, []string{ingest.ColYear, "A", "B", ColMax}, wide.ColumnNames())

	yc, _ := wide.Column(ingest.ColYear)
	ac, _ := wide.Column("A")
	bc, _ := wide.Column("B")
	mc, _ := wide.Column(ColMax)
	assert.Equal(t, []int{2020, 2021}, yc.Ints())
	assert.Equal(t, []int{1, 1}, ac.Ints())
	assert.Equal(t, []int{2, 0}, bc.Ints())
	assert.Equal(t, []int{2, 1}, mc.Ints())
}

func TestPivotRegionYear_MaxPerRow(t *testing.T) {
	df := cleanedDF(
		[]time.Time{day(2019, 1, 5), day(2019, 1, 6), day(2019, 1, 7), day(2020, 1, 5)},
		[]string{"C", "C", "A", "A"},
	)

	long, _ := RegionYearSummary(df)
	wide, e := PivotRegionYear(long)
	assert.Nil(t, e)

	mc, _ := wide.Column(ColMax)
	assert.Equal(t, []int{2, 1}, mc.Ints())
}
