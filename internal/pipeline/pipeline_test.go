package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"shootings/internal/aggregate"
	"shootings/internal/config"
	"shootings/internal/ingest"
	"shootings/internal/model"
)

const header = "INCIDENT_KEY,OCCUR_DATE,OCCUR_TIME,BORO,PRECINCT,JURISDICTION_CODE," +
	"LOCATION_DESC,STATISTICAL_MURDER_FLAG,PERP_AGE_GROUP,PERP_SEX,PERP_RACE," +
	"VIC_AGE_GROUP,VIC_SEX,VIC_RACE,Latitude,Longitude"

var rows = []string{
	"1,01/05/2020,01:00,BROOKLYN,75,0,,true,,,,18-24,M,B,40.5,-73.9",
	"2,01/05/2020,02:00,BROOKLYN,75,0,,false,,,,25-44,M,B,40.5,-73.9",
	"3,01/12/2020,03:00,QUEENS,105,2,,false,,,,25-44,F,W,40.7,-73.8",
	"4,06/15/2021,04:00,BRONX,40,0,,true,,,,18-24,M,B,40.8,-73.9",
	"5,07/04/2021,05:00,BRONX,40,0,,false,,,,45-64,M,B,40.8,-73.9",
	"6,08/20/2021,06:00,QUEENS,105,2,,false,,,,25-44,F,W,40.7,-73.8",
	"7,03/01/2022,07:00,BROOKLYN,75,0,,false,,,,18-24,M,B,40.5,-73.9",
	"8,04/10/2022,08:00,QUEENS,105,2,,true,,,,25-44,M,B,40.7,-73.8",
}

func writeCSV(t *testing.T) string {
	body := header + "\n"
	for _, r := range rows {
		body += r + "\n"
	}

	path := filepath.Join(t.TempDir(), "incidents.csv")
	assert.Nil(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestRun(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	cfg := &config.Config{Input: writeCSV(t), OutputDir: outDir, Plots: true}

	res, e := Run(cfg, zap.NewNop())
	assert.Nil(t, e)

	assert.Equal(t, len(rows), res.Cleaned.RowCount())
	assert.Equal(t, 0, len(res.Anomalies))

	// weekday counts cover every row
	cc, _ := res.Weekday.Column(aggregate.ColCount)
	tot := 0
	for _, n := range cc.Ints() {
		tot += n
	}
	assert.Equal(t, len(rows), tot)

	// yearly summary in ascending year order
	yc, _ := res.Yearly.Column(ingest.ColYear)
	assert.Equal(t, []int{2020, 2021, 2022}, yc.Ints())

	// year model: shootings 3/3/2, murders 1/1/1
	sc, _ := res.YearModel.Column(model.ColShootings)
	mc, _ := res.YearModel.Column(model.ColMurders)
	assert.Equal(t, []int{3, 3, 2}, sc.Ints())
	assert.Equal(t, []int{1, 1, 1}, mc.Ints())

	assert.NotNil(t, res.Fit)
	assert.Equal(t, 3, res.Fit.N)

	// pivot has one column per region plus YEAR and MAX
	assert.Equal(t, []string{ingest.ColYear, "BRONX", "BROOKLYN", "QUEENS", aggregate.ColMax},
		res.Pivot.ColumnNames())

	for _, f := range []string{"weekday.html", "yearly.html", "region_year.html", "fit.html"} {
		_, e := os.Stat(filepath.Join(outDir, f))
		assert.Nil(t, e, f)
	}
}

func TestRun_AbortsOnBadDate(t *testing.T) {
	body := header + "\n" + "1,2020-01-05,01:00,BROOKLYN,75,0,,true,,,,18-24,M,B,40.5,-73.9\n"
	path := filepath.Join(t.TempDir(), "incidents.csv")
	assert.Nil(t, os.WriteFile(path, []byte(body), 0o644))

	cfg := &config.Config{Input: path, Plots: false}
	_, e := Run(cfg, zap.NewNop())
	assert.NotNil(t, e)
}

func TestRun_MissingInput(t *testing.T) {
	cfg := &config.Config{Input: filepath.Join(t.TempDir(), "nope.csv")}
	_, e := Run(cfg, zap.NewNop())
	assert.NotNil(t, e)
}
