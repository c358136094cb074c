package report

import (
	"os"
	"path/filepath"
	"strconv"

	"shootings/internal/aggregate"
	"shootings/internal/frame"
	"shootings/internal/ingest"
	"shootings/internal/model"
)

// WeekdayPlot is a bar chart of incident counts by weekday.
func WeekdayPlot(weekday *frame.DF) (*Plot, error) {
	labelCol, e := weekday.Column(aggregate.ColWeekday)
	if e != nil {
		return nil, e
	}

	countCol, e := weekday.Column(aggregate.ColCount)
	if e != nil {
		return nil, e
	}

	p := NewPlot(WithTitle("Shootings by weekday"), WithXlabel("weekday"), WithYlabel("shootings"))
	p.AddBarInt("shootings", labelCol.Strings(), countCol.Ints())

	return p, nil
}

// YearlyPlot is a line chart of incident counts by year.
func YearlyPlot(yearly *frame.DF) (*Plot, error) {
	yearCol, e := yearly.Column(ingest.ColYear)
	if e != nil {
		return nil, e
	}

	countCol, e := yearly.Column(aggregate.ColCount)
	if e != nil {
		return nil, e
	}

	p := NewPlot(WithTitle("Shootings by year"), WithXlabel("year"), WithYlabel("shootings"))
	p.AddLine("shootings", "black", yearCol.Data().AsFloat(), countCol.Data().AsFloat())

	return p, nil
}

// RegionYearPlot is a grouped bar chart of the region-by-year pivot, one
// series per region.
func RegionYearPlot(pivot *frame.DF) (*Plot, error) {
	yearCol, e := pivot.Column(ingest.ColYear)
	if e != nil {
		return nil, e
	}

	var labels []string
	for _, y := range yearCol.Ints() {
		labels = append(labels, strconv.Itoa(y))
	}

	p := NewPlot(WithTitle("Shootings by region and year"), WithXlabel("year"),
		WithYlabel("shootings"), WithLegend(true))
	for _, nm := range pivot.ColumnNames() {
		if nm == ingest.ColYear || nm == aggregate.ColMax {
			continue
		}

		c, e := pivot.Column(nm)
		if e != nil {
			return nil, e
		}

		p.AddBarInt(nm, labels, c.Ints())
	}

	return p, nil
}

// FitPlot overlays the fitted murders ~ shootings line on the per-year
// observations.
func FitPlot(yearModel *frame.DF, fit *model.Fit) (*Plot, error) {
	shootCol, e := yearModel.Column(model.ColShootings)
	if e != nil {
		return nil, e
	}

	murderCol, e := yearModel.Column(model.ColMurders)
	if e != nil {
		return nil, e
	}

	x := shootCol.Data().AsFloat()
	fitted := make([]float64, len(x))
	for ind := 0; ind < len(x); ind++ {
		fitted[ind] = fit.Intercept + fit.Slope*x[ind]
	}

	p := NewPlot(WithTitle("Murders vs shootings by year"), WithXlabel("shootings"),
		WithYlabel("murders"), WithLegend(true))
	p.AddPoints("observed", "black", x, murderCol.Data().AsFloat())
	p.AddLine("fitted", "red", x, fitted)

	return p, nil
}

// Summaries bundles the plot inputs.
type Summaries struct {
	Weekday   *frame.DF
	Yearly    *frame.DF
	Pivot     *frame.DF
	YearModel *frame.DF
	Fit       *model.Fit
}

// SavePlots writes the four report plots under dir as standalone HTML.
func SavePlots(dir string, s Summaries) error {
	if e := os.MkdirAll(dir, 0o755); e != nil {
		return e
	}

	builders := []struct {
		file  string
		build func() (*Plot, error)
	}{
		{"weekday.html", func() (*Plot, error) { return WeekdayPlot(s.Weekday) }},
		{"yearly.html", func() (*Plot, error) { return YearlyPlot(s.Yearly) }},
		{"region_year.html", func() (*Plot, error) { return RegionYearPlot(s.Pivot) }},
		{"fit.html", func() (*Plot, error) { return FitPlot(s.YearModel, s.Fit) }},
	}

	for _, b := range builders {
		p, e := b.build()
		if e != nil {
			return e
		}

		p.WriteHTML(filepath.Join(dir, b.file))
	}

	return nil
}
