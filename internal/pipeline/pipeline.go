// Package pipeline runs the report steps in order: load, clean, aggregate,
// model, report. The first fatal error aborts the run; row-level ingestion
// anomalies are collected and carried through instead.
package pipeline

import (
	"go.uber.org/zap"

	"shootings/internal/aggregate"
	"shootings/internal/clean"
	"shootings/internal/config"
	"shootings/internal/frame"
	"shootings/internal/ingest"
	"shootings/internal/model"
	"shootings/internal/report"
)

// Results holds every table and diagnostic the run produces.
type Results struct {
	Cleaned *frame.DF

	Weekday    *frame.DF
	Yearly     *frame.DF
	Region     *frame.DF
	RegionYear *frame.DF
	Pivot      *frame.DF

	YearModel *frame.DF
	Fit       *model.Fit

	Anomalies []ingest.Anomaly
	Audit     *clean.Audit
}

// Run executes the pipeline against cfg.Input and returns everything the
// reporter needs. It either returns the full result set or an error; there
// is no partial-report mode.
func Run(cfg *config.Config, logger *zap.Logger) (*Results, error) {
	loaded, e := ingest.Load(cfg.Input, ingest.DefaultSchema())
	if e != nil {
		return nil, e
	}

	logger.Info("loaded incidents",
		zap.String("input", cfg.Input),
		zap.Int("rows", loaded.DF.RowCount()),
		zap.Int("anomalies", len(loaded.Anomalies)))
	for _, a := range loaded.Anomalies {
		logger.Warn("ingestion anomaly", zap.String("detail", a.String()))
	}

	res := &Results{Anomalies: loaded.Anomalies}

	if res.Cleaned, res.Audit, e = clean.Clean(loaded.DF, cfg.DateLayout); e != nil {
		return nil, e
	}

	logger.Info("cleaned incidents",
		zap.Int("rows", res.Cleaned.RowCount()),
		zap.Int("columns", res.Cleaned.ColumnCount()))

	if res.Weekday, e = aggregate.WeekdaySummary(res.Cleaned); e != nil {
		return nil, e
	}

	if res.Yearly, e = aggregate.YearlySummary(res.Cleaned); e != nil {
		return nil, e
	}

	if res.Region, e = aggregate.RegionSummary(res.Cleaned); e != nil {
		return nil, e
	}

	if res.RegionYear, e = aggregate.RegionYearSummary(res.Cleaned); e != nil {
		return nil, e
	}

	if res.Pivot, e = aggregate.PivotRegionYear(res.RegionYear); e != nil {
		return nil, e
	}

	if res.YearModel, e = model.YearModel(res.Cleaned); e != nil {
		return nil, e
	}

	if res.Fit, e = model.FitOLS(res.YearModel); e != nil {
		return nil, e
	}

	logger.Info("fitted model",
		zap.Float64("intercept", res.Fit.Intercept),
		zap.Float64("slope", res.Fit.Slope),
		zap.Float64("r2", res.Fit.R2),
		zap.Int("years", res.Fit.N))

	if cfg.Plots {
		e = report.SavePlots(cfg.OutputDir, report.Summaries{
			Weekday:   res.Weekday,
			Yearly:    res.Yearly,
			Pivot:     res.Pivot,
			YearModel: res.YearModel,
			Fit:       res.Fit,
		})
		if e != nil {
			return nil, e
		}

		logger.Info("wrote plots", zap.String("dir", cfg.OutputDir))
	}

	return res, nil
}
