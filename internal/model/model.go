// Package model builds the per-year (shootings, murders) table and fits an
// ordinary-least-squares line predicting murders from shootings.
package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"shootings/internal/frame"
	"shootings/internal/ingest"
)

// Column names of the year-model table.
const (
	ColShootings = "SHOOTINGS"
	ColMurders   = "MURDERS"
)

// DegenerateModelError reports input the regression cannot be fit on:
// too few yearly observations or a constant predictor.
type DegenerateModelError struct {
	Reason string
}

func (e *DegenerateModelError) Error() string {
	return "degenerate regression input: " + e.Reason
}

// Fit is a fitted murders ~ shootings line with its summary statistics.
type Fit struct {
	Intercept float64
	Slope     float64
	// standard errors of the estimates; zero when the fit is exact
	SEIntercept float64
	SESlope     float64
	R2          float64
	N           int
}

func (f *Fit) String() string {
	return fmt.Sprintf("murders = %.4f + %.4f*shootings (se %.4f, %.4f; R2 %.4f; n %d)",
		f.Intercept, f.Slope, f.SEIntercept, f.SESlope, f.R2, f.N)
}

// YearModel builds one row per year with the total shooting count and the
// murder count (rows with the murder flag set). Every year with shootings
// appears, with a zero murder count when none were murders. Rows come back
// in ascending year order.
func YearModel(df *frame.DF) (*frame.DF, error) {
	groups, e := df.GroupBy(ingest.ColYear)
	if e != nil {
		return nil, e
	}

	flagCol, e := df.Column(ingest.ColMurderFlag)
	if e != nil {
		return nil, e
	}

	flags := flagCol.Bools()
	years := make([]int, len(groups))
	shootings := make([]int, len(groups))
	murders := make([]int, len(groups))
	for ind, g := range groups {
		years[ind] = g.Key[0].(int)
		shootings[ind] = len(g.Rows)
		for _, row := range g.Rows {
			if flags[row] {
				murders[ind]++
			}
		}
	}

	yearCol, e := frame.NewCol(ingest.ColYear, years)
	if e != nil {
		return nil, e
	}

	shootCol, e := frame.NewCol(ColShootings, shootings)
	if e != nil {
		return nil, e
	}

	murderCol, e := frame.NewCol(ColMurders, murders)
	if e != nil {
		return nil, e
	}

	out, e := frame.NewDF(yearCol, shootCol, murderCol)
	if e != nil {
		return nil, e
	}

	if e := out.Sort(frame.Asc(ingest.ColYear)); e != nil {
		return nil, e
	}

	return out, nil
}

// FitOLS regresses murders on shootings across the year-model rows. The fit
// is deterministic: the same table always yields the same coefficients.
func FitOLS(yearModel *frame.DF) (*Fit, error) {
	shootCol, e := yearModel.Column(ColShootings)
	if e != nil {
		return nil, e
	}

	murderCol, e := yearModel.Column(ColMurders)
	if e != nil {
		return nil, e
	}

	x := shootCol.Data().AsFloat()
	y := murderCol.Data().AsFloat()

	if len(x) < 2 {
		return nil, &DegenerateModelError{Reason: fmt.Sprintf("need at least 2 yearly observations, have %d", len(x))}
	}

	xbar := stat.Mean(x, nil)
	sxx := 0.0
	for _, xi := range x {
		sxx += (xi - xbar) * (xi - xbar)
	}

	if sxx == 0 {
		return nil, &DegenerateModelError{Reason: "shooting counts have zero variance"}
	}

	alpha, beta := stat.LinearRegression(x, y, nil, false)
	r2 := stat.RSquared(x, y, nil, alpha, beta)

	fit := &Fit{Intercept: alpha, Slope: beta, R2: r2, N: len(x)}

	// Standard errors from the residual variance. With only two points the
	// fit is exact and the errors are reported as zero.
	if n := len(x); n > 2 {
		rss := 0.0
		for ind := 0; ind < n; ind++ {
			r := y[ind] - (alpha + beta*x[ind])
			rss += r * r
		}

		s2 := rss / float64(n-2)
		fit.SESlope = math.Sqrt(s2 / sxx)
		fit.SEIntercept = math.Sqrt(s2 * (1.0/float64(n) + xbar*xbar/sxx))
	}

	return fit, nil
}
