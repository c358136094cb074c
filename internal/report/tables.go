package report

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"shootings/internal/frame"
	"shootings/internal/model"
)

const (
	floatFormat = "%.2f"
	dateFormat  = "2006-01-02"
)

// WriteTable renders df to w as an ASCII table, one header per column.
func WriteTable(w io.Writer, title string, df *frame.DF) error {
	if title != "" {
		if _, e := fmt.Fprintln(w, title); e != nil {
			return e
		}
	}

	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader(df.ColumnNames())
	tbl.SetAutoFormatHeaders(false)

	for row := 0; row < df.RowCount(); row++ {
		var cells []string
		for _, nm := range df.ColumnNames() {
			c, e := df.Column(nm)
			if e != nil {
				return e
			}

			cells = append(cells, formatCell(c, row))
		}

		tbl.Append(cells)
	}

	tbl.Render()

	return nil
}

// WriteFit renders the regression summary.
func WriteFit(w io.Writer, fit *model.Fit) error {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"term", "estimate", "std error"})
	tbl.SetAutoFormatHeaders(false)
	tbl.Append([]string{"intercept", fmt.Sprintf("%.4f", fit.Intercept), fmt.Sprintf("%.4f", fit.SEIntercept)})
	tbl.Append([]string{"shootings", fmt.Sprintf("%.4f", fit.Slope), fmt.Sprintf("%.4f", fit.SESlope)})
	tbl.Render()

	_, e := fmt.Fprintf(w, "R2 %.4f on %d yearly observations\n", fit.R2, fit.N)

	return e
}

func formatCell(c *frame.Col, row int) string {
	switch c.DataType() {
	case frame.DTfloat:
		return fmt.Sprintf(floatFormat, c.Element(row).(float64))
	case frame.DTdate:
		return c.Element(row).(time.Time).Format(dateFormat)
	default:
		return fmt.Sprintf("%v", c.Element(row))
	}
}
