// Package report renders the pipeline's summary tables and plots. It is
// thin glue over tablewriter and go-plotly; nothing here computes.
package report

import (
	"fmt"

	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
	"github.com/MetalBlueberry/go-plotly/offline"
)

// Plot wraps a plotly figure and its layout.
type Plot struct {
	Fig *grob.Fig
	Lay *grob.Layout
}

// Opt mutates a plot at construction.
type Opt func(plot *Plot) *Plot

func NewPlot(opt ...Opt) *Plot {
	fig := &grob.Fig{}
	lay := &grob.Layout{}
	fig.Layout = lay
	p := &Plot{Fig: fig, Lay: lay}
	for _, o := range opt {
		o(p)
	}

	return p
}

func WithWidth(w float64) Opt {
	if w < 0.0 {
		panic(fmt.Errorf("negative width"))
	}
	return func(p *Plot) *Plot {
		p.Lay.Width = w
		return p
	}
}

func WithHeight(h float64) Opt {
	if h < 0.0 {
		panic(fmt.Errorf("negative height"))
	}
	return func(p *Plot) *Plot {
		p.Lay.Height = h
		return p
	}
}

func WithTitle(title string) Opt {
	return func(p *Plot) *Plot { p.Lay.Title = &grob.LayoutTitle{Text: title}; return p }
}

func WithXlabel(label string) Opt {
	return func(p *Plot) *Plot {
		if p.Lay.Xaxis == nil {
			p.Lay.Xaxis = &grob.LayoutXaxis{}
		}
		if p.Lay.Xaxis.Title == nil {
			p.Lay.Xaxis.Title = &grob.LayoutXaxisTitle{}
		}

		p.Lay.Xaxis.Title.Text = label
		return p
	}
}

func WithYlabel(label string) Opt {
	return func(p *Plot) *Plot {
		if p.Lay.Yaxis == nil {
			p.Lay.Yaxis = &grob.LayoutYaxis{}
		}
		if p.Lay.Yaxis.Title == nil {
			p.Lay.Yaxis.Title = &grob.LayoutYaxisTitle{}
		}

		p.Lay.Yaxis.Title.Text = label
		return p
	}
}

func WithLegend(show bool) Opt {
	return func(p *Plot) *Plot {
		if show {
			p.Lay.Showlegend = grob.True
		} else {
			p.Lay.Showlegend = grob.False
		}

		return p
	}
}

// AddBar adds a bar trace with categorical x labels.
func (p *Plot) AddBar(seriesName string, x []string, y []float64) {
	p.Fig.AddTraces(&grob.Bar{Name: seriesName, X: x, Y: y})
}

// AddBarInt is AddBar for integer counts.
func (p *Plot) AddBarInt(seriesName string, x []string, y []int) {
	p.Fig.AddTraces(&grob.Bar{Name: seriesName, X: x, Y: y})
}

// AddLine adds a line trace.
func (p *Plot) AddLine(seriesName, color string, x, y []float64) {
	p.Fig.AddTraces(&grob.Scatter{Name: seriesName, X: x, Y: y,
		Mode: grob.ScatterModeLines, Line: &grob.ScatterLine{Color: color}})
}

// AddPoints adds a marker trace.
func (p *Plot) AddPoints(seriesName, color string, x, y []float64) {
	p.Fig.AddTraces(&grob.Scatter{Name: seriesName, X: x, Y: y,
		Mode: grob.ScatterModeMarkers, Marker: &grob.ScatterMarker{Color: color}})
}

// WriteHTML renders the figure as a standalone HTML file.
func (p *Plot) WriteHTML(fileName string) {
	offline.ToHtml(p.Fig, fileName)
}
