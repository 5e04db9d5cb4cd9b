package components

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Series is one named line of a chart.
type Series struct {
	Name   string
	Color  color.Color
	Values []float64
}

// lineChart draws one or more series as polylines with a shared scale.
// Charting is done with canvas primitives; the data volume is a handful
// of points per finished game.
type lineChart struct {
	widget.BaseWidget
	title  string
	series []Series
}

func (c *lineChart) SetSeries(series []Series) {
	c.series = series
	c.Refresh()
}

func (c *lineChart) CreateRenderer() fyne.WidgetRenderer {
	title := canvas.NewText(c.title, colorPrimary)
	title.TextSize = 12
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	frame := canvas.NewRectangle(color.Transparent)
	frame.StrokeColor = colorSecondary
	frame.StrokeWidth = 1

	background := canvas.NewRectangle(colorBackground)

	return &lineChartRenderer{
		chart:      c,
		background: background,
		frame:      frame,
		title:      title,
		minLabel:   newAxisLabel(),
		maxLabel:   newAxisLabel(),
	}
}

func newAxisLabel() *canvas.Text {
	label := canvas.NewText("", colorSecondary)
	label.TextSize = 10
	return label
}

type lineChartRenderer struct {
	chart      *lineChart
	background *canvas.Rectangle
	frame      *canvas.Rectangle
	title      *canvas.Text
	minLabel   *canvas.Text
	maxLabel   *canvas.Text
	lines      []*canvas.Line
	markers    []*canvas.Circle
	legend     []*canvas.Text
}

func (r *lineChartRenderer) MinSize() fyne.Size {
	return fyne.NewSize(230, 160)
}

const (
	chartPadLeft   float32 = 40
	chartPadRight  float32 = 10
	chartPadTop    float32 = 26
	chartPadBottom float32 = 22
)

func (r *lineChartRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.background.Move(fyne.NewPos(0, 0))
	r.frame.Resize(size)
	r.frame.Move(fyne.NewPos(0, 0))

	r.title.Resize(fyne.NewSize(size.Width, 16))
	r.title.Move(fyne.NewPos(0, 4))

	r.maxLabel.Move(fyne.NewPos(4, chartPadTop-6))
	r.minLabel.Move(fyne.NewPos(4, size.Height-chartPadBottom-6))

	r.layoutData(size)
	r.layoutLegend(size)
}

// layoutData scales every series into the plot area.
func (r *lineChartRenderer) layoutData(size fyne.Size) {
	min, max, any := r.chart.dataRange()
	if !any {
		return
	}
	if max == min {
		max = min + 1
	}

	plotWidth := size.Width - chartPadLeft - chartPadRight
	plotHeight := size.Height - chartPadTop - chartPadBottom
	if plotWidth <= 0 || plotHeight <= 0 {
		return
	}

	toY := func(v float64) float32 {
		frac := (v - min) / (max - min)
		return chartPadTop + plotHeight*(1-float32(frac))
	}

	lineIdx, markerIdx := 0, 0
	for _, series := range r.chart.series {
		n := len(series.Values)
		if n == 0 {
			continue
		}
		stepX := float32(0)
		if n > 1 {
			stepX = plotWidth / float32(n-1)
		}
		toX := func(i int) float32 {
			if n == 1 {
				return chartPadLeft + plotWidth/2
			}
			return chartPadLeft + stepX*float32(i)
		}

		for i := 0; i < n-1 && lineIdx < len(r.lines); i++ {
			line := r.lines[lineIdx]
			line.Position1 = fyne.NewPos(toX(i), toY(series.Values[i]))
			line.Position2 = fyne.NewPos(toX(i+1), toY(series.Values[i+1]))
			lineIdx++
		}
		for i := 0; i < n && markerIdx < len(r.markers); i++ {
			marker := r.markers[markerIdx]
			x, y := toX(i), toY(series.Values[i])
			marker.Position1 = fyne.NewPos(x-2, y-2)
			marker.Position2 = fyne.NewPos(x+2, y+2)
			markerIdx++
		}
	}
}

func (r *lineChartRenderer) layoutLegend(size fyne.Size) {
	x := chartPadLeft
	y := size.Height - 16
	for _, entry := range r.legend {
		entry.Move(fyne.NewPos(x, y))
		x += float32(len(entry.Text))*7 + 12
	}
}

// Refresh rebuilds the line and marker objects from the current series.
func (r *lineChartRenderer) Refresh() {
	r.lines = r.lines[:0]
	r.markers = r.markers[:0]
	r.legend = r.legend[:0]

	showLegend := len(r.chart.series) > 1
	for _, series := range r.chart.series {
		for i := 0; i+1 < len(series.Values); i++ {
			line := canvas.NewLine(series.Color)
			line.StrokeWidth = 2
			r.lines = append(r.lines, line)
		}
		for range series.Values {
			marker := canvas.NewCircle(series.Color)
			r.markers = append(r.markers, marker)
		}
		if showLegend && len(series.Values) > 0 {
			entry := canvas.NewText(series.Name, series.Color)
			entry.TextSize = 10
			r.legend = append(r.legend, entry)
		}
	}

	min, max, any := r.chart.dataRange()
	if any {
		r.minLabel.Text = fmt.Sprintf("%.1f", min)
		r.maxLabel.Text = fmt.Sprintf("%.1f", max)
	} else {
		r.minLabel.Text = ""
		r.maxLabel.Text = ""
	}

	r.Layout(r.chart.Size())
	canvas.Refresh(r.chart)
}

func (r *lineChartRenderer) Objects() []fyne.CanvasObject {
	objects := []fyne.CanvasObject{r.background, r.frame, r.title, r.minLabel, r.maxLabel}
	for _, line := range r.lines {
		objects = append(objects, line)
	}
	for _, marker := range r.markers {
		objects = append(objects, marker)
	}
	for _, entry := range r.legend {
		objects = append(objects, entry)
	}
	return objects
}

func (r *lineChartRenderer) Destroy() {}

// dataRange returns the min and max across all series values.
func (c *lineChart) dataRange() (min, max float64, any bool) {
	for _, series := range c.series {
		for _, v := range series.Values {
			if !any || v < min {
				min = v
			}
			if !any || v > max {
				max = v
			}
			any = true
		}
	}
	return min, max, any
}

// ChartsPanel is the 2x2 grid of history charts: score, accuracy,
// clicks and response times.
type ChartsPanel struct {
	container *fyne.Container
	score     *lineChart
	accuracy  *lineChart
	clicks    *lineChart
	times     *lineChart
}

func NewChartsPanel() *ChartsPanel {
	panel := &ChartsPanel{
		score:    newLineChart("Score History"),
		accuracy: newLineChart("Accuracy History"),
		clicks:   newLineChart("Clicks History"),
		times:    newLineChart("Response Times"),
	}
	panel.container = container.NewGridWithColumns(2,
		panel.score, panel.accuracy, panel.clicks, panel.times,
	)
	return panel
}

func newLineChart(title string) *lineChart {
	chart := &lineChart{title: title}
	chart.ExtendBaseWidget(chart)
	return chart
}

func (p *ChartsPanel) GetContainer() *fyne.Container {
	return p.container
}

// History is the chart panel's view of the recorded series.
type History interface {
	Scores() []int
	Accuracy() []float64
	Correct() []int
	Wrong() []int
	AvgTimes() []float64
	FastestTimes() []float64
	SlowestTimes() []float64
}

// Update redraws all four charts from the history tracker.
func (p *ChartsPanel) Update(history History) {
	p.score.SetSeries([]Series{
		{Name: "Score", Color: chartBlue, Values: intsToFloats(history.Scores())},
	})
	p.accuracy.SetSeries([]Series{
		{Name: "Accuracy", Color: chartGreen, Values: history.Accuracy()},
	})
	p.clicks.SetSeries([]Series{
		{Name: "Correct", Color: chartGreen, Values: intsToFloats(history.Correct())},
		{Name: "Wrong", Color: chartRed, Values: intsToFloats(history.Wrong())},
	})
	p.times.SetSeries([]Series{
		{Name: "Average", Color: chartBlue, Values: history.AvgTimes()},
		{Name: "Fastest", Color: chartGreen, Values: history.FastestTimes()},
		{Name: "Slowest", Color: chartRed, Values: history.SlowestTimes()},
	})
}

func intsToFloats(values []int) []float64 {
	floats := make([]float64, len(values))
	for i, v := range values {
		floats[i] = float64(v)
	}
	return floats
}
