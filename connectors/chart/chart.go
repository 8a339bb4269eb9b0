package chart

import (
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"bike-report/domain/rentals"
)

// Renderer draws the report charts with a fixed Style.
type Renderer struct {
	style Style
}

func NewRenderer(style Style) *Renderer {
	return &Renderer{style: style}
}

// RenderHourlyDemand draws one line-with-markers series per day type over
// the hours of the day and writes a PNG to path, overwriting any previous
// file. An unwritable path fails this call only.
func (r *Renderer) RenderHourlyDemand(rows []rentals.HourlyDemand, path string) error {
	p := plot.New()
	p.Title.Text = "Hourly Bike Demand: Commuter vs Leisure Patterns"
	p.Title.TextStyle.Font.Size = vg.Points(r.style.TitleFontSize)
	p.X.Label.Text = "Hour of Day (0-23)"
	p.Y.Label.Text = "Avg. Bike Rentals"
	p.X.Tick.Marker = hourTicks{}
	if r.style.Grid {
		p.Add(plotter.NewGrid())
	}

	// Rows arrive sorted by (day type, hour), so each day type forms one
	// contiguous, hour-ordered run.
	series := 0
	for _, dayType := range dayTypes(rows) {
		var pts plotter.XYs
		for _, row := range rows {
			if row.DayType != dayType {
				continue
			}
			pts = append(pts, plotter.XY{X: float64(row.Hour), Y: row.AvgRentals})
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return err
		}
		col := r.style.seriesColor(series)
		line.Color = col
		line.Width = vg.Points(2)
		points.GlyphStyle.Color = col
		points.GlyphStyle.Radius = vg.Points(3)
		points.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(line, points)
		p.Legend.Add(dayType, line, points)
		series++
	}
	p.Legend.Top = true

	return p.Save(vg.Length(r.style.WidthInches)*vg.Inch, vg.Length(r.style.HeightInches)*vg.Inch, path)
}

// RenderWeatherSegments draws a stacked bar per weather code, casual below
// and registered on top, in absolute average rentals, and writes a PNG.
func (r *Renderer) RenderWeatherSegments(rows []rentals.WeatherSegment, path string) error {
	p := plot.New()
	p.Title.Text = "User Resilience to Weather Conditions"
	p.Title.TextStyle.Font.Size = vg.Points(r.style.TitleFontSize)
	p.X.Label.Text = "Weather Condition (1=Good, 4=Severe)"
	p.Y.Label.Text = "Average Rentals"
	if r.style.Grid {
		p.Add(plotter.NewGrid())
	}

	casual := make(plotter.Values, len(rows))
	registered := make(plotter.Values, len(rows))
	labels := make([]string, len(rows))
	for i, row := range rows {
		casual[i] = row.AvgCasual
		registered[i] = row.AvgRegistered
		labels[i] = strconv.Itoa(row.WeatherCode)
	}

	barWidth := vg.Points(30)
	casualBars, err := plotter.NewBarChart(casual, barWidth)
	if err != nil {
		return err
	}
	casualBars.Color = r.style.seriesColor(0)
	casualBars.LineStyle.Width = vg.Length(0)
	registeredBars, err := plotter.NewBarChart(registered, barWidth)
	if err != nil {
		return err
	}
	registeredBars.Color = r.style.seriesColor(1)
	registeredBars.LineStyle.Width = vg.Length(0)
	registeredBars.StackOn(casualBars)

	p.Add(casualBars, registeredBars)
	p.Legend.Add("casual", casualBars)
	p.Legend.Add("registered", registeredBars)
	p.Legend.Top = true
	p.NominalX(labels...)

	return p.Save(vg.Length(r.style.WidthInches)*vg.Inch, vg.Length(r.style.HeightInches)*vg.Inch, path)
}

// dayTypes returns the distinct day types in first-appearance order.
func dayTypes(rows []rentals.HourlyDemand) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range rows {
		if !seen[r.DayType] {
			seen[r.DayType] = true
			out = append(out, r.DayType)
		}
	}
	return out
}

// hourTicks puts a tick on every hour of the day.
type hourTicks struct{}

func (hourTicks) Ticks(min, max float64) []plot.Tick {
	var ts []plot.Tick
	for h := 0; h <= 23; h++ {
		v := float64(h)
		if v < min || v > max {
			continue
		}
		ts = append(ts, plot.Tick{Value: v, Label: strconv.Itoa(h)})
	}
	return ts
}
