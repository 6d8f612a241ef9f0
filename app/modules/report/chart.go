package report

import (
	"bytes"

	bracketdomain "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartPalette holds the colors of the standings chart.
type ChartPalette struct {
	Background drawing.Color
	Bar        drawing.Color
	Leader     drawing.Color
	Text       drawing.Color
}

// DefaultPalette matches style.css.
var DefaultPalette = ChartPalette{
	Background: drawing.ColorFromHex("fbfaf7"),
	Bar:        drawing.ColorFromHex("3b6e8f"),
	Leader:     drawing.ColorFromHex("d08c2b"),
	Text:       drawing.ColorFromHex("22303c"),
}

// GenerateStandingsChart produces a PNG bar chart of potential score per
// competitor in rank order. Competitors sharing the top rank are highlighted.
func GenerateStandingsChart(standings []bracketdomain.Standing, palette ChartPalette) ([]byte, error) {
	if len(standings) == 0 {
		return emptyStandingsImage(palette)
	}

	bars := make([]chart.Value, 0, len(standings))
	top := 1.0
	for _, s := range standings {
		color := palette.Bar
		if s.Rank == 1 {
			color = palette.Leader
		}
		bars = append(bars, chart.Value{
			Label: s.Name,
			Value: float64(s.Potential),
			Style: chart.Style{FillColor: color, StrokeColor: color},
		})
		if float64(s.Potential) > top {
			top = float64(s.Potential)
		}
	}

	const barWidth, barSpacing = 40, 20
	width := len(bars)*(barWidth+barSpacing) + 120
	if width < 600 {
		width = 600
	}

	graph := chart.BarChart{
		Title:      "Potential score",
		TitleStyle: chart.Style{FontColor: palette.Text},
		Width:      width,
		Height:     400,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{
			FillColor: palette.Background,
			Padding:   chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		Canvas: chart.Style{FillColor: palette.Background},
		XAxis:  chart.Style{FontColor: palette.Text},
		YAxis: chart.YAxis{
			Style: chart.Style{FontColor: palette.Text},
			// a fixed floor keeps an all-zero field renderable
			Range: &chart.ContinuousRange{Min: 0, Max: top},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// emptyStandingsImage draws a notice on a plain canvas. chart.Chart refuses
// to render without a series, so the renderer is driven directly.
func emptyStandingsImage(palette ChartPalette) ([]byte, error) {
	const width, height = 400, 200
	const notice = "No brackets scored"

	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, err
	}
	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, err
	}
	r.SetDPI(chart.DefaultDPI)

	chart.Draw.Box(r, chart.NewBox(0, 0, width, height), chart.Style{
		FillColor:   palette.Background,
		StrokeColor: palette.Background,
	})

	text := chart.Style{Font: font, FontSize: 12, FontColor: palette.Text}
	size := chart.Draw.MeasureText(r, notice, text)
	chart.Draw.Text(r, notice, (width-size.Width())/2, (height+size.Height())/2, text)

	var buffer bytes.Buffer
	if err := r.Save(&buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
