package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/hyperclock/internal/hands"
)

var columns = []struct {
	title string
	width int
}{
	{"#", 4},
	{"name", 22},
	{"period", 22},
	{"speed", 18},
	{"light speed", 16},
}

func cell(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}

// Table renders one row per hand with the same formatting as the panel.
func Table(hs []hands.Hand) string {
	var b strings.Builder
	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = cell(c.title, c.width)
	}
	b.WriteString(headerStyle.Render(strings.Join(header, "")) + "\n")

	for i, h := range hs {
		row := []string{
			cell(fmt.Sprintf("%d", i), columns[0].width),
			colored(h.Color).Render(cell(h.Name, columns[1].width)),
			cell(hands.FormatPeriod(h.Period), columns[2].width),
			cell(hands.FormatSpeed(h.SpeedKMH), columns[3].width),
			colored(hands.RatioColor(h)).Render(cell(hands.FormatLightRatio(h.LightRatio), columns[4].width)),
		}
		b.WriteString(strings.Join(row, "") + "\n")
	}
	return b.String()
}

// SpeedPlot charts log10 of each hand's tip speed against log10 of c. The
// series stops at the first hand whose speed is no longer finite, which
// happens once repeated division underflows the period to zero.
func SpeedPlot(hs []hands.Hand) string {
	speeds := make([]float64, 0, len(hs))
	for _, h := range hs {
		v := math.Log10(h.TipSpeed)
		if math.IsInf(v, 0) || math.IsNaN(v) {
			break
		}
		speeds = append(speeds, v)
	}
	if len(speeds) < 2 {
		return ""
	}
	light := make([]float64, len(speeds))
	for i := range light {
		light[i] = math.Log10(hands.SpeedOfLight)
	}
	return asciigraph.PlotMany([][]float64{speeds, light},
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Magenta),
		asciigraph.Caption("log10 tip speed (m/s) per generation; flat line is c"),
	)
}
