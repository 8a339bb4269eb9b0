package chart

import "image/color"

// Style is the explicit chart configuration handed to a Renderer at
// construction. Nothing here is process-global.
type Style struct {
	WidthInches   float64
	HeightInches  float64
	Grid          bool
	TitleFontSize float64
	Palette       []color.Color
}

// DefaultStyle matches the canonical report look: 12x6 inch figures, a
// light grid, and a fixed series palette.
func DefaultStyle() Style {
	return Style{
		WidthInches:   12,
		HeightInches:  6,
		Grid:          true,
		TitleFontSize: 14,
		Palette: []color.Color{
			color.RGBA{R: 31, G: 119, B: 180, A: 255},
			color.RGBA{R: 255, G: 127, B: 14, A: 255},
			color.RGBA{R: 44, G: 160, B: 44, A: 255},
			color.RGBA{R: 214, G: 39, B: 40, A: 255},
		},
	}
}

func (s Style) seriesColor(i int) color.Color {
	if len(s.Palette) == 0 {
		return color.Black
	}
	return s.Palette[i%len(s.Palette)]
}
