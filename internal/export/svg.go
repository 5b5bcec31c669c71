// Package export turns frames and datasets into files: SVG stills, animated
// GIFs, and CSV/JSON dumps of the generated buffers.
package export

import (
	"fmt"
	"strings"

	"github.com/statsoc/backdrop/internal/viz"
)

var svgDotBits = [4][2]int{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// CanvasSVG renders the canvas as an SVG of colored dots, scale pixels per
// sub-pixel. Cell ink is preserved; unpainted dots fall back to a neutral
// gray so exports work without a theme.
func CanvasSVG(c *viz.Canvas, scale float64) string {
	if c == nil {
		return ""
	}
	width := float64(c.DotWidth()) * scale
	height := float64(c.DotHeight()) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0b0b12"/>
`, width, height, width, height))

	dotR := scale * 0.42
	for row := 0; row < c.H; row++ {
		for col := 0; col < c.W; col++ {
			pattern := c.DotPattern(col, row)
			if pattern == 0 {
				continue
			}
			_, ink := c.Cell(col, row)
			fill := ink.Hex()
			if fill == "#000000" {
				fill = "#9a9ab0"
			}

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&svgDotBits[dy][dx] == 0 {
						continue
					}
					sb.WriteString(fmt.Sprintf(
						`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n",
						baseX+float64(dx)*scale+scale/2,
						baseY+float64(dy)*scale+scale/2,
						dotR, fill))
				}
			}
		}
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}
