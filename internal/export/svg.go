package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/wavesim/internal/wave"
)

// ProfileToSVG draws η(x) as a polyline with a dashed mean-water line.
// Vertical extent is symmetric about zero so the mean line sits centred.
func ProfileToSVG(s wave.Sample, width, height int, strokeColor string) string {
	if s.Len() < 2 {
		return ""
	}

	minX, maxX := s.Points[0].X, s.Points[s.Len()-1].X
	peak := 0.0
	for _, p := range s.Points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if a := abs(p.Eta); a > peak {
			peak = a
		}
	}

	rangeX := maxX - minX
	if rangeX == 0 {
		rangeX = 1
	}
	if peak == 0 {
		peak = 1
	}
	peak *= 1.2

	w, h := float64(width), float64(height)
	toY := func(eta float64) float64 {
		return h/2 - eta/peak*h/2
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#444444" stroke-dasharray="4,4"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, h/2, width, h/2, strokeColor))

	for i, p := range s.Points {
		x := (p.X - minX) / rangeX * w
		y := toY(p.Eta)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(fmt.Sprintf(`"/>
<text x="8" y="16" fill="#888888" font-family="monospace" font-size="12">t = %.2f s</text>
</svg>`, s.Time))
	return sb.String()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
