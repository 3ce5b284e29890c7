// Package gauge provides the localisation gauge and star-rating widgets.
package gauge

import (
	"strings"

	"github.com/lipidlogic/lipidlogic-cli/internal/adapters/driving/tui/styles"
	"github.com/lipidlogic/lipidlogic-cli/internal/core/services"
)

// Default track width in cells.
const defaultWidth = 40

// Gauge renders a horizontal track with a dot at a percent position,
// mirroring the original localisation gauge.
type Gauge struct {
	styles *styles.Styles
	width  int
}

// New creates a gauge with the default width.
func New(s *styles.Styles) *Gauge {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Gauge{styles: s, width: defaultWidth}
}

// SetWidth sets the track width in cells.
func (g *Gauge) SetWidth(width int) {
	if width < 10 {
		width = 10
	}
	g.width = width
}

// Render draws the track with the dot at the given percent position.
// Out-of-range positions are pinned to the track ends for display only;
// the underlying interpretation is untouched.
func (g *Gauge) Render(percent float64) string {
	pos := int(percent / 100 * float64(g.width-1))
	if pos < 0 {
		pos = 0
	}
	if pos > g.width-1 {
		pos = g.width - 1
	}

	var b strings.Builder
	for i := 0; i < g.width; i++ {
		if i == pos {
			b.WriteString(g.styles.Subtitle.Render("●"))
		} else {
			b.WriteString(g.styles.Muted.Render("─"))
		}
	}

	left := g.styles.Muted.Render("Interface ")
	right := g.styles.Muted.Render(" Core")
	return left + b.String() + right
}

// Stars renders an n-of-five star rating.
func Stars(s *styles.Styles, n int) string {
	if s == nil {
		s = styles.DefaultStyles()
	}

	var b strings.Builder
	for _, filled := range services.StarGlyphs(n) {
		if filled {
			b.WriteString(s.Warning.Render("★"))
		} else {
			b.WriteString(s.Muted.Render("☆"))
		}
	}
	return b.String()
}
