package components

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

// Box-drawing glyphs for the block title, three rows per letter.
var glyphs = map[rune][3]string{
	'M': {"╔╦╗", "║║║", "╩ ╩"},
	'A': {"╔═╗", "╠═╣", "╩ ╩"},
	'T': {"╔╦╗", " ║ ", " ╩ "},
	'R': {"╦═╗", "╠╦╝", "╩╚═"},
	'I': {"╦", "║", "╩"},
	'X': {"╗ ╔", "╠═╣", "╝ ╚"},
	'L': {"╦  ", "║  ", "╩═╝"},
	'B': {"╔╗ ", "╠╩╗", "╚═╝"},
	' ': {" ", " ", " "},
}

const bannerText = "MATRIX LAB"

// bannerCompact is used when the block title does not fit.
const bannerCompact = "MATRIX · LAB"

// BannerArt returns the block-letter title, three lines tall.
func BannerArt() string {
	var rows [3][]string
	for _, r := range bannerText {
		g := glyphs[r]
		for i := range rows {
			rows[i] = append(rows[i], g[i])
		}
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = strings.Join(r, " ")
	}
	return strings.Join(lines, "\n")
}

// Banner renders the title in fg, falling back to spaced letters on narrow
// terminals.
func Banner(width int, fg color.Color) string {
	style := lipgloss.NewStyle().Foreground(fg).Bold(true)
	art := BannerArt()
	if width < lipgloss.Width(art)+4 {
		return style.Render(bannerCompact)
	}
	return style.Render(art)
}
