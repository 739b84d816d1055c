package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/matrixlab/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	HeaderHeight = 3
	FooterHeight = 3

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// ChromeHeight is the height taken by the header and footer boxes.
const ChromeHeight = HeaderHeight + FooterHeight

const (
	trailSep  = " › "
	hintSep   = "   "
	ellipsis  = "…"
	brandText = "  MatrixLab"
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Header is what the header bar shows: where the player is and how they
// are doing.
type Header struct {
	// Trail holds screen titles from the bottom of the stack to the top.
	Trail  []string
	Score  int
	Streak int
}

// IsCompact reports whether a content area of the given size should use
// the compact rendering (no banner art, plain menus).
func IsCompact(width, contentHeight int) bool {
	return width < CompactWidthThreshold || contentHeight+ChromeHeight+2 < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small for the matrices!\n\nNeed at least %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the header bar: brand on the left, the breadcrumb
// trail in the middle and the running score on the right.
func RenderHeader(h Header, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(brandText)
	right := renderStats(h.Score, h.Streak)

	innerWidth := max(width-4, 0)
	room := innerWidth - lipgloss.Width(left) - lipgloss.Width(right) - 2
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(Trail(h.Trail, room))

	leftGap := max((innerWidth-lipgloss.Width(center))/2-lipgloss.Width(left), 1)
	rightGap := max(innerWidth-lipgloss.Width(left)-leftGap-lipgloss.Width(center)-lipgloss.Width(right), 1)

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
	return chrome(width).Render(content)
}

func renderStats(score, streak int) string {
	accent := lipgloss.NewStyle().Foreground(theme.Accent)
	out := accent.Render(fmt.Sprintf("◆ %d pts", score))
	if streak > 0 {
		out += "   " + accent.Render(fmt.Sprintf("🔥 %d", streak))
	}
	return out
}

// Trail joins titles into a breadcrumb no wider than room, dropping the
// oldest entries first. The last title is always kept.
func Trail(titles []string, room int) string {
	var kept []string
	for _, t := range titles {
		if t != "" {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	for i := range kept {
		parts := kept[i:]
		if i > 0 {
			parts = append([]string{ellipsis}, parts...)
		}
		if s := strings.Join(parts, trailSep); lipgloss.Width(s) <= room {
			return s
		}
	}
	return kept[len(kept)-1]
}

// RenderFooter renders the footer with key hints. Hints that do not fit
// are dropped from the middle so the final hint (usually Quit) survives.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key)+
			" "+
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description))
	}

	room := max(width-6, 0)
	for len(parts) > 1 && lipgloss.Width(strings.Join(parts, hintSep)) > room {
		parts = append(parts[:len(parts)-2], parts[len(parts)-1])
	}
	return chrome(width).Render("  " + strings.Join(parts, hintSep))
}

func chrome(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// ContentHeight is the height left for a screen between header and footer.
func ContentHeight(header, footer string, height int) int {
	return max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
}

// RenderFrame stacks header, content and footer, padding the content to
// fill the space between them.
func RenderFrame(header, content, footer string, width, height int) string {
	body := lipgloss.NewStyle().
		Width(width).
		Height(ContentHeight(header, footer, height)).
		Render(content)
	return header + "\n" + body + "\n" + footer
}
