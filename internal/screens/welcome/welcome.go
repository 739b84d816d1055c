package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/matrixlab/internal/router"
	"github.com/abhisek/matrixlab/internal/screen"
	"github.com/abhisek/matrixlab/internal/ui/components"
	"github.com/abhisek/matrixlab/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	fillEnd      = 900 * time.Millisecond
	bannerAt     = 1200 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

// The splash matrix fills in one cell per frame until it becomes the identity.
var splashCells = [3][3]string{
	{"1", "0", "0"},
	{"0", "1", "0"},
	{"0", "0", "1"},
}

// sparkle frames cycle around the matrix
var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before transitioning to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

// filled returns how many of the nine splash cells are visible.
func (w *WelcomeScreen) filled() int {
	if w.elapsed >= fillEnd {
		return 9
	}
	return int(w.elapsed * 9 / fillEnd)
}

func (w *WelcomeScreen) renderMatrix() string {
	cell := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	hidden := lipgloss.NewStyle().Foreground(theme.TextDim)
	bracket := lipgloss.NewStyle().Foreground(theme.Primary)

	n := w.filled()
	lines := []string{bracket.Render("┌         ┐")}
	for i, row := range splashCells {
		vals := make([]string, len(row))
		for j, v := range row {
			if i*3+j < n {
				vals[j] = cell.Render(v)
			} else {
				vals[j] = hidden.Render("·")
			}
		}
		lines = append(lines, bracket.Render("│ ")+strings.Join(vals, "  ")+bracket.Render(" │"))
	}
	lines = append(lines, bracket.Render("└         ┘"))

	if n == 9 {
		sparkle := sparkleFrames[w.tickCount%len(sparkleFrames)]
		s1 := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)
		s2 := lipgloss.NewStyle().Foreground(theme.Secondary).Render(sparkle)
		lines[0] = s1 + "  " + lines[0] + "  " + s2
		lines[2] = s2 + "  " + lines[2] + "  " + s1
		lines[4] = s1 + "  " + lines[4] + "  " + s2
		for _, i := range []int{1, 3} {
			lines[i] = "   " + lines[i] + "   "
		}
	}
	return strings.Join(lines, "\n")
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{w.renderMatrix()}

	if w.elapsed >= bannerAt {
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Learn matrices one step at a time.")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, "", components.Banner(width, theme.Primary), "", tagline, "", hint)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
