package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/matrixlab/internal/exercise"
	"github.com/abhisek/matrixlab/internal/router"
	"github.com/abhisek/matrixlab/internal/screen"
	"github.com/abhisek/matrixlab/internal/screens/challenge"
	"github.com/abhisek/matrixlab/internal/screens/lab"
	"github.com/abhisek/matrixlab/internal/screens/modules"
	"github.com/abhisek/matrixlab/internal/session"
	"github.com/abhisek/matrixlab/internal/ui/components"
	"github.com/abhisek/matrixlab/internal/ui/layout"
	"github.com/abhisek/matrixlab/internal/ui/theme"
)

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu     components.Menu
	progress *session.Progress
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. Practice and challenge sessions started from it
// use difficulty and report to sink.
func New(gen exercise.Generator, progress *session.Progress, difficulty exercise.Difficulty, sink session.EventSink) *HomeScreen {
	items := []components.MenuItem{
		{Label: "PRACTICE", Action: func() tea.Cmd {
			return push(modules.New(gen, progress, difficulty, sink))
		}},
		{Label: "CHALLENGE", Action: func() tea.Cmd {
			return push(challenge.NewWithMenu(difficulty, gen, progress, session.WithChallengeEventSink(sink)))
		}},
		{Label: "LAB", Action: func() tea.Cmd {
			return push(lab.New())
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:     components.NewMenu(items),
		progress: progress,
	}
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompact(width, height)
	cw := components.ContentWidth(width)
	score, streak := h.progress.Snapshot()

	var sections []string

	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(components.Banner(cw, theme.ArcadeYellow)))

	// Mascot only when there is room for it.
	if !compact {
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(RenderMascot(VariantFor(score, streak))))
	}

	sections = append(sections, renderStatsBar(score, streak, len(exercise.Modules()), cw, compact))
	sections = append(sections, components.ArcadeMenu(h.menu, buttonWidth, cw, compact))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(score, streak, moduleCount, cw int, compact bool) string {
	scoreStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	moduleStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	streakText := streakStyle.Render(fmt.Sprintf("🔥 %d STREAK", streak))
	if streak == 0 {
		streakText = dimStyle.Render("🔥 NO STREAK")
	}

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			scoreStyle.Render(fmt.Sprintf("◆%d", score)),
			streakStyle.Render(fmt.Sprintf("🔥%d", streak)),
			moduleStyle.Render(fmt.Sprintf("▦%d", moduleCount)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			scoreStyle.Render(fmt.Sprintf("◆ %d POINTS", score)),
			streakText,
			moduleStyle.Render(fmt.Sprintf("▦ %d MODULES", moduleCount)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}
