package modules

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/matrixlab/internal/exercise"
	"github.com/abhisek/matrixlab/internal/router"
	"github.com/abhisek/matrixlab/internal/screen"
	"github.com/abhisek/matrixlab/internal/screens/practice"
	"github.com/abhisek/matrixlab/internal/session"
	"github.com/abhisek/matrixlab/internal/ui/components"
	"github.com/abhisek/matrixlab/internal/ui/layout"
	"github.com/abhisek/matrixlab/internal/ui/theme"
)

// ModulesScreen lists the practice modules and starts a quiz on the chosen one.
type ModulesScreen struct {
	modules []exercise.Module
	menu    components.Menu
}

var _ screen.Screen = (*ModulesScreen)(nil)
var _ screen.KeyHintProvider = (*ModulesScreen)(nil)

// New creates a ModulesScreen. Quizzes run at difficulty and report to sink.
func New(gen exercise.Generator, progress *session.Progress, difficulty exercise.Difficulty, sink session.EventSink) *ModulesScreen {
	mods := exercise.Modules()
	items := make([]components.MenuItem, len(mods))
	for i, m := range mods {
		items[i] = components.MenuItem{
			Label: fmt.Sprintf("%s  %-22s %s", m.Icon, m.Name, Stars(m.Stars)),
			Action: func() tea.Cmd {
				s := practice.New(m.Category, gen, progress,
					session.WithDifficulty(difficulty),
					session.WithEventSink(sink))
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: s}
				}
			},
		}
	}
	return &ModulesScreen{
		modules: mods,
		menu:    components.NewMenu(items),
	}
}

// Stars renders a 1-5 difficulty rating.
func Stars(n int) string {
	n = min(max(n, 0), 5)
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

func (s *ModulesScreen) Init() tea.Cmd {
	return nil
}

func (s *ModulesScreen) Title() string {
	return "Practice"
}

func (s *ModulesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ModulesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// Selected returns the highlighted module.
func (s *ModulesScreen) Selected() exercise.Module {
	return s.modules[s.menu.Selected]
}

func (s *ModulesScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Choose a module"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))
	b.WriteString("\n")

	if !layout.IsCompact(width, height) {
		m := s.Selected()
		card := components.ArcadeCard(
			lipgloss.NewStyle().Foreground(theme.Text).Render(m.Description),
			components.ContentWidth(width),
		)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	}
	return b.String()
}
