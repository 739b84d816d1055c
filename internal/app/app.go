package app

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/matrixlab/internal/config"
	"github.com/abhisek/matrixlab/internal/exercise"
	"github.com/abhisek/matrixlab/internal/router"
	"github.com/abhisek/matrixlab/internal/screen"
	"github.com/abhisek/matrixlab/internal/screens/challenge"
	"github.com/abhisek/matrixlab/internal/screens/home"
	"github.com/abhisek/matrixlab/internal/screens/lab"
	"github.com/abhisek/matrixlab/internal/screens/practice"
	"github.com/abhisek/matrixlab/internal/screens/welcome"
	"github.com/abhisek/matrixlab/internal/session"
	"github.com/abhisek/matrixlab/internal/steps"
	"github.com/abhisek/matrixlab/internal/ui/layout"
)

// Start selects the first screen shown after launch.
type Start int

const (
	StartHome Start = iota
	StartChallenge
	StartPractice
	StartLab
)

// Options holds the dependencies and launch target for the app.
type Options struct {
	Config config.Config
	Start  Start

	// Category is the practice module for StartPractice.
	Category exercise.Category

	// Operation preselects the lab operation for StartLab. Empty shows the menu.
	Operation steps.Operation

	// Generator overrides the seeded generator built from Config.
	Generator exercise.Generator

	// EventLog receives events when Config.LogEvents is set. Defaults to stderr.
	EventLog io.Writer
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	progress *session.Progress
	initCmd  tea.Cmd
	width    int
	height   int
}

// newAppModel wires the generator, progress and event sink, and builds the
// screen stack for the launch target. Home is always at the bottom so Esc
// returns to it.
func newAppModel(opts Options) AppModel {
	cfg := opts.Config

	gen := opts.Generator
	if gen == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		gen = exercise.NewSeeded(seed, cfg.Exercise)
	}

	var sink session.EventSink = session.NopSink{}
	if cfg.LogEvents {
		w := opts.EventLog
		if w == nil {
			w = os.Stderr
		}
		sink = session.NewWriterSink(w)
	}

	progress := session.NewProgress()
	homeScreen := home.New(gen, progress, cfg.Difficulty, sink)

	var r *router.Router
	var initCmd tea.Cmd
	switch opts.Start {
	case StartChallenge:
		r = router.New(homeScreen)
		initCmd = r.Push(challenge.New(cfg.Difficulty, gen, progress, session.WithChallengeEventSink(sink)))
	case StartPractice:
		r = router.New(homeScreen)
		initCmd = r.Push(practice.New(opts.Category, gen, progress,
			session.WithDifficulty(cfg.Difficulty),
			session.WithEventSink(sink)))
	case StartLab:
		r = router.New(homeScreen)
		if opts.Operation != "" {
			initCmd = r.Push(lab.NewWithOperation(opts.Operation))
		} else {
			initCmd = r.Push(lab.New())
		}
	default:
		splash := welcome.New(func() screen.Screen { return homeScreen })
		r = router.New(splash)
		initCmd = splash.Init()
	}

	return AppModel{
		router:   r,
		progress: progress,
		initCmd:  initCmd,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if bi, ok := m.router.Active().(screen.BackInterceptor); ok && bi.InterceptsBack() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if content := m.render(); content != "" {
		v.SetContent(content)
	}
	return v
}

// render draws the header, the active screen and the footer. It returns
// an empty string until the terminal size is known.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	score, streak := m.progress.Snapshot()
	header := layout.RenderHeader(layout.Header{
		Trail:  m.router.Trail(),
		Score:  score,
		Streak: streak,
	}, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// footerHints prefers the active screen's own hints.
func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if err := opts.Config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
