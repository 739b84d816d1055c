package challenge

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/matrixlab/internal/exercise"
	"github.com/abhisek/matrixlab/internal/matrix"
	"github.com/abhisek/matrixlab/internal/router"
	"github.com/abhisek/matrixlab/internal/screen"
	"github.com/abhisek/matrixlab/internal/screens/summary"
	"github.com/abhisek/matrixlab/internal/session"
	"github.com/abhisek/matrixlab/internal/ui/components"
	"github.com/abhisek/matrixlab/internal/ui/layout"
)

// ChallengeScreen runs a timed challenge over mixed exercises.
type ChallengeScreen struct {
	gen      exercise.Generator
	progress *session.Progress
	opts     []session.ChallengeOption

	difficulty exercise.Difficulty
	choosing   bool
	menu       components.Menu

	challenge *session.Challenge
	duration  int

	input   components.TextInput
	choice  components.MultiChoice
	choices []exercise.Choice

	last               *session.ChallengeOutcome
	showingQuitConfirm bool
	inputErr           string
	errMsg             string
}

var _ screen.Screen = (*ChallengeScreen)(nil)
var _ screen.KeyHintProvider = (*ChallengeScreen)(nil)
var _ screen.BackInterceptor = (*ChallengeScreen)(nil)

// New creates a ChallengeScreen that starts right away at difficulty.
func New(difficulty exercise.Difficulty, gen exercise.Generator, progress *session.Progress, opts ...session.ChallengeOption) *ChallengeScreen {
	return &ChallengeScreen{
		gen:        gen,
		progress:   progress,
		opts:       opts,
		difficulty: difficulty,
	}
}

// NewWithMenu creates a ChallengeScreen that first asks for the difficulty,
// with preselected highlighted.
func NewWithMenu(preselected exercise.Difficulty, gen exercise.Generator, progress *session.Progress, opts ...session.ChallengeOption) *ChallengeScreen {
	s := New(preselected, gen, progress, opts...)
	s.choosing = true

	var items []components.MenuItem
	selected := 0
	for i, d := range exercise.Difficulties() {
		secs := int(session.DurationFor(d).Seconds())
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%-8s %d:%02d", strings.ToUpper(d.DisplayName()), secs/60, secs%60),
			Action: func() tea.Cmd {
				return func() tea.Msg { return difficultyChosenMsg{Difficulty: d} }
			},
		})
		if d == preselected {
			selected = i
		}
	}
	s.menu = components.NewMenu(items)
	s.menu.Selected = selected
	return s
}

func (s *ChallengeScreen) Init() tea.Cmd {
	if s.choosing {
		return nil
	}
	return s.start(s.difficulty)
}

func (s *ChallengeScreen) Title() string {
	if s.choosing {
		return "Challenge"
	}
	return "Challenge: " + s.difficulty.DisplayName()
}

func (s *ChallengeScreen) InterceptsBack() bool {
	return s.running()
}

func (s *ChallengeScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.choosing:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case s.showingQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End challenge"},
			{Key: "N", Description: "Keep going"},
		}
	case s.choices != nil:
		return []layout.KeyHint{
			{Key: "1-" + string(rune('0'+len(s.choices))), Description: "Choose"},
			{Key: "Esc", Description: "End"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "End"},
		}
	}
}

func (s *ChallengeScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, s.errMsg)
	case s.choosing:
		return s.renderMenu(width, height)
	case s.challenge == nil:
		return ""
	case s.showingQuitConfirm:
		return renderQuitConfirm(width)
	default:
		return s.renderQuestionView(width)
	}
}

func (s *ChallengeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case difficultyChosenMsg:
		s.choosing = false
		return s, s.start(msg.Difficulty)

	case timerTickMsg:
		return s.handleTimerTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.running() && s.choices == nil {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ChallengeScreen) running() bool {
	return s.challenge != nil && s.errMsg == "" && s.challenge.Phase() == session.PhaseRunning
}

// start creates the challenge, draws the first exercise and starts the clock.
func (s *ChallengeScreen) start(d exercise.Difficulty) tea.Cmd {
	s.difficulty = d
	s.duration = int(session.DurationFor(d).Seconds())
	s.challenge = session.NewChallenge(d, s.gen, s.progress, s.opts...)
	if err := s.challenge.Start(s.duration); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	return tea.Batch(s.prepareInput(), tickCmd())
}

func (s *ChallengeScreen) prepareInput() tea.Cmd {
	ex := s.challenge.Current()
	s.inputErr = ""
	s.choices = exercise.Choices(ex)
	if s.choices != nil {
		labels := make([]string, len(s.choices))
		for i, c := range s.choices {
			labels[i] = c.Label
		}
		// The correct choice is revealed in the next flash, not here.
		s.choice = components.NewMultiChoice(labels, -1)
		return nil
	}
	s.input = components.NewTextInput(exercise.InputHint(ex), true, 60)
	return s.input.Init()
}

func (s *ChallengeScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if !s.running() {
		return s, nil
	}
	if s.challenge.Tick() {
		return s, tickCmd()
	}
	return s, s.finish()
}

// finish replaces this screen with the results.
func (s *ChallengeScreen) finish() tea.Cmd {
	result := summary.FromChallenge(s.difficulty, s.challenge.End())
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(result)}
	}
}

func (s *ChallengeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.choosing {
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}

	if !s.running() {
		return s, nil
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s, s.finish()
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if key == "esc" {
		s.showingQuitConfirm = true
		return s, nil
	}

	if s.choices != nil {
		s.choice, _ = s.choice.Update(msg)
		if s.choice.Submitted {
			return s.submit(matrix.Scalar(s.choices[s.choice.ChosenIndex].Value))
		}
		return s, nil
	}

	if key == "enter" {
		text := s.input.Value()
		if strings.TrimSpace(text) == "" {
			return s, nil
		}
		answer, err := exercise.ParseAnswer(text, s.challenge.Current())
		if err != nil {
			s.inputErr = err.Error()
			return s, nil
		}
		return s.submit(answer)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.inputErr = ""
	return s, cmd
}

func (s *ChallengeScreen) submit(answer matrix.Matrix) (screen.Screen, tea.Cmd) {
	out, err := s.challenge.Submit(answer)
	if err != nil {
		if s.challenge.Phase() == session.PhaseEnded {
			return s, s.finish()
		}
		s.errMsg = err.Error()
		return s, nil
	}
	s.last = &out
	return s, s.prepareInput()
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
