package practice

import (
	"strings"

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

// PracticeScreen runs a practice quiz for one module.
type PracticeScreen struct {
	practice *session.Practice
	category exercise.Category

	input   components.TextInput
	choice  components.MultiChoice
	choices []exercise.Choice

	started            bool
	showingFeedback    bool
	showingQuitConfirm bool
	showingHint        bool

	submitted matrix.Matrix
	points    int
	inputErr  string
	errMsg    string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.BackInterceptor = (*PracticeScreen)(nil)

// New creates a PracticeScreen for category.
func New(category exercise.Category, gen exercise.Generator, progress *session.Progress, opts ...session.PracticeOption) *PracticeScreen {
	return &PracticeScreen{
		practice: session.NewPractice(category, gen, progress, opts...),
		category: category,
		input:    components.NewTextInput("", true, 60),
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	return tea.Batch(
		s.start(),
		s.input.Init(),
	)
}

func (s *PracticeScreen) Title() string {
	return "Practice: " + exercise.DisplayName(s.category)
}

func (s *PracticeScreen) InterceptsBack() bool {
	return s.errMsg == ""
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.showingQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave quiz"},
			{Key: "N", Description: "Keep going"},
		}
	case s.showingFeedback:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case s.choices != nil:
		return []layout.KeyHint{
			{Key: "1-" + string(rune('0'+len(s.choices))), Description: "Choose"},
			{Key: "?", Description: "Hint"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "?", Description: "Hint"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *PracticeScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, s.errMsg)
	case !s.started:
		return renderLoading(width)
	case s.showingQuitConfirm:
		return renderQuitConfirm(width)
	case s.showingFeedback:
		return s.renderFeedback(width)
	default:
		return s.renderQuestionView(width)
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case practiceStartedMsg:
		return s.handleStarted(msg)

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.answering() && s.choices == nil {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PracticeScreen) answering() bool {
	return s.started && s.errMsg == "" && !s.showingFeedback && !s.showingQuitConfirm
}

// start generates the first exercise.
func (s *PracticeScreen) start() tea.Cmd {
	p := s.practice
	return func() tea.Msg {
		return practiceStartedMsg{Err: p.Start()}
	}
}

func (s *PracticeScreen) handleStarted(msg practiceStartedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.started = true
	return s, s.prepareInput()
}

// prepareInput resets the answer widgets for the current exercise.
func (s *PracticeScreen) prepareInput() tea.Cmd {
	ex := s.practice.Current()
	s.inputErr = ""
	s.showingHint = false
	s.submitted = matrix.Matrix{}

	s.choices = exercise.Choices(ex)
	if s.choices != nil {
		s.choice = newChoice(s.choices, ex)
		return nil
	}
	s.input = components.NewTextInput(exercise.InputHint(ex), true, 60)
	return s.input.Init()
}

// newChoice builds the selector for a closed question with the expected
// answer marked as correct.
func newChoice(choices []exercise.Choice, ex *exercise.Exercise) components.MultiChoice {
	labels := make([]string, len(choices))
	correct := -1
	for i, c := range choices {
		labels[i] = c.Label
		if c.Value == ex.Expected.At(0, 0) {
			correct = i
		}
	}
	return components.NewMultiChoice(labels, correct)
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if !s.started {
		return s, nil
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.showingFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "?":
		s.showingHint = !s.showingHint
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
		return s.submitText()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.inputErr = ""
	return s, cmd
}

// submitText parses the typed grid. Unparseable text is reported inline and
// does not count as an answer.
func (s *PracticeScreen) submitText() (screen.Screen, tea.Cmd) {
	text := s.input.Value()
	if strings.TrimSpace(text) == "" {
		return s, nil
	}
	answer, err := exercise.ParseAnswer(text, s.practice.Current())
	if err != nil {
		s.inputErr = err.Error()
		return s, nil
	}
	return s.submit(answer)
}

func (s *PracticeScreen) submit(answer matrix.Matrix) (screen.Screen, tea.Cmd) {
	v, err := s.practice.Submit(answer)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.submitted = answer
	s.points += s.practice.LastPoints()
	s.input.Submit(v.Correct)
	s.showingFeedback = true
	return s, nil
}

func (s *PracticeScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	if !s.showingFeedback {
		return s, nil
	}
	s.showingFeedback = false

	if err := s.practice.Advance(); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	if s.practice.Phase() == session.PhaseCompleted {
		result := summary.FromPractice(s.category, s.practice.Result(), s.points)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(result)}
		}
	}
	return s, s.prepareInput()
}
