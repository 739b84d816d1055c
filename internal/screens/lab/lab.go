package lab

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/matrixlab/internal/matrix"
	"github.com/abhisek/matrixlab/internal/screen"
	"github.com/abhisek/matrixlab/internal/steps"
	"github.com/abhisek/matrixlab/internal/ui/components"
	"github.com/abhisek/matrixlab/internal/ui/layout"
)

// phase is the lab's input step.
type phase int

const (
	phaseOperation phase = iota // Choosing an operation
	phaseA                      // Entering A
	phaseB                      // Entering B
	phaseScalar                 // Entering k
	phaseSteps                  // Showing the worked solution
)

// operationChosenMsg is sent when an operation is picked from the menu.
type operationChosenMsg struct {
	Op steps.Operation
}

// LabScreen lets the learner apply any operation to their own matrices and
// read the worked solution.
type LabScreen struct {
	phase phase
	menu  components.Menu
	op    steps.Operation

	input    components.TextInput
	inputErr string

	a, b   matrix.Matrix
	scalar float64

	lines    []string
	stepErr  *steps.StepError
	viewport viewport.Model
}

var _ screen.Screen = (*LabScreen)(nil)
var _ screen.KeyHintProvider = (*LabScreen)(nil)
var _ screen.BackInterceptor = (*LabScreen)(nil)

// New creates a LabScreen showing the operation menu.
func New() *LabScreen {
	var items []components.MenuItem
	for _, op := range steps.Operations() {
		items = append(items, components.MenuItem{
			Label: operationLabel(op),
			Action: func() tea.Cmd {
				return func() tea.Msg { return operationChosenMsg{Op: op} }
			},
		})
	}
	return &LabScreen{
		menu:     components.NewMenu(items),
		viewport: viewport.New(viewport.WithWidth(60), viewport.WithHeight(12)),
	}
}

// NewWithOperation creates a LabScreen that skips the menu.
func NewWithOperation(op steps.Operation) *LabScreen {
	s := New()
	s.choose(op)
	return s
}

// operations maps each operation to its symbol and name.
var operations = map[steps.Operation][2]string{
	steps.OpAdd:            {"A + B", "Addition"},
	steps.OpSubtract:       {"A - B", "Subtraction"},
	steps.OpScalarMultiply: {"k · A", "Scalar multiple"},
	steps.OpMultiply:       {"A · B", "Multiplication"},
	steps.OpTranspose:      {"Aᵀ", "Transpose"},
	steps.OpDeterminant:    {"det(A)", "Determinant"},
	steps.OpInverse:        {"A⁻¹", "Inverse"},
}

func operationLabel(op steps.Operation) string {
	info, ok := operations[op]
	if !ok {
		return string(op)
	}
	return fmt.Sprintf("%-8s %s", info[0], info[1])
}

func (s *LabScreen) Init() tea.Cmd {
	if s.phase == phaseOperation {
		return nil
	}
	return s.input.Init()
}

func (s *LabScreen) Title() string {
	if s.op == "" {
		return "Lab"
	}
	if info, ok := operations[s.op]; ok {
		return "Lab: " + info[1]
	}
	return "Lab: " + string(s.op)
}

func (s *LabScreen) InterceptsBack() bool {
	return s.phase != phaseOperation
}

func (s *LabScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseOperation:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Home"},
		}
	case phaseSteps:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Enter", Description: "New operands"},
			{Key: "Esc", Description: "Operations"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *LabScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case operationChosenMsg:
		return s, s.choose(msg.Op)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	switch s.phase {
	case phaseA, phaseB, phaseScalar:
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	case phaseSteps:
		var cmd tea.Cmd
		s.viewport, cmd = s.viewport.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *LabScreen) choose(op steps.Operation) tea.Cmd {
	s.op = op
	s.a, s.b, s.scalar = matrix.Matrix{}, matrix.Matrix{}, 0
	return s.enter(phaseA)
}

// enter switches to an input phase with a fresh input.
func (s *LabScreen) enter(p phase) tea.Cmd {
	s.phase = p
	s.inputErr = ""
	placeholder := "rows separated by ; e.g. 1 2; 3 4"
	if p == phaseScalar {
		placeholder = "a number, e.g. 3"
	}
	s.input = components.NewTextInput(placeholder, true, 80)
	return s.input.Init()
}

func (s *LabScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseOperation:
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd

	case phaseSteps:
		switch key {
		case "esc":
			s.phase = phaseOperation
			return s, nil
		case "enter":
			return s, s.enter(phaseA)
		}
		var cmd tea.Cmd
		s.viewport, cmd = s.viewport.Update(msg)
		return s, cmd
	}

	switch key {
	case "esc":
		return s, s.back()
	case "enter":
		return s.submit()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.inputErr = ""
	return s, cmd
}

// back returns to the previous input phase, or the menu from A.
func (s *LabScreen) back() tea.Cmd {
	switch s.phase {
	case phaseB, phaseScalar:
		return s.enter(phaseA)
	default:
		s.phase = phaseOperation
		return nil
	}
}

// submit accepts the current operand and moves to the next phase.
func (s *LabScreen) submit() (screen.Screen, tea.Cmd) {
	text := s.input.Value()
	if strings.TrimSpace(text) == "" {
		return s, nil
	}

	switch s.phase {
	case phaseA, phaseB:
		m, err := matrix.ParseGrid(text)
		if err != nil {
			s.inputErr = err.Error()
			return s, nil
		}
		if s.phase == phaseA {
			s.a = m
			switch {
			case s.op.NeedsB():
				return s, s.enter(phaseB)
			case s.op.NeedsScalar():
				return s, s.enter(phaseScalar)
			}
		} else {
			s.b = m
		}
	case phaseScalar:
		k, err := s.input.NumericValue()
		if err != nil {
			s.inputErr = err.Error()
			return s, nil
		}
		s.scalar = k
	}

	s.solve()
	return s, nil
}

// solve formats the worked solution for the entered operands.
func (s *LabScreen) solve() {
	s.phase = phaseSteps
	s.stepErr = nil
	s.lines = nil

	lines, err := steps.Format(s.op, s.a, s.b, s.scalar)
	if err != nil {
		var se *steps.StepError
		if !errors.As(err, &se) {
			se = &steps.StepError{Op: s.op, Reason: err.Error(), Err: err}
		}
		s.stepErr = se
		return
	}
	s.lines = lines
	s.viewport.SetContent(styleSteps(lines))
	s.viewport.GotoTop()
}
