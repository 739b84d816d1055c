package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/matrixlab/internal/matrix"
	"github.com/abhisek/matrixlab/internal/ui/theme"
)

// gridRunes are the characters accepted in grid mode besides digits.
const gridRunes = " -+.,;[]x×"

// TextInput wraps bubbles/textinput with MatrixLab styling.
type TextInput struct {
	Model     textinput.Model
	GridOnly  bool
	MaxWidth  int
	submitted bool
	valid     bool
}

// NewTextInput creates a new styled text input. In grid mode only digits,
// separators and signs are accepted.
func NewTextInput(placeholder string, gridOnly bool, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:    ti,
		GridOnly: gridOnly,
		MaxWidth: maxWidth,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.GridOnly {
		if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.Text != "" && !gridText(kmsg.Text) {
			return t, nil
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func gridText(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && !strings.ContainsRune(gridRunes, r) {
			return false
		}
	}
	return true
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the current input value.
func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
}

// NumericValue parses the input as a single number.
func (t TextInput) NumericValue() (float64, error) {
	return matrix.ParseValue(t.Model.Value())
}

// Submit marks the input as submitted with a validation result.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}
