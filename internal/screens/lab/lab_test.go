package lab

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/matrixlab/internal/matrix"
	"github.com/abhisek/matrixlab/internal/screen"
	"github.com/abhisek/matrixlab/internal/steps"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func enter(s *LabScreen, text string) *LabScreen {
	s.input.SetValue(text)
	scr, _ := s.Update(specialKey(tea.KeyEnter))
	return scr.(*LabScreen)
}

func TestLabScreen_MenuChoosesOperation(t *testing.T) {
	s := New()
	if s.InterceptsBack() {
		t.Error("menu should let Esc pop")
	}

	_, cmd := s.Update(keyPress('4'))
	if cmd == nil {
		t.Fatal("expected a command from the menu")
	}
	msg, ok := cmd().(operationChosenMsg)
	if !ok || msg.Op != steps.OpMultiply {
		t.Fatalf("msg = %#v, want multiply", msg)
	}

	scr, _ := s.Update(msg)
	ls := scr.(*LabScreen)
	if ls.phase != phaseA || ls.Title() != "Lab: Multiplication" {
		t.Errorf("phase = %v title = %q", ls.phase, ls.Title())
	}
}

func TestLabScreen_AdditionSteps(t *testing.T) {
	s := NewWithOperation(steps.OpAdd)
	s = enter(s, "1 2; 3 4")
	if s.phase != phaseB {
		t.Fatalf("phase = %v, want B", s.phase)
	}
	s = enter(s, "5 6; 7 8")
	if s.phase != phaseSteps || s.stepErr != nil {
		t.Fatalf("phase = %v err = %v", s.phase, s.stepErr)
	}
	if !strings.Contains(strings.Join(s.lines, "\n"), "c11 = 1 + 5 = 6") {
		t.Errorf("lines missing c11:\n%s", strings.Join(s.lines, "\n"))
	}
	if s.View(100, 30) == "" {
		t.Error("expected non-empty steps view")
	}
}

func TestLabScreen_ScalarFlow(t *testing.T) {
	s := NewWithOperation(steps.OpScalarMultiply)
	s = enter(s, "1 2; 3 4")
	if s.phase != phaseScalar {
		t.Fatalf("phase = %v, want scalar", s.phase)
	}
	s = enter(s, "3")
	if s.scalar != 3 || !matrix.Equal(s.a, matrix.MustNew([][]float64{{1, 2}, {3, 4}})) {
		t.Errorf("operands a=%s k=%v", s.a, s.scalar)
	}
	if !strings.Contains(strings.Join(s.lines, "\n"), "c21 = 3 · 3 = 9") {
		t.Error("lines missing c21")
	}
}

func TestLabScreen_SingularInverse(t *testing.T) {
	s := NewWithOperation(steps.OpInverse)
	s = enter(s, "2 4; 1 2")
	if s.stepErr == nil {
		t.Fatal("expected a step error")
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "singular") {
		t.Errorf("view missing reason:\n%s", view)
	}

	// Enter starts over with new operands.
	scr, _ := s.Update(specialKey(tea.KeyEnter))
	if scr.(*LabScreen).phase != phaseA {
		t.Error("expected Enter to return to matrix A")
	}
}

func TestLabScreen_MultiplyShapeMismatch(t *testing.T) {
	s := NewWithOperation(steps.OpMultiply)
	s = enter(s, "1 2 3; 4 5 6")
	s = enter(s, "1 2; 3 4")
	if s.stepErr == nil || !strings.Contains(s.stepErr.Reason, "cols(A) == rows(B)") {
		t.Errorf("stepErr = %v", s.stepErr)
	}
}

func TestLabScreen_InputError(t *testing.T) {
	s := NewWithOperation(steps.OpTranspose)
	s = enter(s, "1 2; 3")
	if s.phase != phaseA || s.inputErr == "" {
		t.Errorf("phase = %v inputErr = %q, want inline error", s.phase, s.inputErr)
	}
}

func TestLabScreen_EscGoesBack(t *testing.T) {
	s := NewWithOperation(steps.OpSubtract)
	s = enter(s, "1 2; 3 4")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	if scr.(*LabScreen).phase != phaseA {
		t.Fatal("Esc on B should return to A")
	}
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	if scr.(*LabScreen).phase != phaseOperation {
		t.Fatal("Esc on A should return to the menu")
	}
}

func TestLabScreen_KeyHints(t *testing.T) {
	for _, s := range []*LabScreen{New(), NewWithOperation(steps.OpAdd)} {
		if len(s.KeyHints()) == 0 {
			t.Error("expected non-empty key hints")
		}
	}
}
