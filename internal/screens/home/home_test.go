package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/matrixlab/internal/exercise"
	"github.com/abhisek/matrixlab/internal/router"
	"github.com/abhisek/matrixlab/internal/screens/challenge"
	"github.com/abhisek/matrixlab/internal/screens/lab"
	"github.com/abhisek/matrixlab/internal/screens/modules"
	"github.com/abhisek/matrixlab/internal/session"
)

func newHome(progress *session.Progress) *HomeScreen {
	return New(exercise.NewSeeded(1, exercise.DefaultConfig()), progress, exercise.DifficultyNormal, session.NopSink{})
}

func pressDigit(h *HomeScreen, r rune) tea.Msg {
	_, cmd := h.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestHomeScreen_MenuNavigation(t *testing.T) {
	h := newHome(session.NewProgress())

	msg, ok := pressDigit(h, '1').(router.PushScreenMsg)
	if !ok {
		t.Fatal("PRACTICE should push a screen")
	}
	if _, ok := msg.Screen.(*modules.ModulesScreen); !ok {
		t.Errorf("PRACTICE pushed %T, want modules screen", msg.Screen)
	}

	msg, ok = pressDigit(h, '2').(router.PushScreenMsg)
	if !ok {
		t.Fatal("CHALLENGE should push a screen")
	}
	if _, ok := msg.Screen.(*challenge.ChallengeScreen); !ok {
		t.Errorf("CHALLENGE pushed %T, want challenge screen", msg.Screen)
	}

	msg, ok = pressDigit(h, '3').(router.PushScreenMsg)
	if !ok {
		t.Fatal("LAB should push a screen")
	}
	if _, ok := msg.Screen.(*lab.LabScreen); !ok {
		t.Errorf("LAB pushed %T, want lab screen", msg.Screen)
	}

	if _, ok := pressDigit(h, '4').(tea.QuitMsg); !ok {
		t.Error("QUIT should quit")
	}
}

func TestHomeScreen_ViewShowsLiveStats(t *testing.T) {
	progress := session.NewProgress()
	h := newHome(progress)

	view := h.View(100, 40)
	for _, want := range []string{"0 POINTS", "NO STREAK", "10 MODULES", "PRACTICE", "QUIT"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	progress.AddScore(30)
	progress.AddScore(20)
	view = h.View(100, 40)
	if !strings.Contains(view, "50 POINTS") || !strings.Contains(view, "2 STREAK") {
		t.Error("view should reflect the updated progress")
	}
}

func TestHomeScreen_Title(t *testing.T) {
	if got := newHome(session.NewProgress()).Title(); got != "Home" {
		t.Errorf("Title = %q, want Home", got)
	}
}

func TestVariantFor(t *testing.T) {
	tests := []struct {
		score, streak int
		want          MascotVariant
	}{
		{0, 0, MascotIdle},
		{30, 2, MascotIdle},
		{80, 5, MascotCelebrating},
		{40, 0, MascotAlert},
	}
	for _, tt := range tests {
		if got := VariantFor(tt.score, tt.streak); got != tt.want {
			t.Errorf("VariantFor(%d, %d) = %v, want %v", tt.score, tt.streak, got, tt.want)
		}
	}
}
