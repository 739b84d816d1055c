package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/matrixlab/internal/screen"
)

type initMsg struct{ title string }

// fakeScreen records what the router does to it.
type fakeScreen struct {
	title    string
	inits    int
	received []tea.Msg
	next     screen.Screen
}

func (s *fakeScreen) Init() tea.Cmd {
	s.inits++
	title := s.title
	return func() tea.Msg { return initMsg{title: title} }
}

func (s *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.received = append(s.received, msg)
	if s.next != nil {
		return s.next, nil
	}
	return s, nil
}

func (s *fakeScreen) View(w, h int) string { return s.title }
func (s *fakeScreen) Title() string        { return s.title }

func TestNavigation(t *testing.T) {
	home := &fakeScreen{title: "Home"}
	practice := &fakeScreen{title: "Practice"}
	summary := &fakeScreen{title: "Summary"}

	cases := []struct {
		name      string
		msg       tea.Msg
		wantTrail []string
		wantInit  string
	}{
		{"push practice", PushScreenMsg{Screen: practice}, []string{"Home", "Practice"}, "Practice"},
		{"replace with summary", ReplaceScreenMsg{Screen: summary}, []string{"Home", "Summary"}, "Summary"},
		{"pop back home", PopScreenMsg{}, []string{"Home"}, ""},
		{"pop at bottom is a no-op", PopScreenMsg{}, []string{"Home"}, ""},
	}

	r := New(home)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := r.Update(tc.msg)
			assert.Equal(t, tc.wantTrail, r.Trail())
			assert.Equal(t, len(tc.wantTrail), r.Depth())
			if tc.wantInit == "" {
				assert.Nil(t, cmd)
				return
			}
			require.NotNil(t, cmd)
			assert.Equal(t, initMsg{title: tc.wantInit}, cmd())
		})
	}

	assert.Equal(t, 1, practice.inits)
	assert.Equal(t, 1, summary.inits)
	assert.Zero(t, home.inits, "the initial screen is initialised by the app, not the router")
}

func TestReplaceBottomScreen(t *testing.T) {
	r := New(&fakeScreen{title: "Welcome"})
	r.Replace(&fakeScreen{title: "Home"})

	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "Home", r.Active().Title())
}

func TestNilScreensAreIgnored(t *testing.T) {
	r := New(&fakeScreen{title: "Home"})

	assert.Nil(t, r.Push(nil))
	assert.Nil(t, r.Replace(nil))
	assert.Equal(t, []string{"Home"}, r.Trail())
}

func TestUpdateForwardsToActiveScreen(t *testing.T) {
	bottom := &fakeScreen{title: "Home"}
	top := &fakeScreen{title: "Lab"}
	r := New(bottom)
	r.Push(top)

	r.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Len(t, top.received, 1)
	assert.Empty(t, bottom.received)
}

func TestUpdateKeepsReturnedScreen(t *testing.T) {
	after := &fakeScreen{title: "Lab: steps"}
	r := New(&fakeScreen{title: "Lab", next: after})

	r.Update(tea.WindowSizeMsg{})

	assert.Same(t, after, r.Active())
	assert.Equal(t, "Lab: steps", r.View(80, 24))
}

func TestEmptyRouter(t *testing.T) {
	r := &Router{}

	assert.Nil(t, r.Active())
	assert.Nil(t, r.Update(tea.WindowSizeMsg{}))
	assert.Empty(t, r.View(80, 24))
	assert.Empty(t, r.Trail())
}
