package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/matrixlab/internal/ui/layout"
)

// Screen is one page of the app: the splash, a menu, a practice run, the
// lab. The router keeps them on a stack and the app draws the header and
// footer around whichever is on top.
type Screen interface {
	Init() tea.Cmd

	// Update may return a different Screen, which takes this one's place
	// on the stack.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the area between header and footer.
	View(width, height int) string

	// Title names the screen in the header trail. Empty titles are skipped.
	Title() string
}

// KeyHintProvider lets a screen choose its own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// BackInterceptor is for screens that handle Esc themselves, such as a
// running challenge asking before it ends. While InterceptsBack reports
// true the app forwards Esc instead of popping.
type BackInterceptor interface {
	InterceptsBack() bool
}
