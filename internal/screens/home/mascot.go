package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/matrixlab/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default purple
	MascotCelebrating                      // Gold, star eyes, long streak
	MascotAlert                            // Orange, streak just broken
)

// celebrateStreak is the streak at which the mascot starts celebrating.
const celebrateStreak = 5

const mascotIdle = `┌─       ─┐
│  ◉   ◉  │
│    ▽    │
│  1 0 0  │
└─       ─┘`

const mascotCelebrating = `┌─       ─┐
│  ★   ★  │
│    ▿    │
│  1 1 1  │
└─╥═════╥─┘
  ╚═════╝  `

const mascotAlert = `┌─       ─┐ !
│  ◉   ◉  │  
│    ~    │  
│  0 0 0  │  
└─       ─┘  `

// VariantFor picks the mascot mood from the learner's progress.
func VariantFor(score, streak int) MascotVariant {
	switch {
	case streak >= celebrateStreak:
		return MascotCelebrating
	case score > 0 && streak == 0:
		return MascotAlert
	default:
		return MascotIdle
	}
}

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(variant MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch variant {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
