package session

// Band is the grade shown at the end of a session.
type Band string

// Practice bands.
const (
	BandExcellent      Band = "excellent"
	BandGood           Band = "good"
	BandKeepPracticing Band = "keep practicing"
	BandDontGiveUp     Band = "don't give up"
)

// Challenge bands.
const (
	BandMaster Band = "master"
	BandGreat  Band = "great"
)

// DisplayName returns a human-readable label for the band.
func (b Band) DisplayName() string {
	switch b {
	case BandExcellent:
		return "Excellent!"
	case BandGood:
		return "Good!"
	case BandKeepPracticing:
		return "Keep practicing!"
	case BandDontGiveUp:
		return "Don't give up!"
	case BandMaster:
		return "Master!"
	case BandGreat:
		return "Great!"
	default:
		return string(b)
	}
}

// Icon returns the emoji shown next to the band.
func (b Band) Icon() string {
	switch b {
	case BandExcellent, BandMaster:
		return "🏆"
	case BandGood:
		return "👍"
	case BandGreat:
		return "⭐"
	default:
		return "💪"
	}
}

// PracticeBand returns the band for a practice percentage (0-100).
func PracticeBand(percent float64) Band {
	switch {
	case percent >= 90:
		return BandExcellent
	case percent >= 70:
		return BandGood
	case percent >= 50:
		return BandKeepPracticing
	default:
		return BandDontGiveUp
	}
}

// ChallengeBand returns the band for a challenge accuracy (0-100).
func ChallengeBand(accuracy float64) Band {
	switch {
	case accuracy >= 90:
		return BandMaster
	case accuracy >= 70:
		return BandGreat
	case accuracy >= 50:
		return BandGood
	default:
		return BandKeepPracticing
	}
}
