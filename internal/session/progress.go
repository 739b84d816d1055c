package session

import "sync"

// Progress is the learner's global score and streak for the lifetime of the
// process. It is shared by every session and is safe for concurrent use.
type Progress struct {
	mu     sync.Mutex
	score  int
	streak int
}

// NewProgress returns an empty Progress.
func NewProgress() *Progress {
	return &Progress{}
}

// AddScore adds points and extends the streak by one.
func (p *Progress) AddScore(points int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.score += points
	p.streak++
}

// ResetStreak sets the streak back to zero. The score is unaffected.
func (p *Progress) ResetStreak() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.streak = 0
}

// Score returns the accumulated score.
func (p *Progress) Score() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.score
}

// Streak returns the current streak.
func (p *Progress) Streak() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.streak
}

// Snapshot returns score and streak read under a single lock.
func (p *Progress) Snapshot() (score, streak int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.score, p.streak
}
