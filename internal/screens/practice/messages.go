package practice

// practiceStartedMsg is sent once the first exercise has been generated.
type practiceStartedMsg struct {
	Err error
}

// feedbackDoneMsg is sent when the learner dismisses the feedback overlay.
type feedbackDoneMsg struct{}
