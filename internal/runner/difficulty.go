package runner

// ScrollVelocity is the per-tick scroll advance for a score. It steps up
// by ScrollBase every ScoreStepLength points.
func ScrollVelocity(score int) float64 {
	if score < 0 {
		score = 0
	}
	return float64(score/ScoreStepLength+1) * ScrollBase
}

func advanceDifficulty(s *State) {
	s.Score.Score++
	s.JumpVelocity -= JumpDecay
}
