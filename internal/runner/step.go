package runner

// Step advances the simulation by one tick and returns the new state and
// the events it produced. Order: restart, motion, road, collision,
// difficulty. A frozen run only re-pins the crashed pose.
func Step(s State, in Input) (State, Events) {
	var ev Events
	if in.Restart {
		s = s.Reset()
		ev |= EventRestart
	}
	s.Tick++

	if s.Frozen() {
		pinFrozen(&s.Player)
		return s, ev
	}

	advancePlayer(&s.Player, in, s.JumpVelocity)
	if advanceRoad(&s.Road, ScrollVelocity(s.Score.Score)) {
		ev |= EventResample
	}
	ev |= resolveCollisions(&s)
	if s.Frozen() {
		pinFrozen(&s.Player)
		return s, ev
	}
	advanceDifficulty(&s)
	return s, ev
}
