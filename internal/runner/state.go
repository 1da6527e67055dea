package runner

// Phase is the process-wide run state.
type Phase int

const (
	PhaseRunning Phase = iota // no blocking collision yet
	PhaseFrozen               // crashed; waiting for restart
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseFrozen:
		return "frozen"
	}
	return "unknown"
}

// PlayerState is the bunny's motion state.
type PlayerState struct {
	Lateral    float64 // always within [LeftBound, RightBound]
	Vertical   float64 // jump bob height
	Ascending  bool
	RollAngle  float64 // degrees
	RollActive bool
	Tilt       float64 // degrees about X; pinned once frozen
}

// RoadState is everything the obstacle generator keeps between ticks.
type RoadState struct {
	ScrollOffset float64
	Cycle        int64 // completed wraps of the trigger slot
	ActiveLane   int   // the lane hosting the gap this cycle
	Seed         uint64
}

// ScoreState tracks score and the crash record.
type ScoreState struct {
	Score      int
	Collisions int
	FrozenLane int // NoLane until the first blocking collision
}

// State is the complete simulation state, owned by the game loop and
// threaded through Step.
type State struct {
	Tick         uint64
	Player       PlayerState
	Road         RoadState
	Score        ScoreState
	JumpVelocity float64
}

// NewState returns the state of a fresh process. It differs from a
// restarted run only in the starting bob height.
func NewState(seed uint64) State {
	s := initialState(seed)
	s.Player.Vertical = StartVertical
	return s
}

func initialState(seed uint64) State {
	s := State{
		Player: PlayerState{
			Lateral:   StartLateral,
			Vertical:  RestartVertical,
			Ascending: true,
			RollAngle: RollStart,
		},
		Road: RoadState{
			ScrollOffset: StartScroll,
			Seed:         seed,
		},
		Score:        ScoreState{FrozenLane: NoLane},
		JumpVelocity: StartJumpVelocity,
	}
	s.Road.Cycle = cycleAt(s.Road.ScrollOffset)
	s.Road.ActiveLane = PickLane(seed, s.Road.Cycle)
	return s
}

// Reset returns the initial state of a restarted run. Every field is
// replaced in one assignment; only the seed carries over, so resetting a
// reset state changes nothing.
func (s State) Reset() State {
	return initialState(s.Road.Seed)
}

// Phase reports whether the run is still going.
func (s State) Phase() Phase {
	if s.Frozen() {
		return PhaseFrozen
	}
	return PhaseRunning
}

// Frozen reports whether a blocking collision has ended the run.
func (s State) Frozen() bool {
	return s.Score.Collisions > 0
}
