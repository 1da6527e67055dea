package runner

import (
	"math"
	"testing"
)

func run(s State, in Input, n int) (State, Events) {
	var all Events
	for i := 0; i < n; i++ {
		var ev Events
		s, ev = Step(s, in)
		all |= ev
	}
	return s, all
}

func TestStepIdleScoresOnePerTick(t *testing.T) {
	s := NewState(1)
	if s.Score.Score != 0 || s.Player.Lateral != StartLateral || s.Frozen() {
		t.Fatalf("unexpected start state: %+v", s)
	}

	s, _ = run(s, Input{}, 10)
	if s.Score.Score != 10 {
		t.Fatalf("score after 10 idle ticks = %d, want 10", s.Score.Score)
	}
	if s.Frozen() {
		t.Fatalf("expected run to still be going after 10 idle ticks")
	}
	if s.Tick != 10 {
		t.Fatalf("tick = %d, want 10", s.Tick)
	}
}

func TestStepMoveLeftClampsAtBound(t *testing.T) {
	s := NewState(1)
	s, _ = run(s, Input{MoveLeft: true}, 10)
	want := math.Max(LeftBound, StartLateral-10*LateralSpeed)
	if s.Player.Lateral != want {
		t.Fatalf("lateral = %f, want %f", s.Player.Lateral, want)
	}
	if s.Player.Lateral != LeftBound {
		t.Fatalf("lateral = %f, want clamp at %f", s.Player.Lateral, LeftBound)
	}
}

func TestStepMoveRightOneTick(t *testing.T) {
	s := NewState(1)
	s, _ = Step(s, Input{MoveRight: true})
	if got, want := s.Player.Lateral, StartLateral+LateralSpeed; math.Abs(got-want) > 1e-9 {
		t.Fatalf("lateral = %f, want %f", got, want)
	}
}

func TestStepLateralAlwaysInBounds(t *testing.T) {
	s := NewState(7)
	inputs := []Input{
		{MoveLeft: true},
		{MoveRight: true},
		{MoveLeft: true, MoveRight: true},
		{Pointer: Pointer{Active: true, T: -3}},
		{Pointer: Pointer{Active: true, T: 4}},
		{Pointer: Pointer{Active: true, T: 0.5}},
		{},
	}
	for i := 0; i < 2000; i++ {
		s, _ = Step(s, inputs[(i/17)%len(inputs)])
		if s.Player.Lateral < LeftBound || s.Player.Lateral > RightBound {
			t.Fatalf("tick %d: lateral %f out of [%f, %f]", i, s.Player.Lateral, LeftBound, RightBound)
		}
		if s.Player.RollAngle < RollStart || s.Player.RollAngle > RollEnd {
			t.Fatalf("tick %d: roll angle %f out of range", i, s.Player.RollAngle)
		}
		if s.Road.ActiveLane < 0 || s.Road.ActiveLane >= Lanes {
			t.Fatalf("tick %d: active lane %d", i, s.Road.ActiveLane)
		}
		if s.Frozen() {
			s, _ = Step(s, Input{Restart: true})
		}
	}
}

func TestStepPointerOverridesKeys(t *testing.T) {
	s := NewState(1)
	s, _ = Step(s, Input{MoveLeft: true, Pointer: Pointer{Active: true, T: 1}})
	if s.Player.Lateral != RightBound {
		t.Fatalf("lateral = %f, want %f", s.Player.Lateral, RightBound)
	}
}

func TestPointerLateral(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"left edge", 0, LeftBound},
		{"right edge", 1, RightBound},
		{"middle", 0.5, (LeftBound + RightBound) / 2},
		{"past left", -0.5, LeftBound},
		{"past right", 1.5, RightBound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointerLateral(tt.t); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("PointerLateral(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestStepScoreMonotonicUntilFrozen(t *testing.T) {
	s := NewState(3)
	prev := s.Score.Score
	frozenScore := -1
	for i := 0; i < 5000; i++ {
		s, _ = Step(s, Input{})
		if frozenScore >= 0 {
			if s.Score.Score != frozenScore {
				t.Fatalf("tick %d: score changed while frozen: %d -> %d", i, frozenScore, s.Score.Score)
			}
			continue
		}
		if s.Score.Score < prev {
			t.Fatalf("tick %d: score decreased %d -> %d", i, prev, s.Score.Score)
		}
		prev = s.Score.Score
		if s.Frozen() {
			frozenScore = s.Score.Score
		}
	}
}

// crashState places the player in lane 1 with the lane's obstacle arriving
// at z=-3.2 on the next tick.
func crashState(activeLane int, nextZ float64) State {
	s := NewState(1)
	s.Player.Lateral = -1 // mesh x = 0 = lane 1
	s.Road.ActiveLane = activeLane
	s.Road.ScrollOffset = nextZ + RingLength - SlotSpacing*TriggerSlot - ScrollVelocity(0)
	s.Road.Cycle = cycleAt(s.Road.ScrollOffset)
	return s
}

func TestStepBlockingCollisionFreezes(t *testing.T) {
	s := crashState(0, -3.2)

	s, ev := Step(s, Input{})
	if !ev.Has(EventCrash) {
		t.Fatalf("expected crash event, got %v", ev)
	}
	if s.Score.Collisions != 1 {
		t.Fatalf("collisions = %d, want 1", s.Score.Collisions)
	}
	if s.Score.FrozenLane != 1 {
		t.Fatalf("frozen lane = %d, want 1", s.Score.FrozenLane)
	}
	if s.Phase() != PhaseFrozen {
		t.Fatalf("phase = %v, want frozen", s.Phase())
	}

	score := s.Score.Score
	lateral := s.Player.Lateral
	scroll := s.Road.ScrollOffset
	s, _ = run(s, Input{MoveRight: true, Roll: true}, 20)
	if s.Score.Score != score {
		t.Fatalf("score moved while frozen: %d -> %d", score, s.Score.Score)
	}
	if s.Player.Lateral != lateral {
		t.Fatalf("lateral moved while frozen: %f -> %f", lateral, s.Player.Lateral)
	}
	if s.Road.ScrollOffset != scroll {
		t.Fatalf("road scrolled while frozen")
	}
	if s.Player.Vertical != BobLow || s.Player.Tilt != FrozenTilt {
		t.Fatalf("frozen pose not pinned: vertical=%f tilt=%f", s.Player.Vertical, s.Player.Tilt)
	}
	if s.Player.RollActive {
		t.Fatalf("roll started while frozen")
	}
}

func TestStepGapRewards(t *testing.T) {
	s := crashState(1, -3.4)

	s, ev := Step(s, Input{})
	if !ev.Has(EventReward) {
		t.Fatalf("expected reward event, got %v", ev)
	}
	if s.Score.Score != GapReward+1 {
		t.Fatalf("score = %d, want %d", s.Score.Score, GapReward+1)
	}
	if !s.Player.RollActive {
		t.Fatalf("expected roll to be active after gap reward")
	}
	if s.Frozen() {
		t.Fatalf("gap contact must not freeze the run")
	}
}

func TestStepRestartResetsEverything(t *testing.T) {
	s := crashState(0, -3.2)
	s, _ = Step(s, Input{})
	if !s.Frozen() {
		t.Fatalf("setup: expected frozen state")
	}

	s, ev := Step(s, Input{Restart: true})
	if !ev.Has(EventRestart) {
		t.Fatalf("expected restart event")
	}
	if s.Frozen() || s.Score.Collisions != 0 || s.Score.FrozenLane != NoLane {
		t.Fatalf("crash record not cleared: %+v", s.Score)
	}
	if s.Score.Score != 1 {
		t.Fatalf("score after restart tick = %d, want 1", s.Score.Score)
	}
	if s.Player.Tilt != 0 {
		t.Fatalf("tilt = %f, want 0", s.Player.Tilt)
	}
}

func TestResetIdempotent(t *testing.T) {
	s, _ := run(NewState(42), Input{MoveRight: true, Roll: true}, 300)
	once := s.Reset()
	twice := once.Reset()
	if once != twice {
		t.Fatalf("reset not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
	if once.Player.Vertical != RestartVertical {
		t.Fatalf("vertical = %f, want %f", once.Player.Vertical, RestartVertical)
	}
	if once.JumpVelocity != StartJumpVelocity || once.Road.ScrollOffset != StartScroll {
		t.Fatalf("difficulty not reset: %+v", once)
	}
	if once.Road.Seed != 42 {
		t.Fatalf("seed = %d, want 42", once.Road.Seed)
	}
}

func TestJumpBobStaysNearBounds(t *testing.T) {
	s := NewState(1)
	for i := 0; i < 400; i++ {
		// Hold the obstacles at the far end of the ring.
		s.Road.ScrollOffset = StartScroll
		s, _ = Step(s, Input{})
		if s.Player.Vertical < BobLow-0.1 || s.Player.Vertical > StartVertical+0.1 {
			t.Fatalf("tick %d: vertical %f escaped bob range", i, s.Player.Vertical)
		}
	}
	if s.JumpVelocity >= StartJumpVelocity {
		t.Fatalf("jump velocity did not decay: %f", s.JumpVelocity)
	}
}
