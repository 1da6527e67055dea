package runner

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func at(x, z float64) Pose {
	return Pose{Position: mgl64.Vec3{x, 0, z}, Scale: mgl64.Vec3{1, 1, 1}}
}

func TestCollide(t *testing.T) {
	tests := []struct {
		name     string
		player   Pose
		obstacle Pose
		kind     ObstacleKind
		want     Contact
	}{
		{"gap hit", at(0, -3), at(0, -3.4), Gap, GapContact},
		{"gap edge", at(0, -3), at(1, -4), Gap, GapContact},
		{"gap miss z", at(0, -3), at(0, -4.2), Gap, NoContact},
		{"gap miss x", at(0, -3), at(1.3, -3), Gap, NoContact},
		{"blocking hit", at(2, -3), at(2, -3.2), Blocking, BlockingContact},
		{"blocking edge", at(2, -3), at(2.5, -2.5), Blocking, BlockingContact},
		{"blocking near miss", at(2, -3), at(2, -3.8), Blocking, NoContact},
		{"blocking is stricter than gap", at(0, -3), at(0.8, -3), Blocking, NoContact},
		{"height ignored", Pose{Position: mgl64.Vec3{0, 9, -3}}, at(0, -3), Blocking, BlockingContact},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collide(tt.player, tt.obstacle, tt.kind); got != tt.want {
				t.Errorf("Collide() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyContactGapRewardsAndRolls(t *testing.T) {
	s := NewState(1)
	ev := applyContact(&s, 0, Collide(at(0, -3), at(0, -3.4), Gap))
	if ev != EventReward {
		t.Fatalf("event = %v, want reward", ev)
	}
	if s.Score.Score != 200 {
		t.Fatalf("score = %d, want 200", s.Score.Score)
	}
	if !s.Player.RollActive {
		t.Fatalf("expected roll to be active")
	}
}

func TestApplyContactBlockingRecordsFirstLane(t *testing.T) {
	s := NewState(1)
	s.Score.Score = 57

	ev := applyContact(&s, 2, Collide(at(2, -3), at(2, -3.2), Blocking))
	if ev != EventCrash {
		t.Fatalf("event = %v, want crash", ev)
	}
	if s.Score.Collisions != 1 || s.Score.FrozenLane != 2 {
		t.Fatalf("score state = %+v", s.Score)
	}

	ev = applyContact(&s, 0, BlockingContact)
	if ev != 0 {
		t.Fatalf("second collision should not emit, got %v", ev)
	}
	if s.Score.Collisions != 2 || s.Score.FrozenLane != 2 {
		t.Fatalf("frozen lane overwritten: %+v", s.Score)
	}
	if s.Score.Score != 57 {
		t.Fatalf("score changed on collision: %d", s.Score.Score)
	}
}

func TestEventBusDispatchesEachBit(t *testing.T) {
	bus := NewEventBus()
	var got []Events
	bus.Subscribe(EventReward, func(ev Events, _ State) { got = append(got, ev) })
	bus.Subscribe(EventCrash, func(ev Events, _ State) { got = append(got, ev) })

	bus.Emit(EventReward|EventCrash|EventResample, State{})
	if len(got) != 2 || got[0] != EventReward || got[1] != EventCrash {
		t.Fatalf("dispatched %v", got)
	}
}
