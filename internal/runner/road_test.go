package runner

import (
	"math"
	"testing"
)

func TestSlotZ(t *testing.T) {
	tests := []struct {
		slot   int
		scroll float64
		want   float64
	}{
		{0, 0, -60},
		{15, 0, -30},
		{15, 0.4, -29.6},
		{29, 0, -2},
		{29, 2, -60},
		{15, 30, -60},
		{15, 89, -1},
		{0, 125, -55},
	}
	for _, tt := range tests {
		if got := SlotZ(tt.slot, tt.scroll); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("SlotZ(%d, %v) = %v, want %v", tt.slot, tt.scroll, got, tt.want)
		}
	}
}

func TestSlotZRange(t *testing.T) {
	for scroll := 0.0; scroll < 500; scroll += 0.37 {
		for slot := 0; slot < RingSlots; slot++ {
			z := SlotZ(slot, scroll)
			if z < -RingLength || z >= 0 {
				t.Fatalf("SlotZ(%d, %v) = %v out of [-60, 0)", slot, scroll, z)
			}
		}
	}
}

func TestPickLaneDeterministicAndInRange(t *testing.T) {
	seen := make(map[int]int)
	for c := int64(0); c < 3000; c++ {
		a := PickLane(99, c)
		if a != PickLane(99, c) {
			t.Fatalf("PickLane not deterministic for cycle %d", c)
		}
		if a < 0 || a >= Lanes {
			t.Fatalf("PickLane(99, %d) = %d", c, a)
		}
		seen[a]++
	}
	for lane := 0; lane < Lanes; lane++ {
		if seen[lane] < 800 {
			t.Errorf("lane %d picked %d/3000 times, distribution looks skewed", lane, seen[lane])
		}
	}
}

func TestClassifyExactlyOneGap(t *testing.T) {
	for lane := 0; lane < Lanes; lane++ {
		r := RoadState{ActiveLane: lane}
		gaps := 0
		for i := 0; i < Lanes; i++ {
			if r.Classify(i) == Gap {
				gaps++
				if i != lane {
					t.Fatalf("lane %d classified gap, active is %d", i, lane)
				}
			}
		}
		if gaps != 1 {
			t.Fatalf("active lane %d: %d gap lanes, want 1", lane, gaps)
		}
	}
}

func TestAdvanceRoadResamplesOncePerCycle(t *testing.T) {
	s := NewState(5)
	start := s.Road.Cycle
	resamples := 0
	lastResample := -1
	minGap := math.MaxInt
	for i := 0; i < 20000; i++ {
		// Pin the player between lanes 1 and 2 so nothing ever touches it.
		s.Player.Lateral = 0.5
		var ev Events
		s, ev = Step(s, Input{})
		if s.Frozen() {
			t.Fatalf("tick %d: unexpected crash", i)
		}
		if ev.Has(EventResample) {
			resamples++
			if lastResample >= 0 && i-lastResample < minGap {
				minGap = i - lastResample
			}
			lastResample = i
		}
	}
	want := int(cycleAt(s.Road.ScrollOffset) - start)
	if want == 0 {
		t.Fatalf("setup: road never completed a cycle")
	}
	if resamples != want {
		t.Fatalf("resamples = %d, want one per cycle = %d", resamples, want)
	}
	if resamples > 1 && minGap < 2 {
		t.Fatalf("resample fired on consecutive ticks")
	}
}

func TestAdvanceRoadCrossingBoundary(t *testing.T) {
	r := RoadState{ScrollOffset: 29.95, Seed: 11}
	r.Cycle = cycleAt(r.ScrollOffset)
	if r.Cycle != 0 {
		t.Fatalf("setup: cycle = %d, want 0", r.Cycle)
	}
	if !advanceRoad(&r, 0.09) {
		t.Fatalf("expected resample when trigger slot wraps")
	}
	if r.Cycle != 1 || r.ActiveLane != PickLane(11, 1) {
		t.Fatalf("cycle=%d lane=%d after wrap", r.Cycle, r.ActiveLane)
	}
	if advanceRoad(&r, 0.09) {
		t.Fatalf("resampled twice in one cycle")
	}
}

func TestAdvanceRoadSkippedCyclesResampleOnce(t *testing.T) {
	r := RoadState{ScrollOffset: 10, Seed: 3}
	r.Cycle = cycleAt(r.ScrollOffset)
	if !advanceRoad(&r, 185) {
		t.Fatalf("expected resample after a large jump")
	}
	if r.Cycle != 3 {
		t.Fatalf("cycle = %d, want 3", r.Cycle)
	}
	if r.ActiveLane != PickLane(3, 3) {
		t.Fatalf("lane should be picked for the newest cycle")
	}
}

func TestScrollVelocity(t *testing.T) {
	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.09},
		{2499, 0.09},
		{2500, 0.18},
		{7500, 0.36},
		{-5, 0.09},
	}
	for _, tt := range tests {
		if got := ScrollVelocity(tt.score); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ScrollVelocity(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}
