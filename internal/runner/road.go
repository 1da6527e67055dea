package runner

import "math"

// ObstacleKind classifies the trigger-slot obstacle of a lane.
type ObstacleKind int

const (
	Blocking ObstacleKind = iota // ends the run on contact
	Gap                          // rewards a roll on contact
)

func (k ObstacleKind) String() string {
	if k == Gap {
		return "gap"
	}
	return "blocking"
}

// SlotZ maps a ring slot to its world Z for the given scroll offset.
// The result is always in [-60, 0).
func SlotZ(slot int, scroll float64) float64 {
	m := math.Mod(SlotSpacing*float64(slot)+scroll, RingLength)
	if m < 0 {
		m += RingLength
	}
	return -RingLength + m
}

// cycleAt counts how many times the trigger slot has wrapped from the near
// end of the ring back to the far end.
func cycleAt(scroll float64) int64 {
	return int64(math.Floor((SlotSpacing*TriggerSlot + scroll) / RingLength))
}

// Classify reports what the trigger slot of lane currently holds.
func (r RoadState) Classify(lane int) ObstacleKind {
	if lane == r.ActiveLane {
		return Gap
	}
	return Blocking
}

// advanceRoad scrolls the ring and resamples the gap lane when the trigger
// slot completes a cycle. Several cycles passed in one tick resample once,
// for the newest cycle.
func advanceRoad(r *RoadState, velocity float64) (resampled bool) {
	r.ScrollOffset += velocity
	c := cycleAt(r.ScrollOffset)
	if c <= r.Cycle {
		return false
	}
	r.Cycle = c
	r.ActiveLane = PickLane(r.Seed, c)
	return true
}
