package runner

// Contact is the outcome of comparing the player against one obstacle.
type Contact int

const (
	NoContact Contact = iota
	GapContact
	BlockingContact
)

// Collide compares the X and Z of two poses using the tolerance for kind.
// Y is ignored: jumping does not clear an obstacle.
func Collide(player, obstacle Pose, kind ObstacleKind) Contact {
	dx := absF(player.Position.X() - obstacle.Position.X())
	dz := absF(player.Position.Z() - obstacle.Position.Z())
	switch kind {
	case Gap:
		if dx <= GapTolerance && dz <= GapTolerance {
			return GapContact
		}
	case Blocking:
		if dx <= BlockingTolerance && dz <= BlockingTolerance {
			return BlockingContact
		}
	}
	return NoContact
}

// applyContact folds one contact into the score and player state.
func applyContact(s *State, lane int, c Contact) Events {
	switch c {
	case GapContact:
		s.Player.RollActive = true
		s.Score.Score += GapReward
		return EventReward
	case BlockingContact:
		s.Score.Collisions++
		if s.Score.Collisions == 1 {
			s.Score.FrozenLane = lane
			return EventCrash
		}
	}
	return 0
}

// resolveCollisions checks every lane's trigger-slot obstacle against the
// player's collision plane.
func resolveCollisions(s *State) Events {
	var ev Events
	player := PlayerPose(s.Player)
	for lane := 0; lane < Lanes; lane++ {
		ob := ObstaclePose(lane, s.Road.ScrollOffset)
		ev |= applyContact(s, lane, Collide(player, ob, s.Road.Classify(lane)))
	}
	return ev
}
