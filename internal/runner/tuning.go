package runner

// Lateral movement (world units).
const (
	LeftBound     = -4.5
	RightBound    = 3.0
	StartLateral  = -0.9
	LateralSpeed  = 0.45 // per tick while a move key is held
	PlayerOffsetX = 1.0  // mesh X = Lateral + PlayerOffsetX
	PlayerOffsetY = 4.5  // mesh Y = Vertical + PlayerOffsetY
	PlayerZ       = -3.0 // collision plane
	PlayerScale   = 0.4
)

// Jump bob. JumpVelocity is negative; ascending subtracts it.
const (
	BobLow            = -6.2
	BobHigh           = -5.6
	StartVertical     = -5.0 // first run only
	RestartVertical   = -6.2
	StartJumpVelocity = -0.045
	JumpDecay         = 0.00003 // per running tick
)

// Roll animation (degrees).
const (
	RollStart    = -90.0
	RollEnd      = 270.0
	RollVelocity = 10.0
	FrozenTilt   = -90.0
)

// Road ring.
const (
	Lanes       = 3  // gameplay lanes
	RoadBands   = 4  // visual tiling
	RingSlots   = 30 // slots per band
	RingLength  = 60.0
	SlotSpacing = 2.0
	TriggerSlot = 15
	StartScroll = 0.4

	RoadX0      = -3.0
	RoadBandGap = 2.0
	RoadY       = -3.0

	ObstacleX0      = -3.0
	ObstacleLaneGap = 3.0
	ObstacleY       = -1.5
)

// Obstacle mesh scale.
const (
	ObstacleScaleX = 0.4
	ObstacleScaleY = 1.1
	ObstacleScaleZ = 0.5
)

// Collision tolerances on X and Z. The gap is deliberately more forgiving.
const (
	GapTolerance      = 1.0
	BlockingTolerance = 0.5
	GapReward         = 200
)

// Difficulty.
const (
	ScrollBase      = 0.09
	ScoreStepLength = 2500 // integer division step
)

// Camera.
const (
	FovYDegrees = 90.0
	NearPlane   = 1.0
	FarPlane    = 100.0
)

// NoLane marks FrozenLane before any blocking collision.
const NoLane = -1
