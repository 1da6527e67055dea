package runner

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Pose places an entity in the world. Collision reads Position directly;
// the render transform is derived from the whole pose.
type Pose struct {
	Position mgl64.Vec3
	Yaw      float64 // degrees about +Y
	Pitch    float64 // degrees about +X
	Scale    mgl64.Vec3
}

// Transform returns T * S * Ry(yaw) * Rx(pitch) as a GL-ready matrix.
func (p Pose) Transform() mgl32.Mat4 {
	t := mgl64.Translate3D(p.Position.X(), p.Position.Y(), p.Position.Z())
	sc := mgl64.Scale3D(p.Scale.X(), p.Scale.Y(), p.Scale.Z())
	ry := mgl64.HomogRotate3DY(mgl64.DegToRad(p.Yaw))
	rx := mgl64.HomogRotate3DX(mgl64.DegToRad(p.Pitch))
	return to32(t.Mul4(sc).Mul4(ry).Mul4(rx))
}

func to32(m mgl64.Mat4) mgl32.Mat4 {
	var out mgl32.Mat4
	for i := range m {
		out[i] = float32(m[i])
	}
	return out
}

// PlayerPose returns the bunny's pose for the given player state.
func PlayerPose(p PlayerState) Pose {
	return Pose{
		Position: mgl64.Vec3{p.Lateral + PlayerOffsetX, p.Vertical + PlayerOffsetY, PlayerZ},
		Yaw:      p.RollAngle,
		Pitch:    p.Tilt,
		Scale:    mgl64.Vec3{PlayerScale, PlayerScale, PlayerScale},
	}
}

// ObstaclePose returns the pose of the trigger-slot obstacle on a lane.
func ObstaclePose(lane int, scroll float64) Pose {
	return Pose{
		Position: mgl64.Vec3{ObstacleX0 + ObstacleLaneGap*float64(lane), ObstacleY, SlotZ(TriggerSlot, scroll)},
		Scale:    mgl64.Vec3{ObstacleScaleX, ObstacleScaleY, ObstacleScaleZ},
	}
}

// TilePose returns the pose of one road tile.
func TilePose(band, slot int, scroll float64) Pose {
	return Pose{
		Position: mgl64.Vec3{RoadX0 + RoadBandGap*float64(band), RoadY, SlotZ(slot, scroll)},
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}
