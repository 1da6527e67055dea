package runner

import "github.com/go-gl/mathgl/mgl32"

// ProgramSlot selects one of the renderer's pre-linked programs.
type ProgramSlot int

const (
	SlotPlayer ProgramSlot = iota
	SlotRoadA
	SlotRoadB
	SlotBlocking
	SlotGap
	NumSlots
)

// MeshKind selects which loaded mesh a drawable uses.
type MeshKind int

const (
	MeshPlayer MeshKind = iota
	MeshCube
)

// Drawable is one draw call.
type Drawable struct {
	Slot  ProgramSlot
	Mesh  MeshKind
	Model mgl32.Mat4
}

// Camera holds the shared view parameters for a frame.
type Camera struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Eye        mgl32.Vec3
}

// Scene is everything the renderer needs for one frame, in draw order.
type Scene struct {
	Camera Camera
	Draws  []Drawable
}

// Eye is the position handed to the shaders as eyePos. The view itself
// looks from the origin down -Z.
var Eye = mgl32.Vec3{5, 5, -60}

// NewCamera builds the fixed camera for a viewport aspect ratio.
func NewCamera(aspect float64) Camera {
	if aspect <= 0 {
		aspect = 1
	}
	return Camera{
		View: mgl32.LookAtV(
			mgl32.Vec3{0, 0, 0},
			mgl32.Vec3{0, 0, -1},
			mgl32.Vec3{0, 1, 0},
		),
		Projection: mgl32.Perspective(mgl32.DegToRad(FovYDegrees), float32(aspect), NearPlane, FarPlane),
		Eye:        Eye,
	}
}

// RoadSlot returns the checkerboard program for a road tile.
func RoadSlot(band, slot int) ProgramSlot {
	if (band+slot)%2 == 0 {
		return SlotRoadA
	}
	return SlotRoadB
}

// BuildScene turns a state into a draw list. buf is reused when it has
// enough capacity.
func BuildScene(s State, aspect float64, buf []Drawable) Scene {
	draws := buf[:0]
	draws = append(draws, Drawable{
		Slot:  SlotPlayer,
		Mesh:  MeshPlayer,
		Model: PlayerPose(s.Player).Transform(),
	})

	scroll := s.Road.ScrollOffset
	for band := 0; band < RoadBands; band++ {
		for slot := 0; slot < RingSlots; slot++ {
			draws = append(draws, Drawable{
				Slot:  RoadSlot(band, slot),
				Mesh:  MeshCube,
				Model: TilePose(band, slot, scroll).Transform(),
			})
		}
	}

	for lane := 0; lane < Lanes; lane++ {
		slot := SlotBlocking
		if s.Road.Classify(lane) == Gap {
			slot = SlotGap
		} else if s.Frozen() && lane == s.Score.FrozenLane {
			continue
		}
		draws = append(draws, Drawable{
			Slot:  slot,
			Mesh:  MeshCube,
			Model: ObstaclePose(lane, scroll).Transform(),
		})
	}

	return Scene{Camera: NewCamera(aspect), Draws: draws}
}
