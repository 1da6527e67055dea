package runner

// Pointer is a cursor sample. T is the cursor x divided by the window width.
type Pointer struct {
	Active bool // cursor moved this frame and pointer control is enabled
	T      float64
}

// Input is the per-tick control snapshot.
type Input struct {
	MoveLeft  bool
	MoveRight bool
	Roll      bool
	Restart   bool
	Pointer   Pointer
}

// PointerLateral maps a normalized cursor position onto the lateral range.
func PointerLateral(t float64) float64 {
	return clampF(LeftBound+t*(RightBound-LeftBound), LeftBound, RightBound)
}

func advancePlayer(p *PlayerState, in Input, jumpVelocity float64) {
	if in.Pointer.Active {
		p.Lateral = PointerLateral(in.Pointer.T)
	} else {
		if in.MoveLeft {
			p.Lateral -= LateralSpeed
		}
		if in.MoveRight {
			p.Lateral += LateralSpeed
		}
		p.Lateral = clampF(p.Lateral, LeftBound, RightBound)
	}

	if p.Vertical <= BobLow {
		p.Ascending = true
	} else if p.Vertical > BobHigh {
		p.Ascending = false
	}
	if p.Ascending {
		p.Vertical -= jumpVelocity
	} else {
		p.Vertical += jumpVelocity
	}

	if in.Roll {
		p.RollActive = true
	}
	advanceRoll(p)
}

func advanceRoll(p *PlayerState) {
	if p.RollActive {
		p.RollAngle += RollVelocity
	}
	if p.RollAngle > RollEnd {
		p.RollAngle = RollStart
		p.RollActive = false
	}
}

// pinFrozen holds the crashed pose.
func pinFrozen(p *PlayerState) {
	p.Vertical = BobLow
	p.Tilt = FrozenTilt
}
