package game

import "bunnyrun/internal/runner"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Floats returns the colour in [0, 1] for shader uniforms.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

var Palette = struct {
	Bunny     RGB
	RoadDark  RGB
	RoadLight RGB
	Blocking  RGB
	Gap       RGB
}{
	Bunny:     RGB{R: 216, G: 204, B: 191},
	RoadDark:  RGB{R: 60, G: 66, B: 79},
	RoadLight: RGB{R: 140, G: 140, B: 153},
	Blocking:  RGB{R: 255, G: 51, B: 51},
	Gap:       RGB{R: 255, G: 217, B: 26},
}

// slotColor is the diffuse colour bound to a program slot.
func slotColor(slot runner.ProgramSlot) RGB {
	switch slot {
	case runner.SlotPlayer:
		return Palette.Bunny
	case runner.SlotRoadA:
		return Palette.RoadDark
	case runner.SlotRoadB:
		return Palette.RoadLight
	case runner.SlotBlocking:
		return Palette.Blocking
	case runner.SlotGap:
		return Palette.Gap
	}
	return RGB{R: 255, G: 0, B: 255}
}
