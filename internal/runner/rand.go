package runner

// splitmix64 is a fast, high-quality 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// hashCycle returns a deterministic 64-bit hash for a ring cycle under seed.
func hashCycle(seed uint64, cycle int64) uint64 {
	h := seed
	h ^= uint64(cycle) * 0x9E3779B185EBCA87
	return splitmix64(h)
}

// PickLane returns the gap lane for the given ring cycle. The same
// (seed, cycle) pair always yields the same lane.
func PickLane(seed uint64, cycle int64) int {
	return int(hashCycle(seed, cycle) % Lanes)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
