// Package sfx synthesizes the game's sound effects as raw PCM.
//
// Every buffer is interleaved stereo float32 little-endian at SampleRate,
// ready for an oto player created with ChannelCount channels and
// FormatFloat32LE.
package sfx

import (
	"math"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	FrameBytes   = 8 // two float32 samples
)

// Kind identifies a sound effect.
type Kind int

const (
	Reward Kind = iota
	Crash
	Roll
	Restart
)

func (k Kind) String() string {
	switch k {
	case Reward:
		return "reward"
	case Crash:
		return "crash"
	case Roll:
		return "roll"
	case Restart:
		return "restart"
	}
	return "unknown"
}

// Generate returns the PCM for kind, or nil for an unknown kind.
func Generate(kind Kind) []byte {
	switch kind {
	case Reward:
		return genReward()
	case Crash:
		return genCrash()
	case Roll:
		return genRoll()
	case Restart:
		return genRestart()
	}
	return nil
}

// Bank caches generated effects so playback never synthesizes on the
// game thread.
type Bank struct {
	sounds map[Kind][]byte
}

// NewBank synthesizes every effect once.
func NewBank() *Bank {
	b := &Bank{sounds: make(map[Kind][]byte)}
	for _, k := range []Kind{Reward, Crash, Roll, Restart} {
		b.sounds[k] = Generate(k)
	}
	return b
}

// Get returns the cached buffer for kind. Callers must not modify it.
func (b *Bank) Get(kind Kind) []byte {
	return b.sounds[kind]
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*FrameBytes) }

func render(mix []float64) []byte {
	buf := makeBuf(len(mix))
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genReward: rising FM bell arpeggio for rolling through a gap.
func genReward() []byte {
	freqs := []float64{523.25, 659.25, 783.99, 1046.5} // C5 E5 G5 C6
	noteLen := SampleRate * 60 / 1000
	tail := int(0.15 * SampleRate)
	total := len(freqs)*noteLen + tail
	mix := make([]float64, total)

	for fi, freq := range freqs {
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.55, 0.05, 0.35)
			s := fm(t, freq, 2.756, 5.0*env) * env * 0.34
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
			mix[start+j] += s
		}
	}
	return render(mix)
}

// genCrash: noise thump under a slow descending minor chord.
func genCrash() []byte {
	n := int(0.8 * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.14}, // C4
		{220.00, 0.28}, // A3
	}
	mix := make([]float64, n)
	seed := uint64(0xC2A5)
	lp := 0.0
	thump := int(0.12 * SampleRate)
	for i := 0; i < thump; i++ {
		p := float64(i) / float64(thump)
		lp = lp*0.8 + lcg(&seed)*0.2
		mix[i] += lp * (1 - p) * 0.9
	}
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.3
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1
			mix[i] += s
		}
	}
	return render(mix)
}

// genRoll: filtered noise swoosh that sweeps up and back down.
func genRoll() []byte {
	n := int(0.3 * SampleRate)
	mix := make([]float64, n)
	seed := uint64(0x5011)
	lp := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		cut := 0.05 + 0.4*math.Sin(math.Pi*p)
		lp += (lcg(&seed) - lp) * cut
		env := math.Sin(math.Pi * p)
		mix[i] = lp * env * 0.5
	}
	return render(mix)
}

// genRestart: crisp click and brief high tone.
func genRestart() []byte {
	n := SampleRate * 65 / 1000
	mix := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		mix[i] = fm(t, freq, 1.0, 0.6) * env * 0.38
	}
	return render(mix)
}
