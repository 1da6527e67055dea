//go:build !android

package game

import (
	"bytes"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"bunnyrun/internal/sfx"
)

// maxVoices caps overlapping effects so rapid gap rewards do not clip.
const maxVoices = 4

// AudioSystem plays pre-rendered effects through oto.
type AudioSystem struct {
	ctx    *oto.Context
	ready  chan struct{}
	bank   *sfx.Bank
	volume float64
	voices int32
}

// InitAudio opens the output device and renders the effect bank.
func InitAudio(volume float64) (*AudioSystem, error) {
	ctx, ready, err := oto.NewContext(sfx.SampleRate, sfx.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	return &AudioSystem{
		ctx:    ctx,
		ready:  ready,
		bank:   sfx.NewBank(),
		volume: volume,
	}, nil
}

// Play starts kind on its own player and returns immediately. Calls made
// before the device is ready, or while maxVoices are sounding, are dropped.
func (a *AudioSystem) Play(kind sfx.Kind) {
	if a == nil || a.volume <= 0 {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	samples := a.bank.Get(kind)
	if len(samples) == 0 {
		return
	}
	if atomic.AddInt32(&a.voices, 1) > maxVoices {
		atomic.AddInt32(&a.voices, -1)
		return
	}
	go func() {
		defer atomic.AddInt32(&a.voices, -1)
		player := a.ctx.NewPlayer(bytes.NewReader(samples))
		player.SetVolume(a.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}
