//go:build !android

// Package game drives the runner simulation in a GLFW window.
package game

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"bunnyrun/internal/assets"
	"bunnyrun/internal/config"
	"bunnyrun/internal/runner"
	"bunnyrun/internal/sfx"
)

const (
	tickDt           = 1.0 / 60.0
	maxStepsPerFrame = 5
)

func RunDesktop(cfg config.Config) error {
	runtime.LockOSThread()

	window, err := initWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	if cfg.Debug {
		log.Printf("[GL] %s, %s", gl.GoStr(gl.GetString(gl.RENDERER)), gl.GoStr(gl.GetString(gl.VERSION)))
	}

	player, err := assets.LoadOBJ(cfg.Assets.Path(cfg.Assets.PlayerMesh))
	if err != nil {
		return err
	}
	cube, err := assets.LoadOBJ(cfg.Assets.Path(cfg.Assets.ObstacleMesh))
	if err != nil {
		return err
	}
	sky, err := assets.LoadImage(cfg.Assets.Path(cfg.Assets.Background))
	if err != nil {
		return err
	}

	rend, err := NewRenderer(player, cube, sky, cfg.Debug)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	var audio *AudioSystem
	if cfg.Audio.Enabled {
		if audio, err = InitAudio(cfg.Audio.Volume); err != nil {
			log.Printf("[Audio] init failed (continuing without sound): %v", err)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("[Game] seed %d", seed)

	bus := runner.NewEventBus()
	subscribeAudio(bus, audio)
	subscribeLog(bus, cfg.Debug)

	state := runner.NewState(seed)
	input := NewInput(cfg.Input.Pointer)
	var draws []runner.Drawable
	title := ""
	restart := false

	acc := 0.0
	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		acc += now - last
		last = now

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		in := input.Sample(window)
		restart = restart || in.Restart
		steps := 0
		for acc >= tickDt && steps < maxStepsPerFrame {
			wasRolling := state.Player.RollActive
			in.Restart = restart
			var ev runner.Events
			state, ev = runner.Step(state, in)
			bus.Emit(ev, state)
			if !wasRolling && state.Player.RollActive && !ev.Has(runner.EventReward) {
				audio.Play(sfx.Roll)
			}
			// Restart is edge-triggered; apply it to one tick only.
			restart = false
			acc -= tickDt
			steps++
		}
		if steps == maxStepsPerFrame && acc >= tickDt {
			// Drop the backlog rather than spiral after a stall.
			acc = 0
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		sc := runner.BuildScene(state, float64(fbW)/float64(fbH), draws)
		draws = sc.Draws
		rend.DrawFrame(sc, fbW, fbH)
		window.SwapBuffers()

		if t := windowTitle(cfg.Window.Title, state); t != title {
			window.SetTitle(t)
			title = t
		}
	}
	return nil
}

func windowTitle(base string, s runner.State) string {
	if s.Frozen() {
		return fmt.Sprintf("%s | score %d | crashed, press R", base, s.Score.Score)
	}
	return fmt.Sprintf("%s | score %d", base, s.Score.Score)
}

func subscribeAudio(bus *runner.EventBus, audio *AudioSystem) {
	if audio == nil {
		return
	}
	bus.Subscribe(runner.EventReward, func(runner.Events, runner.State) { audio.Play(sfx.Reward) })
	bus.Subscribe(runner.EventCrash, func(runner.Events, runner.State) { audio.Play(sfx.Crash) })
	bus.Subscribe(runner.EventRestart, func(runner.Events, runner.State) { audio.Play(sfx.Restart) })
}

func subscribeLog(bus *runner.EventBus, debug bool) {
	bus.Subscribe(runner.EventCrash, func(_ runner.Events, s runner.State) {
		log.Printf("[Game] crashed into lane %d at score %d", s.Score.FrozenLane, s.Score.Score)
	})
	bus.Subscribe(runner.EventRestart, func(runner.Events, runner.State) {
		log.Printf("[Game] restart")
	})
	if !debug {
		return
	}
	bus.Subscribe(runner.EventReward, func(_ runner.Events, s runner.State) {
		log.Printf("[Game] tick %d: gap reward, score %d", s.Tick, s.Score.Score)
	})
	bus.Subscribe(runner.EventResample, func(_ runner.Events, s runner.State) {
		log.Printf("[Game] tick %d: cycle %d gap lane %d", s.Tick, s.Road.Cycle, s.Road.ActiveLane)
	})
}
