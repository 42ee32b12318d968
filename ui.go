package main

import (
	"log"

	"github.com/g3n/demos/pointerfx/effect"
	"github.com/g3n/demos/pointerfx/tracker"
	"github.com/g3n/engine/app"
	"github.com/g3n/engine/core"
	"github.com/g3n/engine/gui"
	"github.com/g3n/engine/window"
)

// Controls queues configuration changes from the GUI and applies them at the
// start of the next frame.
type Controls struct {
	tr      *tracker.Tracker
	emitter *effect.Emitter
	pending *tracker.Config
}

func NewControls(tr *tracker.Tracker, emitter *effect.Emitter) *Controls {
	return &Controls{tr: tr, emitter: emitter}
}

// Config is the configuration the next frame will run with.
func (c *Controls) Config() tracker.Config {
	if c.pending != nil {
		return *c.pending
	}
	return c.tr.Config()
}

func (c *Controls) queue(cfg tracker.Config) tracker.Config {
	c.pending = &cfg
	return cfg
}

func (c *Controls) TogglePlaneMode() tracker.Config {
	cfg := c.Config()
	if cfg.PlaneMode == tracker.WorldPlane {
		cfg.PlaneMode = tracker.ViewpointPlane
	} else {
		cfg.PlaneMode = tracker.WorldPlane
	}
	return c.queue(cfg)
}

func (c *Controls) ToggleLocalSpace() tracker.Config {
	cfg := c.Config()
	cfg.ConvertToLocalSpace = !cfg.ConvertToLocalSpace
	return c.queue(cfg)
}

func (c *Controls) ToggleDiagnostics() tracker.Config {
	cfg := c.Config()
	cfg.EnableDiagnostics = !cfg.EnableDiagnostics
	return c.queue(cfg)
}

// Apply hands a queued configuration to the tracker and keeps the emitter's
// coordinate space in step with it.
func (c *Controls) Apply() {
	if c.pending == nil {
		return
	}
	cfg := *c.pending
	c.pending = nil

	if err := c.tr.Reconfigure(cfg); err != nil {
		log.Printf("Rejected config change: %v", err)
		return
	}
	c.emitter.SetLocalSpace(cfg.ConvertToLocalSpace)
	log.Printf("Config changed: plane=%v local=%t diagnostics=%t",
		cfg.PlaneMode, cfg.ConvertToLocalSpace, cfg.EnableDiagnostics)
}

func planeLabel(cfg tracker.Config) string {
	return "Plane: " + cfg.PlaneMode.String()
}

func onOffLabel(name string, on bool) string {
	if on {
		return name + " ON"
	}
	return name + " OFF"
}

func initializeUI(scene *core.Node, c *Controls) {
	cfg := c.Config()

	planeBtn := gui.NewButton(planeLabel(cfg))
	planeBtn.Subscribe(gui.OnClick, func(name string, ev interface{}) {
		planeBtn.Label.SetText(planeLabel(c.TogglePlaneMode()))
	})
	scene.Add(planeBtn)

	localBtn := gui.NewButton(onOffLabel("Local", cfg.ConvertToLocalSpace))
	localBtn.Subscribe(gui.OnClick, func(name string, ev interface{}) {
		localBtn.Label.SetText(onOffLabel("Local", c.ToggleLocalSpace().ConvertToLocalSpace))
	})
	scene.Add(localBtn)

	diagBtn := gui.NewButton(onOffLabel("Diagnostics", cfg.EnableDiagnostics))
	diagBtn.Subscribe(gui.OnClick, func(name string, ev interface{}) {
		diagBtn.Label.SetText(onOffLabel("Diagnostics", c.ToggleDiagnostics().EnableDiagnostics))
	})
	scene.Add(diagBtn)

	buttons := []*gui.Button{planeBtn, localBtn, diagBtn}
	updateButtonLayout := func(w, h int) {
		const minWidth, minHeight = 400, 200
		if w < minWidth || h < minHeight {
			for _, btn := range buttons {
				btn.SetVisible(false)
			}
			return
		}

		btnWidth := float32(w) * 0.15
		btnHeight := float32(h) * 0.05
		btnX := float32(w) - btnWidth - float32(w)*0.05
		btnY := float32(h) * 0.1

		for i, btn := range buttons {
			btn.SetVisible(true)
			btn.SetSize(btnWidth, btnHeight)
			btn.SetPosition(btnX, btnY+float32(i)*(btnHeight+10))
		}
	}

	app.App().Subscribe(window.OnWindowSize, func(evname string, ev interface{}) {
		w, h := app.App().GetSize()
		updateButtonLayout(w, h)
	})

	w, h := app.App().GetSize()
	updateButtonLayout(w, h)
}
