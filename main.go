package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"path/filepath"
	"time"

	"github.com/g3n/demos/pointerfx/effect"
	"github.com/g3n/demos/pointerfx/input"
	"github.com/g3n/demos/pointerfx/tracker"
	"github.com/g3n/engine/app"
	"github.com/g3n/engine/camera"
	"github.com/g3n/engine/core"
	"github.com/g3n/engine/gls"
	"github.com/g3n/engine/gui"
	"github.com/g3n/engine/light"
	"github.com/g3n/engine/math32"
	"github.com/g3n/engine/renderer"
	"github.com/g3n/engine/util/helper"
	"github.com/g3n/engine/window"
	"github.com/kardianos/osext"
)

const configName = "pointerfx.yaml"

func main() {
	configPath := flag.String("config", "", "tracker config file (default: "+configName+" next to the executable)")
	modelPath := flag.String("model", "", "optional .obj model shown at the emitter")
	flag.Parse()

	cfg := loadConfig(*configPath)

	// Initialize the app and scene
	a := app.App()
	scene := core.NewNode()
	gui.Manager().Set(scene)

	// Setup the camera
	cam := camera.New(1)
	cam.SetPosition(0, 5, -5)
	cam.LookAt(&math32.Vector3{X: 0, Y: 0, Z: 1}, &math32.Vector3{X: 0, Y: 1, Z: 0})
	scene.Add(cam)
	camera.NewOrbitControl(cam)

	poller := input.NewPoller(a)

	// Handle window resizing
	onResize := func(evname string, ev interface{}) {
		width, height := a.GetSize()
		a.Gls().Viewport(0, 0, int32(width), int32(height))
		cam.SetAspect(float32(width) / float32(height))
		poller.SetViewport(width, height)
	}
	a.Subscribe(window.OnWindowSize, onResize)
	onResize("", nil)

	// Add lights and helpers
	scene.Add(light.NewAmbient(&math32.Color{1, 1, 1}, 0.8))
	pointLight := light.NewPoint(&math32.Color{1, 1, 1}, 5.0)
	pointLight.SetPosition(1, 2, 2)
	scene.Add(pointLight)
	scene.Add(helper.NewAxes(1.0))

	emitterCfg := effect.DefaultEmitterConfig()
	emitterCfg.EmitProperty = cfg.EmitPropertyName
	emitterCfg.PositionProperty = cfg.VectorPropertyName
	emitterCfg.LocalSpace = cfg.ConvertToLocalSpace
	emitter := effect.NewEmitter(emitterCfg)
	emitter.AttachTo(scene)

	if *modelPath != "" {
		ml := &ModelLoader{parent: emitter.Node}
		if err := ml.LoadModel(*modelPath); err != nil {
			log.Println("Error loading model:", err)
		}
	}

	tr, err := tracker.New(cfg, poller, cam, emitter)
	if err != nil {
		log.Printf("Pointer tracking disabled: %v", err)
	}

	controls := NewControls(tr, emitter)
	initializeUI(scene, controls)

	// Application loop
	a.Run(func(renderer *renderer.Renderer, deltaTime time.Duration) {
		a.Gls().Clear(gls.DEPTH_BUFFER_BIT | gls.STENCIL_BUFFER_BIT | gls.COLOR_BUFFER_BIT)
		renderer.Render(scene, cam)

		controls.Apply()
		tr.Update(deltaTime)
		emitter.Update(float32(deltaTime.Seconds()))
	})
}

func loadConfig(path string) tracker.Config {
	explicit := path != ""
	if !explicit {
		dir, err := osext.ExecutableFolder()
		if err != nil {
			log.Printf("Cannot locate executable folder, using default config: %v", err)
			return tracker.Default()
		}
		path = filepath.Join(dir, configName)
	}

	cfg, err := tracker.Load(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			log.Printf("No %s found, using default config", path)
		} else {
			log.Printf("Using default config: %v", err)
		}
		return tracker.Default()
	}
	log.Printf("Loaded config from %s", path)
	return cfg
}
