// Package app implements the main frame loop: input handling, scene
// update and software rendering.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/wireframe/internal/config"
	"github.com/Faultbox/wireframe/internal/engine/camera"
	"github.com/Faultbox/wireframe/internal/engine/debug"
	"github.com/Faultbox/wireframe/internal/engine/input"
	"github.com/Faultbox/wireframe/internal/engine/pipeline"
	"github.com/Faultbox/wireframe/internal/engine/raster"
	"github.com/Faultbox/wireframe/internal/engine/window"
	"github.com/Faultbox/wireframe/internal/logger"
	"github.com/Faultbox/wireframe/pkg/math"
	"github.com/Faultbox/wireframe/pkg/mesh"
)

// App owns the long-lived renderer resources.
type App struct {
	cfg    *config.Config
	window *window.Window
	input  *input.Input
	canvas *raster.Canvas
	pipe   *pipeline.Pipeline
	scene  *mesh.Mesh
	shots  *debug.ScreenshotCapture
}

// frameState is the mutable per-frame state, threaded explicitly
// through the input, update and render phases of the loop.
type frameState struct {
	running     bool
	camera      *camera.Camera
	triangles   []pipeline.Triangle
	captureNext bool
}

// New creates the application: loads the scene mesh and sets up the
// window, input handler, canvas and transform pipeline.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing renderer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("fps_limit", cfg.Graphics.FPSLimit),
	)

	a := &App{
		cfg: cfg,
	}

	var err error
	if cfg.Render.MeshPath != "" {
		a.scene, err = mesh.LoadFile(cfg.Render.MeshPath)
		if err != nil {
			return nil, fmt.Errorf("loading mesh: %w", err)
		}
		logger.Info("mesh loaded",
			zap.String("path", cfg.Render.MeshPath),
			zap.Int("vertices", len(a.scene.Vertices)),
			zap.Int("faces", len(a.scene.Faces)),
		)
	} else {
		a.scene = mesh.NewCube()
		logger.Info("using built-in cube mesh")
	}

	a.window, err = window.New(window.Config{
		Title:      "Wireframe",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Borderless: cfg.Graphics.Borderless,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	a.input = input.New()
	a.canvas = raster.New(cfg.Graphics.Width, cfg.Graphics.Height)
	a.pipe = pipeline.New(cfg.Graphics.Width, cfg.Graphics.Height, cfg.Render.FOVFactor)
	a.shots = debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "wireframe")

	logger.Info("renderer initialized")
	return a, nil
}

// Run drives the frame loop until a quit event or escape key. Each
// iteration runs input, update and render in that order; the current
// frame always completes before the loop exits.
func (a *App) Run() error {
	fs := &frameState{
		running: true,
		camera: camera.New(
			math.Vec3{Z: a.cfg.Render.CameraZ},
			a.cfg.Render.ZoomStep,
		),
	}

	var frameBudget time.Duration
	if a.cfg.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(a.cfg.Graphics.FPSLimit)
	}
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for fs.running {
		frameStart := time.Now()

		// 1. Process input
		a.processInput(fs)

		// 2. Update scene state
		a.update(fs)

		// 3. Render and present
		if err := a.render(fs); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float32("camera_z", fs.camera.Position.Z),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}

		// Pace to the frame budget: sleep only the remainder of the
		// frame, not a fixed duration.
		if elapsed := time.Since(frameStart); elapsed < frameBudget {
			time.Sleep(frameBudget - elapsed)
		}
	}

	return nil
}

// Close cleans up application resources.
func (a *App) Close() {
	logger.Info("closing renderer")

	if a.window != nil {
		a.window.Close()
	}
}

// processInput drains pending events into the frame state.
func (a *App) processInput(fs *frameState) {
	if a.input.Update() {
		fs.running = false
		return
	}

	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				fs.running = false
			case sdl.SCANCODE_F12:
				fs.captureNext = true
			}
		case input.EventMouseWheel:
			fs.camera.HandleZoom(event.WheelY)
		}
	}
}

// update advances the spin and rebuilds the screen-space triangle
// list for this frame.
func (a *App) update(fs *frameState) {
	step := a.cfg.Render.RotationStep
	a.scene.Rotation.X += step
	a.scene.Rotation.Y += step
	a.scene.Rotation.Z += step

	fs.triangles = a.pipe.Transform(a.scene, fs.camera.Position, fs.triangles[:0])
}

// render clears the canvas, draws this frame's triangles and presents
// the buffer.
func (a *App) render(fs *frameState) error {
	a.canvas.Clear()

	if a.cfg.Debug.ShowGrid {
		a.canvas.DrawGrid(a.cfg.Debug.GridSize, raster.Gray)
	}

	for _, tri := range fs.triangles {
		a.canvas.DrawTriangle(tri.Points, raster.Green)

		if a.cfg.Debug.ShowVertices {
			for _, p := range tri.Points {
				a.canvas.DrawRect(int(p.X)-2, int(p.Y)-2, 4, 4, raster.Yellow)
			}
		}
	}

	if fs.captureNext {
		fs.captureNext = false
		path, err := a.shots.CaptureFromPixels(a.canvas.Buffer(), a.canvas.Width(), a.canvas.Height())
		if err != nil {
			logger.Warn("screenshot failed", zap.Error(err))
		} else {
			logger.Info("screenshot saved", zap.String("path", path))
		}
	}

	return a.window.Present(a.canvas.Buffer(), a.canvas.Pitch())
}
