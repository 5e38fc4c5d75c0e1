// Package config handles renderer configuration loading and management.
package config

// Config holds all renderer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Render   RenderConfig   `yaml:"render"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds window and pacing settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Borderless bool `yaml:"borderless"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// RenderConfig holds projection and scene settings.
type RenderConfig struct {
	// FOVFactor scales projected x/y relative to depth.
	FOVFactor float32 `yaml:"fov_factor"`
	// CameraZ is the camera's initial z position.
	CameraZ float32 `yaml:"camera_z"`
	// ZoomStep scales a mouse-wheel tick into camera z units.
	ZoomStep float32 `yaml:"zoom_step"`
	// RotationStep is the per-frame rotation increment (radians),
	// applied to every axis.
	RotationStep float32 `yaml:"rotation_step"`
	// MeshPath is a mesh text file to load; empty renders the
	// built-in cube.
	MeshPath string `yaml:"mesh_path"`
}

// DebugConfig holds debug overlay settings.
type DebugConfig struct {
	ShowGrid      bool   `yaml:"show_grid"`
	GridSize      int    `yaml:"grid_size"`
	ShowVertices  bool   `yaml:"show_vertices"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     600,
			Borderless: true,
			FPSLimit:   30,
		},
		Render: RenderConfig{
			FOVFactor:    640,
			CameraZ:      -5,
			ZoomStep:     0.5,
			RotationStep: 0.01,
			MeshPath:     "",
		},
		Debug: DebugConfig{
			ShowGrid:      false,
			GridSize:      10,
			ShowVertices:  false,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
