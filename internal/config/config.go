// Package config handles demo configuration loading and management.
package config

// Config holds all demo settings. Each demo binary reads the shared sections
// plus its own.
type Config struct {
	Graphics    GraphicsConfig   `yaml:"graphics"`
	Logging     LoggingConfig    `yaml:"logging"`
	Audio       AudioConfig      `yaml:"audio"`
	Screenshots ScreenshotConfig `yaml:"screenshots"`
	Cubes       CubesConfig      `yaml:"cubes"`
	Race        RaceConfig       `yaml:"race"`
}

// GraphicsConfig holds display and projection settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOVDeg     float32 `yaml:"fov_deg"`
	Near       float32 `yaml:"near"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// AudioConfig holds sound cue settings. CrashSound is an optional WAV file;
// a generated tone plays when it is empty.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`
	CrashSound string  `yaml:"crash_sound"`
}

// ScreenshotConfig controls where F12 captures go.
type ScreenshotConfig struct {
	Dir string `yaml:"dir"`
}

// CameraConfig positions an orbit camera. Angles are in degrees.
type CameraConfig struct {
	Distance     float32 `yaml:"distance"`
	AzimuthDeg   float32 `yaml:"azimuth_deg"`
	ElevationDeg float32 `yaml:"elevation_deg"`
	HeightOffset float32 `yaml:"height_offset"`
}

// LightConfig holds a point light and the Phong material lit by it.
type LightConfig struct {
	Position  [3]float32 `yaml:"position"`
	Color     [3]float32 `yaml:"color"`
	Shininess float32    `yaml:"shininess"`
	Ambient   float32    `yaml:"ambient"`
	Diffuse   float32    `yaml:"diffuse"`
	Specular  float32    `yaml:"specular"`
}

// CubesConfig configures the cube rig demo.
type CubesConfig struct {
	Camera CameraConfig `yaml:"camera"`
	Light  LightConfig  `yaml:"light"`
	Far    float32      `yaml:"far"`
}

// VehicleConfig describes the player car. Box is width, length and height
// before scaling, in the order SetBoundingBoxDimensions takes them: width
// runs along X, length along Z and height along Y.
type VehicleConfig struct {
	Scale        float32    `yaml:"scale"`
	MaxSpeed     float32    `yaml:"max_speed"`
	Acceleration float32    `yaml:"acceleration"`
	WheelBase    float32    `yaml:"wheel_base"`
	SteerDeg     float32    `yaml:"steer_deg"`
	Box          [3]float32 `yaml:"box"`
}

// OpponentConfig describes an NPC driving an elliptical orbit. Box follows
// VehicleConfig.
type OpponentConfig struct {
	Name   string     `yaml:"name"`
	SemiX  float32    `yaml:"semi_x"`
	SemiZ  float32    `yaml:"semi_z"`
	Height float32    `yaml:"height"`
	Rate   float32    `yaml:"rate"`
	Drift  float32    `yaml:"drift"`
	Scale  float32    `yaml:"scale"`
	Box    [3]float32 `yaml:"box"`
}

// RaceConfig configures the driving demo.
type RaceConfig struct {
	Chase           CameraConfig     `yaml:"chase"`
	Overview        CameraConfig     `yaml:"overview"`
	Light           LightConfig      `yaml:"light"`
	Spawn           [3]float32       `yaml:"spawn"`
	SpawnHeadingDeg float32          `yaml:"spawn_heading_deg"`
	Player          VehicleConfig    `yaml:"player"`
	Opponents       []OpponentConfig `yaml:"opponents"`
	ShowBounds      bool             `yaml:"show_bounds"`
	SkyboxScale     float32          `yaml:"skybox_scale"`
	TrackScale      float32          `yaml:"track_scale"`
	Far             float32          `yaml:"far"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FOVDeg:     45,
			Near:       0.1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.8,
		},
		Screenshots: ScreenshotConfig{
			Dir: "screenshots",
		},
		Cubes: CubesConfig{
			Camera: CameraConfig{
				Distance:     4.56,
				AzimuthDeg:   180,
				ElevationDeg: 10,
			},
			Light: LightConfig{
				Position:  [3]float32{0, 2, 0},
				Color:     [3]float32{1, 1, 1},
				Shininess: 50,
				Ambient:   0.2,
				Diffuse:   0.3,
				Specular:  0.5,
			},
			Far: 100,
		},
		Race: RaceConfig{
			Chase: CameraConfig{
				Distance:     30,
				AzimuthDeg:   180,
				ElevationDeg: 10,
				HeightOffset: 5,
			},
			Overview: CameraConfig{
				Distance:     300,
				AzimuthDeg:   180,
				ElevationDeg: 10,
				HeightOffset: 100,
			},
			Light: LightConfig{
				Position:  [3]float32{0, 10, 0},
				Color:     [3]float32{1, 1, 1},
				Shininess: 50,
				Ambient:   0.3,
				Diffuse:   0.6,
				Specular:  0.4,
			},
			Spawn: [3]float32{26, 1.8, 0},
			Player: VehicleConfig{
				Scale:        0.2,
				MaxSpeed:     30,
				Acceleration: 5,
				WheelBase:    2.8,
				SteerDeg:     10,
				Box:          [3]float32{1.3, 2.5, 6.4},
			},
			Opponents: []OpponentConfig{
				{Name: "apple", SemiX: 35, SemiZ: 155, Height: 1.5, Rate: 0.3, Drift: 0.01, Scale: 10, Box: [3]float32{0.7, 1.25, 3.2}},
				{Name: "pear", SemiX: 40, SemiZ: 170, Height: 5, Rate: 0.3, Drift: 0.012, Scale: 0.5, Box: [3]float32{2.7, 1.15, 0.7}},
			},
			SkyboxScale: 1000,
			TrackScale:  1.5,
			Far:         1000,
		},
	}
}
