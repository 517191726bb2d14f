// Package camera provides the orbit camera used by every demo.
package camera

import (
	"github.com/Faultbox/gldemos/pkg/math"
)

const (
	// DistanceScaleFactor is applied by IncreaseDistance/DecreaseDistance.
	DistanceScaleFactor = 1.1

	// AngleStep is the angular increment of one step command (5 degrees).
	AngleStep = 5 * math.Pi / 180

	// DefaultAzimuth looks at the target from behind (-Z side).
	DefaultAzimuth = math.Pi
)

// Config holds the initial pose of an OrbitCamera.
type Config struct {
	Distance     float32
	Azimuth      float32 // radians
	Elevation    float32 // radians
	HeightOffset float32
	Target       math.Vec3
}

// DefaultConfig returns the chase-camera pose of the driving demo.
func DefaultConfig() Config {
	return Config{
		Distance:     30,
		Azimuth:      DefaultAzimuth,
		Elevation:    2 * AngleStep,
		HeightOffset: 5,
	}
}

// OrbitCamera orbits a movable target on a sphere.
//
// Azimuth and Elevation are stored unbounded and only used inside trig.
// Elevation is not clamped: stepping past ±π/2 takes the camera over the pole.
// Distance only changes multiplicatively, so it never changes sign; repeated
// decreases drive it towards zero, where the camera coincides with the target
// and the view is degenerate.
type OrbitCamera struct {
	Distance     float32
	Azimuth      float32
	Elevation    float32
	HeightOffset float32
	Target       math.Vec3

	initialAzimuth float32
}

// NewOrbitCamera creates a camera at the configured pose.
func NewOrbitCamera(cfg Config) *OrbitCamera {
	return &OrbitCamera{
		Distance:       cfg.Distance,
		Azimuth:        cfg.Azimuth,
		Elevation:      cfg.Elevation,
		HeightOffset:   cfg.HeightOffset,
		Target:         cfg.Target,
		initialAzimuth: cfg.Azimuth,
	}
}

// Position returns the eye position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	offset := math.SphericalDir(c.Azimuth, c.Elevation).Scale(c.Distance)
	return c.Target.Add(offset).Add(math.Vec3{Y: c.HeightOffset})
}

// UpVector returns the camera up direction, a quarter turn above the view
// direction on the same meridian.
func (c *OrbitCamera) UpVector() math.Vec3 {
	return math.SphericalDir(c.Azimuth, c.Elevation+math.Pi/2).Normalize()
}

// ViewMatrix returns the view matrix looking from Position at Target.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Target, c.UpVector())
}

// IncreaseDistance moves the camera away from the target.
func (c *OrbitCamera) IncreaseDistance() {
	c.Distance *= DistanceScaleFactor
}

// DecreaseDistance moves the camera towards the target.
func (c *OrbitCamera) DecreaseDistance() {
	c.Distance /= DistanceScaleFactor
}

// SetDistance sets the orbit radius.
func (c *OrbitCamera) SetDistance(d float32) {
	c.Distance = d
}

// IncreaseAzimuth rotates one step around the target.
func (c *OrbitCamera) IncreaseAzimuth() {
	c.Azimuth += AngleStep
}

// DecreaseAzimuth rotates one step back around the target.
func (c *OrbitCamera) DecreaseAzimuth() {
	c.Azimuth -= AngleStep
}

// RotateAzimuth rotates by an arbitrary angle, e.g. a followed vehicle's turn.
func (c *OrbitCamera) RotateAzimuth(delta float32) {
	c.Azimuth += delta
}

// ResetAzimuth restores the azimuth the camera was created with.
func (c *OrbitCamera) ResetAzimuth() {
	c.Azimuth = c.initialAzimuth
}

// IncreaseElevation raises the camera one step.
func (c *OrbitCamera) IncreaseElevation() {
	c.Elevation += AngleStep
}

// DecreaseElevation lowers the camera one step.
func (c *OrbitCamera) DecreaseElevation() {
	c.Elevation -= AngleStep
}

// SetTarget relocates the look-at point.
func (c *OrbitCamera) SetTarget(p math.Vec3) {
	c.Target = p
}

// SetHeightOffset sets the vertical eye offset above the orbit sphere.
func (c *OrbitCamera) SetHeightOffset(h float32) {
	c.HeightOffset = h
}
