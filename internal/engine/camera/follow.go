package camera

import "github.com/Faultbox/gldemos/pkg/math"

// Subject is something a camera can follow: a point to look at and the
// heading change it made during the last tick.
type Subject interface {
	FollowPoint() math.Vec3
	FollowTurn() float32
}

// Follow slaves a camera to a subject. It holds non-owning references to
// both and only acts when Update or Reset is called, so the scene decides the
// ordering relative to the subject's own update.
type Follow struct {
	Camera  *OrbitCamera
	Subject Subject
}

// NewFollow binds cam to subject.
func NewFollow(cam *OrbitCamera, subject Subject) *Follow {
	return &Follow{Camera: cam, Subject: subject}
}

// Update turns the camera with the subject and retargets it.
func (f *Follow) Update() {
	f.Camera.RotateAzimuth(f.Subject.FollowTurn())
	f.Camera.SetTarget(f.Subject.FollowPoint())
}

// Reset restores the initial azimuth and retargets the camera.
func (f *Follow) Reset() {
	f.Camera.ResetAzimuth()
	f.Camera.SetTarget(f.Subject.FollowPoint())
}
