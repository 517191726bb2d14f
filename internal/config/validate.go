package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate reports every setting the demos cannot run with.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	g := c.Graphics
	check(g.Width > 0 && g.Height > 0, "graphics size %dx%d", g.Width, g.Height)
	check(g.FOVDeg > 0 && g.FOVDeg < 180, "graphics.fov_deg %v", g.FOVDeg)
	check(g.Near > 0, "graphics.near %v", g.Near)

	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume %v", c.Audio.Volume)

	check(c.Cubes.Camera.Distance > 0, "cubes.camera.distance %v", c.Cubes.Camera.Distance)
	check(c.Cubes.Far > g.Near, "cubes.far %v must exceed near %v", c.Cubes.Far, g.Near)
	checkLight(check, "cubes.light", c.Cubes.Light)

	r := c.Race
	check(r.Chase.Distance > 0, "race.chase.distance %v", r.Chase.Distance)
	check(r.Overview.Distance > 0, "race.overview.distance %v", r.Overview.Distance)
	check(r.Far > g.Near, "race.far %v must exceed near %v", r.Far, g.Near)
	check(r.SkyboxScale > 0, "race.skybox_scale %v", r.SkyboxScale)
	check(r.TrackScale > 0, "race.track_scale %v", r.TrackScale)
	checkLight(check, "race.light", r.Light)

	p := r.Player
	check(p.Scale > 0, "race.player.scale %v", p.Scale)
	check(p.MaxSpeed > 0, "race.player.max_speed %v", p.MaxSpeed)
	check(p.Acceleration > 0, "race.player.acceleration %v", p.Acceleration)
	check(p.WheelBase > 0, "race.player.wheel_base %v", p.WheelBase)
	check(p.SteerDeg > 0 && p.SteerDeg < 90, "race.player.steer_deg %v", p.SteerDeg)
	checkBox(check, "race.player.box", p.Box)

	for i, o := range r.Opponents {
		name := fmt.Sprintf("race.opponents[%d]", i)
		check(o.SemiX > 0 && o.SemiZ > 0, "%s semi axes %v, %v", name, o.SemiX, o.SemiZ)
		check(o.Rate > 0, "%s.rate %v", name, o.Rate)
		check(o.Drift > -1, "%s.drift %v", name, o.Drift)
		check(o.Scale > 0, "%s.scale %v", name, o.Scale)
		checkBox(check, name+".box", o.Box)
	}

	return errors.Join(errs...)
}

func checkLight(check func(bool, string, ...any), name string, l LightConfig) {
	check(l.Shininess >= 1, "%s.shininess %v", name, l.Shininess)
	for _, v := range []float32{l.Ambient, l.Diffuse, l.Specular} {
		if v < 0 || v > 1 {
			check(false, "%s strengths must lie in [0, 1]", name)
			return
		}
	}
}

func checkBox(check func(bool, string, ...any), name string, b [3]float32) {
	check(b[0] > 0 && b[1] > 0 && b[2] > 0, "%s %v", name, b)
}
