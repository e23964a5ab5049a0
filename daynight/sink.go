package daynight

import (
	"github.com/go-gl/mathgl/mgl32"

	"daynight-engine/core"
)

// LightingSink receives the interpolated lighting state on every applied
// tick. The render engine implements it; tests plug in an in-memory fake.
type LightingSink interface {
	SetAmbientLight(color core.Color)
	SetSunLight(color core.Color)
	SetSunRotation(rotation mgl32.Quat)
	SetFogColor(color core.Color)
	SetFogEnd(distance float32)
}

// SunRotation returns the sun orientation for normalized time t with the
// given azimuth in degrees of yaw. The pitch is t*360-90 degrees about X,
// so forward (+Z) rotated by the result is the light's travel direction:
// level at the horizon at t=0.25 and t=0.75, straight down at noon.
func SunRotation(t float64, azimuthDeg float32) mgl32.Quat {
	pitch := mgl32.DegToRad(float32(t*360.0) - 90.0)
	yaw := mgl32.DegToRad(azimuthDeg)
	return mgl32.QuatRotate(yaw, mgl32.Vec3{0, 1, 0}).
		Mul(mgl32.QuatRotate(pitch, mgl32.Vec3{1, 0, 0}))
}

// SunDirection is SunRotation applied to forward: the direction sunlight
// travels at normalized time t.
func SunDirection(t float64, azimuthDeg float32) mgl32.Vec3 {
	return SunRotation(t, azimuthDeg).Rotate(mgl32.Vec3{0, 0, 1})
}
