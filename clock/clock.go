// Package clock renders an analog clock face driven by the day/night clock.
// It only rotates hand transforms; all timekeeping lives in daynight.Manager.
package clock

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"daynight-engine/core"
	"daynight-engine/scene"
)

// View binds an analog clock's hand nodes to a time value.
//
// Hands must rest pointing at 12 o'clock with +Y up and +Z as the face
// normal; SetTime replaces their local rotation with a spin about +Z.
type View struct {
	Root       *scene.Node
	HourHand   *scene.Node
	MinuteHand *scene.Node
}

// Build generates a primitive clock: a disc face, twelve tick marks, an
// hour and a minute hand, and a center pin. The face looks along +Z.
func Build(radius float32) *View {
	root := scene.NewNode("Clock")

	faceMat := scene.NewMaterial("clock_face", core.Color{R: 0.92, G: 0.90, B: 0.85, A: 1})
	faceMat.Unlit = true
	handMat := scene.NewMaterial("clock_hand", core.Color{R: 0.08, G: 0.08, B: 0.08, A: 1})
	handMat.Unlit = true

	face := scene.NewNode("ClockFace")
	face.Mesh = scene.CreateCylinder(radius, radius*0.08, 32)
	face.Mesh.Material = faceMat
	// Cylinder axis is Y; tip it over so the cap faces the viewer.
	face.SetRotation(mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{1, 0, 0}))
	root.AddChild(face)

	for h := 1; h <= 12; h++ {
		a := float64(h) / 12 * 2 * math.Pi
		tick := scene.NewNode(fmt.Sprintf("Tick%d", h))
		tick.Mesh = scene.CreateBox(radius*0.035, radius*0.12, radius*0.02)
		tick.Mesh.Material = handMat
		tick.SetPosition(mgl32.Vec3{
			float32(math.Sin(a)) * radius * 0.85,
			float32(math.Cos(a)) * radius * 0.85,
			radius * 0.05,
		})
		tick.SetRotation(mgl32.QuatRotate(float32(-a), mgl32.Vec3{0, 0, 1}))
		root.AddChild(tick)
	}

	hour := buildHand("HourHand", radius*0.5, radius*0.06, radius*0.07, handMat)
	minute := buildHand("MinuteHand", radius*0.78, radius*0.04, radius*0.09, handMat)
	root.AddChild(hour)
	root.AddChild(minute)

	pin := scene.NewNode("ClockPin")
	pin.Mesh = scene.CreateSphere(radius*0.05, 10, 8)
	pin.Mesh.Material = handMat
	pin.SetPosition(mgl32.Vec3{0, 0, radius * 0.1})
	root.AddChild(pin)

	return &View{Root: root, HourHand: hour, MinuteHand: minute}
}

// buildHand makes a pivot node with the blade offset so it sweeps from the
// pivot instead of spinning around its own center.
func buildHand(name string, length, width, zOffset float32, mat *scene.Material) *scene.Node {
	hand := scene.NewNode(name)
	blade := scene.NewNode(name + "Blade")
	blade.Mesh = scene.CreateBox(width, length, width*0.4)
	blade.Mesh.Material = mat
	blade.SetPosition(mgl32.Vec3{0, length / 2, zOffset})
	hand.AddChild(blade)
	return hand
}

// FromModel adopts a loaded clock model, locating the hand nodes by name.
// The model's root nodes become children of View.Root.
func FromModel(res *scene.ModelResult, hourName, minuteName string) (*View, error) {
	root := scene.NewNode("Clock")
	for _, n := range res.Roots {
		root.AddChild(n)
	}

	hour := root.Find(hourName)
	if hour == nil {
		return nil, fmt.Errorf("clock: hour hand node %q not found", hourName)
	}
	minute := root.Find(minuteName)
	if minute == nil {
		return nil, fmt.Errorf("clock: minute hand node %q not found", minuteName)
	}

	return &View{Root: root, HourHand: hour, MinuteHand: minute}, nil
}

// SetTime points the hands at the given time of day in minutes since
// midnight. Fractional minutes give a smoothly sweeping minute hand.
func (v *View) SetTime(minutesOfDay float64) {
	minuteTurn := math.Mod(minutesOfDay, 60) / 60
	hourTurn := math.Mod(minutesOfDay, 720) / 720

	// Negative turns point the hands clockwise as seen from the front.
	v.MinuteHand.SetRotation(mgl32.QuatRotate(float32(-minuteTurn*2*math.Pi), mgl32.Vec3{0, 0, 1}))
	v.HourHand.SetRotation(mgl32.QuatRotate(float32(-hourTurn*2*math.Pi), mgl32.Vec3{0, 0, 1}))
}
