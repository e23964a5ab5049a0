package clock

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"daynight-engine/scene"
)

func handPointing(hand *scene.Node) mgl32.Vec3 {
	return hand.Transform.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
}

func dirNear(got, want mgl32.Vec3) bool {
	return math.Abs(float64(got.X()-want.X())) < 1e-5 &&
		math.Abs(float64(got.Y()-want.Y())) < 1e-5 &&
		math.Abs(float64(got.Z()-want.Z())) < 1e-5
}

func TestSetTimeHandAngles(t *testing.T) {
	v := Build(1)

	cases := []struct {
		name    string
		minutes float64
		hour    mgl32.Vec3
		minute  mgl32.Vec3
	}{
		{"midnight", 0, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 1, 0}},
		{"three oclock", 180, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{"six oclock", 360, mgl32.Vec3{0, -1, 0}, mgl32.Vec3{0, 1, 0}},
		{"noon", 720, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 1, 0}},
		{"quarter past nine", 585, mgl32.Vec3{}, mgl32.Vec3{-1, 0, 0}},
	}

	for _, tc := range cases {
		v.SetTime(tc.minutes)

		if tc.hour != (mgl32.Vec3{}) {
			if got := handPointing(v.HourHand); !dirNear(got, tc.hour) {
				t.Errorf("%s: hour hand expected %v, got %v", tc.name, tc.hour, got)
			}
		}
		if got := handPointing(v.MinuteHand); !dirNear(got, tc.minute) {
			t.Errorf("%s: minute hand expected %v, got %v", tc.name, tc.minute, got)
		}
	}
}

func TestHourHandSweepsBetweenHours(t *testing.T) {
	v := Build(1)

	// At 4:30 the hour hand sits halfway between 4 and 5 o'clock.
	v.SetTime(4*60 + 30)
	a := 4.5 / 12 * 2 * math.Pi
	want := mgl32.Vec3{float32(math.Sin(a)), float32(math.Cos(a)), 0}
	if got := handPointing(v.HourHand); !dirNear(got, want) {
		t.Errorf("4:30 hour hand: expected %v, got %v", want, got)
	}
}

func TestBuildStructure(t *testing.T) {
	v := Build(2)

	if v.Root.Find("ClockFace") == nil {
		t.Error("Build: missing ClockFace node")
	}
	if v.Root.Find("ClockPin") == nil {
		t.Error("Build: missing ClockPin node")
	}
	for _, name := range []string{"Tick3", "Tick6", "Tick9", "Tick12"} {
		if v.Root.Find(name) == nil {
			t.Errorf("Build: missing %s node", name)
		}
	}
	if v.HourHand == nil || v.MinuteHand == nil {
		t.Fatal("Build: hands not assigned")
	}
	if v.HourHand.Find("HourHandBlade") == nil {
		t.Error("Build: hour hand has no blade child")
	}
}

func TestFromModel(t *testing.T) {
	body := scene.NewNode("Body")
	hh := scene.NewNode("hands_hour")
	mm := scene.NewNode("hands_minute")
	body.AddChild(hh)
	body.AddChild(mm)
	res := &scene.ModelResult{Roots: []*scene.Node{body}}

	v, err := FromModel(res, "hands_hour", "hands_minute")
	if err != nil {
		t.Fatalf("FromModel: %v", err)
	}
	if v.HourHand != hh || v.MinuteHand != mm {
		t.Error("FromModel: wrong hand nodes resolved")
	}

	v.SetTime(180)
	if got := handPointing(v.HourHand); !dirNear(got, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("model hour hand at 3:00: expected (1,0,0), got %v", got)
	}

	if _, err := FromModel(res, "absent", "hands_minute"); err == nil {
		t.Error("FromModel with missing hour node: expected error, got nil")
	}
}
