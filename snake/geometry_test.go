package snake

import (
	"testing"

	"github.com/hoshinonyaruko/snake-sim/structs"
)

func TestIntersects(t *testing.T) {
	cases := []struct {
		name string
		b    structs.Segment
		want bool
	}{
		{"same spot", seg(0, 0, structs.Waste, 2), true},
		{"touching edge x", seg(10, 0, structs.Waste, 2), true},
		{"touching corner", seg(10, 10, structs.Waste, 2), true},
		{"gap on x", seg(10.01, 0, structs.Waste, 2), false},
		{"gap on y", seg(0, -10.5, structs.Waste, 2), false},
		{"x overlaps but y apart", seg(3, 20, structs.Waste, 2), false},
	}
	a := seg(0, 0, structs.BodySegment, 1)
	for _, c := range cases {
		if got := Intersects(a, c.b, 5); got != c.want {
			t.Fatalf("%s: Intersects=%v want=%v", c.name, got, c.want)
		}
		if got := Intersects(c.b, a, 5); got != c.want {
			t.Fatalf("%s (swapped): Intersects=%v want=%v", c.name, got, c.want)
		}
	}
}

func TestWrap_Bounds(t *testing.T) {
	f := Field{Width: 400, Height: 300}
	const half = 5.0

	cases := []struct {
		x, y   float64
		wx, wy float64
	}{
		{200, 150, 200, 150}, // 不越界
		{395, 150, 5, 150},   // 正好在上边界
		{397, 150, 7, 150},
		{5, 150, 5, 150}, // 正好在下边界，不再越界
		{4, 150, 394, 150},
		{2, 150, 392, 150},
		{200, 295, 200, 5},
		{200, 1, 200, 291},
	}
	for _, c := range cases {
		x, y := Wrap(c.x, c.y, f, half)
		if x != c.wx || y != c.wy {
			t.Fatalf("Wrap(%v,%v)=(%v,%v) want=(%v,%v)", c.x, c.y, x, y, c.wx, c.wy)
		}
	}
}

func TestWrap_ResultStaysInsideField(t *testing.T) {
	f := Field{Width: 400, Height: 400}
	const half = 5.0
	for v := -4.0; v <= 404; v += 0.5 {
		x, _ := Wrap(v, 200, f, half)
		if x < half || x > f.Width-half {
			t.Fatalf("Wrap(%v) x=%v outside [%v,%v]", v, x, half, f.Width-half)
		}
	}
}

// 越界后的坐标再处理一次不应该变化
func TestWrap_LandingIsStable(t *testing.T) {
	f := Field{Width: 400, Height: 300}
	const half = 5.0
	for _, both := range []bool{false, true} {
		f.WrapBothAxes = both
		for v := -4.0; v <= 404; v += 0.5 {
			x, y := Wrap(v, 150, f, half)
			if x2, y2 := Wrap(x, y, f, half); x2 != x || y2 != y {
				t.Fatalf("both=%v: Wrap(%v)=(%v,%v) then (%v,%v)", both, v, x, y, x2, y2)
			}
			x, y = Wrap(200, v*0.75, f, half)
			if x2, y2 := Wrap(x, y, f, half); x2 != x || y2 != y {
				t.Fatalf("both=%v: Wrap(200,%v)=(%v,%v) then (%v,%v)", both, v*0.75, x, y, x2, y2)
			}
		}
	}
}

func TestWrap_SingleAxisPerCall(t *testing.T) {
	f := Field{Width: 400, Height: 400}
	x, y := Wrap(397, 398, f, 5)
	if x != 7 || y != 398 {
		t.Fatalf("corner wrap=(%v,%v) want=(7,398)", x, y)
	}

	f.WrapBothAxes = true
	x, y = Wrap(397, 398, f, 5)
	if x != 7 || y != 8 {
		t.Fatalf("both axes wrap=(%v,%v) want=(7,8)", x, y)
	}
}
