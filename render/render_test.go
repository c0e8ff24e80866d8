package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/hoshinonyaruko/snake-sim/structs"
)

func testFrame() structs.Frame {
	return structs.Frame{
		Width:  400,
		Height: 400,
		Health: 3,
		Score:  1,
		Body: []structs.Segment{
			{X: 200, Y: 200, Category: structs.BodySegment, ID: 2},
			{X: 190, Y: 200, Category: structs.BodySegment, ID: 1},
		},
		Items: []structs.Segment{
			{X: 100, Y: 100, Category: structs.Hazard, ID: 9},
			{X: 300, Y: 300, Category: structs.Healing, ID: 10},
		},
	}
}

func sameColor(t *testing.T, got, want color.Color, where string) {
	t.Helper()
	r1, g1, b1, _ := got.RGBA()
	r2, g2, b2, _ := want.RGBA()
	if r1>>8 != r2>>8 || g1>>8 != g2>>8 || b1>>8 != b2>>8 {
		t.Fatalf("%s: color=%v want=%v", where, got, want)
	}
}

func TestFrame_DrawsCategories(t *testing.T) {
	img := Frame(testFrame(), 5, 1)
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 400 {
		t.Fatalf("bounds=%v", b)
	}
	sameColor(t, img.At(200, 200), Palette(structs.BodySegment), "head")
	sameColor(t, img.At(100, 100), Palette(structs.Hazard), "hazard")
	sameColor(t, img.At(300, 300), Palette(structs.Healing), "healing")
	sameColor(t, img.At(253, 357), background, "empty cell")
}

func TestFrame_Scales(t *testing.T) {
	img := Frame(testFrame(), 5, 2)
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 800 {
		t.Fatalf("bounds=%v want 800x800", b)
	}
	sameColor(t, img.At(401, 401), Palette(structs.BodySegment), "scaled head")
}

func TestEncodePNG_DeadFrame(t *testing.T) {
	f := testFrame()
	f.Dead = true
	f.Health = 0

	var buf bytes.Buffer
	if err := EncodePNG(&buf, f, 5, 1); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 {
		t.Fatalf("bounds=%v", b)
	}
}

func TestEncodePNG_MatchesFrame(t *testing.T) {
	f := testFrame()
	var buf bytes.Buffer
	if err := EncodePNG(&buf, f, 5, 2); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := Frame(f, 5, 2)
	if img.Bounds() != want.Bounds() {
		t.Fatalf("bounds=%v want=%v", img.Bounds(), want.Bounds())
	}
	for _, p := range [][2]int{{401, 401}, {201, 201}, {601, 601}, {505, 713}} {
		sameColor(t, img.At(p[0], p[1]), want.At(p[0], p[1]), "encoded pixel")
	}
}
