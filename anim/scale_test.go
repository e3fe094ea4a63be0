package anim

import (
	"image"
	"image/color"
	"testing"

	"badc0de.net/pkg/go-sprite/ttesting"
)

func TestScaleDimensions(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 13, 7))
	for _, factor := range []int{2, 3, 5} {
		out := Scale(src, factor)
		ttesting.AssertEqualPoint(t, "scaled size", out.Bounds().Size(), image.Pt(13*factor, 7*factor))
	}
}

func TestScaleIsNearestNeighbor(t *testing.T) {
	// A 2x2 checker scaled 3x must replicate pixels into crisp 3x3 blocks
	// with no blending.
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	red := color.RGBA{R: 0xFF, A: 0xFF}
	blue := color.RGBA{B: 0xFF, A: 0xFF}
	src.SetRGBA(0, 0, red)
	src.SetRGBA(1, 0, blue)
	src.SetRGBA(0, 1, blue)
	src.SetRGBA(1, 1, red)

	out := Scale(src, 3)
	at := func(x, y int) color.RGBA {
		r, g, b, a := out.At(x, y).RGBA()
		return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
	}

	ttesting.AssertEqualRGBA(t, "origin corner", at(0, 0), red)
	ttesting.AssertEqualRGBA(t, "block interior", at(2, 2), red)
	ttesting.AssertEqualRGBA(t, "block boundary", at(3, 0), blue)
	ttesting.AssertEqualRGBA(t, "far corner", at(5, 5), red)
}

func TestScaleIdentity(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if out := Scale(src, 1); out != image.Image(src) {
		t.Error("factor 1 should return the frame unchanged")
	}
}

func TestScaleAllPreservesOrder(t *testing.T) {
	frames := []*image.RGBA{
		image.NewRGBA(image.Rect(0, 0, 1, 1)),
		image.NewRGBA(image.Rect(0, 0, 2, 2)),
		image.NewRGBA(image.Rect(0, 0, 3, 3)),
	}
	out := ScaleAll(frames, 2)

	ttesting.AssertEqualInt(t, "count", len(out), 3)
	for i, fr := range out {
		want := image.Pt((i+1)*2, (i+1)*2)
		if got := fr.Bounds().Size(); got != want {
			t.Errorf("frame %d size: got %v; want %v", i, got, want)
		}
	}
}
