package anim

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"testing"

	"badc0de.net/pkg/go-sprite/ttesting"
)

func solidFrame(c color.RGBA) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			m.SetRGBA(x, y, c)
		}
	}
	return m
}

func TestEncodeGIF(t *testing.T) {
	frames := []image.Image{
		solidFrame(color.RGBA{R: 0xFF, A: 0xFF}),
		solidFrame(color.RGBA{G: 0xFF, A: 0xFF}),
		solidFrame(color.RGBA{B: 0xFF, A: 0xFF}),
	}

	var buf bytes.Buffer
	if err := EncodeGIF(&buf, frames, GIFOptions{DelayMS: 200, LoopCount: 0}); err != nil {
		t.Fatalf("failed to encode gif: %v", err)
	}

	g, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("failed to decode gif back: %v", err)
	}

	ttesting.AssertEqualInt(t, "frame count", len(g.Image), 3)
	ttesting.AssertEqualInt(t, "loop forever", g.LoopCount, 0)
	for i, d := range g.Delay {
		if d != 20 {
			t.Errorf("frame %d delay: got %d; want 20 (200ms)", i, d)
		}
	}
	for i, disp := range g.Disposal {
		if disp != gif.DisposalBackground {
			t.Errorf("frame %d disposal: got %d; want background", i, disp)
		}
	}
}

func TestEncodeGIFKeepsTransparency(t *testing.T) {
	fr := solidFrame(color.RGBA{R: 0xFF, A: 0xFF})
	fr.SetRGBA(3, 3, color.RGBA{}) // fully transparent hole

	var buf bytes.Buffer
	if err := EncodeGIF(&buf, []image.Image{fr}, GIFOptions{DelayMS: 100}); err != nil {
		t.Fatalf("failed to encode gif: %v", err)
	}

	g, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("failed to decode gif back: %v", err)
	}
	_, _, _, a := g.Image[0].At(3, 3).RGBA()
	if a != 0 {
		t.Errorf("transparent pixel survived with alpha %d; want 0", a)
	}
	_, _, _, a = g.Image[0].At(0, 0).RGBA()
	if a == 0 {
		t.Error("opaque pixel became transparent")
	}
}

func TestEncodeGIFNoFrames(t *testing.T) {
	if err := EncodeGIF(&bytes.Buffer{}, nil, GIFOptions{DelayMS: 100}); err == nil {
		t.Fatal("encoding an empty sequence succeeded; want error")
	}
}
