package termdraw

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestDrawCells(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 2, 1))
	m.SetRGBA(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 0xFF})
	// (1,0) stays fully transparent.

	var buf bytes.Buffer
	if err := Draw(&buf, m, Cells); err != nil {
		t.Fatalf("draw failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "\x1b[48;2;10;20;30m") {
		t.Errorf("missing 24-bit background escape in %q", out)
	}
	if !strings.Contains(out, "\x1b[0m  ") {
		t.Errorf("transparent pixel not drawn as a reset blank in %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("row not terminated with a newline")
	}
}

func TestDrawUnknownMode(t *testing.T) {
	if err := Draw(&bytes.Buffer{}, image.NewRGBA(image.Rect(0, 0, 1, 1)), Mode(99)); err == nil {
		t.Fatal("unknown mode accepted; want error")
	}
}
