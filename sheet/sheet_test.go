package sheet

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"badc0de.net/pkg/go-sprite/ttesting"
)

// testSheet builds a w x h sheet where every pixel stores its own sheet
// coordinates in the red and green channels, so a frame pixel can be traced
// back to its origin.
func testSheet(w, h int) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), A: 0xFF})
		}
	}
	return m
}

func TestSliceCount(t *testing.T) {
	for _, g := range []Grid{{Rows: 4, Cols: 3}, {Rows: 2, Cols: 4}, {Rows: 1, Cols: 1}} {
		frames := Slice(testSheet(120, 80), g)
		ttesting.AssertEqualInt(t, "frame count", len(frames), g.Cells())
	}
}

func TestSliceOrigins(t *testing.T) {
	g := Grid{Rows: 4, Cols: 3}
	sheet := testSheet(120, 80) // cells of 40x20
	frames := Slice(sheet, g)

	cell := g.CellSize(sheet.Bounds().Size())
	ttesting.AssertEqualPoint(t, "cell size", cell, image.Pt(40, 20))

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			fr := frames[row*g.Cols+col]
			if got := fr.Bounds().Size(); got != cell {
				t.Fatalf("frame (%d,%d) size: got %v; want %v", row, col, got, cell)
			}
			// The frame's top-left pixel carries its sheet origin.
			px := fr.RGBAAt(0, 0)
			want := color.RGBA{R: uint8(col * cell.X), G: uint8(row * cell.Y), A: 0xFF}
			if px != want {
				t.Errorf("frame (%d,%d) origin pixel: got %v; want %v", row, col, px, want)
			}
		}
	}
}

func TestSliceTruncatesRemainder(t *testing.T) {
	// 125x83 does not divide by 3x4; the remainder is dropped, not rounded.
	g := Grid{Rows: 4, Cols: 3}
	frames := Slice(testSheet(125, 83), g)

	ttesting.AssertEqualInt(t, "frame count", len(frames), 12)
	ttesting.AssertEqualPoint(t, "truncated cell", frames[0].Bounds().Size(), image.Pt(41, 20))
}

func TestSliceFramesOwnTheirPixels(t *testing.T) {
	sheet := testSheet(8, 8)
	frames := Slice(sheet, Grid{Rows: 2, Cols: 2})

	frames[0].SetRGBA(0, 0, color.RGBA{R: 0xEE, A: 0xFF})
	if got := sheet.RGBAAt(0, 0); got.R == 0xEE {
		t.Errorf("mutating a frame wrote through to the sheet: %v", got)
	}
	if got := frames[1].RGBAAt(0, 0); got.R == 0xEE {
		t.Errorf("mutating a frame wrote through to a sibling frame: %v", got)
	}
}

func TestSliceNonZeroMinBounds(t *testing.T) {
	// SubImage-derived sources do not start at (0,0); slicing must still
	// cut relative to the source's own origin.
	base := testSheet(20, 20)
	src := base.SubImage(image.Rect(10, 10, 20, 20))

	frames := Slice(src, Grid{Rows: 1, Cols: 1})
	ttesting.AssertEqualRGBA(t, "origin pixel", frames[0].RGBAAt(0, 0), color.RGBA{R: 10, G: 10, A: 0xFF})
}

func TestRow(t *testing.T) {
	g := Grid{Rows: 2, Cols: 4}
	sheet := testSheet(80, 40)

	top := Row(sheet, g, 0)
	bottom := Row(sheet, g, 1)

	ttesting.AssertEqualInt(t, "top row count", len(top), 4)
	ttesting.AssertEqualInt(t, "bottom row count", len(bottom), 4)
	ttesting.AssertEqualRGBA(t, "bottom row origin", bottom[0].RGBAAt(0, 0), color.RGBA{G: 20, A: 0xFF})
}

func TestDecode(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testSheet(12, 8)); err != nil {
		t.Fatalf("encoding test sheet: %v", err)
	}

	img, err := Decode(&buf)
	if err != nil {
		t.Fatalf("failed to decode sheet: %v", err)
	}
	ttesting.AssertEqualPoint(t, "decoded size", img.Bounds().Size(), image.Pt(12, 8))
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(t.TempDir() + "/no-such-sheet.png"); err == nil {
		t.Fatal("opening a missing sheet succeeded; want error")
	}
}
