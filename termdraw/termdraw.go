// Package termdraw renders sprite frames in a terminal.
//
// It is the playback surface for the interactive previewer: frames are drawn
// either as inline images (Kitty, iTerm2, Sixel via rasterm) or as colored
// half-block cells for plain terminals. Fully transparent pixels are left as
// the terminal background so masked sprites read correctly.
package termdraw

import (
	"fmt"
	"image"
	ic "image/color"
	"io"

	"github.com/BourgeoisBear/rasterm"
	"github.com/ericpauley/go-quantize/quantize"
	"github.com/gookit/color"
)

// Mode selects how frames are put on the terminal.
type Mode int

const (
	// Auto probes for Kitty/iTerm/Sixel support and falls back to Cells.
	Auto Mode = iota
	// Cells draws two-characters-per-pixel colored blanks using 24-bit
	// escape sequences.
	Cells
	// Cells256 is Cells with the 256-color palette for older terminals.
	Cells256
)

// Draw renders the frame to w using the passed mode.
func Draw(w io.Writer, img image.Image, mode Mode) error {
	switch mode {
	case Auto:
		if ok, err := drawInline(w, img); ok {
			return err
		}
		return drawCells(w, img, true)
	case Cells:
		return drawCells(w, img, true)
	case Cells256:
		return drawCells(w, img, false)
	}
	return fmt.Errorf("unknown draw mode %d", mode)
}

// InlineCapable reports whether the terminal supports one of the inline
// image protocols Draw would use in Auto mode.
func InlineCapable() bool {
	if rasterm.IsTermKitty() || rasterm.IsTermItermWez() {
		return true
	}
	capable, err := rasterm.IsSixelCapable()
	return capable && err == nil
}

// drawInline attempts the terminal's native image protocol. The first
// return value reports whether any protocol was available.
func drawInline(w io.Writer, img image.Image) (bool, error) {
	s := rasterm.Settings{}
	if rasterm.IsTermKitty() {
		return true, s.KittyWriteImage(w, img)
	}
	if rasterm.IsTermItermWez() {
		return true, s.ItermWriteImage(w, img)
	}
	if capable, err := rasterm.IsSixelCapable(); capable && err == nil {
		// Sixel wants a paletted image; median-cut the frame down.
		q := quantize.MedianCutQuantizer{AddTransparent: true}
		pal := q.Quantize(make(ic.Palette, 0, 64), img)
		pm := image.NewPaletted(img.Bounds(), pal)
		for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
			for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
				pm.Set(x, y, img.At(x, y))
			}
		}
		return true, s.SixelWriteImage(w, pm)
	}
	return false, nil
}

func drawCells(w io.Writer, img image.Image, trueColor bool) error {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cR, cG, cB, cA := img.At(x, y).RGBA()
			switch {
			case cA == 0:
				if _, err := fmt.Fprintf(w, "\x1b[0m  "); err != nil {
					return err
				}
			case trueColor:
				if _, err := fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm  \x1b[0m", uint8(cR>>8), uint8(cG>>8), uint8(cB>>8)); err != nil {
					return err
				}
			default:
				cell := color.RGB(uint8(cR>>8), uint8(cG>>8), uint8(cB>>8), true).Sprint("  ")
				if _, err := io.WriteString(w, cell); err != nil {
					return err
				}
			}
		}
		// CRLF keeps rows aligned when the terminal is in raw mode.
		if _, err := fmt.Fprintf(w, "\x1b[0m\r\n"); err != nil {
			return err
		}
	}
	return nil
}

// Home moves the cursor back to the top left so the next Draw overwrites
// the previous frame instead of scrolling.
func Home(w io.Writer) {
	fmt.Fprintf(w, "\x1b[H")
}

// Clear wipes the screen and homes the cursor.
func Clear(w io.Writer) {
	fmt.Fprintf(w, "\x1b[2J\x1b[H")
}
