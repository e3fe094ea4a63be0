// Package mask removes spritesheet backgrounds by zeroing pixel alpha.
//
// A masking strategy never touches color channels and never resurrects a
// pixel: it only decides which pixels to discard and sets their alpha to 0.
// Downstream consumers treat alpha 0 as fully transparent.
package mask

import (
	"image"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Strategy decides which pixels of a frame belong to the background.
//
// Apply mutates the frame in place, zeroing the alpha channel of discarded
// pixels and leaving everything else as-is.
type Strategy interface {
	Apply(m *image.RGBA)
}

// WhiteThreshold discards pixels whose red, green and blue channels all
// exceed Min. It is a pure per-pixel test with no neighborhood dependency,
// suitable for sheets on a plain white backdrop.
type WhiteThreshold struct {
	Min uint8
}

func (t WhiteThreshold) Apply(m *image.RGBA) {
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := m.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			if m.Pix[i] > t.Min && m.Pix[i+1] > t.Min && m.Pix[i+2] > t.Min {
				m.Pix[i+3] = 0
			}
			i += 4
		}
	}
}

// ChromaKey discards pixels near a background reference color while
// preserving pixels near a skin reference and pixels on detected edges.
//
// A pixel is discarded only when it is within BackgroundTolerance of
// Background, not within SkinTolerance of Skin, and not on an edge. The
// union of keep conditions deliberately errs toward keeping character
// detail rather than erasing it.
type ChromaKey struct {
	Background color.RGBA
	Skin       color.RGBA

	// Tolerances are Euclidean RGB distances on the 0-255 channel scale.
	// SkinTolerance is wider to absorb shading variation.
	BackgroundTolerance float64
	SkinTolerance       float64

	// Dual thresholds for the gradient magnitude edge detector.
	EdgeLow, EdgeHigh uint8
}

// DefaultChromaKey returns the settings tuned for the bundled character
// sheets: dark brown backdrop, light skin tones.
func DefaultChromaKey() ChromaKey {
	return ChromaKey{
		Background:          color.RGBA{R: 46, G: 34, B: 47, A: 0xFF},
		Skin:                color.RGBA{R: 255, G: 206, B: 177, A: 0xFF},
		BackgroundTolerance: 30,
		SkinTolerance:       80,
		EdgeLow:             50,
		EdgeHigh:            150,
	}
}

func (k ChromaKey) Apply(m *image.RGBA) {
	edges := EdgeMask(m, k.EdgeLow, k.EdgeHigh)
	bg := refColor(k.Background)
	skin := refColor(k.Skin)

	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := m.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			c := colorful.Color{
				R: float64(m.Pix[i]) / 255,
				G: float64(m.Pix[i+1]) / 255,
				B: float64(m.Pix[i+2]) / 255,
			}
			isBackground := c.DistanceRgb(bg)*255 < k.BackgroundTolerance
			isSkin := c.DistanceRgb(skin)*255 < k.SkinTolerance
			hasEdge := edges.GrayAt(x, y).Y != 0
			if isBackground && !isSkin && !hasEdge {
				m.Pix[i+3] = 0
			}
			i += 4
		}
	}
}

func refColor(c color.RGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
