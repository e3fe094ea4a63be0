package anim

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"

	"github.com/andybons/gogif"
	"github.com/pkg/errors"
)

// GIFOptions configure EncodeGIF.
type GIFOptions struct {
	// DelayMS is the visible duration of every frame in milliseconds.
	// GIF stores delays in hundredths of a second, so the value is
	// truncated to 10ms granularity.
	DelayMS int

	// LoopCount is the number of times the animation repeats; 0 loops
	// forever.
	LoopCount int
}

// EncodeGIF writes the frames, in order, as an animated GIF.
//
// Every frame is quantized to its own 255-color palette with a transparent
// entry prepended and written in full with background disposal. There is no
// inter-frame delta optimization: each frame carries its exact pixel data.
func EncodeGIF(w io.Writer, frames []image.Image, o GIFOptions) error {
	if len(frames) == 0 {
		return errors.New("no frames to encode")
	}

	g := gif.GIF{LoopCount: o.LoopCount}
	quantizer := gogif.MedianCutQuantizer{NumColor: 255} // Up to 255 colors plus 1 space for transparency.
	for _, fr := range frames {
		pal := image.NewPaletted(fr.Bounds(), nil)
		quantizer.Quantize(pal, fr.Bounds(), fr, image.ZP)

		// gogif computes the palette only while copying the frame, so the
		// frame is drawn twice: once by Quantize and once to gain the
		// transparent entry at index 0.
		palTransparent := image.NewPaletted(fr.Bounds(), append(color.Palette([]color.Color{color.Transparent}), pal.Palette...))
		draw.Draw(palTransparent, fr.Bounds(), fr, image.ZP, draw.Over)

		g.Image = append(g.Image, palTransparent)
		g.Delay = append(g.Delay, o.DelayMS/10)
		g.Disposal = append(g.Disposal, gif.DisposalBackground)
	}
	g.BackgroundIndex = 0 // image.Transparent

	return errors.Wrap(gif.EncodeAll(w, &g), "encoding animated gif")
}
