// Package anim assembles ordered frame sequences into animations and models
// their playback.
package anim

import (
	"image"

	"github.com/nfnt/resize"
)

// Scale resizes a frame by an integer factor using nearest-neighbor
// sampling, keeping pixel-art edges hard. A factor of 1 or less returns the
// frame unchanged.
func Scale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	sz := img.Bounds().Size()
	return resize.Resize(uint(sz.X*factor), uint(sz.Y*factor), img, resize.NearestNeighbor)
}

// ScaleAll scales every frame of a sequence, preserving order.
func ScaleAll(frames []*image.RGBA, factor int) []image.Image {
	out := make([]image.Image, 0, len(frames))
	for _, fr := range frames {
		out = append(out, Scale(fr, factor))
	}
	return out
}
