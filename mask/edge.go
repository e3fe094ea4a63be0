package mask

import (
	"image"
	"image/color"

	"github.com/disintegration/gift"
)

// EdgeMask runs a dual-threshold gradient magnitude edge detector over the
// frame and returns a mask where edge pixels are white, everything else
// black.
//
// Gradient magnitude is a Sobel filter over the grayscale frame. Pixels at
// or above high are edges outright; pixels at or above low count only when
// 8-connected to one (the usual hysteresis rule).
func EdgeMask(src image.Image, low, high uint8) *image.Gray {
	b := src.Bounds()
	grad := image.NewGray(b)
	gift.New(gift.Grayscale(), gift.Sobel()).Draw(grad, src)

	edges := image.NewGray(b)
	var queue []image.Point
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if grad.GrayAt(x, y).Y >= high {
				edges.SetGray(x, y, color.Gray{Y: 0xFF})
				queue = append(queue, image.Pt(x, y))
			}
		}
	}

	// Grow strong edges into adjacent weak pixels.
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				q := image.Pt(p.X+dx, p.Y+dy)
				if !q.In(b) || edges.GrayAt(q.X, q.Y).Y != 0 {
					continue
				}
				if grad.GrayAt(q.X, q.Y).Y >= low {
					edges.SetGray(q.X, q.Y, color.Gray{Y: 0xFF})
					queue = append(queue, q)
				}
			}
		}
	}
	return edges
}
