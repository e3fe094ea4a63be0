// Package palette analyzes spritesheet colors.
//
// It exists to pick and verify the reference colors the chroma-key mask
// needs: the dominant color of a sheet with a flat backdrop is the
// background reference, and the extracted palette shows which tones (skin,
// outline) deserve a preservation rule of their own.
package palette

import (
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/ericpauley/go-quantize/quantize"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"github.com/pkg/errors"
)

// Method selects the palette extraction algorithm.
type Method int

const (
	// MedianCut splits the color space the way GIF quantization does;
	// fast, biased toward populous colors.
	MedianCut Method = iota
	// KMeans clusters sampled pixels; slower, better at separating close
	// shades such as skin against a warm backdrop.
	KMeans
)

// DominantBackground returns the most dominant color of the sheet. On a
// sheet with a flat backdrop this is the chroma-key background reference.
func DominantBackground(img image.Image) color.RGBA {
	return dominantcolor.Find(img)
}

// Extract returns up to k representative sheet colors, sorted dark to
// light. Fully transparent pixels are ignored.
func Extract(img image.Image, k int, m Method) ([]colorful.Color, error) {
	if k <= 0 {
		return nil, errors.Errorf("palette size must be positive, got %d", k)
	}

	var pal []colorful.Color
	switch m {
	case MedianCut:
		pal = medianCut(img, k)
	case KMeans:
		var err error
		pal, err = kMeans(img, k)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("unknown palette method %d", m)
	}

	sortByBrightness(pal)
	return pal, nil
}

func medianCut(img image.Image, k int) []colorful.Color {
	q := quantize.MedianCutQuantizer{}
	raw := q.Quantize(make(color.Palette, 0, k), img)

	pal := make([]colorful.Color, 0, len(raw))
	for _, c := range raw {
		col, ok := colorful.MakeColor(c)
		if !ok {
			continue
		}
		pal = append(pal, col.Clamped())
	}
	return pal
}

func kMeans(img image.Image, k int) ([]colorful.Color, error) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, errors.New("empty image")
	}

	// Subsample to keep kmeans tractable on large sheets.
	const maxSamples = 12000
	step := 1
	if n := b.Dx() * b.Dy(); n > maxSamples {
		step = int(math.Sqrt(float64(n)/float64(maxSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, maxSamples)
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r, g, bl, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(r) / 65535.0,
				float64(g) / 65535.0,
				float64(bl) / 65535.0,
			})
		}
	}
	if len(dataset) == 0 {
		return nil, errors.New("no opaque pixels to cluster")
	}
	if k > len(dataset) {
		k = len(dataset)
	}

	km := kmeans.New()
	cc, err := km.Partition(dataset, k)
	if err != nil {
		return nil, errors.Wrap(err, "clustering sheet colors")
	}

	// Populous clusters first.
	slices.SortFunc(cc, func(a, b clusters.Cluster) int {
		return len(b.Observations) - len(a.Observations)
	})

	pal := make([]colorful.Color, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 {
			continue
		}
		pal = append(pal, colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped())
	}
	return pal, nil
}

func sortByBrightness(pal []colorful.Color) {
	slices.SortFunc(pal, func(a, b colorful.Color) int {
		ra, ga, ba := a.LinearRgb()
		rb, gb, bb := b.LinearRgb()
		ya := 0.2126*ra + 0.7152*ga + 0.0722*ba
		yb := 0.2126*rb + 0.7152*gb + 0.0722*bb
		switch {
		case ya < yb:
			return -1
		case ya > yb:
			return 1
		}
		return 0
	})
}
