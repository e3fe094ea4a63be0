// Package sheet loads spritesheet images and cuts them into frames.
//
// A spritesheet is a single raster image holding multiple animation poses in
// a regular grid. Frames are cut in row-major order using floor division;
// a sheet whose dimensions do not divide evenly by the grid simply loses the
// remainder pixels along the right and bottom edges, matching the reference
// assets.
package sheet

import (
	"image"
	"image/draw"
	"io"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/pkg/errors"
)

// Grid describes the frame layout of a spritesheet.
type Grid struct {
	Rows, Cols int
}

// Cells returns the number of frames the grid describes.
func (g Grid) Cells() int { return g.Rows * g.Cols }

// CellSize returns the frame dimensions for a sheet of the passed size,
// using floor division.
func (g Grid) CellSize(sheetSize image.Point) image.Point {
	return image.Pt(sheetSize.X/g.Cols, sheetSize.Y/g.Rows)
}

// Open opens and decodes the spritesheet at the passed path.
//
// Any raster format registered with the image package at link time is
// accepted; png, jpeg and gif are registered by this package itself.
func Open(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening sprite sheet")
	}
	defer f.Close()
	return Decode(f)
}

// Decode decodes a spritesheet from the passed reader.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "decoding sprite sheet")
	}
	return img, nil
}

// Slice cuts the sheet into g.Rows x g.Cols frames: row 0 left to right,
// then row 1, and so on.
//
// Each frame owns its pixel buffer; mutating a frame never touches the
// source sheet or a sibling frame.
func Slice(src image.Image, g Grid) []*image.RGBA {
	b := src.Bounds()
	cell := g.CellSize(b.Size())

	frames := make([]*image.RGBA, 0, g.Cells())
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			fr := image.NewRGBA(image.Rect(0, 0, cell.X, cell.Y))
			origin := b.Min.Add(image.Pt(col*cell.X, row*cell.Y))
			draw.Draw(fr, fr.Bounds(), src, origin, draw.Src)
			frames = append(frames, fr)
		}
	}
	return frames
}

// Row returns the frames of a single sheet row, cut left to right.
//
// It is a convenience over Slice for layouts where each row is its own
// animation (e.g. idle on top, walk below).
func Row(src image.Image, g Grid, row int) []*image.RGBA {
	all := Slice(src, g)
	return all[row*g.Cols : (row+1)*g.Cols]
}
