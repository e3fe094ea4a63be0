// Command spritegif slices a character spritesheet into frames, strips the
// backdrop while keeping skin tones and edges, scales the frames up and
// assembles them into a looping animated GIF.
//
// Individual frames are also written out as PNGs for inspection. The run is
// all-or-nothing: a missing or undecodable sheet aborts before any output
// file is created.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"

	"badc0de.net/pkg/go-sprite/anim"
	"badc0de.net/pkg/go-sprite/mask"
	"badc0de.net/pkg/go-sprite/palette"
	"badc0de.net/pkg/go-sprite/paths"
	"badc0de.net/pkg/go-sprite/sheet"
)

var (
	sheetPath string

	outDir  = flag.String("out_dir", "imgs/rawImgs/frames", "directory the per-frame pngs are written to")
	gifPath = flag.String("gif_path", "imgs/rawImgs/animation.gif", "path the assembled animation is written to")

	analyze = flag.Bool("analyze", false, "print the sheet's dominant color and palette instead of exporting")
	autoBG  = flag.Bool("auto_background", false, "take the chroma key background reference from the sheet's dominant color")
)

// config fixes the export pipeline parameters for the 4x3 character sheets.
type config struct {
	grid  sheet.Grid
	key   mask.ChromaKey
	scale int
	gif   anim.GIFOptions
}

func defaultConfig() config {
	return config{
		grid:  sheet.Grid{Rows: 4, Cols: 3},
		key:   mask.DefaultChromaKey(),
		scale: 3,
		gif:   anim.GIFOptions{DelayMS: 200, LoopCount: 0},
	}
}

func analyzeSheet(src image.Image) error {
	dominant := palette.DominantBackground(src)
	fmt.Printf("dominant color: #%02x%02x%02x\n", dominant.R, dominant.G, dominant.B)

	pal, err := palette.Extract(src, 8, palette.KMeans)
	if err != nil {
		return err
	}
	fmt.Println("palette (dark to light):")
	for _, c := range pal {
		fmt.Printf("  %s\n", c.Hex())
	}
	return nil
}

func export(src image.Image, cfg config) error {
	frames := sheet.Slice(src, cfg.grid)

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		return err
	}

	scaled := make([]image.Image, 0, len(frames))
	for i, fr := range frames {
		cfg.key.Apply(fr)
		out := anim.Scale(fr, cfg.scale)
		scaled = append(scaled, out)

		row, col := i/cfg.grid.Cols, i%cfg.grid.Cols
		path := filepath.Join(*outDir, fmt.Sprintf("frame_%d_%d.png", row, col))
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := png.Encode(f, out); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		glog.Infof("wrote %s", path)
	}

	f, err := os.Create(*gifPath)
	if err != nil {
		return err
	}
	if err := anim.EncodeGIF(f, scaled, cfg.gif); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func main() {
	paths.SetupFilePathFlag("images3.png", "sheet_path", &sheetPath)
	flagutil.Parse()

	if sheetPath == "" {
		glog.Exitf("no sprite sheet found; pass --sheet_path")
	}
	src, err := sheet.Open(sheetPath)
	if err != nil {
		glog.Exitf("could not load sprite sheet %q: %v", sheetPath, err)
	}

	if *analyze {
		if err := analyzeSheet(src); err != nil {
			glog.Exitf("analyzing sprite sheet: %v", err)
		}
		return
	}

	cfg := defaultConfig()
	if *autoBG {
		cfg.key.Background = palette.DominantBackground(src)
		glog.Infof("auto background: %v", cfg.key.Background)
	}

	if err := export(src, cfg); err != nil {
		glog.Exitf("export failed: %v", err)
	}
	fmt.Printf("Animation saved as %s\n", *gifPath)
}
