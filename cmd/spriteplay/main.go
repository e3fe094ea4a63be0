// Command spriteplay previews the walk and idle animations of a character
// spritesheet in the terminal.
//
// The sheet is a 2x4 grid: the top row holds the idle frames, the bottom row
// the walk frames. Playback starts on the walk sequence; any key toggles
// between the sequences, q or Ctrl-C quits.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"os"
	"time"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/common-nighthawk/go-figure"
	"github.com/golang/glog"
	"github.com/nfnt/resize"
	"golang.org/x/crypto/ssh/terminal"

	"badc0de.net/pkg/go-sprite/anim"
	"badc0de.net/pkg/go-sprite/mask"
	"badc0de.net/pkg/go-sprite/paths"
	"badc0de.net/pkg/go-sprite/sheet"
	"badc0de.net/pkg/go-sprite/termdraw"
)

var (
	sheetPath string

	fps    = flag.Int("fps", 5, "animation speed in frames per second")
	scale  = flag.Int("scale", 2, "integer upscale factor for the frames")
	cells  = flag.Bool("cells", false, "force the 24-bit cell renderer instead of inline images")
	col256 = flag.Bool("col256", false, "force the 256-color cell renderer")
)

// The preview board is filled light gray, the way the reference previewer
// filled its window.
var boardColor = color.RGBA{R: 240, G: 240, B: 240, A: 0xFF}

func drawMode() termdraw.Mode {
	switch {
	case *col256:
		return termdraw.Cells256
	case *cells:
		return termdraw.Cells
	}
	return termdraw.Auto
}

// viewport returns the drawable area in frame pixels for the passed mode.
func viewport(mode termdraw.Mode) image.Point {
	ts, err := GetTermSize()
	if err != nil {
		return image.Pt(80/2, 22)
	}
	if mode == termdraw.Auto && termdraw.InlineCapable() && ts.XPixel > 0 && ts.YPixel > 0 {
		return image.Pt(int(ts.XPixel)/2, int(ts.YPixel)/2)
	}
	// Cell renderers spend two columns per pixel; keep two rows for the
	// status line.
	w := int(ts.Cols) / 2
	h := int(ts.Rows) - 2
	if w <= 0 || h <= 0 {
		return image.Pt(80/2, 22)
	}
	return image.Pt(w, h)
}

// board centers the frame on a light gray canvas of the viewport size,
// downsizing the frame first when it does not fit.
func board(frame image.Image, vp image.Point) image.Image {
	fb := frame.Bounds()
	if fb.Dx() > vp.X || fb.Dy() > vp.Y {
		frame = resize.Thumbnail(uint(vp.X), uint(vp.Y), frame, resize.Lanczos3)
		fb = frame.Bounds()
	}

	canvas := image.NewRGBA(image.Rect(0, 0, vp.X, vp.Y))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(boardColor), image.ZP, draw.Src)
	offset := image.Pt((vp.X-fb.Dx())/2, (vp.Y-fb.Dy())/2)
	draw.Draw(canvas, fb.Sub(fb.Min).Add(offset), frame, fb.Min, draw.Over)
	return canvas
}

// readKeys forwards single bytes from the raw-mode terminal.
func readKeys(keys chan<- byte) {
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			close(keys)
			return
		}
		if n > 0 {
			keys <- buf[0]
		}
	}
}

func play(p *anim.Player, mode termdraw.Mode) error {
	oldState, err := terminal.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}
	defer terminal.Restore(int(os.Stdin.Fd()), oldState)

	keys := make(chan byte, 8)
	go readKeys(keys)

	ticker := time.NewTicker(time.Second / time.Duration(*fps))
	defer ticker.Stop()

	termdraw.Clear(os.Stdout)
	for {
		select {
		case <-ticker.C:
			termdraw.Home(os.Stdout)
			if err := termdraw.Draw(os.Stdout, board(p.Frame(), viewport(mode)), mode); err != nil {
				return err
			}
			statusLine(p)
			p.Tick()
		case b, ok := <-keys:
			if !ok || b == 'q' || b == 3 { // 3 = Ctrl-C in raw mode
				termdraw.Clear(os.Stdout)
				return nil
			}
			p.Toggle()
		}
	}
}

func statusLine(p *anim.Player) {
	os.Stdout.WriteString("\x1b[0m" + p.Sequence().String() + " (any key toggles, q quits)\r\n")
}

func main() {
	paths.SetupFilePathFlag("images.png", "sheet_path", &sheetPath)
	flagutil.Parse()

	figure.NewFigure("spriteplay", "", true).Print()

	if sheetPath == "" {
		glog.Exitf("no sprite sheet found; pass --sheet_path")
	}
	if *fps <= 0 {
		glog.Exitf("fps must be positive, got %d", *fps)
	}
	src, err := sheet.Open(sheetPath)
	if err != nil {
		glog.Exitf("could not load sprite sheet %q: %v", sheetPath, err)
	}

	grid := sheet.Grid{Rows: 2, Cols: 4}
	idle := sheet.Row(src, grid, 0)
	walk := sheet.Row(src, grid, 1)

	strip := mask.WhiteThreshold{Min: 250}
	for _, fr := range append(append([]*image.RGBA{}, idle...), walk...) {
		strip.Apply(fr)
	}

	p := anim.NewPlayer(anim.ScaleAll(walk, *scale), anim.ScaleAll(idle, *scale))
	if err := play(p, drawMode()); err != nil {
		glog.Exitf("playback failed: %v", err)
	}
}
