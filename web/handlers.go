// Package web serves spritesheet frames and the assembled animation over
// HTTP, as a quick preview surface for tuning mask parameters.
package web

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/vincent-petithory/dataurl"
	"golang.org/x/sync/singleflight"

	"badc0de.net/pkg/go-sprite/anim"
	"badc0de.net/pkg/go-sprite/mask"
	"badc0de.net/pkg/go-sprite/sheet"
)

// Config fixes the pipeline parameters the handler serves with.
type Config struct {
	SheetPath string
	Grid      sheet.Grid
	Key       mask.ChromaKey
	Scale     int
	GIF       anim.GIFOptions
}

type Handler struct {
	cfg Config

	mu     sync.Mutex
	frames []image.Image

	flight singleflight.Group
}

// NewHandler constructs a web handler for the passed pipeline config. The
// sheet is loaded and processed lazily, on the first request that needs it.
func NewHandler(cfg Config) *Handler {
	return &Handler{cfg: cfg}
}

// pipeline slices, masks and scales the sheet once; concurrent first
// requests share a single build.
func (h *Handler) pipeline() ([]image.Image, error) {
	h.mu.Lock()
	cached := h.frames
	h.mu.Unlock()
	if cached != nil {
		return cached, nil
	}

	v, err, _ := h.flight.Do("pipeline", func() (interface{}, error) {
		src, err := sheet.Open(h.cfg.SheetPath)
		if err != nil {
			return nil, err
		}
		raw := sheet.Slice(src, h.cfg.Grid)
		for _, fr := range raw {
			h.cfg.Key.Apply(fr)
		}
		return anim.ScaleAll(raw, h.cfg.Scale), nil
	})
	if err != nil {
		return nil, err
	}

	frames := v.([]image.Image)
	h.mu.Lock()
	h.frames = frames
	h.mu.Unlock()
	return frames, nil
}

func (h *Handler) etag(kind string, args ...interface{}) string {
	gen := 1 // bump if the way we generate images changes
	suffix := fmt.Sprint(args...)
	if s, err := os.Stat(h.cfg.SheetPath); err == nil {
		return fmt.Sprintf(`W/"%s:%d:%d:%s"`, kind, gen, s.ModTime().Unix(), suffix)
	}
	return fmt.Sprintf(`W/"%s:%d:%s"`, kind, gen, suffix)
}

// serveCached writes caching headers and reports whether the client's copy
// is already current.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, etag string) bool {
	w.Header().Set("Cache-Control", "public; max-age=3600")
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return true
	}
	return false
}

func (h *Handler) sheetHandler(w http.ResponseWriter, r *http.Request) {
	if h.serveCached(w, r, h.etag("sheet")) {
		return
	}

	src, err := sheet.Open(h.cfg.SheetPath)
	if err != nil {
		glog.Errorf("error loading sheet: %v", err)
		http.Error(w, "failed to open sprite sheet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	png.Encode(w, src)
}

func (h *Handler) frameHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	row, err := strconv.Atoi(vars["row"])
	if err != nil {
		http.Error(w, "row not a number", http.StatusBadRequest)
		return
	}
	col, err := strconv.Atoi(vars["col"])
	if err != nil {
		http.Error(w, "col not a number", http.StatusBadRequest)
		return
	}
	if row < 0 || row >= h.cfg.Grid.Rows || col < 0 || col >= h.cfg.Grid.Cols {
		http.Error(w, "frame outside the grid", http.StatusNotFound)
		return
	}

	if h.serveCached(w, r, h.etag("frame", row, ".", col)) {
		return
	}

	frames, err := h.pipeline()
	if err != nil {
		glog.Errorf("error building frames: %v", err)
		http.Error(w, "failed to process sprite sheet", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	png.Encode(w, frames[row*h.cfg.Grid.Cols+col])
}

func (h *Handler) gifHandler(w http.ResponseWriter, r *http.Request) {
	if h.serveCached(w, r, h.etag("gif")) {
		return
	}

	frames, err := h.pipeline()
	if err != nil {
		glog.Errorf("error building frames: %v", err)
		http.Error(w, "failed to process sprite sheet", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/gif")
	w.WriteHeader(http.StatusOK)
	if err := anim.EncodeGIF(w, frames, h.cfg.GIF); err != nil {
		glog.Errorf("error encoding gif: %v", err)
	}
}

// indexHandler renders a plain HTML page with every frame inlined as a data
// URL, plus the assembled animation.
func (h *Handler) indexHandler(w http.ResponseWriter, r *http.Request) {
	frames, err := h.pipeline()
	if err != nil {
		glog.Errorf("error building frames: %v", err)
		http.Error(w, "failed to process sprite sheet", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "<!doctype html><title>go-sprite preview</title><body style=\"background:#333\">\n")
	fmt.Fprintf(w, "<p><img src=\"/animation.gif\" alt=\"animation\"></p>\n")
	for i, fr := range frames {
		buf := &bytes.Buffer{}
		if err := png.Encode(buf, fr); err != nil {
			glog.Errorf("error encoding frame %d: %v", i, err)
			continue
		}
		dataURL := dataurl.New(buf.Bytes(), "image/png")
		row, col := i/h.cfg.Grid.Cols, i%h.cfg.Grid.Cols
		fmt.Fprintf(w, "<img src=%q title=\"frame %d,%d\">\n", dataURL.String(), row, col)
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.indexHandler)
	r.HandleFunc("/sheet.png", h.sheetHandler)
	r.HandleFunc("/frame/{row:[0-9]+}-{col:[0-9]+}.png", h.frameHandler)
	r.HandleFunc("/animation.gif", h.gifHandler)
}
