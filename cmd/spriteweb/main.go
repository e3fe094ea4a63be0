// Command spriteweb serves the sliced, masked frames and the assembled
// animation over HTTP, for tuning mask parameters in a browser.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"runtime"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	_ "golang.org/x/net/trace"

	"badc0de.net/pkg/go-sprite/anim"
	"badc0de.net/pkg/go-sprite/mask"
	"badc0de.net/pkg/go-sprite/paths"
	"badc0de.net/pkg/go-sprite/sheet"
	"badc0de.net/pkg/go-sprite/web"
)

var (
	sheetPath string

	listenAddress  = flag.String("listen_address", ":8080", "http listen address for spriteweb")
	debugWebServer = flag.String("debug_web_server_listen_address", "", "where the debug server will listen")

	rows    = flag.Int("rows", 4, "sheet grid rows")
	cols    = flag.Int("cols", 3, "sheet grid columns")
	scale   = flag.Int("scale", 3, "integer upscale factor for the frames")
	delayMS = flag.Int("delay_ms", 200, "per-frame duration of the animation in milliseconds")
)

func main() {
	paths.SetupFilePathFlag("images3.png", "sheet_path", &sheetPath)
	flagutil.Parse()

	if sheetPath == "" {
		glog.Exitf("no sprite sheet found; pass --sheet_path")
	}

	h := web.NewHandler(web.Config{
		SheetPath: sheetPath,
		Grid:      sheet.Grid{Rows: *rows, Cols: *cols},
		Key:       mask.DefaultChromaKey(),
		Scale:     *scale,
		GIF:       anim.GIFOptions{DelayMS: *delayMS, LoopCount: 0},
	})

	r := mux.NewRouter()
	h.RegisterRoutes(r)

	if *debugWebServer != "" {
		http.HandleFunc("/debug/minimetrics", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "runtime.NumGoroutine(): %d\n", runtime.NumGoroutine())
		})
		go http.ListenAndServe(*debugWebServer, nil)
	}

	glog.Infof("spriteweb listening on %s", *listenAddress)
	glog.Fatal(http.ListenAndServe(*listenAddress, handlers.CombinedLoggingHandler(os.Stderr, r)))
}
