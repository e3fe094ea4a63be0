// Package paths locates sprite asset files in the conventional directories.
package paths

import (
	"io"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// assetDirs returns the directories searched for assets, most specific
// first. GOSPRITE_ASSET_DIR overrides the conventional locations.
func assetDirs() []string {
	dirs := []string{
		"imgs/rawImgs",
		"rawImgs",
		"datafiles",
		".",
	}
	if d := os.Getenv("GOSPRITE_ASSET_DIR"); d != "" {
		dirs = append([]string{d}, dirs...)
	}
	return dirs
}

// Find locates the passed asset shortname and returns a path it can be
// opened at, or an empty string when the asset is in none of the searched
// directories.
//
// For example, for "images3.png" it may return "imgs/rawImgs/images3.png".
func Find(fileName string) string {
	for _, dir := range assetDirs() {
		path := filepath.Join(dir, fileName)
		if f, err := os.Open(path); err == nil {
			f.Close()
			glog.Infof("paths.Find(%q)=%s", fileName, path)
			return path
		}
	}
	return ""
}

// Open locates the passed file in the same locations Find would look, and
// opens it.
func Open(fileName string) (io.ReadSeekCloser, error) {
	path := Find(fileName)
	if path == "" {
		return nil, errors.Errorf("asset %q not found in %v", fileName, assetDirs())
	}
	f, err := os.Open(path)
	return f, errors.Wrapf(err, "opening asset %q", fileName)
}
