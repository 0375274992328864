package main

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.design/x/clipboard"

	"github.com/lhenry-dev/shellshot-go/internal/shellshoterr"
)

// saveToFile writes img to path: PNG if the extension is .png, otherwise
// raw row-major top-down RGBA bytes. Parent directories are created if
// they don't already exist.
func saveToFile(img *image.RGBA, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return shellshoterr.Wrap(shellshoterr.ErrSave, "creating output directory", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return shellshoterr.Wrap(shellshoterr.ErrSave, path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".png") {
		if err := png.Encode(f, img); err != nil {
			return shellshoterr.Wrap(shellshoterr.ErrSave, "encoding png", err)
		}
		return nil
	}

	if _, err := f.Write(img.Pix); err != nil {
		return shellshoterr.Wrap(shellshoterr.ErrSave, "writing raw rgba", err)
	}
	return nil
}

// saveToClipboard writes img to the platform clipboard as an image
// payload. clipboard.Init() is idempotent and cheap enough to call per run.
func saveToClipboard(img *image.RGBA) error {
	if err := clipboard.Init(); err != nil {
		return shellshoterr.Wrap(shellshoterr.ErrClipboard, "initializing clipboard", err)
	}

	encoded, err := encodePNGBytes(img)
	if err != nil {
		return shellshoterr.Wrap(shellshoterr.ErrClipboard, "encoding image for clipboard", err)
	}

	clipboard.Write(clipboard.FmtImage, encoded)
	return nil
}

func encodePNGBytes(img *image.RGBA) ([]byte, error) {
	w := &byteWriter{}
	if err := png.Encode(w, img); err != nil {
		return nil, err
	}
	return w.buf, nil
}

type byteWriter struct{ buf []byte }

func (w *byteWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}
