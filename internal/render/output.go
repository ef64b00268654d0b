package render

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Save encodes the composed figure to path, picking the encoder from the file
// extension. The parent directory is created when missing.
func Save(img *image.NRGBA, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir plot dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create plot file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		if err := png.Encode(f, img); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
	case ".jpg", ".jpeg":
		if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 92}); err != nil {
			return fmt.Errorf("encode jpeg: %w", err)
		}
	default:
		return fmt.Errorf("unsupported plot format %q (use .png, .jpg or .jpeg)", filepath.Ext(path))
	}
	return f.Close()
}

// Display writes the figure to a temporary PNG and hands it to the platform
// image viewer. The viewer runs detached; the temp file is left in place for
// it to read.
func Display(img *image.NRGBA) error {
	f, err := os.CreateTemp("", "gapmap-*.png")
	if err != nil {
		return fmt.Errorf("create temp plot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode temp plot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp plot: %w", err)
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", f.Name())
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", f.Name())
	default:
		cmd = exec.Command("xdg-open", f.Name())
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch image viewer: %w", err)
	}
	// Detach: the viewer outlives this process.
	return cmd.Process.Release()
}
