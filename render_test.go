package gogauge

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRenderImageSize(t *testing.T) {
	spec := standardGauge("engine", "ENGINE", "Condition")
	img, err := RenderImage(spec, nil)
	if err != nil {
		t.Fatalf("RenderImage: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 400 || bounds.Dy() != 400 {
		t.Errorf("expected 400x400, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderImageRescaled(t *testing.T) {
	spec := compassGauge()
	opts := DefaultRenderOptions()
	opts.Size = 200
	img, err := RenderImage(spec, opts)
	if err != nil {
		t.Fatalf("RenderImage: %v", err)
	}
	if got := img.Bounds().Dx(); got != 200 {
		t.Errorf("expected width 200, got %d", got)
	}
}

func TestRenderImageTransparentCorners(t *testing.T) {
	spec := standardGauge("engine", "ENGINE", "Condition")
	img, err := RenderImage(spec, nil)
	if err != nil {
		t.Fatalf("RenderImage: %v", err)
	}
	// The background circle leaves the canvas corners untouched.
	_, _, _, a := img.At(0, 0).RGBA()
	if a != 0 {
		t.Errorf("expected transparent corner, got alpha %d", a)
	}
}

func TestSaveImagePNG(t *testing.T) {
	spec := fuelGauge()
	path := filepath.Join(t.TempDir(), "fuel.png")
	if err := SaveImage(spec, path, nil); err != nil {
		t.Fatalf("SaveImage: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if img.Bounds().Dx() != 400 {
		t.Errorf("decoded width = %d, want 400", img.Bounds().Dx())
	}
}

func TestRenderCatalog(t *testing.T) {
	dir := t.TempDir()
	if err := RenderCatalog(dir, nil); err != nil {
		t.Fatalf("RenderCatalog: %v", err)
	}
	for _, entry := range Catalog() {
		info, err := os.Stat(filepath.Join(dir, entry.Filename))
		if err != nil {
			t.Errorf("%s: %v", entry.Filename, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s: empty output file", entry.Filename)
		}
	}
}

func TestRenderCatalogUnwritableDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "ro")
	if err := os.MkdirAll(dir, 0o555); err != nil {
		t.Fatal(err)
	}
	if os.Geteuid() == 0 {
		t.Skip("running as root, directory permissions are not enforced")
	}
	if err := RenderCatalog(dir, nil); err == nil {
		t.Error("expected error for unwritable output directory")
	}
}
