package imaging

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"
)

// createTestImage writes a solid-color PNG to a temp file and returns its
// path. The caller is responsible for removing the file.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	tmpFile, err := os.CreateTemp("", "poster-test-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer tmpFile.Close()

	if err := png.Encode(tmpFile, img); err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to encode image: %v", err)
	}

	return tmpFile.Name()
}

func TestLoad(t *testing.T) {
	imgPath := createTestImage(t, 120, 80, color.RGBA{255, 0, 0, 255})
	defer os.Remove(imgPath)

	img, err := Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 120 || bounds.Dy() != 80 {
		t.Errorf("unexpected dimensions: got %dx%d, want 120x80", bounds.Dx(), bounds.Dy())
	}
}

func TestLoad_NonExistent(t *testing.T) {
	_, err := Load("/nonexistent/path/to/image.png")
	if err == nil {
		t.Fatal("Load should fail for non-existent file")
	}
	if !errors.Is(err, ErrImageLoad) {
		t.Errorf("error = %v, want ErrImageLoad", err)
	}
}

func TestLoad_InvalidImage(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "invalid-image-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.WriteString("not an image")
	tmpFile.Close()
	defer os.Remove(tmpFile.Name())

	_, err = Load(tmpFile.Name())
	if err == nil {
		t.Fatal("Load should fail for invalid image data")
	}
	if !errors.Is(err, ErrImageLoad) {
		t.Errorf("error = %v, want ErrImageLoad", err)
	}
}

func TestReadDimensions(t *testing.T) {
	imgPath := createTestImage(t, 300, 200, color.RGBA{100, 100, 100, 255})
	defer os.Remove(imgPath)

	w, h, err := ReadDimensions(imgPath)
	if err != nil {
		t.Fatalf("ReadDimensions failed: %v", err)
	}
	if w != 300 {
		t.Errorf("width: got %d, want 300", w)
	}
	if h != 200 {
		t.Errorf("height: got %d, want 200", h)
	}
}

func TestReadDimensions_NonExistent(t *testing.T) {
	_, _, err := ReadDimensions("/nonexistent/image.png")
	if err == nil {
		t.Fatal("ReadDimensions should fail for non-existent file")
	}
	if !errors.Is(err, ErrImageLoad) {
		t.Errorf("error = %v, want ErrImageLoad", err)
	}
}

func TestReadDimensions_InvalidImage(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "invalid-image-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.WriteString("no header here")
	tmpFile.Close()
	defer os.Remove(tmpFile.Name())

	_, _, err = ReadDimensions(tmpFile.Name())
	if !errors.Is(err, ErrImageLoad) {
		t.Errorf("error = %v, want ErrImageLoad", err)
	}
}
