package imaging

import (
	"image"
	"image/color"
	"testing"
)

// createInMemoryImage creates an in-memory solid-color test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestCropTile(t *testing.T) {
	img := createPatternImage(100, 100)

	tile, err := CropTile(img, image.Rect(0, 0, 50, 50))
	if err != nil {
		t.Fatalf("CropTile failed: %v", err)
	}

	bounds := tile.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 50 {
		t.Errorf("dimensions: got %dx%d, want 50x50", bounds.Dx(), bounds.Dy())
	}

	// Top-left quadrant of the pattern is red.
	r, g, b, _ := tile.At(bounds.Min.X+25, bounds.Min.Y+25).RGBA()
	if uint8(r>>8) != 255 || uint8(g>>8) != 0 || uint8(b>>8) != 0 {
		t.Errorf("tile color: got (%d,%d,%d), want (255,0,0)", uint8(r>>8), uint8(g>>8), uint8(b>>8))
	}
}

func TestCropTile_InteriorRegion(t *testing.T) {
	img := createPatternImage(100, 100)

	// Straddles the quadrant boundary: bottom-right corner pixel is white.
	tile, err := CropTile(img, image.Rect(25, 25, 75, 75))
	if err != nil {
		t.Fatalf("CropTile failed: %v", err)
	}

	bounds := tile.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 50 {
		t.Fatalf("dimensions: got %dx%d, want 50x50", bounds.Dx(), bounds.Dy())
	}

	r, g, b, _ := tile.At(bounds.Max.X-1, bounds.Max.Y-1).RGBA()
	if uint8(r>>8) != 255 || uint8(g>>8) != 255 || uint8(b>>8) != 255 {
		t.Errorf("corner color: got (%d,%d,%d), want (255,255,255)", uint8(r>>8), uint8(g>>8), uint8(b>>8))
	}
}

func TestCropTile_FullImage(t *testing.T) {
	img := createInMemoryImage(100, 80, color.RGBA{255, 0, 0, 255})

	tile, err := CropTile(img, image.Rect(0, 0, 100, 80))
	if err != nil {
		t.Fatalf("CropTile full image failed: %v", err)
	}

	bounds := tile.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 80 {
		t.Errorf("dimensions: got %dx%d, want 100x80", bounds.Dx(), bounds.Dy())
	}
}

func TestCropTile_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		rect image.Rectangle
	}{
		{"negative origin", image.Rect(-1, 0, 50, 50)},
		{"right edge past bounds", image.Rect(0, 0, 101, 50)},
		{"bottom edge past bounds", image.Rect(0, 0, 50, 101)},
		{"entirely outside", image.Rect(200, 200, 300, 300)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CropTile(img, tt.rect); err == nil {
				t.Error("CropTile should fail for out-of-bounds region")
			}
		})
	}
}

func TestCropTile_EmptyRegion(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	if _, err := CropTile(img, image.Rect(50, 50, 50, 50)); err == nil {
		t.Error("CropTile should fail for an empty region")
	}
}
