package scene

import (
	"fmt"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// maxTextureSize caps the longest side uploaded to the GPU.
const maxTextureSize = 2048

// loadTexture decodes an image file and uploads it. Oversized images are scaled down,
// keeping their aspect ratio.
func loadTexture(path string) (rl.Texture2D, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return rl.Texture2D{}, fmt.Errorf("texture %s: %w", path, err)
	}
	b := img.Bounds()
	if w, h := fitWithin(b.Dx(), b.Dy(), maxTextureSize); w != b.Dx() || h != b.Dy() {
		img = transform.Resize(img, w, h, transform.Linear)
	}
	rimg := rl.NewImageFromImage(img)
	defer rl.UnloadImage(rimg)
	tex := rl.LoadTextureFromImage(rimg)
	if !rl.IsTextureValid(tex) {
		return rl.Texture2D{}, fmt.Errorf("texture %s: upload failed", path)
	}
	return tex, nil
}

// fitWithin scales w x h down so neither side exceeds limit.
func fitWithin(w, h, limit int) (int, int) {
	if w <= limit && h <= limit {
		return w, h
	}
	if w >= h {
		return limit, max(1, h*limit/w)
	}
	return max(1, w*limit/h), limit
}
