package assets

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

var images = map[string]*ebiten.Image{}

// RegisterImage stores an image under key so later Image calls skip decoding.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	images[cleanAssetPath(key)] = img
}

// Image loads an image from the embedded assets or the filesystem and caches
// it by its assets-relative key. Respawned sprites share one texture.
func Image(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("empty image key")
	}
	clean := cleanAssetPath(key)
	if img, ok := images[clean]; ok {
		return img, nil
	}

	img, err := LoadImage(clean)
	if err != nil {
		img, err = loadImageFromFS(key)
		if err != nil {
			return nil, err
		}
	}
	images[clean] = img
	return img, nil
}

func loadImageFromFS(path string) (*ebiten.Image, error) {
	tried := []string{path, filepath.Join("assets", path)}
	for _, p := range tried {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		im, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("decode image %q: %w", p, err)
		}
		return ebiten.NewImageFromImage(im), nil
	}
	return nil, fmt.Errorf("failed to load image %s", path)
}
