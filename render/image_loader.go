package render

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// DecodeFunc decodes the image asset at path.
type DecodeFunc func(path string) (image.Image, error)

// DecodeSheets decodes every path before anything is registered, so a failed
// sheet leaves the registry untouched.
func DecodeSheets(decode DecodeFunc, paths ...string) (map[string]image.Image, error) {
	sheets := make(map[string]image.Image, len(paths))
	for _, p := range paths {
		if p == "" {
			return nil, fmt.Errorf("render: empty image path")
		}
		if _, ok := sheets[p]; ok {
			continue
		}
		img, err := decode(p)
		if err != nil {
			return nil, fmt.Errorf("render: load image %s: %w", p, err)
		}
		sheets[p] = img
	}
	return sheets, nil
}

// RegisterSheets uploads decoded sheets and registers them by path, replacing
// any previous image under the same key.
func RegisterSheets(sheets map[string]image.Image) {
	for p, img := range sheets {
		RegisterImage(p, ebiten.NewImageFromImage(img))
	}
}
