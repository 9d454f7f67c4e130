package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.png
var assetsFS embed.FS

// ResourceEnv overrides the default resource directory.
const ResourceEnv = "RUNNER_RESOURCES"

// DefaultResourceDir returns the resource directory named by ResourceEnv, or
// ./resources when unset.
func DefaultResourceDir() string {
	if d := os.Getenv(ResourceEnv); d != "" {
		return d
	}
	return "resources"
}

var resourceDir string

// SetResourceDir sets the directory checked before the embedded assets.
func SetResourceDir(dir string) {
	resourceDir = dir
}

// ResourceDir returns the directory checked before the embedded assets.
func ResourceDir() string {
	return resourceDir
}

// LoadFile loads an asset by assets-relative path, preferring the resource
// directory over the embedded copy.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if clean == "" {
		return nil, fmt.Errorf("assets: empty path")
	}
	if resourceDir != "" {
		if b, err := os.ReadFile(filepath.Join(resourceDir, filepath.FromSlash(clean))); err == nil {
			return b, nil
		}
	}
	b, err := assetsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	return b, nil
}

// DecodeImage loads and decodes an image asset.
func DecodeImage(path string) (image.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) {
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s = strings.TrimPrefix(s, "/")
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
