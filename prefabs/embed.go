package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// DefaultDir is where on-disk prefab overrides are looked up.
const DefaultDir = "prefabs"

var dir = DefaultDir

// SetDir changes the directory searched for on-disk overrides. An empty dir
// disables overrides and only embedded prefabs are used.
func SetDir(d string) {
	dir = d
}

// Dir returns the directory searched for on-disk overrides.
func Dir() string {
	return dir
}

// Load returns the named prefab, preferring the on-disk copy over the
// embedded one.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if p := diskPrefabPath(clean); p != "" {
		if data, err := os.ReadFile(p); err == nil {
			return data, nil
		}
	}
	return PrefabsFS.ReadFile(clean)
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) string {
	if dir == "" || clean == "" {
		return ""
	}
	return filepath.Join(dir, filepath.FromSlash(clean))
}
