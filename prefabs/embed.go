package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	EntitiesDir = "entities"
	TweensDir   = "tweens"
)

//go:embed entities/*.yaml tweens/*.yaml
var PrefabsFS embed.FS

// Load reads a prefab from the working tree first so edits show up without a
// rebuild, then falls back to the embedded copy.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	clean := cleanPrefabPath(name)
	info, err := os.Stat(diskPrefabPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// EntityPath and TweenPath map a bare prefab name to its file.
func EntityPath(name string) string { return specPath(EntitiesDir, name) }
func TweenPath(name string) string  { return specPath(TweensDir, name) }

func specPath(dir, name string) string {
	clean := cleanPrefabPath(name)
	if !strings.HasPrefix(clean, dir+"/") {
		clean = path.Join(dir, clean)
	}
	if !isSpecFile(clean) {
		clean += ".yaml"
	}
	return clean
}

// List returns the bare names of the specs in dir, embedded and on disk,
// sorted.
func List(dir string) []string {
	seen := make(map[string]struct{})
	add := func(name string) {
		if isSpecFile(name) {
			seen[strings.TrimSuffix(name, filepath.Ext(name))] = struct{}{}
		}
	}
	if entries, err := fs.ReadDir(PrefabsFS, dir); err == nil {
		for _, e := range entries {
			add(e.Name())
		}
	}
	if entries, err := os.ReadDir(diskPrefabPath(dir)); err == nil {
		for _, e := range entries {
			if !e.IsDir() {
				add(e.Name())
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PrefabName returns the prefabs-relative slash path of a file path, as
// accepted by Load.
func PrefabName(p string) string {
	s := filepath.ToSlash(p)
	if idx := strings.LastIndex(s, "prefabs/"); idx >= 0 {
		return s[idx+len("prefabs/"):]
	}
	return s
}

func cleanPrefabPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
