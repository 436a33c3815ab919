package prefabs

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

//go:embed *.yaml
var PrefabsFS embed.FS

// Source resolves prefab and script files. A file present under Dir on disk
// wins over the embedded copy, which keeps hand edits hot-reloadable.
type Source struct {
	Dir string
}

// Embedded reads only the copies compiled into the binary.
var Embedded = Source{}

func NewSource(dir string) Source {
	return Source{Dir: dir}
}

func (s Source) Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if s.Dir != "" {
		if data, err := os.ReadFile(s.diskPath(clean)); err == nil {
			return data, nil
		}
	}
	return PrefabsFS.ReadFile(clean)
}

func (s Source) LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if s.Dir != "" {
		if data, err := os.ReadFile(s.diskPath(clean)); err == nil {
			return data, nil
		}
	}
	return ScriptsFS.ReadFile(clean)
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "prefabs/") {
		return strings.TrimPrefix(s, "prefabs/")
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}

	s := filepath.ToSlash(path)

	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}

	return fmt.Sprintf("scripts/%s", s)
}

func (s Source) diskPath(clean string) string {
	return filepath.Join(s.Dir, filepath.FromSlash(clean))
}
