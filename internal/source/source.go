package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ivlev/scenegen/internal/director"
)

// Source enumerates scene scripts.
type Source interface {
	Count() int
	Path(index int) string
	Load(index int) (*director.Script, error)
}

// ScriptSource is a single script file or every script in a directory.
type ScriptSource struct {
	paths []string
}

// IsScript reports whether name has a YAML extension.
func IsScript(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

// NewScriptSource lists path itself, or the scripts directly inside it
// sorted by name when path is a directory.
func NewScriptSource(path string) (*ScriptSource, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !fi.IsDir() {
		return &ScriptSource{paths: []string{path}}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, entry := range entries {
		if !entry.IsDir() && IsScript(entry.Name()) {
			paths = append(paths, filepath.Join(path, entry.Name()))
		}
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, fmt.Errorf("no scene scripts in %s", path)
	}
	return &ScriptSource{paths: paths}, nil
}

func (s *ScriptSource) Count() int {
	return len(s.paths)
}

func (s *ScriptSource) Path(index int) string {
	return s.paths[index]
}

func (s *ScriptSource) Load(index int) (*director.Script, error) {
	return director.LoadScript(s.paths[index])
}
