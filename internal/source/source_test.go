package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScriptSourceDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.yaml", "a.yml", "notes.txt", "c.YAML"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("objects: []\n"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0755))

	src, err := NewScriptSource(dir)
	require.NoError(t, err)

	require.Equal(t, 3, src.Count())
	assert.Equal(t, filepath.Join(dir, "a.yml"), src.Path(0))
	assert.Equal(t, filepath.Join(dir, "b.yaml"), src.Path(1))
	assert.Equal(t, filepath.Join(dir, "c.YAML"), src.Path(2))

	script, err := src.Load(1)
	require.NoError(t, err)
	assert.Empty(t, script.Objects)
}

func TestNewScriptSourceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.txt")
	require.NoError(t, os.WriteFile(path, []byte("objects: []\n"), 0644))

	src, err := NewScriptSource(path)
	require.NoError(t, err)
	assert.Equal(t, 1, src.Count())
	assert.Equal(t, path, src.Path(0))
}

func TestNewScriptSourceEmptyDirectory(t *testing.T) {
	_, err := NewScriptSource(t.TempDir())
	assert.ErrorContains(t, err, "no scene scripts")

	_, err = NewScriptSource(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
