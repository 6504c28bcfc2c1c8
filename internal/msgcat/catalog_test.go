package msgcat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmbeddedDefaults(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)

	assert.True(t, c.Has("entry.prompt_black"))
	assert.False(t, c.Has("entry.nope"))

	out, err := c.Render("entry.prompt_white", map[string]any{"Number": 3})
	require.NoError(t, err)
	assert.Equal(t, "\nMove 3\nWhite's move: ", out)

	out, err = c.Render("save.saved", map[string]any{"Path": "games/a.pgn"})
	require.NoError(t, err)
	assert.Equal(t, "✓ PGN file saved: games/a.pgn", out)
}

func TestRender_Errors(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)

	_, err = c.Render("does.not.exist", nil)
	assert.ErrorContains(t, err, "template not found")

	_, err = c.Render("save.saved", map[string]any{})
	assert.Error(t, err, "missing data keys must fail")
}

func TestNew_OverrideDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("save:\n  saved: \"saved to {{.Path}}\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	c, err := New(dir)
	require.NoError(t, err)

	out, err := c.Render("save.saved", map[string]any{"Path": "x.pgn"})
	require.NoError(t, err)
	assert.Equal(t, "saved to x.pgn", out)

	out, err = c.Render("edit.updated", nil)
	require.NoError(t, err)
	assert.Equal(t, "✓ Move updated", out)
}

func TestNew_DuplicateOverrideKey(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("edit:\n  updated: one\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yml"), []byte("edit:\n  updated: two\n"), 0o644))

	_, err := New(dir)
	assert.ErrorContains(t, err, "duplicate override key")
}

func TestNew_RejectsNonStringLeaves(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("edit:\n  updated: 3\n"), 0o644))

	_, err := New(dir)
	assert.ErrorContains(t, err, "unsupported value")
}

func TestNew_MissingOverrideDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorContains(t, err, "read template dir")
}

func TestKeysSorted(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)
	keys := c.Keys()
	require.NotEmpty(t, keys)
	assert.IsIncreasing(t, keys)
}
