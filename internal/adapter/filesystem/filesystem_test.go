package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"algo-readme/internal/adapter/logging"
	"algo-readme/internal/domain/model"
)

func touch(t *testing.T, root string, parts ...string) {
	t.Helper()
	path := filepath.Join(append([]string{root}, parts...)...)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("class X {}"), 0o644))
}

func TestCollector_Collect(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "bronze", "implementation", "Prob2475.java")
	touch(t, root, "bronze", "implementation", "Prob1000.java")
	touch(t, root, "bronze", "implementation", "Helper.java")
	touch(t, root, "bronze", "implementation", "Prob12.java.bak")
	touch(t, root, "bronze", "math", "Prob1001.java")
	touch(t, root, "bronze", "README.md")
	touch(t, root, "gold", "dp", "Prob12865.java")
	touch(t, root, "gold", "dp", "ProbX.java")
	touch(t, root, "unknown", "dp", "Prob1.java")

	c := NewCollector(root, model.NewFilePattern(".java"), logging.New(nil))
	got, err := c.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, got.Counts[model.TierBronze])
	assert.Equal(t, 1, got.Counts[model.TierGold])
	assert.Zero(t, got.Counts[model.TierSilver])
	assert.Equal(t, 4, got.Counts.Total())

	assert.Len(t, got.Problems[model.TierBronze]["implementation"], 2)
	math := got.Problems[model.TierBronze]["math"]
	require.Len(t, math, 1)
	assert.Equal(t, model.ProblemFile{
		ID:       1001,
		Tier:     model.TierBronze,
		Category: "math",
		Path:     filepath.Join(root, "bronze", "math", "Prob1001.java"),
	}, math[0])
	assert.NotContains(t, got.Problems, model.Tier("unknown"))
}

func TestCollector_MissingRoot(t *testing.T) {
	c := NewCollector(filepath.Join(t.TempDir(), "nope"), model.NewFilePattern(".java"), logging.New(nil))
	got, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Zero(t, got.Counts.Total())
	assert.Empty(t, got.Problems)
}

func TestCollector_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewCollector(t.TempDir(), model.NewFilePattern(".java"), logging.New(nil))
	_, err := c.Collect(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFilePublisher_Publish(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docs", "README.md")
	p := NewFilePublisher(path, logging.New(nil))

	require.NoError(t, p.Publish(context.Background(), "first"))
	require.NoError(t, p.Publish(context.Background(), "second"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFilePublisher_CancelledLeavesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewFilePublisher(path, logging.New(nil)).Publish(ctx, "new")
	assert.ErrorIs(t, err, context.Canceled)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}
