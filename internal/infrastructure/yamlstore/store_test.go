package yamlstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/bridgecfg/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadMissingFile(t *testing.T) {
	s := NewStore()
	_, err := s.Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte(paramsYAML), 0o600))

	s := NewStore()
	doc, err := s.Load(ctx, path)
	require.NoError(t, err)

	p := entity.Path{"fsw_bridge", "ros__parameters", "gains", "kp"}
	require.NoError(t, doc.Set(p, entity.NewScalarNode(entity.FloatScalar(0.75))))
	require.NoError(t, s.Save(ctx, doc, path))

	reloaded, err := s.Load(ctx, path)
	require.NoError(t, err)
	assert.True(t, doc.Root().Equal(reloaded.Root()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestStore_SaveNewFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "new.yaml")

	root := entity.NewMapping()
	root.Put("k", entity.NewScalarNode(entity.StringScalar("v")))

	s := NewStore()
	require.NoError(t, s.Save(ctx, entity.NewDocument(root), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "k: v\n", string(data))
}

func TestStore_SaveUnwritableDirectory(t *testing.T) {
	s := NewStore()
	err := s.Save(context.Background(), entity.NewDocument(nil), filepath.Join(t.TempDir(), "no", "such", "dir.yaml"))
	require.Error(t, err)
}
