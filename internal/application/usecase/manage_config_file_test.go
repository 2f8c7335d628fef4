package usecase_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	portmocks "github.com/bnema/bridgecfg/internal/application/port/mocks"
	"github.com/bnema/bridgecfg/internal/application/usecase"
	"github.com/bnema/bridgecfg/internal/domain/entity"
	"github.com/bnema/bridgecfg/internal/infrastructure/yamlstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func paramsDocument() *entity.Document {
	gains := entity.NewMapping()
	gains.Put("kp", entity.NewScalarNode(entity.FloatScalar(1.5)))

	params := entity.NewMapping()
	params.Put("rate", entity.NewScalarNode(entity.IntScalar(10)))
	params.Put("gains", gains)
	params.Put("mode", entity.NewScalarNode(entity.StringScalar("auto")))
	params.Put("channels", entity.NewSequence(entity.NewScalarNode(entity.IntScalar(1))))

	node := entity.NewMapping()
	node.Put("ros__parameters", params)

	root := entity.NewMapping()
	root.Put("fsw_bridge", node)
	return entity.NewDocument(root)
}

var testFiles = []entity.ConfigFile{
	{Name: "params.yaml", Path: "/cfg/params.yaml"},
	{Name: "limits.yaml", Path: "/cfg/limits.yaml"},
}

func TestManageConfigFileUseCase_Select(t *testing.T) {
	ctx := testContext()
	store := portmocks.NewMockDocumentStore(t)

	doc := paramsDocument()
	store.EXPECT().Load(mock.Anything, "/cfg/limits.yaml").Return(doc, nil).Once()

	uc := usecase.NewManageConfigFileUseCase(store)
	uc.SetFiles(testFiles)

	got, err := uc.Select(ctx, "limits.yaml")
	require.NoError(t, err)
	assert.Same(t, doc, got)
	assert.Same(t, doc, uc.Document())

	current, ok := uc.Current()
	require.True(t, ok)
	assert.Equal(t, "/cfg/limits.yaml", current.Path)
	assert.False(t, uc.Dirty())
}

func TestManageConfigFileUseCase_Select_Unknown(t *testing.T) {
	ctx := testContext()
	store := portmocks.NewMockDocumentStore(t)

	uc := usecase.NewManageConfigFileUseCase(store)
	uc.SetFiles(testFiles)

	doc, err := uc.Select(ctx, "other.yaml")
	require.ErrorIs(t, err, usecase.ErrUnknownConfigFile)
	assert.NotNil(t, doc)
	_, ok := uc.Current()
	assert.False(t, ok)
}

func TestManageConfigFileUseCase_LoadFailureKeepsEmptyDocument(t *testing.T) {
	ctx := testContext()
	store := portmocks.NewMockDocumentStore(t)

	store.EXPECT().Load(mock.Anything, "/cfg/params.yaml").
		Return(nil, fmt.Errorf("open: %w", entity.ErrNotFound)).Once()

	uc := usecase.NewManageConfigFileUseCase(store)
	uc.SetFiles(testFiles)

	doc, err := uc.Select(ctx, "params.yaml")
	require.ErrorIs(t, err, entity.ErrNotFound)
	require.NotNil(t, doc)
	assert.False(t, doc.Loaded())
	assert.Equal(t, 0, doc.LeafCount())

	// The failed file stays selected so reload can retry it.
	current, ok := uc.Current()
	require.True(t, ok)
	assert.Equal(t, "params.yaml", current.Name)
}

func TestManageConfigFileUseCase_Reload(t *testing.T) {
	ctx := testContext()
	store := portmocks.NewMockDocumentStore(t)

	first := paramsDocument()
	second := paramsDocument()
	store.EXPECT().Load(mock.Anything, "/cfg/params.yaml").Return(first, nil).Once()
	store.EXPECT().Load(mock.Anything, "/cfg/params.yaml").Return(second, nil).Once()

	uc := usecase.NewManageConfigFileUseCase(store)

	_, err := uc.Reload(ctx)
	require.ErrorIs(t, err, usecase.ErrNoFileSelected)

	_, err = uc.Open(ctx, "/cfg/params.yaml")
	require.NoError(t, err)
	uc.MarkDirty()
	assert.True(t, uc.Dirty())

	got, err := uc.Reload(ctx)
	require.NoError(t, err)
	assert.Same(t, second, got)
	assert.False(t, uc.Dirty())
}

func TestManageConfigFileUseCase_Save(t *testing.T) {
	ctx := testContext()
	store := portmocks.NewMockDocumentStore(t)

	doc := paramsDocument()
	store.EXPECT().Load(mock.Anything, "/cfg/params.yaml").Return(doc, nil).Once()
	store.EXPECT().Save(mock.Anything, doc, "/cfg/params.yaml").Return(errors.New("read-only file system")).Once()
	store.EXPECT().Save(mock.Anything, doc, "/cfg/params.yaml").Return(nil).Once()

	uc := usecase.NewManageConfigFileUseCase(store)
	require.ErrorIs(t, uc.Save(ctx), usecase.ErrNoFileSelected)

	_, err := uc.Open(ctx, "/cfg/params.yaml")
	require.NoError(t, err)
	uc.MarkDirty()

	err = uc.Save(ctx)
	require.Error(t, err)
	assert.True(t, uc.Dirty(), "failed save keeps unsaved edits flagged")

	require.NoError(t, uc.Save(ctx))
	assert.False(t, uc.Dirty())
}

func TestManageConfigFileUseCase_SaveRefusesFailedLoad(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()

	t.Run("malformed file is left alone", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		const content = "bad: [unclosed\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		uc := usecase.NewManageConfigFileUseCase(yamlstore.NewStore())
		_, err := uc.Open(ctx, path)
		require.Error(t, err)

		uc.MarkDirty()
		require.ErrorIs(t, uc.Save(ctx), usecase.ErrNotLoaded)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, content, string(data))
	})

	t.Run("missing file is not created", func(t *testing.T) {
		path := filepath.Join(dir, "absent.yaml")

		uc := usecase.NewManageConfigFileUseCase(yamlstore.NewStore())
		_, err := uc.Open(ctx, path)
		require.ErrorIs(t, err, entity.ErrNotFound)

		require.ErrorIs(t, uc.Save(ctx), usecase.ErrNotLoaded)
		assert.NoFileExists(t, path)
	})
}
