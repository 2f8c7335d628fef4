package usecase_test

import (
	"context"
	"errors"
	"testing"

	portmocks "github.com/bnema/bridgecfg/internal/application/port/mocks"
	"github.com/bnema/bridgecfg/internal/application/usecase"
	"github.com/bnema/bridgecfg/internal/domain/entity"
	repomocks "github.com/bnema/bridgecfg/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestParameterName(t *testing.T) {
	name, err := usecase.ParameterName(entity.Path{"fsw_bridge", "ros__parameters", "gains", "kp"}, "")
	require.NoError(t, err)
	assert.Equal(t, "gains.kp", name)

	name, err = usecase.ParameterName(entity.Path{"n", "params", "rate"}, "params")
	require.NoError(t, err)
	assert.Equal(t, "rate", name)

	for _, p := range []entity.Path{
		{},
		{"fsw_bridge"},
		{"fsw_bridge", "ros__parameters"},
		{"fsw_bridge", "other", "rate"},
	} {
		_, err := usecase.ParameterName(p, "")
		require.ErrorIs(t, err, usecase.ErrMalformedParameterPath, "path %q", p.String())
	}
}

func TestEditValueUseCase_LocalEditStoresCoercedType(t *testing.T) {
	ctx := testContext()
	doc := paramsDocument()
	uc := usecase.NewEditValueUseCase(nil, "")

	path := entity.Path{"fsw_bridge", "ros__parameters", "mode"}
	out, err := uc.Execute(ctx, usecase.EditValueInput{Document: doc, Path: path, Raw: "42"})
	require.NoError(t, err)
	assert.False(t, out.Pushed)
	assert.Equal(t, entity.ParameterInteger, out.Value.Kind)

	n, err := doc.Get(path)
	require.NoError(t, err)
	assert.Equal(t, entity.IntScalar(42), n.Scalar())
}

func TestEditValueUseCase_RejectsNonScalars(t *testing.T) {
	ctx := testContext()
	doc := paramsDocument()
	uc := usecase.NewEditValueUseCase(nil, "")

	_, err := uc.Execute(ctx, usecase.EditValueInput{
		Document: doc,
		Path:     entity.Path{"fsw_bridge", "ros__parameters", "gains"},
		Raw:      "1",
	})
	require.ErrorIs(t, err, usecase.ErrNotEditable)

	_, err = uc.Execute(ctx, usecase.EditValueInput{
		Document: doc,
		Path:     entity.Path{"fsw_bridge", "ros__parameters", "channels"},
		Raw:      "1",
	})
	require.ErrorIs(t, err, usecase.ErrNotEditable)

	_, err = uc.Execute(ctx, usecase.EditValueInput{
		Document: doc,
		Path:     entity.Path{"fsw_bridge", "missing"},
		Raw:      "1",
	})
	require.ErrorIs(t, err, entity.ErrPathNotFound)
}

func TestEditValueUseCase_LivePush(t *testing.T) {
	ctx := testContext()
	doc := paramsDocument()

	client := portmocks.NewMockParameterClient(t)
	journal := repomocks.NewMockPushJournalRepository(t)

	want := entity.Parameter{Name: "gains.kp", Value: entity.ParameterValue{Kind: entity.ParameterDouble, Double: 2.5}}
	client.EXPECT().SetParameter(mock.Anything, want).
		Return(entity.ParameterResult{Name: "gains.kp", Successful: true}, nil).Once()
	journal.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.PushRecord")).
		Run(func(_ context.Context, r *entity.PushRecord) {
			assert.Equal(t, entity.PushModeSingle, r.Mode)
			assert.Equal(t, "fsw_bridge", r.Node)
			assert.Equal(t, "gains.kp", r.Parameter)
			assert.Equal(t, "2.5", r.Value)
			assert.Equal(t, "params.yaml", r.File)
			assert.True(t, r.Successful)
		}).
		Return(nil).Once()

	uc := usecase.NewEditValueUseCase(journal, "")
	out, err := uc.Execute(ctx, usecase.EditValueInput{
		Document: doc,
		Path:     entity.Path{"fsw_bridge", "ros__parameters", "gains", "kp"},
		Raw:      "2.5",
		LivePush: true,
		Client:   client,
		Plugin:   *testPluginInfo(),
		File:     "params.yaml",
	})
	require.NoError(t, err)
	assert.True(t, out.Pushed)
	require.NotNil(t, out.Result)
	assert.True(t, out.Result.Successful)
}

func TestEditValueUseCase_MalformedPathKeepsEdit(t *testing.T) {
	ctx := testContext()

	root := entity.NewMapping()
	root.Put("rate", entity.NewScalarNode(entity.IntScalar(1)))
	doc := entity.NewDocument(root)

	client := portmocks.NewMockParameterClient(t)
	uc := usecase.NewEditValueUseCase(nil, "")

	out, err := uc.Execute(ctx, usecase.EditValueInput{
		Document: doc,
		Path:     entity.Path{"rate"},
		Raw:      "5",
		LivePush: true,
		Client:   client,
	})
	require.ErrorIs(t, err, usecase.ErrMalformedParameterPath)
	assert.False(t, out.Pushed)

	n, err := doc.Get(entity.Path{"rate"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), n.Scalar().Int)
}

func TestEditValueUseCase_RejectedPush(t *testing.T) {
	ctx := testContext()
	doc := paramsDocument()

	client := portmocks.NewMockParameterClient(t)
	journal := repomocks.NewMockPushJournalRepository(t)

	client.EXPECT().SetParameter(mock.Anything, mock.Anything).
		Return(entity.ParameterResult{Successful: false, Reason: "parameter is read-only"}, nil).Once()
	client.EXPECT().Node().Return("fsw_bridge")
	journal.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	uc := usecase.NewEditValueUseCase(journal, "")
	out, err := uc.Execute(ctx, usecase.EditValueInput{
		Document: doc,
		Path:     entity.Path{"fsw_bridge", "ros__parameters", "rate"},
		Raw:      "20",
		LivePush: true,
		Client:   client,
	})
	require.ErrorIs(t, err, usecase.ErrParameterRejected)
	assert.Contains(t, err.Error(), "read-only")
	require.NotNil(t, out.Result)
	assert.Equal(t, "rate", out.Result.Name)

	n, _ := doc.Get(entity.Path{"fsw_bridge", "ros__parameters", "rate"})
	assert.Equal(t, int64(20), n.Scalar().Int)
}

func TestEditValueUseCase_TransportError(t *testing.T) {
	ctx := testContext()
	client := portmocks.NewMockParameterClient(t)
	client.EXPECT().SetParameter(mock.Anything, mock.Anything).
		Return(entity.ParameterResult{}, context.DeadlineExceeded).Once()

	uc := usecase.NewEditValueUseCase(nil, "")
	out, err := uc.Execute(ctx, usecase.EditValueInput{
		Document: paramsDocument(),
		Path:     entity.Path{"fsw_bridge", "ros__parameters", "rate"},
		Raw:      "3",
		LivePush: true,
		Client:   client,
	})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, out.Pushed)
}

func TestEditValueUseCase_NotConnected(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewEditValueUseCase(nil, "")

	_, err := uc.Execute(ctx, usecase.EditValueInput{
		Document: paramsDocument(),
		Path:     entity.Path{"fsw_bridge", "ros__parameters", "rate"},
		Raw:      "3",
		LivePush: true,
	})
	require.ErrorIs(t, err, usecase.ErrNotConnected)
}
