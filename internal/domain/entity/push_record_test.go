package entity_test

import (
	"testing"
	"time"

	"github.com/bnema/bridgecfg/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushRecord_Validate(t *testing.T) {
	now := time.Now()
	valid := func() *entity.PushRecord {
		return &entity.PushRecord{
			Mode:      entity.PushModeSingle,
			Node:      "bridge_node",
			Parameter: "rate",
			PushedAt:  now,
		}
	}

	require.NoError(t, valid().Validate())

	var nilRecord *entity.PushRecord
	require.ErrorIs(t, nilRecord.Validate(), entity.ErrInvalidPushRecord)

	r := valid()
	r.Parameter = ""
	require.ErrorIs(t, r.Validate(), entity.ErrInvalidPushRecord)

	r = valid()
	r.Node = ""
	require.ErrorIs(t, r.Validate(), entity.ErrInvalidPushRecord)

	r = valid()
	r.Mode = "partial"
	require.ErrorIs(t, r.Validate(), entity.ErrInvalidPushRecord)

	r = valid()
	r.PushedAt = time.Time{}
	require.ErrorIs(t, r.Validate(), entity.ErrInvalidPushRecord)
}

func TestNewPushRecord(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))
	info := entity.PluginInfo{PluginName: "pkg.Plugin", NodeName: "bridge_node"}
	p := entity.Parameter{Name: "gains.kp", Value: entity.Coerce("0.5")}
	res := entity.ParameterResult{Name: "gains.kp", Successful: false, Reason: "read-only"}

	r := entity.NewPushRecord(entity.PushModeBulk, info, "params.yaml", p, res, at)

	assert.Equal(t, entity.PushModeBulk, r.Mode)
	assert.Equal(t, "pkg.Plugin", r.Plugin)
	assert.Equal(t, "bridge_node", r.Node)
	assert.Equal(t, "params.yaml", r.File)
	assert.Equal(t, "gains.kp", r.Parameter)
	assert.Equal(t, entity.ParameterDouble, r.Kind)
	assert.Equal(t, "0.5", r.Value)
	assert.False(t, r.Successful)
	assert.Equal(t, "read-only", r.Reason)
	assert.Equal(t, time.UTC, r.PushedAt.Location())
	assert.True(t, r.PushedAt.Equal(at))
	require.NoError(t, r.Validate())
}
