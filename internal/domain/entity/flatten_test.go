package entity_test

import (
	"testing"

	"github.com/bnema/bridgecfg/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	doc := testDocument()

	flat := entity.Flatten(doc.Root(), "")
	require.Len(t, flat, doc.LeafCount())

	assert.Equal(t, int64(10), flat["bridge_node.ros__parameters.rate"].Scalar().Int)
	assert.Equal(t, 1.5, flat["bridge_node.ros__parameters.gains.kp"].Scalar().Float)
	assert.Equal(t, 0.25, flat["bridge_node.ros__parameters.gains.kd"].Scalar().Float)
	assert.True(t, flat["bridge_node.ros__parameters.enabled"].Scalar().Bool)
	assert.Equal(t, "/fsw/telemetry", flat["bridge_node.ros__parameters.topic"].Scalar().Str)
	assert.True(t, flat["limits"].IsSequence())
}

func TestFlatten_Prefix(t *testing.T) {
	doc := testDocument()
	params, err := doc.Get(entity.Path{"bridge_node", "ros__parameters"})
	require.NoError(t, err)

	flat := entity.Flatten(params, "")
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"rate", "gains.kp", "gains.kd", "enabled", "topic"}, keys)

	prefixed := entity.Flatten(params, "p")
	assert.Contains(t, prefixed, "p.gains.kp")
	assert.Len(t, prefixed, len(flat))
}

func TestFlatten_EdgeCases(t *testing.T) {
	assert.Empty(t, entity.Flatten(nil, ""))
	assert.Empty(t, entity.Flatten(entity.NewMapping(), "x"))

	leaf := entity.NewScalarNode(entity.IntScalar(3))
	assert.Empty(t, entity.Flatten(leaf, ""))
	assert.Equal(t, map[string]*entity.Node{"x": leaf}, entity.Flatten(leaf, "x"))

	// Empty nested mappings contribute no leaves.
	root := entity.NewMapping()
	root.Put("empty", entity.NewMapping())
	root.Put("a", leaf)
	assert.Equal(t, map[string]*entity.Node{"a": leaf}, entity.Flatten(root, ""))
}
