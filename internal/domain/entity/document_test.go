package entity_test

import (
	"testing"

	"github.com/bnema/bridgecfg/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDocument builds:
//
//	bridge_node:
//	  ros__parameters:
//	    rate: 10
//	    gains:
//	      kp: 1.5
//	      kd: 0.25
//	    enabled: true
//	    topic: /fsw/telemetry
//	limits: [1, 2]
func testDocument() *entity.Document {
	gains := entity.NewMapping()
	gains.Put("kp", entity.NewScalarNode(entity.FloatScalar(1.5)))
	gains.Put("kd", entity.NewScalarNode(entity.FloatScalar(0.25)))

	params := entity.NewMapping()
	params.Put("rate", entity.NewScalarNode(entity.IntScalar(10)))
	params.Put("gains", gains)
	params.Put("enabled", entity.NewScalarNode(entity.BoolScalar(true)))
	params.Put("topic", entity.NewScalarNode(entity.StringScalar("/fsw/telemetry")))

	node := entity.NewMapping()
	node.Put("ros__parameters", params)

	root := entity.NewMapping()
	root.Put("bridge_node", node)
	root.Put("limits", entity.NewSequence(
		entity.NewScalarNode(entity.IntScalar(1)),
		entity.NewScalarNode(entity.IntScalar(2)),
	))
	return entity.NewDocument(root)
}

func TestDocument_Get(t *testing.T) {
	doc := testDocument()

	n, err := doc.Get(entity.Path{"bridge_node", "ros__parameters", "gains", "kp"})
	require.NoError(t, err)
	assert.Equal(t, entity.FloatScalar(1.5), n.Scalar())

	root, err := doc.Get(entity.Path{})
	require.NoError(t, err)
	assert.Same(t, doc.Root(), root)

	_, err = doc.Get(entity.Path{"bridge_node", "missing"})
	require.ErrorIs(t, err, entity.ErrPathNotFound)

	_, err = doc.Get(entity.Path{"bridge_node", "ros__parameters", "rate", "deeper"})
	require.ErrorIs(t, err, entity.ErrNotAMapping)
}

func TestDocument_SetGetSymmetry(t *testing.T) {
	doc := testDocument()

	paths := []entity.Path{
		{"bridge_node", "ros__parameters", "rate"},
		{"bridge_node", "ros__parameters", "gains", "kd"},
		{"bridge_node", "ros__parameters", "topic"},
		{"limits"},
	}
	values := []entity.Scalar{
		entity.IntScalar(42),
		entity.FloatScalar(3.14),
		entity.StringScalar("hello"),
		entity.BoolScalar(false),
	}

	for i, p := range paths {
		v := entity.NewScalarNode(values[i])
		require.NoError(t, doc.Set(p, v))

		got, err := doc.Get(p)
		require.NoError(t, err)
		assert.Equal(t, values[i], got.Scalar(), "path %s", p)
	}
}

func TestDocument_SetKeepsKeyOrder(t *testing.T) {
	doc := testDocument()
	params := entity.Path{"bridge_node", "ros__parameters"}

	require.NoError(t, doc.Set(params.Append("gains"), entity.NewScalarNode(entity.IntScalar(0))))

	n, err := doc.Get(params)
	require.NoError(t, err)
	assert.Equal(t, []string{"rate", "gains", "enabled", "topic"}, n.Keys())

	require.NoError(t, doc.Set(params.Append("added"), entity.NewScalarNode(entity.IntScalar(1))))
	assert.Equal(t, []string{"rate", "gains", "enabled", "topic", "added"}, n.Keys())
}

func TestDocument_SetArbitraryDepth(t *testing.T) {
	root := entity.NewMapping()
	cur := root
	path := entity.Path{}
	for i := 0; i < 12; i++ {
		key := string(rune('a' + i))
		next := entity.NewMapping()
		cur.Put(key, next)
		cur = next
		path = path.Append(key)
	}
	cur.Put("leaf", entity.NewScalarNode(entity.IntScalar(1)))
	doc := entity.NewDocument(root)

	leaf := path.Append("leaf")
	require.Len(t, leaf, 13)
	require.NoError(t, doc.Set(leaf, entity.NewScalarNode(entity.IntScalar(99))))

	got, err := doc.Get(leaf)
	require.NoError(t, err)
	assert.Equal(t, int64(99), got.Scalar().Int)
}

func TestDocument_SetErrors(t *testing.T) {
	doc := testDocument()

	require.ErrorIs(t, doc.Set(entity.Path{}, entity.NewScalarNode(entity.IntScalar(1))), entity.ErrEmptyPath)

	// Intermediate containers are never created.
	err := doc.Set(entity.Path{"nope", "deeper", "leaf"}, entity.NewScalarNode(entity.IntScalar(1)))
	require.ErrorIs(t, err, entity.ErrPathNotFound)

	err = doc.Set(entity.Path{"bridge_node", "ros__parameters", "rate", "x"}, entity.NewScalarNode(entity.IntScalar(1)))
	require.ErrorIs(t, err, entity.ErrNotAMapping)
}

func TestDocument_LeafCountAndClone(t *testing.T) {
	doc := testDocument()
	assert.Equal(t, 6, doc.LeafCount())

	clone := doc.Clone()
	assert.True(t, clone.Root().Equal(doc.Root()))

	require.NoError(t, clone.Set(entity.Path{"limits"}, entity.NewScalarNode(entity.NullScalar())))
	assert.False(t, clone.Root().Equal(doc.Root()))
}

func TestEmptyDocument(t *testing.T) {
	doc := entity.EmptyDocument()
	assert.False(t, doc.Loaded())
	assert.Equal(t, 0, doc.LeafCount())
	assert.True(t, entity.NewDocument(nil).Loaded())
}

func TestScalar_String(t *testing.T) {
	tests := []struct {
		name     string
		scalar   entity.Scalar
		expected string
	}{
		{"int", entity.IntScalar(-7), "-7"},
		{"float keeps decimal point", entity.FloatScalar(1), "1.0"},
		{"float", entity.FloatScalar(0.25), "0.25"},
		{"float exponent", entity.FloatScalar(1e21), "1e+21"},
		{"bool", entity.BoolScalar(true), "true"},
		{"string", entity.StringScalar("abc"), "abc"},
		{"null", entity.NullScalar(), "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.scalar.String())
		})
	}
}

func TestNode_SequenceString(t *testing.T) {
	doc := testDocument()
	n, err := doc.Get(entity.Path{"limits"})
	require.NoError(t, err)
	assert.True(t, n.IsSequence())
	assert.Equal(t, "[1, 2]", n.String())
}

func TestPath(t *testing.T) {
	p := entity.ParsePath("a.b.c")
	assert.Equal(t, entity.Path{"a", "b", "c"}, p)
	assert.Equal(t, "a.b.c", p.String())
	assert.Equal(t, "c", p.Last())
	assert.Equal(t, entity.Path{"a", "b"}, p.Parent())
	assert.Empty(t, entity.ParsePath(""))
	assert.Equal(t, "", entity.Path{}.Last())

	appended := p.Append("d")
	assert.Equal(t, entity.Path{"a", "b", "c"}, p)
	assert.Equal(t, entity.Path{"a", "b", "c", "d"}, appended)
}
