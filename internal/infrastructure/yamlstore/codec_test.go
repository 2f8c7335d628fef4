package yamlstore

import (
	"testing"

	"github.com/bnema/bridgecfg/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const paramsYAML = `fsw_bridge:
  ros__parameters:
    rate: 10
    scale: 1.0
    enabled: true
    topic: /fsw/telemetry
    quoted: "42"
    nothing: null
    gains:
      kp: 0.5
      kd: 1e-3
    channels: [1, 2, 3]
`

func TestDecode_TypedScalars(t *testing.T) {
	doc, err := Decode([]byte(paramsYAML))
	require.NoError(t, err)
	require.True(t, doc.Loaded())

	get := func(keys ...string) entity.Scalar {
		t.Helper()
		n, err := doc.Get(append(entity.Path{"fsw_bridge", "ros__parameters"}, keys...))
		require.NoError(t, err)
		return n.Scalar()
	}

	assert.Equal(t, entity.IntScalar(10), get("rate"))
	assert.Equal(t, entity.FloatScalar(1), get("scale"))
	assert.Equal(t, entity.BoolScalar(true), get("enabled"))
	assert.Equal(t, entity.StringScalar("/fsw/telemetry"), get("topic"))
	assert.Equal(t, entity.StringScalar("42"), get("quoted"))
	assert.Equal(t, entity.NullScalar(), get("nothing"))
	assert.Equal(t, entity.FloatScalar(0.001), get("gains", "kd"))

	seq, err := doc.Get(entity.Path{"fsw_bridge", "ros__parameters", "channels"})
	require.NoError(t, err)
	require.True(t, seq.IsSequence())
	assert.Len(t, seq.Items(), 3)
}

func TestDecode_KeepsInsertionOrder(t *testing.T) {
	doc, err := Decode([]byte("zeta: 1\nalpha: 2\nmid: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, doc.Root().Keys())
}

func TestDecode_EmptyAndInvalid(t *testing.T) {
	doc, err := Decode(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.LeafCount())

	doc, err = Decode([]byte("# only a comment\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, doc.LeafCount())

	_, err = Decode([]byte("- a\n- b\n"))
	require.ErrorIs(t, err, ErrUnsupportedDocument)

	_, err = Decode([]byte("key: [unclosed\n"))
	require.Error(t, err)
}

func TestDecode_AnchorsAndMerge(t *testing.T) {
	src := `defaults: &defaults
  rate: 5
  mode: auto
node:
  <<: *defaults
  mode: manual
copy: *defaults
`
	doc, err := Decode([]byte(src))
	require.NoError(t, err)

	node, err := doc.Get(entity.Path{"node"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"rate", "mode"}, node.Keys())

	mode, err := doc.Get(entity.Path{"node", "mode"})
	require.NoError(t, err)
	assert.Equal(t, "manual", mode.Scalar().Str)

	rate, err := doc.Get(entity.Path{"copy", "rate"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), rate.Scalar().Int)
}

func TestEncode_RoundTrip(t *testing.T) {
	doc, err := Decode([]byte(paramsYAML))
	require.NoError(t, err)

	out, err := Encode(doc)
	require.NoError(t, err)

	again, err := Decode(out)
	require.NoError(t, err)
	assert.True(t, doc.Root().Equal(again.Root()), "round trip changed content:\n%s", out)
}

func TestEncode_BlockStyleAndQuoting(t *testing.T) {
	root := entity.NewMapping()
	inner := entity.NewMapping()
	inner.Put("as_string", entity.NewScalarNode(entity.StringScalar("42")))
	inner.Put("as_int", entity.NewScalarNode(entity.IntScalar(42)))
	inner.Put("whole_float", entity.NewScalarNode(entity.FloatScalar(3)))
	inner.Put("flag", entity.NewScalarNode(entity.StringScalar("true")))
	root.Put("node", inner)
	root.Put("list", entity.NewSequence(
		entity.NewScalarNode(entity.IntScalar(1)),
		entity.NewScalarNode(entity.IntScalar(2)),
	))

	out, err := Encode(entity.NewDocument(root))
	require.NoError(t, err)

	expected := `node:
  as_string: "42"
  as_int: 42
  whole_float: 3.0
  flag: "true"
list:
  - 1
  - 2
`
	assert.Equal(t, expected, string(out))
}

func TestEncode_KeepsBlockSequences(t *testing.T) {
	src := `node:
  ros__parameters:
    joints:
      - a
      - b
    limits: [1, 2]
`
	doc, err := Decode([]byte(src))
	require.NoError(t, err)

	out, err := Encode(doc)
	require.NoError(t, err)

	expected := `node:
  ros__parameters:
    joints:
      - a
      - b
    limits:
      - 1
      - 2
`
	assert.Equal(t, expected, string(out))
	assert.NotContains(t, string(out), "[")
}

func TestEncode_EditedValueKeepsPosition(t *testing.T) {
	doc, err := Decode([]byte("a: 1\nb: 2\nc: 3\n"))
	require.NoError(t, err)

	require.NoError(t, doc.Set(entity.Path{"b"}, entity.NewScalarNode(entity.Coerce("hello").Scalar())))

	out, err := Encode(doc)
	require.NoError(t, err)
	assert.Equal(t, "a: 1\nb: hello\nc: 3\n", string(out))
}
