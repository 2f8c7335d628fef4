package tree_test

import (
	"testing"

	"github.com/bnema/bridgecfg/internal/domain/entity"
	"github.com/bnema/bridgecfg/internal/domain/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *entity.Document {
	gains := entity.NewMapping()
	gains.Put("kp", entity.NewScalarNode(entity.FloatScalar(1.5)))
	gains.Put("kd", entity.NewScalarNode(entity.FloatScalar(0.25)))

	params := entity.NewMapping()
	params.Put("rate", entity.NewScalarNode(entity.IntScalar(10)))
	params.Put("gains", gains)
	params.Put("enabled", entity.NewScalarNode(entity.BoolScalar(true)))

	node := entity.NewMapping()
	node.Put("ros__parameters", params)

	root := entity.NewMapping()
	root.Put("zeta_node", node)
	root.Put("alpha", entity.NewScalarNode(entity.StringScalar("first")))
	root.Put("list", entity.NewSequence(entity.NewScalarNode(entity.IntScalar(1))))
	return entity.NewDocument(root)
}

func keys(nodes []*tree.DisplayNode) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Key
	}
	return out
}

func TestBuild_SortsChildren(t *testing.T) {
	root := tree.Build(sampleDocument())

	assert.True(t, root.IsRoot())
	assert.Equal(t, "", root.Key)
	assert.Equal(t, []string{"alpha", "list", "zeta_node"}, keys(root.Children))

	params := tree.Find(root, entity.Path{"zeta_node", "ros__parameters"})
	require.NotNil(t, params)
	assert.Equal(t, []string{"enabled", "gains", "rate"}, keys(params.Children))
	assert.False(t, params.Leaf)
}

func TestBuild_LeafValues(t *testing.T) {
	root := tree.Build(sampleDocument())

	rate := tree.Find(root, entity.Path{"zeta_node", "ros__parameters", "rate"})
	require.NotNil(t, rate)
	assert.True(t, rate.Leaf)
	assert.Equal(t, "10", rate.Value)
	assert.Equal(t, entity.ScalarInt, rate.Scalar)
	assert.Equal(t, 2, rate.Depth)

	list := tree.Find(root, entity.Path{"list"})
	require.NotNil(t, list)
	assert.True(t, list.Leaf)
	assert.Equal(t, entity.KindSequence, list.Kind)
	assert.Equal(t, "[1]", list.Value)
}

func TestBuild_PathReconstruction(t *testing.T) {
	doc := sampleDocument()
	root := tree.Build(doc)

	leaves := tree.Leaves(root)
	require.Len(t, leaves, doc.LeafCount())

	for _, leaf := range leaves {
		n, err := doc.Get(tree.PathOf(leaf))
		require.NoError(t, err, "leaf %s", leaf.Key)
		assert.Equal(t, leaf.Value, n.String())
	}

	assert.Empty(t, tree.PathOf(root))
}

func TestBuild_FlattenAgreement(t *testing.T) {
	doc := sampleDocument()
	flat := entity.Flatten(doc.Root(), "")

	for _, leaf := range tree.Leaves(tree.Build(doc)) {
		n, ok := flat[tree.PathOf(leaf).String()]
		require.True(t, ok)
		assert.Equal(t, leaf.Value, n.String())
	}
}

func TestBuild_EmptyAndNil(t *testing.T) {
	assert.Empty(t, tree.Build(nil).Children)
	assert.Empty(t, tree.Build(entity.EmptyDocument()).Children)
	assert.Empty(t, tree.Visible(tree.Build(entity.EmptyDocument())))
}

func TestVisible(t *testing.T) {
	root := tree.Build(sampleDocument())

	// Top-level branches start expanded, deeper ones collapsed.
	assert.Equal(t, []string{"alpha", "list", "zeta_node", "ros__parameters"}, keys(tree.Visible(root)))

	tree.SetExpandedAll(root, true)
	assert.Equal(t,
		[]string{"alpha", "list", "zeta_node", "ros__parameters", "enabled", "gains", "kd", "kp", "rate"},
		keys(tree.Visible(root)))

	tree.SetExpandedAll(root, false)
	assert.Equal(t, []string{"alpha", "list", "zeta_node"}, keys(tree.Visible(root)))
	assert.True(t, root.Expanded)
}

func TestReveal(t *testing.T) {
	root := tree.Build(sampleDocument())
	tree.SetExpandedAll(root, false)

	kp := tree.Find(root, entity.Path{"zeta_node", "ros__parameters", "gains", "kp"})
	require.NotNil(t, kp)
	tree.Reveal(kp)

	assert.Contains(t, tree.Visible(root), kp)
}

func TestExpandedState_SurvivesRebuild(t *testing.T) {
	doc := sampleDocument()
	root := tree.Build(doc)

	gains := tree.Find(root, entity.Path{"zeta_node", "ros__parameters", "gains"})
	require.NotNil(t, gains)
	gains.Expanded = true
	tree.Find(root, entity.Path{"zeta_node"}).Expanded = false

	state := tree.ExpandedPaths(root)

	rebuilt := tree.Build(doc)
	tree.ApplyExpanded(rebuilt, state)

	assert.False(t, tree.Find(rebuilt, entity.Path{"zeta_node"}).Expanded)
	assert.True(t, tree.Find(rebuilt, entity.Path{"zeta_node", "ros__parameters", "gains"}).Expanded)
}

func TestFind_Missing(t *testing.T) {
	root := tree.Build(sampleDocument())
	assert.Nil(t, tree.Find(root, entity.Path{"nope"}))
	assert.Nil(t, tree.Find(root, entity.Path{"alpha", "deeper"}))
	assert.Same(t, root, tree.Find(root, entity.Path{}))
}
