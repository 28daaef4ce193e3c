package mtef

import (
	"testing"

	"github.com/chl19940220/mtef-latex/internal/testing/require"
)

func TestBuildTreeBalancesEndCount(t *testing.T) {
	nodes := []*Node{
		{Kind: KindLine, Line: &LinePayload{}},
		{Kind: KindChar, Char: &CharPayload{MTCode: 'x'}},
		{Kind: KindEnd},
	}
	root := buildTree(nodes, 5)
	require.Len(t, root.Children, 1)
	line := root.Children[0]
	require.Equal(t, KindLine, line.Kind)
	require.Len(t, line.Children, 1)
}

func TestBuildTreeNullLineDoesNotOpen(t *testing.T) {
	nodes := []*Node{
		{Kind: KindLine, Line: &LinePayload{Null: true}},
		{Kind: KindChar, Char: &CharPayload{MTCode: 'x'}},
	}
	root := buildTree(nodes, 5)
	require.Len(t, root.Children, 2)
}

func TestBuildTreeEmbellishmentReorder(t *testing.T) {
	nodes := []*Node{
		{Kind: KindChar, Char: &CharPayload{MTCode: 'x'}},
		{Kind: KindEmbell, Embell: &EmbellPayload{Type: embV5Hat}},
		{Kind: KindEnd},
	}
	root := buildTree(nodes, 5)
	require.Len(t, root.Children, 2)
	require.Equal(t, KindEmbell, root.Children[0].Kind)
	require.Equal(t, KindChar, root.Children[1].Kind)
}

func TestBuildTreeNonSwapEmbellishmentKeepsOrder(t *testing.T) {
	nodes := []*Node{
		{Kind: KindChar, Char: &CharPayload{MTCode: 'x'}},
		{Kind: KindEmbell, Embell: &EmbellPayload{Type: embV5Prime1}},
		{Kind: KindEnd},
	}
	root := buildTree(nodes, 5)
	require.Equal(t, KindChar, root.Children[0].Kind)
	require.Equal(t, KindEmbell, root.Children[1].Kind)
}
