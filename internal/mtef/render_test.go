package mtef

import (
	"testing"

	"github.com/chl19940220/mtef-latex/internal/testing/require"
)

type fakeTable struct {
	extended map[string]string
	special  map[rune]string
}

func (f *fakeTable) Extended(key string) (string, bool) {
	v, ok := f.extended[key]
	return v, ok
}

func (f *fakeTable) Special(r rune) (string, bool) {
	v, ok := f.special[r]
	return v, ok
}

func charNode(mtcode uint16) *Node {
	return &Node{Kind: KindChar, Char: &CharPayload{MTCode: mtcode}}
}

func TestRenderCharFallsBackToRawRune(t *testing.T) {
	rd := newRenderer(&fakeTable{}, 5, nil)
	require.Equal(t, "x", rd.render(charNode('x')))
}

func TestRenderCharUsesExtendedTable(t *testing.T) {
	table := &fakeTable{extended: map[string]string{"char/0x0078": `\xi`}}
	rd := newRenderer(table, 5, nil)
	require.Equal(t, `\xi`, rd.render(charNode('x')))
}

func TestRenderCharTextStyleWraps(t *testing.T) {
	rd := newRenderer(&fakeTable{}, 5, nil)
	n := charNode('a')
	n.Char.Typeface = StyleText
	require.Equal(t, `{ \rm{ a } }`, rd.render(n))
}

func TestRenderFract(t *testing.T) {
	rd := newRenderer(&fakeTable{}, 5, nil)
	tmpl := &Node{Kind: KindTmpl, Tmpl: &TmplPayload{Kind: TmplFract}, Children: []*Node{charNode('1'), charNode('2')}}
	require.Equal(t, `\frac{1}{2}`, rd.render(tmpl))
}

func TestRenderRootNoIndex(t *testing.T) {
	rd := newRenderer(&fakeTable{}, 5, nil)
	tmpl := &Node{Kind: KindTmpl, Tmpl: &TmplPayload{Kind: TmplRoot}, Children: []*Node{charNode('4')}}
	require.Equal(t, `\sqrt{4}`, rd.render(tmpl))
}

func TestRenderMatrix(t *testing.T) {
	rd := newRenderer(&fakeTable{}, 5, nil)
	n := &Node{
		Kind:   KindMatrix,
		Matrix: &MatrixPayload{Rows: 2, Cols: 2},
		Children: []*Node{
			charNode('a'), charNode('b'), charNode('c'), charNode('d'),
		},
	}
	require.Equal(t, `\begin{array}{} a & b \\ c & d \end{array}`, rd.render(n))
}

func TestRenderPile(t *testing.T) {
	rd := newRenderer(&fakeTable{}, 5, nil)
	n := &Node{Kind: KindPile, Pile: &PilePayload{}, Children: []*Node{charNode('1'), charNode('2')}}
	require.Equal(t, `1 \\ 2`, rd.render(n))
}

func TestRenderEmbellishmentHat(t *testing.T) {
	rd := newRenderer(&fakeTable{}, 5, nil)
	n := &Node{Kind: KindEmbell, Embell: &EmbellPayload{Type: embV5Hat}, Children: []*Node{charNode('x')}}
	require.Equal(t, `\hat{ x }`, rd.render(n))
}

func TestRenderEmbellishmentPrimeAttachesDirectly(t *testing.T) {
	rd := newRenderer(&fakeTable{}, 5, nil)
	n := &Node{Kind: KindEmbell, Embell: &EmbellPayload{Type: embV5Prime1}, Children: []*Node{charNode('x')}}
	require.Equal(t, "x'", rd.render(n))
}

func TestRenderEmbellishmentBackPrimeIsStandalone(t *testing.T) {
	rd := newRenderer(&fakeTable{}, 5, nil)
	n := &Node{Kind: KindEmbell, Embell: &EmbellPayload{Type: embV5BPrime}, Children: []*Node{charNode('x')}}
	require.Equal(t, `^\backprime{ x }`, rd.render(n))
}

func TestRenderSizingNodesAreEmpty(t *testing.T) {
	rd := newRenderer(&fakeTable{}, 5, nil)
	for _, k := range []NodeKind{KindFull, KindSub, KindSub2, KindSym, KindSubSym} {
		require.Equal(t, "", rd.render(&Node{Kind: k}))
	}
}

func TestDecoderRenderEndToEnd(t *testing.T) {
	// LINE(null=false) CHAR(x) END END, v5 style wrapped manually.
	root := &Node{Kind: KindLine, Line: &LinePayload{}}
	line := &Node{Kind: KindLine, Line: &LinePayload{}}
	line.Children = append(line.Children, charNode('x'))
	root.Children = append(root.Children, line)
	d := &Decoder{Version: 5, Tree: root}
	require.Contains(t, d.Render(&fakeTable{}), "x")
}

func TestDecoderRenderInvalidYieldsEmpty(t *testing.T) {
	d := &Decoder{Version: 5, Invalid: true}
	require.Equal(t, "", d.Render(&fakeTable{}))
}
