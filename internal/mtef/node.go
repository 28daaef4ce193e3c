// Package mtef decodes MTEF (MathType Equation Format) record streams,
// versions 3 and 5, into a node tree and renders that tree to LaTeX.
package mtef

// NodeKind discriminates the records that survive into the tree. Records
// that are parsed and discarded in-stream (font/size/color definitions,
// encoding and equation-preference records, and reserved FUTURE records)
// never acquire a NodeKind; the decoder consumes their bytes and moves on.
type NodeKind uint8

const (
	KindEnd NodeKind = iota
	KindLine
	KindChar
	KindTmpl
	KindPile
	KindMatrix
	KindEmbell
	KindFull
	KindSub
	KindSub2
	KindSym
	KindSubSym
)

func (k NodeKind) String() string {
	switch k {
	case KindEnd:
		return "END"
	case KindLine:
		return "LINE"
	case KindChar:
		return "CHAR"
	case KindTmpl:
		return "TMPL"
	case KindPile:
		return "PILE"
	case KindMatrix:
		return "MATRIX"
	case KindEmbell:
		return "EMBELL"
	case KindFull:
		return "FULL"
	case KindSub:
		return "SUB"
	case KindSub2:
		return "SUB2"
	case KindSym:
		return "SYM"
	case KindSubSym:
		return "SUBSYM"
	default:
		return "UNKNOWN"
	}
}

// LinePayload is the horizontal-run record. A null LINE is a leaf: it does
// not open a container and is not balanced by a later END.
type LinePayload struct {
	Null      bool
	HasNudge  bool
	NudgeX    int16
	NudgeY    int16
	LineSpace uint8
}

// CharPayload is a single glyph. Typeface is already debiased (the wire
// format stores it as typeface+128); positive values select a MathType
// style (see the Style* constants), negative values select an explicit
// font defined elsewhere in the stream (and discarded by this decoder).
type CharPayload struct {
	Typeface int8
	MTCode   uint16
	HasNudge bool
	NudgeX   int16
	NudgeY   int16
}

// MathType style indices carried in CharPayload.Typeface.
const (
	StyleText     int8 = 1
	StyleFunction int8 = 2
	StyleVariable int8 = 3
	StyleLCGreek  int8 = 4
	StyleUCGreek  int8 = 5
	StyleSymbol   int8 = 6
	StyleVector   int8 = 7
	StyleNumber   int8 = 8
	StyleUser1    int8 = 9
	StyleUser2    int8 = 10
	StyleMTExtra  int8 = 11
	StyleSpace    int8 = 12
)

// TmplPayload is a template instance. Kind is the canonical, version-
// independent template selector; both the v3 and v5 decoders normalize
// their own wire-level selector byte into this one enum so the renderer
// can dispatch through a single table (see templates.go).
type TmplPayload struct {
	Kind      TemplateKind
	Variation uint16
	Options   uint8
	HasNudge  bool
	NudgeX    int16
	NudgeY    int16
}

// TemplateKind is the canonical template selector the renderer dispatches
// on, shared by the v3 and v5 decoders.
type TemplateKind uint8

const (
	TmplUnknown TemplateKind = iota
	TmplFract
	TmplRoot
	TmplParen
	TmplBrack
	TmplBrace
	TmplBar
	TmplDBar
	TmplFloor
	TmplCeiling
	TmplInterval
	TmplAngle
	TmplSum
	TmplProd
	TmplInteg
	TmplIntOp
	TmplLim
	TmplSup
	TmplSub
	TmplSubSup
	TmplOBar
	TmplUBar
	TmplHat
	TmplArc
	TmplTilde
	TmplVec
	TmplArrow
)

// PilePayload is a vertically stacked run of lines (e.g. a cases block).
type PilePayload struct {
	HasNudge bool
	NudgeX   int16
	NudgeY   int16
	HAlign   uint8
	VAlign   uint8
}

// MatrixPayload is a 2-D grid of cells; row/column separator styles are
// read and discarded by the decoder (see Non-goals: typography metadata).
type MatrixPayload struct {
	HasNudge bool
	NudgeX   int16
	NudgeY   int16
	Rows     uint8
	Cols     uint8
	VAlign   uint8
	HJust    uint8
	VJust    uint8
}

// EmbellPayload is a decoration (dot, hat, arrow, ...) attached to the
// sibling preceding it in the tree. Type is a raw, version-specific code:
// v3 and v5 keep separate embellishment tables (see embellish.go), so the
// same numeric value can mean different things across versions.
type EmbellPayload struct {
	HasNudge bool
	NudgeX   int16
	NudgeY   int16
	Type     EmbellType
}

// EmbellType is a raw, per-version embellishment code (see EmbellPayload).
type EmbellType uint8

// Node is one element of the decoded tree. Exactly one of the payload
// fields is non-nil, selected by Kind; FULL/SUB/SUB2/SYM/SUBSYM carry no
// payload at all (they render to the empty string).
type Node struct {
	Kind     NodeKind
	Line     *LinePayload
	Char     *CharPayload
	Tmpl     *TmplPayload
	Pile     *PilePayload
	Matrix   *MatrixPayload
	Embell   *EmbellPayload
	Children []*Node
}

// opensContainer reports whether this node is balanced by a future END in
// the flat record stream and therefore owns a child list that the tree
// builder must track on its stack.
func (n *Node) opensContainer() bool {
	switch n.Kind {
	case KindLine:
		return n.Line == nil || !n.Line.Null
	case KindTmpl, KindPile, KindMatrix, KindEmbell:
		return true
	default:
		return false
	}
}
