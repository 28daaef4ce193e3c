package mtef

// recordType is the raw, on-the-wire record discriminator. v5 spends a
// whole byte on it; v3 packs it into the low nibble of a combined tag
// byte. The two tag spaces share numbering for the record kinds they both
// have: v3 stops at SUBSYM (its nibble can't go past 15 anyway), and slot
// 8 means FONT in v3 but FONT_STYLE_DEF in v5.
type recordType uint8

const (
	recEnd    recordType = 0
	recLine   recordType = 1
	recChar   recordType = 2
	recTmpl   recordType = 3
	recPile   recordType = 4
	recMatrix recordType = 5
	recEmbell recordType = 6
	recRuler  recordType = 7

	recFontStyleDef recordType = 8
	recSize         recordType = 9
	recFull         recordType = 10
	recSub          recordType = 11
	recSub2         recordType = 12
	recSym          recordType = 13
	recSubSym       recordType = 14

	// v5-only definition records.
	recColor       recordType = 15
	recColorDef    recordType = 16
	recFontDef     recordType = 17
	recEqnPrefs    recordType = 18
	recEncodingDef recordType = 19

	// Reserved-future records carry a 1-byte length so readers can skip
	// them without understanding them.
	recFutureMinType recordType = 100
)

// v5 option bit layout, shared shape across LINE/CHAR/TMPL/PILE/MATRIX/
// EMBELL option bytes (not every record uses every bit).
const (
	optV5Nudge      = 0x8
	optV5LineLSpace = 0x4
	optV5LineRuler  = 0x2
	optV5LineNull   = 0x1
	optV5CharEncC8  = 0x2
	optV5CharEncC16 = 0x4
	optV5CharNoMT   = 0x1
)

// v5 COLOR_DEF option bits.
const (
	optV5ColorCMYK = 0x1
	optV5ColorSpot = 0x2
	optV5ColorName = 0x4
)

// v3 packs record type into the low nibble and option flags into the high
// nibble of a single tag byte.
const (
	xfLMOVE  = 0x8
	xfLSPACE = 0x4
	xfRULER  = 0x2
	xfNULL   = 0x1
	xfAUTO   = 0x1
	xfEMBELL = 0x2
)
