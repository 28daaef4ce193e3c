package mtef

import (
	"testing"

	"github.com/chl19940220/mtef-latex/internal/testing/require"
)

func TestDecodeV5SimpleCharLine(t *testing.T) {
	// LINE opts=0, CHAR opts=0 typeface=128(+0) mtcode='x', END, END
	buf := []byte{
		byte(recLine), 0x00,
		byte(recChar), 0x00, 128, 'x', 0x00,
		byte(recEnd),
		byte(recEnd),
	}
	r := newByteReader(buf)
	nodes := decodeV5(r)
	require.True(t, r.ok())
	require.Len(t, nodes, 4)
	require.Equal(t, KindLine, nodes[0].Kind)
	require.Equal(t, KindChar, nodes[1].Kind)
	require.Equal(t, uint16('x'), nodes[1].Char.MTCode)
	require.Equal(t, KindEnd, nodes[2].Kind)
	require.Equal(t, KindEnd, nodes[3].Kind)
}

func TestDecodeV5FutureRecordSkipped(t *testing.T) {
	before := []byte{byte(recEnd)}
	future := []byte{100, 0x03, 0xaa, 0xbb, 0xcc}
	after := []byte{byte(recEnd)}
	buf := append(append(append([]byte{}, before...), future...), after...)

	withFuture := decodeV5(newByteReader(buf))
	without := decodeV5(newByteReader(append(append([]byte{}, before...), after...)))

	require.Equal(t, len(without), len(withFuture))
}

func TestDecodeV5UnknownRecordSetsInvalid(t *testing.T) {
	r := newByteReader([]byte{99})
	decodeV5(r)
	require.True(t, !r.ok())
}

func TestDecodeV5NudgeOrSentinel(t *testing.T) {
	// nudge bit set (0x8); the first 16-bit value hits the 128 sentinel
	// even though the second doesn't, so an override pair follows.
	buf := []byte{
		byte(recLine), optV5Nudge,
		0x80, 0x00, 0x05, 0x00, // b1=128, b2=5
		0x0a, 0x00, 0x14, 0x00, // overriding 16-bit pair: 10, 20
	}
	r := newByteReader(buf)
	nodes := decodeV5(r)
	require.Len(t, nodes, 1)
	require.Equal(t, int16(10), nodes[0].Line.NudgeX)
	require.Equal(t, int16(20), nodes[0].Line.NudgeY)
}

func TestDecodeV5NudgePlainPair(t *testing.T) {
	buf := []byte{
		byte(recLine), optV5Nudge,
		0x07, 0x00, 0xf9, 0xff, // 7, -7; neither equals 128
	}
	nodes := decodeV5(newByteReader(buf))
	require.Len(t, nodes, 1)
	require.Equal(t, int16(7), nodes[0].Line.NudgeX)
	require.Equal(t, int16(-7), nodes[0].Line.NudgeY)
}

func TestDecodeV5CharAlternateEncodingsRideAlong(t *testing.T) {
	// enc-char8 set: the 8-bit font position follows the mtcode rather
	// than replacing it.
	buf := []byte{
		byte(recChar), optV5CharEncC8,
		128,        // typeface
		'z', 0x00,  // mtcode
		0x41,       // 8-bit font position, discarded
		byte(recEnd),
	}
	r := newByteReader(buf)
	nodes := decodeV5(r)
	require.True(t, r.ok())
	require.Len(t, nodes, 2)
	require.Equal(t, uint16('z'), nodes[0].Char.MTCode)
	require.Equal(t, KindEnd, nodes[1].Kind)
}

func TestDecodeV5DefinitionRecordsAreConsumed(t *testing.T) {
	buf := []byte{
		byte(recFontStyleDef), 1, 'T', 'i', 'm', 'e', 's', 0x00,
		byte(recSize), 0x0a, 0x0b,
		byte(recColor), 0x01,
		byte(recColorDef), 0x00, 1, 0, 2, 0, 3, 0, // RGB, no name
		byte(recFontDef), 2, 'S', 'y', 'm', 'b', 'o', 'l', 0x00,
		byte(recEncodingDef), 'm', 't', 0x00,
		byte(recEnd),
	}
	r := newByteReader(buf)
	nodes := decodeV5(r)
	require.True(t, r.ok())
	require.Len(t, nodes, 1)
	require.Equal(t, KindEnd, nodes[0].Kind)
}

func TestDecodeV5EqnPrefsIsConsumed(t *testing.T) {
	buf := []byte{
		byte(recEqnPrefs),
		0x00, // options
		0x01, // one size entry
		0x2f, // nibbles: unit=pt(2), terminator(0xf)
		0x00, // no spaces
		0x00, // no styles
		byte(recEnd),
	}
	r := newByteReader(buf)
	nodes := decodeV5(r)
	require.True(t, r.ok())
	require.Len(t, nodes, 1)
}

func TestSkipDimensionArrayCapsOnGarbage(t *testing.T) {
	// A terminator nibble never arrives; the iteration cap must stop the
	// walk before it drains the whole reader.
	buf := make([]byte, 256)
	for i := range buf {
		buf[i] = 0x22 // endless digit nibbles
	}
	r := newByteReader(buf)
	skipDimensionArray(r, 2)
	require.True(t, r.ok())
	require.True(t, r.remaining() > 0)
}

func TestReadVariationTwoBytes(t *testing.T) {
	r := newByteReader([]byte{0x83, 0x01})
	require.Equal(t, uint16(0x103), readVariation(r))

	r = newByteReader([]byte{0x05})
	require.Equal(t, uint16(0x05), readVariation(r))
}

func TestDecodeV5MatrixInsertsTwoEmptyLines(t *testing.T) {
	buf := []byte{
		byte(recMatrix), 0x00,
		0, 0, 0, // valign, hjust, vjust
		1, 1, // rows, cols
		0, 0, // separator bytes (ceil(2/4)=1 each)
	}
	nodes := decodeV5(newByteReader(buf))
	require.Len(t, nodes, 3)
	require.Equal(t, KindMatrix, nodes[0].Kind)
	require.Equal(t, KindLine, nodes[1].Kind)
	require.True(t, nodes[1].Line.Null)
	require.Equal(t, KindLine, nodes[2].Kind)
	require.True(t, nodes[2].Line.Null)
}

func TestTemplateKindFromV5RoundTrip(t *testing.T) {
	require.Equal(t, TmplFract, templateKindFromV5(uint8(TmplFract)))
	require.Equal(t, TmplArrow, templateKindFromV5(uint8(TmplArrow)))
	require.Equal(t, TmplUnknown, templateKindFromV5(200))
}
