package mtef

import (
	"testing"

	"github.com/chl19940220/mtef-latex/internal/testing/require"
)

func tagV3(recType recordType, options uint8) byte {
	return byte(recType) | (options << 4)
}

func TestDecodeV3SimpleCharLine(t *testing.T) {
	buf := []byte{
		tagV3(recLine, 0),
		tagV3(recChar, 0), 128, 'y', 0x00,
		tagV3(recEnd, 0),
		tagV3(recEnd, 0),
	}
	r := newByteReader(buf)
	nodes := decodeV3(r)
	require.True(t, r.ok())
	require.Len(t, nodes, 4)
	require.Equal(t, uint16('y'), nodes[1].Char.MTCode)
}

func TestDecodeV3NudgeBothSentinel(t *testing.T) {
	buf := []byte{
		tagV3(recLine, xfLMOVE),
		128, 128,
		0x07, 0x00, 0xf9, 0xff, // 7, -7
	}
	nodes := decodeV3(newByteReader(buf))
	require.Len(t, nodes, 1)
	require.Equal(t, int16(7), nodes[0].Line.NudgeX)
	require.Equal(t, int16(-7), nodes[0].Line.NudgeY)
}

func TestDecodeV3NudgeBothRequiredNotEither(t *testing.T) {
	// Only b1 hits the sentinel; v3 requires BOTH, so this should debias
	// normally instead of reading an override pair.
	buf := []byte{
		tagV3(recLine, xfLMOVE),
		128, 138, // debiases to (0, 10)
	}
	nodes := decodeV3(newByteReader(buf))
	require.Equal(t, int16(0), nodes[0].Line.NudgeX)
	require.Equal(t, int16(10), nodes[0].Line.NudgeY)
}

func TestDecodeV3NullLineFlag(t *testing.T) {
	buf := []byte{tagV3(recLine, xfNULL)}
	nodes := decodeV3(newByteReader(buf))
	require.True(t, nodes[0].Line.Null)
}

func TestTemplateKindFromV3Scripts(t *testing.T) {
	require.Equal(t, TmplSup, templateKindFromV3(uint8(selV3Script), v3ScriptSuper))
	require.Equal(t, TmplSub, templateKindFromV3(uint8(selV3Script), v3ScriptSub))
	require.Equal(t, TmplSubSup, templateKindFromV3(uint8(selV3Script), v3ScriptSubSup))
	require.Equal(t, TmplFract, templateKindFromV3(uint8(selV3Fract), 0))
}

func TestDecodeV3UnknownRecordSetsInvalid(t *testing.T) {
	r := newByteReader([]byte{0x0f})
	decodeV3(r)
	require.True(t, !r.ok())
}
