package mtef

// v5's wire-level selector byte already enumerates every TemplateKind in
// the same order the renderer dispatches on, so decoding it is a direct,
// range-checked cast.
func templateKindFromV5(raw uint8) TemplateKind {
	if raw >= 1 && raw <= uint8(TmplArrow) {
		return TemplateKind(raw)
	}
	return TmplUnknown
}

// selectorV3 is v3's much smaller selector repertoire: the format predates
// most of v5's template vocabulary and folds delimiter and script
// variants into a handful of codes, disambiguated by variation. This is
// the decoder's own enum, distinct from TemplateKind.
type selectorV3 uint8

const (
	selV3Fract selectorV3 = iota
	selV3Root
	selV3Paren
	selV3Brack
	selV3Brace
	selV3LScript // left super/subscript pair
	selV3Script  // super/sub/subsup, disambiguated by variation
	selV3SInt    // single integral
	selV3Sum
	selV3Prod
)

// v3 variation codes for the shared SUP/SUB/SUBSUP selector.
const (
	v3ScriptSuper uint16 = iota
	v3ScriptSub
	v3ScriptSubSup
)

// templateKindFromV3 normalizes v3's selector+variation pair into the
// shared TemplateKind used by the renderer. v3's delimiter selectors are
// variation-disambiguated (both/left/right) rather than slot-disambiguated
// the way v5's are, but both decode into the same 3-slot (main, left,
// right) shape the renderer expects (see templates.go).
func templateKindFromV3(raw uint8, variation uint16) TemplateKind {
	switch selectorV3(raw) {
	case selV3Fract:
		return TmplFract
	case selV3Root:
		return TmplRoot
	case selV3Paren:
		return TmplParen
	case selV3Brack:
		return TmplBrack
	case selV3Brace:
		return TmplBrace
	case selV3LScript, selV3Script:
		switch variation {
		case v3ScriptSuper:
			return TmplSup
		case v3ScriptSub:
			return TmplSub
		default:
			return TmplSubSup
		}
	case selV3SInt:
		return TmplInteg
	case selV3Sum:
		return TmplSum
	case selV3Prod:
		return TmplProd
	default:
		return TmplUnknown
	}
}

// v3 fence variation values: which delimiter sides are present.
const (
	v3FenceBoth  uint16 = 0
	v3FenceLeft  uint16 = 1
	v3FenceRight uint16 = 2
)

// normalizeVariationV3 rewrites v3 variation values whose encoding
// differs from v5's into the bit layout the shared renderer dispatches
// on. Fences are the one divergent case: v3 stores which-sides-present as
// an enumerated value where v5 uses presence bits.
func normalizeVariationV3(kind TemplateKind, variation uint16) uint16 {
	switch kind {
	case TmplParen, TmplBrack, TmplBrace:
		switch variation {
		case v3FenceLeft:
			return tvFenceLeft
		case v3FenceRight:
			return tvFenceRight
		default:
			return tvFenceLeft | tvFenceRight
		}
	}
	return variation
}
