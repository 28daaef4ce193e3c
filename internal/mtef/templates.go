package mtef

import (
	"fmt"
	"strings"
)

// Template variation bits shared across several selectors.
const (
	tvFenceLeft  uint16 = 0x1
	tvFenceRight uint16 = 0x2

	tvBarDouble uint16 = 0x1

	tvVecLeft    uint16 = 0x1
	tvVecRight   uint16 = 0x2
	tvVecUnder   uint16 = 0x4
	tvVecHarpoon uint16 = 0x8

	tvArDouble  uint16 = 0x1
	tvArHarpoon uint16 = 0x2
	tvArLeft    uint16 = 0x10
	tvArRight   uint16 = 0x20

	tvIntDouble  uint16 = 0x2
	tvIntTriple  uint16 = 0x3
	tvIntContour uint16 = 0x4
)

// slotFunc returns the rendered text of the i'th template slot (0-based,
// in decode order), or "" if the template had fewer children than the
// slot index calls for.
type slotFunc func(i int) string

// renderTmpl dispatches a TMPL node's children through templateTable,
// falling back to the placeholder sentinel for an unrecognized kind.
func (rd *renderer) renderTmpl(n *Node) string {
	if n.Tmpl == nil {
		return unimplementedTemplate
	}
	rendered := make([]string, len(n.Children))
	for i, c := range n.Children {
		rendered[i] = rd.render(c)
	}
	slot := func(i int) string {
		if i < 0 || i >= len(rendered) {
			return ""
		}
		return rendered[i]
	}
	if n.Tmpl.Kind == TmplArrow && n.Tmpl.Variation&(tvArDouble|tvArHarpoon) != 0 {
		rd.logger.Warn("mtef: double/harpoon arrow variation not emitted", "variation", n.Tmpl.Variation)
	}
	fn, ok := templateTable[n.Tmpl.Kind]
	if !ok {
		rd.logger.Warn("mtef: unknown template selector", "kind", n.Tmpl.Kind)
		return unimplementedTemplate
	}
	return fn(n.Tmpl, len(rendered), slot)
}

type templateFormatter func(t *TmplPayload, n int, slot slotFunc) string

// fenceFormatter builds the shared PAREN/BRACK/BRACE/BAR/DBAR/FLOOR/
// CEILING/INTERVAL/ANGLE formatter. Slots are (main, left, right); a
// delimiter side is emitted when its slot is non-empty or its presence
// bit is set. An absent right side degrades to `\right.` for the kinds
// that need a matched pair (BRACE, BAR).
func fenceFormatter(left, right string, emptyMainAsSpace, emptyRightAsDot bool) templateFormatter {
	return func(t *TmplPayload, n int, slot slotFunc) string {
		main := slot(0)
		if main == "" && emptyMainAsSpace {
			main = `\space`
		}
		leftPresent := slot(1) != "" || t.Variation&tvFenceLeft != 0
		rightPresent := slot(2) != "" || t.Variation&tvFenceRight != 0

		var b strings.Builder
		if leftPresent {
			b.WriteString(`\left` + left + ` `)
		}
		b.WriteString(main)
		if rightPresent {
			b.WriteString(` \right` + right)
		} else if emptyRightAsDot {
			b.WriteString(` \right.`)
		}
		return b.String()
	}
}

var templateTable = map[TemplateKind]templateFormatter{
	TmplFract: func(t *TmplPayload, n int, slot slotFunc) string {
		if n < 2 {
			return fmt.Sprintf(`\frac{%s}{Unknown}`, slot(0))
		}
		return fmt.Sprintf(`\frac{%s}{%s}`, slot(0), slot(1))
	},
	TmplRoot: func(t *TmplPayload, n int, slot slotFunc) string {
		if slot(1) == "" {
			return fmt.Sprintf(`\sqrt{%s}`, slot(0))
		}
		return fmt.Sprintf(`\sqrt[%s]{%s}`, slot(1), slot(0))
	},
	TmplParen:    fenceFormatter(`(`, `)`, false, false),
	TmplBrack:    fenceFormatter(`[`, `]`, true, false),
	TmplBrace:    fenceFormatter(`\{`, `\}`, false, true),
	TmplBar:      fenceFormatter(`|`, `|`, false, true),
	TmplDBar:     fenceFormatter(`\|`, `\|`, false, false),
	TmplFloor:    fenceFormatter(`\lfloor`, `\rfloor`, false, false),
	TmplCeiling:  fenceFormatter(`\lceil`, `\rceil`, false, false),
	TmplInterval: fenceFormatter(`(`, `)`, false, false),
	TmplAngle:    fenceFormatter(`\langle`, `\rangle`, false, false),

	TmplSum: func(t *TmplPayload, n int, slot slotFunc) string {
		op := slot(3)
		if op == "" {
			op = `\sum`
		}
		out := op
		if lower := slot(1); lower != "" {
			out += fmt.Sprintf(` \limits_{ %s }`, lower)
		}
		if upper := slot(2); upper != "" {
			out += fmt.Sprintf(`^ %s`, upper)
		}
		if main := slot(0); main != "" {
			out += fmt.Sprintf(` { %s }`, main)
		}
		return out
	},
	TmplProd: func(t *TmplPayload, n int, slot slotFunc) string {
		out := `\prod`
		if lower := slot(1); lower != "" {
			out += fmt.Sprintf(` \limits_{ %s }`, lower)
		}
		if upper := slot(2); upper != "" {
			out += fmt.Sprintf(`^{ %s }`, upper)
		}
		if main := slot(0); main != "" {
			out += fmt.Sprintf(` { %s }`, main)
		}
		return out
	},
	TmplInteg: func(t *TmplPayload, n int, slot slotFunc) string {
		sym := `\int`
		switch {
		case t.Variation&tvIntTriple == tvIntTriple:
			sym = `\iiint`
		case t.Variation&tvIntDouble != 0:
			sym = `\iint`
		case t.Variation&tvIntContour != 0:
			sym = `\oint`
		}
		out := sym
		if lower := slot(1); lower != "" {
			out += fmt.Sprintf(`_{%s}`, lower)
		}
		if upper := slot(2); upper != "" {
			out += fmt.Sprintf(`^{%s}`, upper)
		}
		return fmt.Sprintf(`%s { %s }`, out, slot(0))
	},
	TmplIntOp: func(t *TmplPayload, n int, slot slotFunc) string {
		op := slot(3)
		if op == "" {
			op = `\bigodot`
		}
		out := op
		if lower := slot(1); lower != "" {
			out += fmt.Sprintf(`_{%s}`, lower)
		}
		if upper := slot(2); upper != "" {
			out += fmt.Sprintf(`^{%s}`, upper)
		}
		return fmt.Sprintf(`%s { %s }`, out, slot(0))
	},
	TmplLim: func(t *TmplPayload, n int, slot slotFunc) string {
		out := fmt.Sprintf(`\mathop{ %s }`, slot(0))
		if lower := slot(1); lower != "" {
			out += fmt.Sprintf(` \limits_{ %s }`, lower)
		}
		return out
	},

	TmplSup: func(t *TmplPayload, n int, slot slotFunc) string {
		if slot(0) == "" {
			return ""
		}
		return fmt.Sprintf(`^{ %s }`, slot(0))
	},
	TmplSub: func(t *TmplPayload, n int, slot slotFunc) string {
		if slot(0) == "" {
			return ""
		}
		return fmt.Sprintf(`_{ %s }`, slot(0))
	},
	TmplSubSup: func(t *TmplPayload, n int, slot slotFunc) string {
		var out string
		if sub := slot(0); sub != "" {
			out += fmt.Sprintf(`_{ %s }`, sub)
		}
		if sup := slot(1); sup != "" {
			out += fmt.Sprintf(`^{ %s }`, sup)
		}
		return out
	},

	TmplOBar: func(t *TmplPayload, n int, slot slotFunc) string {
		if t.Variation&tvBarDouble != 0 {
			return fmt.Sprintf(`\overline{\overline{%s}}`, slot(0))
		}
		return fmt.Sprintf(`\overline{%s}`, slot(0))
	},
	TmplUBar: func(t *TmplPayload, n int, slot slotFunc) string {
		return fmt.Sprintf(`\underline{%s}`, slot(0))
	},
	TmplHat: func(t *TmplPayload, n int, slot slotFunc) string {
		return fmt.Sprintf(`%s { %s }`, slot(1), slot(0))
	},
	TmplArc: func(t *TmplPayload, n int, slot slotFunc) string {
		return fmt.Sprintf(`\overset{ %s } { %s }`, slot(1), slot(0))
	},
	TmplTilde: func(t *TmplPayload, n int, slot slotFunc) string {
		return fmt.Sprintf(`\tilde{ %s }`, slot(0))
	},
	TmplVec: func(t *TmplPayload, n int, slot slotFunc) string {
		return fmt.Sprintf(`%s { %s }`, vecAccent(t.Variation), slot(0))
	},
	TmplArrow: func(t *TmplPayload, n int, slot slotFunc) string {
		out := arrowCommand(t.Variation)
		if bottom := slot(1); bottom != "" {
			out += fmt.Sprintf(` [\mathrm{ %s }]`, bottom)
		}
		if top := slot(0); top != "" {
			out += fmt.Sprintf(` {\mathrm{ %s }}`, top)
		}
		return out
	},
}

// vecAccent derives the \overset accent macro from the VEC variation
// bitfield: direction names concatenate, harpoons supply their own
// "arrowhead", and anything below the harpoon bit is a plain arrow.
func vecAccent(v uint16) string {
	s := `\overset\`
	if v&tvVecLeft != 0 {
		s += "left"
	}
	if v&tvVecRight != 0 {
		s += "right"
	}
	if v&tvVecUnder != 0 {
		s += "under"
	}
	if v&tvVecHarpoon != 0 {
		s += "harpoonup"
	}
	if v < 8 {
		s += "arrow"
	}
	return s
}

// arrowCommand picks the extensible-arrow command for an ARROW template.
// Only single arrows are emitted; double and harpoon arrows leave the
// bare `\x` prefix behind (the caller logs that case before calling
// this), matching the decoder's Resolved Open Question on ARROW
// variation decoding.
func arrowCommand(v uint16) string {
	cmd := `\x`
	if v&(tvArDouble|tvArHarpoon) != 0 {
		return cmd
	}
	if v&tvArLeft != 0 {
		cmd += "leftarrow"
	} else if v&tvArRight != 0 {
		cmd += "rightarrow"
	}
	return cmd
}
