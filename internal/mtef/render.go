package mtef

import (
	"fmt"
	"log/slog"
	"strings"
)

// unimplementedTemplate is emitted when a template's canonical kind has no
// formatter, so a caller always gets a string back instead of nothing.
const unimplementedTemplate = "latex tmpl not implement"

// renderer walks a decoded tree and produces LaTeX. It never returns an
// error: unknown selectors, embellishments, or characters degrade to a
// placeholder or the empty string and are logged, per the core pipeline's
// "the renderer never fails" policy.
type renderer struct {
	table   CharTable
	version uint8
	logger  *slog.Logger
}

func newRenderer(table CharTable, version uint8, logger *slog.Logger) *renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &renderer{table: table, version: version, logger: logger}
}

// render performs the post-order walk, dispatching by node kind.
func (rd *renderer) render(n *Node) string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case KindLine:
		return rd.renderChildren(n)
	case KindChar:
		return rd.renderChar(n.Char)
	case KindTmpl:
		return rd.renderTmpl(n)
	case KindPile:
		return rd.renderPile(n)
	case KindMatrix:
		return rd.renderMatrix(n)
	case KindEmbell:
		return rd.renderEmbell(n)
	case KindFull, KindSub, KindSub2, KindSym, KindSubSym:
		return ""
	default:
		return rd.renderChildren(n)
	}
}

// renderChildren walks a container's child list in order. Embellishments
// need sibling context here: the tree builder leaves a standalone
// decoration (hat, dot, overbar) positioned just before its base
// character, so the decoration absorbs the following sibling as its
// braced base, while prime-like decorations simply append to whatever
// preceded them.
func (rd *renderer) renderChildren(n *Node) string {
	var b strings.Builder
	for i := 0; i < len(n.Children); i++ {
		c := n.Children[i]
		if c.Kind != KindEmbell || c.Embell == nil {
			b.WriteString(rd.render(c))
			continue
		}
		cmd, ok := embellishmentTable(rd.version)[c.Embell.Type]
		if !ok {
			rd.logger.Warn("mtef: unknown embellishment", "version", rd.version, "type", c.Embell.Type)
			b.WriteString(rd.renderChildren(c))
			continue
		}
		if primeLike(cmd) {
			b.WriteString(cmd)
			continue
		}
		base := rd.renderChildren(c)
		if i+1 < len(n.Children) {
			base += rd.render(n.Children[i+1])
			i++
		}
		b.WriteString(fmt.Sprintf(`%s{ %s }`, cmd, base))
	}
	return b.String()
}

// primeLike reports whether an embellishment command appends directly to
// the preceding character. Only the prime entries qualify; back-prime
// (`^\backprime`) is a standalone command like any other.
func primeLike(cmd string) bool {
	return strings.HasPrefix(cmd, "'")
}

func (rd *renderer) renderChar(c *CharPayload) string {
	if c == nil {
		return ""
	}
	key := fmt.Sprintf("char/0x%04x", c.MTCode)
	if c.Typeface == StyleMTExtra || c.Typeface == StyleSpace {
		key += "/mathmode"
	}
	out, ok := rd.table.Extended(key)
	if !ok {
		out, ok = rd.table.Special(rune(c.MTCode))
	}
	if !ok {
		out = string(rune(c.MTCode))
	}
	if c.Typeface == StyleText {
		out = fmt.Sprintf(`{ \rm{ %s } }`, out)
	}
	return out
}

// renderEmbell renders a decoration reached directly (outside a sibling
// walk), using the node's own children as the base.
func (rd *renderer) renderEmbell(n *Node) string {
	base := rd.renderChildren(n)
	if n.Embell == nil {
		return base
	}
	cmd, ok := embellishmentTable(rd.version)[n.Embell.Type]
	if !ok {
		rd.logger.Warn("mtef: unknown embellishment", "version", rd.version, "type", n.Embell.Type)
		return base
	}
	if primeLike(cmd) {
		return base + cmd
	}
	return fmt.Sprintf(`%s{ %s }`, cmd, base)
}

func (rd *renderer) renderPile(n *Node) string {
	parts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		parts = append(parts, rd.render(c))
	}
	return strings.Join(parts, ` \\ `)
}

func (rd *renderer) renderMatrix(n *Node) string {
	if n.Matrix == nil {
		return ""
	}
	children := n.Children
	// The v5 decoder pads every MATRIX with two synthetic empty lines;
	// they are not cells.
	if rd.version != 3 && len(children) >= 2 &&
		isSyntheticLine(children[0]) && isSyntheticLine(children[1]) {
		children = children[2:]
	}
	rows, cols := int(n.Matrix.Rows), int(n.Matrix.Cols)
	cells := make([]string, rows*cols)
	for i, c := range children {
		if i >= len(cells) {
			break
		}
		cells[i] = rd.render(c)
	}
	var b strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			b.WriteString(` \\ `)
		}
		for col := 0; col < cols; col++ {
			if col > 0 {
				b.WriteString(` & `)
			}
			b.WriteString(cells[row*cols+col])
		}
	}
	if rd.version == 3 {
		return fmt.Sprintf(`\begin{pmatrix} %s \end{pmatrix}`, b.String())
	}
	return fmt.Sprintf(`\begin{array}{} %s \end{array}`, b.String())
}

func isSyntheticLine(n *Node) bool {
	return n.Kind == KindLine && n.Line != nil && n.Line.Null && len(n.Children) == 0
}

// Render walks the tree rooted at n, applies the v3-only `$...$` wrap, and
// finishes with the script-fixup pass shared by both versions.
func (rd *renderer) Render(root *Node) string {
	out := rd.render(root)
	if rd.version == 3 {
		out = "$ " + out + " $"
	}
	return fixupScripts(out)
}
