package mtef

import "log/slog"

// Decoder runs the full byte-to-tree pipeline over one equation body:
// header, version-specific record decode, and tree build. Decode never
// panics and never returns a Go error; a malformed stream is reported
// through Invalid, with whatever tree was built before the fault left
// intact for best-effort rendering.
type Decoder struct {
	Version uint8
	Tree    *Node
	Invalid bool
	Logger  *slog.Logger
}

// Decode parses buf, which must begin at the MTEF header (not the OLE
// container prefix — see mtef.SplitOLEStream for that).
func Decode(buf []byte, logger *slog.Logger) *Decoder {
	r := newByteReader(buf)
	h := readHeader(r)
	d := &Decoder{Version: h.Version, Logger: logger}
	if !r.ok() {
		d.Invalid = true
		return d
	}

	var nodes []*Node
	if h.Version == 3 {
		nodes = decodeV3(r)
	} else {
		nodes = decodeV5(r)
	}
	d.Invalid = r.invalid
	d.Tree = buildTree(nodes, h.Version)
	return d
}

// Render translates the decoded tree to LaTeX. An invalid decode always
// renders to the empty string, per the core pipeline's error policy.
func (d *Decoder) Render(table CharTable) string {
	if d == nil || d.Invalid || d.Tree == nil {
		return ""
	}
	rd := newRenderer(table, d.Version, d.Logger)
	return rd.Render(d.Tree)
}
