package mtef

// decodeV5 reads the v5 record stream in r and returns the flat node list
// in stream order, stopping (with r left invalid) on the first truncation
// or unrecognized record type. A FUTURE record (type >= 100) is a length-
// prefixed blob that is always skippable regardless of whether this
// decoder understands it, per the reserved-future convention.
//
// Definition records (font styles, sizes, colors, encodings, equation
// preferences) are consumed byte-exactly but never become nodes.
func decodeV5(r *byteReader) []*Node {
	var nodes []*Node
	for r.ok() {
		if r.remaining() == 0 {
			break
		}
		t := recordType(r.u8())
		if !r.ok() {
			break
		}
		if t >= recFutureMinType {
			n := int(r.u8())
			r.skip(n)
			continue
		}
		switch t {
		case recEnd:
			nodes = append(nodes, &Node{Kind: KindEnd})
		case recLine:
			nodes = append(nodes, decodeLineV5(r))
		case recChar:
			nodes = append(nodes, decodeCharV5(r))
		case recTmpl:
			nodes = append(nodes, decodeTmplV5(r))
		case recPile:
			nodes = append(nodes, decodePileV5(r))
		case recMatrix:
			n := decodeMatrixV5(r)
			nodes = append(nodes, n)
			// Two synthetic empty LINEs follow every v5 MATRIX so the
			// renderer's cell accounting stays aligned with the grid.
			nodes = append(nodes,
				&Node{Kind: KindLine, Line: &LinePayload{Null: true}},
				&Node{Kind: KindLine, Line: &LinePayload{Null: true}},
			)
		case recEmbell:
			nodes = append(nodes, decodeEmbellV5(r))
		case recFull:
			nodes = append(nodes, &Node{Kind: KindFull})
		case recSub:
			nodes = append(nodes, &Node{Kind: KindSub})
		case recSub2:
			nodes = append(nodes, &Node{Kind: KindSub2})
		case recSym:
			nodes = append(nodes, &Node{Kind: KindSym})
		case recSubSym:
			nodes = append(nodes, &Node{Kind: KindSubSym})
		case recFontStyleDef:
			r.u8() // font def index
			r.cstring()
		case recSize:
			r.skip(2) // lsize, dsize
		case recColor:
			r.skip(1) // color def index
		case recColorDef:
			skipColorDefV5(r)
		case recFontDef:
			r.u8() // encoding def index
			r.cstring()
		case recEqnPrefs:
			skipEqnPrefsV5(r)
		case recEncodingDef:
			r.cstring()
		default:
			r.fail()
		}
		if !r.ok() {
			break
		}
	}
	return nodes
}

func decodeLineV5(r *byteReader) *Node {
	opts := r.u8()
	p := &LinePayload{}
	if opts&optV5Nudge != 0 {
		p.HasNudge = true
		p.NudgeX, p.NudgeY = readNudgeV5(r)
	}
	if opts&optV5LineLSpace != 0 {
		p.LineSpace = r.u8()
	}
	if opts&optV5LineRuler != 0 {
		skipRulerV5(r)
	}
	if opts&optV5LineNull != 0 {
		p.Null = true
	}
	return &Node{Kind: KindLine, Line: p}
}

func skipRulerV5(r *byteReader) {
	n := int(r.u8())
	for i := 0; i < n; i++ {
		r.skip(1) // stop type
		r.skip(2) // stop offset
	}
}

func decodeCharV5(r *byteReader) *Node {
	opts := r.u8()
	p := &CharPayload{}
	if opts&optV5Nudge != 0 {
		p.HasNudge = true
		p.NudgeX, p.NudgeY = readNudgeV5(r)
	}
	p.Typeface = int8(int(r.u8()) - 128)
	if opts&optV5CharNoMT == 0 {
		p.MTCode = r.u16()
	}
	// Alternate 8/16-bit font-position encodings ride along with (not
	// instead of) the mtcode; they are read and discarded.
	if opts&optV5CharEncC8 != 0 {
		r.u8()
	}
	if opts&optV5CharEncC16 != 0 {
		r.u16()
	}
	return &Node{Kind: KindChar, Char: p}
}

func decodeTmplV5(r *byteReader) *Node {
	opts := r.u8()
	p := &TmplPayload{}
	if opts&optV5Nudge != 0 {
		p.HasNudge = true
		p.NudgeX, p.NudgeY = readNudgeV5(r)
	}
	selector := r.u8()
	p.Kind = templateKindFromV5(selector)
	p.Variation = readVariation(r)
	p.Options = r.u8()
	return &Node{Kind: KindTmpl, Tmpl: p}
}

func decodePileV5(r *byteReader) *Node {
	opts := r.u8()
	p := &PilePayload{}
	if opts&optV5Nudge != 0 {
		p.HasNudge = true
		p.NudgeX, p.NudgeY = readNudgeV5(r)
	}
	p.HAlign = r.u8()
	p.VAlign = r.u8()
	return &Node{Kind: KindPile, Pile: p}
}

func decodeMatrixV5(r *byteReader) *Node {
	opts := r.u8()
	p := &MatrixPayload{}
	if opts&optV5Nudge != 0 {
		p.HasNudge = true
		p.NudgeX, p.NudgeY = readNudgeV5(r)
	}
	p.VAlign = r.u8()
	p.HJust = r.u8()
	p.VJust = r.u8()
	p.Rows = r.u8()
	p.Cols = r.u8()
	skipSeparators(r, int(p.Rows))
	skipSeparators(r, int(p.Cols))
	return &Node{Kind: KindMatrix, Matrix: p}
}

func decodeEmbellV5(r *byteReader) *Node {
	opts := r.u8()
	p := &EmbellPayload{}
	if opts&optV5Nudge != 0 {
		p.HasNudge = true
		p.NudgeX, p.NudgeY = readNudgeV5(r)
	}
	p.Type = EmbellType(r.u8())
	return &Node{Kind: KindEmbell, Embell: p}
}

func skipColorDefV5(r *byteReader) {
	opts := r.u8()
	values := 3 // RGB
	if opts&optV5ColorCMYK != 0 {
		values = 4
	}
	for i := 0; i < values; i++ {
		r.u16()
	}
	if opts&optV5ColorName != 0 {
		r.cstring()
	}
}

// skipEqnPrefsV5 consumes an EQN_PREFS record: an options byte, two
// nibble-encoded dimension arrays (sizes, spaces) and a style list. All
// of it is typography metadata this decoder discards.
func skipEqnPrefsV5(r *byteReader) {
	r.u8() // options

	skipDimensionArray(r, int(r.u8())) // sizes
	skipDimensionArray(r, int(r.u8())) // spaces

	// styles: a zero byte is a whole entry, anything else is followed by
	// one more byte.
	styles := int(r.u8())
	for i := 0; i < styles && r.ok(); i++ {
		if r.u8() != 0 {
			r.u8()
		}
	}
}

// skipDimensionArray walks a nibble-encoded dimension list until size
// entries have been seen. Each entry is a unit nibble (in/cm/pt/pc/%)
// followed by digit nibbles and an 0x0f terminator. The iteration cap
// (size*10 bytes) and the error-count cap (50) bound the walk on
// malformed input, where the terminator nibble may never arrive.
func skipDimensionArray(r *byteReader, size int) {
	wantUnit := true
	count := 0
	errs := 0
	for i := 0; count < size && i < size*10 && errs <= 50; i++ {
		b, ok := r.peek()
		if !ok {
			return
		}
		r.skip(1)
		for _, nib := range [2]uint8{b >> 4, b & 0x0f} {
			if wantUnit {
				if nib <= 0x04 {
					wantUnit = false
				} else {
					errs++
				}
				continue
			}
			switch {
			case nib <= 0x0b: // digit, '.' or '-'
			case nib == 0x0f: // entry terminator
				wantUnit = true
				count++
			default:
				errs++
			}
		}
	}
}
