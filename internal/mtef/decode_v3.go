package mtef

// decodeV3 reads the v3 record stream in r. Every record's type and
// option flags share a single tag byte (low nibble = type, high nibble =
// flags); sub-readers that need their own option bits rewind one byte and
// re-parse the tag so they can apply the v3-specific flag meanings
// (xfLMOVE/xfLSPACE/xfRULER/xfNULL for LINE, xfAUTO/xfEMBELL/xfLMOVE for
// CHAR) instead of the shared layout decodeV5 uses.
func decodeV3(r *byteReader) []*Node {
	var nodes []*Node
	for r.ok() {
		if r.remaining() == 0 {
			break
		}
		tag := r.u8()
		if !r.ok() {
			break
		}
		t := recordType(tag & 0x0f)
		switch t {
		case recEnd:
			nodes = append(nodes, &Node{Kind: KindEnd})
			continue
		case recLine, recChar, recTmpl, recPile, recMatrix, recEmbell:
			r.pos--
		case recSize:
			r.skip(2) // lsize, dsize
			continue
		case recFull:
			nodes = append(nodes, &Node{Kind: KindFull})
			continue
		case recSub:
			nodes = append(nodes, &Node{Kind: KindSub})
			continue
		case recSub2:
			nodes = append(nodes, &Node{Kind: KindSub2})
			continue
		case recSym:
			nodes = append(nodes, &Node{Kind: KindSym})
			continue
		case recSubSym:
			nodes = append(nodes, &Node{Kind: KindSubSym})
			continue
		default:
			r.fail()
			return nodes
		}

		switch t {
		case recLine:
			nodes = append(nodes, decodeLineV3(r))
		case recChar:
			nodes = append(nodes, decodeCharV3(r))
		case recTmpl:
			nodes = append(nodes, decodeTmplV3(r))
		case recPile:
			nodes = append(nodes, decodePileV3(r))
		case recMatrix:
			nodes = append(nodes, decodeMatrixV3(r))
		case recEmbell:
			nodes = append(nodes, decodeEmbellV3(r))
		}
		if !r.ok() {
			break
		}
	}
	return nodes
}

func decodeLineV3(r *byteReader) *Node {
	tag := r.u8()
	options := (tag & 0xf0) >> 4
	p := &LinePayload{}
	if options&xfLMOVE != 0 {
		p.HasNudge = true
		p.NudgeX, p.NudgeY = readNudgeV3(r)
	}
	if options&xfLSPACE != 0 {
		p.LineSpace = r.u8()
	}
	if options&xfRULER != 0 {
		readRulerV3(r)
	}
	if options&xfNULL != 0 {
		p.Null = true
	}
	return &Node{Kind: KindLine, Line: p}
}

// readRulerV3 consumes an embedded v3 RULER record: its own tag byte
// (validated) and a conditional nudge. The remainder of the ruler body is
// unspecified and left unread rather than guessed at.
func readRulerV3(r *byteReader) {
	tag := r.u8()
	if recordType(tag&0x0f) != recRuler {
		r.fail()
		return
	}
	if (tag&0xf0)>>4&xfLMOVE != 0 {
		readNudgeV3(r)
	}
}

func decodeCharV3(r *byteReader) *Node {
	tag := r.u8()
	options := (tag & 0xf0) >> 4
	p := &CharPayload{}
	if options&xfLMOVE != 0 {
		p.HasNudge = true
		p.NudgeX, p.NudgeY = readNudgeV3(r)
	}
	p.Typeface = int8(int(r.u8()) - 128)
	p.MTCode = r.u16()
	return &Node{Kind: KindChar, Char: p}
}

func decodeTmplV3(r *byteReader) *Node {
	tag := r.u8()
	options := (tag & 0xf0) >> 4
	p := &TmplPayload{}
	if options&xfLMOVE != 0 {
		p.HasNudge = true
		p.NudgeX, p.NudgeY = readNudgeV3(r)
	}
	selector := r.u8()
	variation := readVariation(r)
	p.Kind = templateKindFromV3(selector, variation)
	p.Variation = normalizeVariationV3(p.Kind, variation)
	p.Options = r.u8()
	return &Node{Kind: KindTmpl, Tmpl: p}
}

func decodePileV3(r *byteReader) *Node {
	tag := r.u8()
	options := (tag & 0xf0) >> 4
	p := &PilePayload{}
	if options&xfLMOVE != 0 {
		p.HasNudge = true
		p.NudgeX, p.NudgeY = readNudgeV3(r)
	}
	p.HAlign = r.u8()
	p.VAlign = r.u8()
	if options&xfRULER != 0 {
		readRulerV3(r)
	}
	return &Node{Kind: KindPile, Pile: p}
}

func decodeMatrixV3(r *byteReader) *Node {
	tag := r.u8()
	options := (tag & 0xf0) >> 4
	p := &MatrixPayload{}
	if options&xfLMOVE != 0 {
		p.HasNudge = true
		p.NudgeX, p.NudgeY = readNudgeV3(r)
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

func decodeEmbellV3(r *byteReader) *Node {
	tag := r.u8()
	options := (tag & 0xf0) >> 4
	p := &EmbellPayload{}
	if options&xfLMOVE != 0 {
		p.HasNudge = true
		p.NudgeX, p.NudgeY = readNudgeV3(r)
	}
	p.Type = EmbellType(r.u8())
	return &Node{Kind: KindEmbell, Embell: p}
}
