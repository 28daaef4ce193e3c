package mtef

// readNudgeV5 reads a v5 nudge pair: two 16-bit values, overridden by a
// following signed 16-bit pair when either value hits the 128 sentinel.
// The sentinel condition is "either" here but "both" in readNudgeV3; the
// two formats are intentionally asymmetric (see the Resolved Open
// Questions note in DESIGN.md).
func readNudgeV5(r *byteReader) (x, y int16) {
	b1 := r.u16()
	b2 := r.u16()
	if b1 == 128 || b2 == 128 {
		return r.i16(), r.i16()
	}
	return int16(b1), int16(b2)
}

// readNudgeV3 reads a v3 nudge pair: two bytes biased by 128, unless both
// equal 128, in which case a full signed 16-bit pair follows instead.
func readNudgeV3(r *byteReader) (x, y int16) {
	b1 := r.u8()
	b2 := r.u8()
	if b1 == 128 && b2 == 128 {
		return r.i16(), r.i16()
	}
	return int16(int(b1) - 128), int16(int(b2) - 128)
}

// readVariation reads a template's variation field: a single byte unless
// its high bit is set, in which case the low 7 bits combine with a second
// byte shifted into the high half.
func readVariation(r *byteReader) uint16 {
	b1 := r.u8()
	if b1&0x80 == 0 {
		return uint16(b1)
	}
	return uint16(b1&0x7f) | uint16(r.u8())<<8
}

// ceilDiv4 is the row/column separator array length: ceil((n+1)/4) bytes,
// each byte packing four 2-bit separator styles.
func ceilDiv4(n int) int {
	return (n + 1 + 3) / 4
}

// skipSeparators discards a packed 2-bit-per-entry separator array; the
// styles themselves (none/solid/dashed/dotted) are typography metadata
// this decoder does not retain.
func skipSeparators(r *byteReader, entries int) {
	r.skip(ceilDiv4(entries))
}
