package mtef

// v3 embellishment codes. The numbering starts at 2 and follows the v3
// wire format's own table; v3 has no triple prime and stops before the
// underscript repertoire v5 adds.
const (
	embV3Dot EmbellType = iota + 2
	embV3DDot
	embV3TDot
	embV3Prime
	embV3DPrime
	embV3BPrime
	embV3Tilde
	embV3Hat
	embV3Not
	embV3RArrow
	embV3LArrow
	embV3BArrow
	embV3R1Arrow
	embV3L1Arrow
	embV3MBar
	embV3OBar
	embV3Frown
	embV3Smile
)

var embellTableV3 = map[EmbellType]string{
	embV3Dot:    `\dot`,
	embV3DDot:   `\ddot`,
	embV3TDot:   `\dddot`,
	embV3Prime:  `'`,
	embV3DPrime: `''`,
	embV3BPrime: `^\backprime`,
	embV3Tilde:  `\tilde`,
	embV3Hat:    `\hat`,
	embV3Not:    `\not`,
	embV3RArrow: `\overrightarrow`,
	embV3LArrow: `\overleftarrow`,
	embV3BArrow: `\overleftrightarrow`,
	// Single-hook arrows have no dedicated LaTeX primitive; fall back to
	// the plain directional arrow.
	embV3R1Arrow: `\overrightarrow`,
	embV3L1Arrow: `\overleftarrow`,
	// Mid-height bar has no dedicated primitive either; reuse overline.
	embV3MBar:  `\overline`,
	embV3OBar:  `\overline`,
	embV3Frown: `\frown`,
	embV3Smile: `\smile`,
}

// v5 embellishment codes, numbered from 2 per the v5 wire format,
// extended with the diagonal-cancel and underscript codes v5 adds.
const (
	embV5Dot1 EmbellType = iota + 2
	embV5Dot2
	embV5Dot3
	embV5Prime1
	embV5Prime2
	embV5Prime3
	embV5BPrime
	embV5Tilde
	embV5Hat
	embV5Not
	embV5RArrow
	embV5LArrow
	embV5BArrow
	embV5R1Arrow
	embV5L1Arrow
	embV5MBar
	embV5OBar
	embV5Frown
	embV5Smile
	embV5XBars
	embV5UpBar
	embV5DownBar
	embV5Dot4
	embV5U1Dot
	embV5U2Dot
	embV5U3Dot
	embV5U4Dot
	embV5UBar
	embV5UTilde
	embV5UFrown
	embV5USmile
	embV5URArrow
	embV5ULArrow
	embV5UBArrow
	embV5UR1Arrow
	embV5UL1Arrow
)

var embellTableV5 = map[EmbellType]string{
	embV5Dot1:    `\dot`,
	embV5Dot2:    `\ddot`,
	embV5Dot3:    `\dddot`,
	embV5Prime1:  `'`,
	embV5Prime2:  `''`,
	embV5Prime3:  `'''`,
	embV5BPrime:  `^\backprime`,
	embV5Tilde:   `\tilde`,
	embV5Hat:     `\hat`,
	embV5Not:     `\not`,
	embV5RArrow:  `\overrightarrow`,
	embV5LArrow:  `\overleftarrow`,
	embV5BArrow:  `\overleftrightarrow`,
	embV5R1Arrow: `\overrightarrow`,
	embV5L1Arrow: `\overleftarrow`,
	embV5MBar:    `\overline`,
	embV5OBar:    `\overline`,
	embV5Frown:   `\frown`,
	embV5Smile:   `\smile`,
	// Diagonal/cancellation marks have no direct LaTeX equivalent without
	// extra packages; approximate with the closest stock primitive.
	embV5XBars:    `\cancel`,
	embV5UpBar:    `\nearrow`,
	embV5DownBar:  `\searrow`,
	embV5Dot4:     `\ddddot`,
	embV5U1Dot:    `\underdot`,
	embV5U2Dot:    `\underddot`,
	embV5U3Dot:    `\underdddot`,
	embV5U4Dot:    `\underddddot`,
	embV5UBar:     `\underline`,
	embV5UTilde:   `\undertilde`,
	embV5UFrown:   `\underfrown`,
	embV5USmile:   `\undersmile`,
	embV5URArrow:  `\underrightarrow`,
	embV5ULArrow:  `\underleftarrow`,
	embV5UBArrow:  `\underleftrightarrow`,
	embV5UR1Arrow: `\underrightarrow`,
	embV5UL1Arrow: `\underleftarrow`,
}

func embellishmentTable(version uint8) map[EmbellType]string {
	if version == 3 {
		return embellTableV3
	}
	return embellTableV5
}
