package pattern

import "unicode"

// unicodeBlock is a contiguous code-point range used as a palette source.
type unicodeBlock struct {
	name   string
	lo, hi rune
}

// priorityBlocks are the Unicode ranges favored for the glitch aesthetic,
// in fixed order (the block pick draws an index into this slice).
var priorityBlocks = []unicodeBlock{
	{"Box Drawing", 0x2500, 0x257F},
	{"Block Elements", 0x2580, 0x259F},
	{"Braille Patterns", 0x2800, 0x28FF},
	{"CJK Symbols and Punctuation", 0x3000, 0x303F},
	{"Geometric Shapes", 0x25A0, 0x25FF},
	{"Mathematical Operators", 0x2200, 0x22FF},
	{"Miscellaneous Technical", 0x2300, 0x23FF},
	{"Arrows", 0x2190, 0x21FF},
	{"Miscellaneous Symbols", 0x2600, 0x26FF},
}

// blockWindow bounds how far into a block the code-point pick may reach.
const blockWindow = 50

// BuildPalette returns an ordered working set of exactly count glyphs.
// The first count/2 come uniformly from the curated list; the remainder pick
// one of the priority Unicode blocks, then a code point within a window of
// at most blockWindow positions from the block start. Code points that are
// control characters, unassigned, or otherwise not displayable fall back to
// a curated pick, so the builder never fails and never returns fewer than
// count glyphs.
func BuildPalette(rng *RNG, count int) []rune {
	glyphs := make([]rune, 0, max(count, 0))

	for i := 0; i < count/2; i++ {
		g, _ := Pick(rng, curatedGlyphs)
		glyphs = append(glyphs, g)
	}

	for len(glyphs) < count {
		block, _ := Pick(rng, priorityBlocks)
		cp := rune(rng.Range(int(block.lo), min(int(block.hi), int(block.lo)+blockWindow)))
		if displayable(cp) {
			glyphs = append(glyphs, cp)
			continue
		}
		g, _ := Pick(rng, curatedGlyphs)
		glyphs = append(glyphs, g)
	}

	return glyphs
}

// displayable reports whether cp is a valid, assigned, non-control code
// point. Graphic covers letters, marks, numbers, punctuation, symbols and
// spaces; everything else (control, format, surrogate, private use,
// unassigned) takes the curated fallback.
func displayable(cp rune) bool {
	return utf8Valid(cp) && unicode.IsGraphic(cp)
}

func utf8Valid(cp rune) bool {
	return cp >= 0 && cp <= unicode.MaxRune && !(cp >= 0xD800 && cp <= 0xDFFF)
}
