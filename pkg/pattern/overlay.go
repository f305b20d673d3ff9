package pattern

// Overlay delimiters. They are written into the canvas as literal
// characters; serializers turn them into highlight markup or strip them.
const (
	MarkerOpen  = "<poem>"
	MarkerClose = "</poem>"
)

// maxOverlayLines caps how many lines an overlay keeps legible.
const maxOverlayLines = 5

// Embed destructively writes the given text lines onto the finished canvas,
// wrapped in highlight delimiters. It is a no-op on empty input. When more
// than five lines are supplied, up to five distinct non-blank lines are
// selected by repeated picks (duplicates and blanks are skipped, so fewer
// may be kept). Lines are centered and spread vertically; writing truncates
// at the canvas width and unconditionally overwrites pattern glyphs.
func (p *Pattern) Embed(lines []string) {
	if len(lines) == 0 {
		return
	}

	if len(lines) > maxOverlayLines {
		var selected []string
		for i := 0; i < maxOverlayLines; i++ {
			line, ok := Pick(p.rng, lines)
			if ok && !containsLine(selected, line) && !isBlankLine(line) {
				selected = append(selected, line)
			}
		}
		lines = selected
	}

	spacing := max(3, p.height/(len(lines)+2))

	for i, line := range lines {
		if isBlankLine(line) {
			continue
		}

		y := (i + 1) * spacing
		if y >= p.height {
			break
		}

		marked := []rune(MarkerOpen + line + MarkerClose)
		startX := max(0, (p.width-len(marked))/2)

		for x := startX; x < p.width && x-startX < len(marked); x++ {
			p.canvas[y][x] = marked[x-startX]
		}
	}
}
