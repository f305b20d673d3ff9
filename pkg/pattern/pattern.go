package pattern

import (
	"math"
	"strings"
	"time"
)

// Mode selects the rendering strategy. It is fixed at construction and
// dispatched by Draw; it is never swapped afterwards.
type Mode int

const (
	// ModeSymmetric rasterizes the active wallpaper group's tiling.
	ModeSymmetric Mode = iota

	// ModeDenseRandom bypasses the symmetry rules and stamps glyphs at
	// uniformly random coordinates.
	ModeDenseRandom
)

// Default construction parameters.
const (
	// DefaultPaletteSize is the glyph count of the initial working palette,
	// and of the lazy rebuild when Draw finds the palette empty.
	DefaultPaletteSize = 100

	// DefaultDensity is the canvas-area fraction of stamps in dense mode.
	DefaultDensity = 1.0

	// jitterAmount is the half-width of the uniform positional jitter
	// applied to every stamped instance.
	jitterAmount = 0.2

	// fallbackGlyph substitutes for a failed palette pick.
	fallbackGlyph = '█'
)

// blank is the canvas fill character.
const blank = ' '

// Pattern generates wallpaper-group tilings on a rune canvas. It owns its
// RNG register and canvas exclusively and is not safe for concurrent use.
type Pattern struct {
	width  int
	height int
	seed   int64

	rng          *RNG
	group        Group
	rules        Rules
	baseRotation float64
	mode         Mode
	density      float64
	palette      []rune
	canvas       [][]rune
}

// Option configures a Pattern at construction.
type Option func(*options)

type options struct {
	seed        int64
	group       Group
	groupSet    bool
	mode        Mode
	density     float64
	paletteSize int
}

// WithSeed fixes the RNG seed. Without it the current Unix time is used,
// so output differs run to run.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithGroup selects the wallpaper group explicitly. The construction-time
// random group draw still happens (the RNG consumption sequence is fixed);
// the chosen group then replaces the random one.
func WithGroup(g Group) Option {
	return func(o *options) { o.group = g; o.groupSet = true }
}

// WithMode selects the rendering mode.
func WithMode(m Mode) Option {
	return func(o *options) { o.mode = m }
}

// WithDensity sets the dense-mode stamp count as a fraction of the canvas
// area. Ignored in symmetric mode.
func WithDensity(f float64) Option {
	return func(o *options) { o.density = f }
}

// WithPaletteSize sets the size of the initial glyph palette.
func WithPaletteSize(n int) Option {
	return func(o *options) { o.paletteSize = n }
}

// New creates a pattern generator for a width×height character canvas.
// Construction consumes a fixed RNG sequence: one draw to select a random
// group, one draw for the base rotation, then the draws of the initial
// palette build. Widths and heights below 1 are clamped to 1.
func New(width, height int, opts ...Option) *Pattern {
	o := options{
		seed:        time.Now().Unix(),
		density:     DefaultDensity,
		paletteSize: DefaultPaletteSize,
	}
	for _, opt := range opts {
		opt(&o)
	}

	p := &Pattern{
		width:   max(width, 1),
		height:  max(height, 1),
		seed:    o.seed,
		rng:     NewRNG(o.seed),
		mode:    o.mode,
		density: o.density,
	}

	g, _ := Pick(p.rng, Groups)
	p.baseRotation = p.rng.Float() * 2 * math.Pi
	p.palette = BuildPalette(p.rng, o.paletteSize)

	if o.groupSet {
		g = o.group
	}
	p.SetGroup(g)

	p.canvas = newCanvas(p.width, p.height)
	return p
}

func newCanvas(width, height int) [][]rune {
	c := make([][]rune, height)
	for y := range c {
		row := make([]rune, width)
		for x := range row {
			row[x] = blank
		}
		c[y] = row
	}
	return c
}

// Width returns the canvas width in characters.
func (p *Pattern) Width() int { return p.width }

// Height returns the canvas height in characters.
func (p *Pattern) Height() int { return p.height }

// Seed returns the seed the RNG register started from.
func (p *Pattern) Seed() int64 { return p.seed }

// Group returns the active wallpaper group.
func (p *Pattern) Group() Group { return p.group }

// Rules returns a copy of the active rule record.
func (p *Pattern) Rules() Rules { return p.rules }

// SetGroup replaces the active group and every rule field atomically with
// the table record for g. No field of the previous group carries over.
// Unknown groups degrade to the default rectangular rules.
func (p *Pattern) SetGroup(g Group) {
	p.group = g
	p.rules = RulesFor(g)
}

// RandomGroup draws a new group uniformly from the 17 and installs its
// rules. Consumes one draw.
func (p *Pattern) RandomGroup() Group {
	g, _ := Pick(p.rng, Groups)
	p.SetGroup(g)
	return g
}

// SetPaletteSize rebuilds the working glyph palette with n glyphs,
// consuming RNG draws.
func (p *Pattern) SetPaletteSize(n int) {
	p.palette = BuildPalette(p.rng, n)
}

// SetDensity replaces the dense-mode stamp density multiplier. It consumes
// no randomness and has no effect in symmetric mode.
func (p *Pattern) SetDensity(f float64) {
	p.density = f
}

// Rows returns the canvas as one string per row. Overlay delimiters are
// still embedded as literal markers; downstream serializers convert them to
// presentation markup or strip them.
func (p *Pattern) Rows() []string {
	rows := make([]string, p.height)
	for y, row := range p.canvas {
		rows[y] = string(row)
	}
	return rows
}

// Draw clears the canvas and rasterizes it according to the pattern's mode.
// It resets the canvas completely; nothing from a previous pass is reused.
// Repeated calls consume further RNG state, so Draw is deterministic as a
// function of (seed, call sequence) but not idempotent.
func (p *Pattern) Draw() {
	p.canvas = newCanvas(p.width, p.height)

	if len(p.palette) == 0 {
		p.palette = BuildPalette(p.rng, DefaultPaletteSize)
	}

	if p.mode == ModeDenseRandom {
		p.drawDense()
		return
	}
	p.drawSymmetric()
}

// drawSymmetric stamps glyph instances over an overscan grid of candidate
// cells. Both grid axes are sized from the canvas height; that asymmetry is
// intentional (it matches the observed behavior this engine reproduces) and
// is pinned by tests.
func (p *Pattern) drawSymmetric() {
	r := p.rules
	if r.XSpacing <= 0 || math.IsNaN(r.XSpacing) {
		r.XSpacing = baseSpacing
	}
	if r.YSpacing <= 0 || math.IsNaN(r.YSpacing) {
		r.YSpacing = baseSpacing
	}

	cols := int(float64(p.height)/r.XSpacing) + 2
	rows := int(float64(p.height)/r.YSpacing) + 2

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			posX := (float64(x) - float64(cols)/2 + (float64(y)-float64(rows)/2)*r.Shear) * r.XSpacing
			posY := (float64(y) - float64(rows)/2) * r.YSpacing

			cellRotation := r.RotateRule*float64(x) + r.RowRotateRule*float64(y) + r.RotationOffset

			for i := 0; i < r.InstancesPerStep; i++ {
				rot := float64(i) * (2.0 * math.Pi / float64(r.InstancesPerStep))

				passes := 1
				if r.MirrorInstances {
					passes = 2
				}
				for pass := 0; pass < passes; pass++ {
					// Flip decisions shift the cell anchor in place, so
					// they compound across instances of the same cell.
					xFlipped := false
					if r.XFlip && x%2 == 0 {
						xFlipped = true
						posX += r.XSpacing
					}

					yFlipped := false
					if (r.YFlip && x%2 == 0) ||
						(r.YFlipPairs && (x/2)%2 == 0) ||
						(r.YFlipRows && y%2 == 0) {
						yFlipped = true
						if r.YFlipRows {
							posY += r.YSpacing
						}
					}

					glyph, ok := Pick(p.rng, p.palette)
					if !ok {
						glyph = fallbackGlyph
					}

					finalX, finalY := posX, posY
					if rot != 0 || cellRotation != 0 {
						total := rot + cellRotation
						cos, sin := math.Cos(total), math.Sin(total)
						finalX = posX*cos - posY*sin
						finalY = posX*sin + posY*cos
					}

					if xFlipped {
						finalX = -finalX
					}
					if yFlipped {
						finalY = -finalY
					}

					finalX = p.jitter(finalX, jitterAmount)
					finalY = p.jitter(finalY, jitterAmount)

					cx, cy := p.toCanvas(finalX, finalY)
					p.canvas[cy][cx] = glyph
				}
			}
		}
	}
}

// drawDense stamps width·height·density glyphs at uniformly random
// coordinates, ignoring the symmetry rules entirely.
func (p *Pattern) drawDense() {
	count := int(float64(p.width*p.height) * p.density)
	for i := 0; i < count; i++ {
		x := p.rng.Intn(p.width)
		y := p.rng.Intn(p.height)
		glyph, ok := Pick(p.rng, p.palette)
		if !ok {
			glyph = fallbackGlyph
		}
		p.canvas[y][x] = glyph
	}
}

// jitter perturbs v uniformly within [v-amount, v+amount).
func (p *Pattern) jitter(v, amount float64) float64 {
	return v - amount + 2*amount*p.rng.Float()
}

// toCanvas maps a pattern-space point to canvas coordinates: rotate by the
// fixed base rotation about the canvas center, translate by the center
// offset, truncate toward zero and clamp into bounds. Clamping guarantees
// every write lands inside the canvas regardless of spacing or shear.
func (p *Pattern) toCanvas(x, y float64) (int, int) {
	centerX := p.width / 2
	centerY := p.height / 2

	cos, sin := math.Cos(p.baseRotation), math.Sin(p.baseRotation)
	rotX := x*cos - y*sin
	rotY := x*sin + y*cos

	cx := clamp(int(float64(centerX)+rotX), 0, p.width-1)
	cy := clamp(int(float64(centerY)+rotY), 0, p.height-1)
	return cx, cy
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Generate draws the pattern and embeds overlay lines. When lines is empty
// and corpus is not, up to two distinct lines are drawn from corpus first.
// This mirrors the convenience flow consumers use for animation frames.
func (p *Pattern) Generate(lines, corpus []string) {
	p.Draw()

	if len(lines) == 0 && len(corpus) > 0 {
		var selected []string
		for i := 0; i < 2; i++ {
			line, ok := Pick(p.rng, corpus)
			if ok && line != "" && !containsLine(selected, line) {
				selected = append(selected, line)
			}
		}
		lines = selected
	}

	if len(lines) > 0 {
		p.Embed(lines)
	}
}

func containsLine(lines []string, line string) bool {
	for _, l := range lines {
		if l == line {
			return true
		}
	}
	return false
}

// isBlankLine reports whether a line is empty or whitespace only.
func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}
