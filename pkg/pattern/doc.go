// Package pattern generates 2D tiling patterns for the 17 mathematical
// wallpaper groups on a character grid.
//
// A Pattern owns a width×height rune canvas and a seeded deterministic
// random number generator. Drawing iterates an overscan grid of candidate
// cells, applies the active group's instancing, flip, rotation and shear
// rules plus a small positional jitter, maps each instance into canvas
// space and stamps a glyph from the working palette. Later writes overwrite
// earlier ones.
//
// All randomness flows through the single RNG register, so a fixed
// (width, height, seed, group, call sequence) reproduces the exact same
// grid byte for byte:
//
//	p := pattern.New(80, 40, pattern.WithSeed(42), pattern.WithGroup(pattern.GroupP6M))
//	p.Draw()
//	p.Embed([]string{"symmetry breaks at the edge of perception"})
//	rows := p.Rows()
//
// The package never returns errors from drawing: degenerate inputs degrade
// to safe defaults (see RNG, BuildPalette and Draw for the specific
// contracts). A Pattern is not safe for concurrent use; callers that
// regenerate on demand must serialize Draw/Embed per instance.
package pattern
