package pattern

// curatedGlyphs is the fixed list of box-drawing, block, geometric and
// terminal-graphics characters the palette builder samples from. The length
// of this list feeds the RNG modulus, so edits change seeded output.
var curatedGlyphs = []rune{
	'█', '▓', '▒', '░', '▀', '▄', '▌', '▐', '■', '□', '▪', '▫', '▬', '▭', '▮',
	'▯', '▰', '▱', '▲', '△', '▴', '▵', '▶', '▷', '▸', '▹', '►', '▻', '▼', '▽',
	'▾', '▿', '◀', '◁', '◂', '◃', '◄', '◅', '◆', '◇', '◈', '◉', '◊', '○', '◌',
	'◍', '◎', '●', '◐', '◑', '◒', '◓', '◔', '◕', '◖', '◗', '◘', '◙', '◚', '◛',
	'◜', '◝', '◞', '◟', '◠', '◡', '◢', '◣', '◤', '◥', '◦', '◧', '◨', '◩', '◪',
	'◫', '◬', '◭', '◮', '◯', '│', '┃', '┄', '┅', '┆', '┇', '┈', '┉', '┊', '┋',
	'┌', '┍', '┎', '┏', '┐', '┑', '┒', '┓', '└', '┕', '┖', '┗', '┘', '┙', '┚',
	'┛', '├', '┝', '┞', '┟', '┠', '┡', '┢', '┣', '┤', '┥', '┦', '┧', '┨', '┩',
	'┪', '┫', '┬', '┭', '┮', '┯', '┰', '┱', '┲', '┳', '┴', '┵', '┶', '┷', '┸',
	'┹', '┺', '┻', '┼', '┽', '┾', '┿', '╀', '╁', '╂', '╃', '╄', '╅', '╆', '╇',
	'╈', '╉', '╊', '╋', '╌', '╍', '╎', '╏', '═', '║', '╒', '╓', '╔', '╕', '╖',
	'╗', '╘', '╙', '╚', '╛', '╜', '╝', '╞', '╟', '╠', '╡', '╢', '╣', '╤', '╥',
	'╦', '╧', '╨', '╩', '╪', '╫', '╬', '╭', '╮', '╯', '╰', '╱', '╲', '╳', '╴',
	'╵', '╶', '╷', '╸', '╹', '╺', '╻', '╼', '╽', '╾', '╿', '⎕', '⌧', '⌐', '¬',
	'¦', '¯', '‾', '⎺', '⎻', '⎼', '⎽', '―', '⎯', '⎰', '⎱',
}
