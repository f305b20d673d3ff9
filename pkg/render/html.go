package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/tessella/tessella/pkg/pattern"
)

// HTMLOption configures HTML rendering via [HTML].
type HTMLOption func(*htmlRenderer)

type htmlRenderer struct {
	title string
	dark  bool
}

// WithHTMLTitle sets the page title.
func WithHTMLTitle(title string) HTMLOption {
	return func(r *htmlRenderer) { r.title = title }
}

// WithHTMLDark renders white glyphs on a black background instead of the
// default black on white.
func WithHTMLDark() HTMLOption {
	return func(r *htmlRenderer) { r.dark = true }
}

// HTML renders the grid as a standalone monospace HTML page. Overlay
// delimiters become highlighted spans; all other glyphs are escaped
// verbatim.
func HTML(rows []string, opts ...HTMLOption) string {
	r := htmlRenderer{title: "Unicode Wallpaper Pattern"}
	for _, opt := range opts {
		opt(&r)
	}

	fg, bg := "#000", "#fff"
	if r.dark {
		fg, bg = "#fff", "#000"
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("    <meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "    <title>%s</title>\n", html.EscapeString(r.title))
	b.WriteString("    <style>\n")
	fmt.Fprintf(&b, "        body { background-color: %s; color: %s; margin: 0; padding: 0; }\n", bg, fg)
	b.WriteString("        .pattern { font-family: monospace; white-space: pre; line-height: 1; font-size: 14px; }\n")
	b.WriteString("        .pattern .poem { background-color: #ff0; color: #000; }\n")
	b.WriteString("    </style>\n</head>\n<body>\n<div class=\"pattern\">")
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(highlightLine(row))
	}
	b.WriteString("\n</div>\n</body>\n</html>\n")
	return b.String()
}

// highlightLine escapes a grid row and converts overlay delimiters into
// highlight spans. The delimiters are escaped by the initial pass, so the
// replacement matches their escaped form.
func highlightLine(row string) string {
	escaped := html.EscapeString(row)
	escaped = strings.ReplaceAll(escaped, html.EscapeString(pattern.MarkerOpen), `<span class="poem">`)
	escaped = strings.ReplaceAll(escaped, html.EscapeString(pattern.MarkerClose), `</span>`)
	return escaped
}
