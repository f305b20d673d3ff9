// Package poems loads the text corpus used for pattern overlays.
//
// The corpus is an external collaborator of the pattern engine: lines are
// opaque strings handed to Embed, and a missing or unreadable corpus means
// the overlay step is skipped while the pattern still renders. Loading
// helpers here return errors for the CLI to report; DefaultLines is the
// built-in fallback corpus.
package poems

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/tessella/tessella/pkg/errors"
)

// DefaultLines is the built-in overlay corpus used when no poem files are
// available.
var DefaultLines = []string{
	"digital whispers dance across empty space",
	"fractured geometry of forgotten dreams",
	"pattern logic emerges from chaos",
	"echoes of silicon in patterns unfold",
	"symmetry breaks at the edge of perception",
	"terminal beauty in unicode spaces",
	"glyphs arrange like constellations",
	"digital artifacts reveal hidden truths",
	"characters drift in mathematical seas",
	"structured randomness tells a story",
}

// headerLines is the number of leading lines (theme plus separator) each
// poem file carries before its content.
const headerLines = 2

// LoadFile reads all non-empty lines from a single text file.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "reading poem file %s", path)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "reading poem file %s", path)
	}
	return lines, nil
}

// LoadDir collects content lines from every poem_*.txt file in dir,
// skipping each file's header lines and blanks. Files that fail to read are
// skipped; an error is returned only when the directory itself is
// unreadable or yields no lines at all.
func LoadDir(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "poem_*.txt"))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scanning poem directory %s", dir)
	}

	var lines []string
	for _, path := range matches {
		fileLines, err := LoadFile(path)
		if err != nil {
			continue
		}
		if len(fileLines) <= headerLines {
			continue
		}
		for _, line := range fileLines[headerLines:] {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				lines = append(lines, trimmed)
			}
		}
	}

	if len(lines) == 0 {
		return nil, errors.New(errors.ErrCodeFileNotFound, "no poem lines found in %s", dir)
	}
	return lines, nil
}

// Corpus returns overlay lines from dir, falling back to DefaultLines when
// the directory has none. It never fails.
func Corpus(dir string) []string {
	if dir != "" {
		if lines, err := LoadDir(dir); err == nil {
			return lines
		}
	}
	return DefaultLines
}
