package metrics

import (
	"strings"

	"github.com/abrick/brick/internal/lang"
	"github.com/abrick/brick/internal/model"
)

// CountLines classifies every line of src as code, comment or blank
// using the language's comment tokens. A line holding only whitespace is
// blank; a line holding only comment tokens (a line comment, or the
// inside of a block comment) is comment; everything else is code.
func CountLines(src []byte, tbl *lang.Table) model.LineStats {
	var stats model.LineStats
	lines := strings.Split(string(src), "\n")

	// Split yields one trailing empty element when the file ends with a
	// newline; that phantom line is not counted.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	inBlock := false
	var blockClose string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if inBlock {
			stats.Comment++
			if idx := strings.Index(trimmed, blockClose); idx >= 0 {
				inBlock = false
			}
			continue
		}

		if trimmed == "" {
			stats.Blank++
			continue
		}

		if hasLineComment(trimmed, tbl.LineComment) {
			stats.Comment++
			continue
		}

		if open, closeTok, ok := blockCommentAt(trimmed, tbl.BlockComment); ok {
			rest := trimmed[len(open):]
			if idx := strings.Index(rest, closeTok); idx >= 0 {
				// Closed on the same line; anything after the close
				// makes it a code line.
				if strings.TrimSpace(rest[idx+len(closeTok):]) != "" {
					stats.Code++
				} else {
					stats.Comment++
				}
			} else {
				stats.Comment++
				inBlock = true
				blockClose = closeTok
			}
			continue
		}

		stats.Code++
	}

	stats.Total = stats.Code + stats.Comment + stats.Blank
	return stats
}

func hasLineComment(trimmed string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}

func blockCommentAt(trimmed string, pairs [][2]string) (open, closeTok string, ok bool) {
	for _, pair := range pairs {
		if strings.HasPrefix(trimmed, pair[0]) {
			return pair[0], pair[1], true
		}
	}
	return "", "", false
}
