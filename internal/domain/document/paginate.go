package document

import (
	"strings"
	"unicode/utf8"
)

// Page layout budget, expressed in the units the PDF writer works with
// (millimeters on A4 with a monospaced 10pt face). MaxLineWidth is the
// equivalent character budget per line.
const (
	MaxLineWidth = 90
	LineHeight   = 5.0
	UsableHeight = 267.0
)

// Page is one laid-out page of wrapped lines.
type Page []string

// Paginate lays composed text out onto fixed-size pages.
//
// Explicit PageBreak markers are honored first: every section after the first
// starts a fresh page. Within a section lines are wrapped to MaxLineWidth and
// a vertical cursor advances by LineHeight per emitted line, inserting an
// implicit break whenever the next line would exceed UsableHeight. Lines are
// never dropped or reordered: concatenating all pages reproduces the wrapped
// line sequence exactly.
func Paginate(text string) []Page {
	var pages []Page
	current := Page{}
	cursor := 0.0

	flush := func() {
		pages = append(pages, current)
		current = Page{}
		cursor = 0.0
	}

	sections := strings.Split(text, PageBreak)
	for si, section := range sections {
		if si > 0 {
			flush()
		}
		for _, raw := range strings.Split(section, "\n") {
			for _, line := range WrapLine(raw, MaxLineWidth) {
				if cursor+LineHeight > UsableHeight {
					flush()
				}
				current = append(current, line)
				cursor += LineHeight
			}
		}
	}
	return append(pages, current)
}

// WrapLine breaks a single line into pieces of at most width characters,
// preferring word boundaries. An empty line stays a single empty line; a word
// longer than the width is split hard.
func WrapLine(line string, width int) []string {
	if utf8.RuneCountInString(line) <= width {
		return []string{line}
	}

	var out []string
	var b strings.Builder
	count := 0
	for _, word := range strings.Split(line, " ") {
		wlen := utf8.RuneCountInString(word)

		for wlen > width {
			// hard split: no boundary fits
			if count > 0 {
				out = append(out, b.String())
				b.Reset()
				count = 0
			}
			runes := []rune(word)
			out = append(out, string(runes[:width]))
			word = string(runes[width:])
			wlen = utf8.RuneCountInString(word)
		}

		switch {
		case count == 0:
			b.WriteString(word)
			count = wlen
		case count+1+wlen <= width:
			b.WriteByte(' ')
			b.WriteString(word)
			count += 1 + wlen
		default:
			out = append(out, b.String())
			b.Reset()
			b.WriteString(word)
			count = wlen
		}
	}
	if b.Len() > 0 || len(out) == 0 {
		out = append(out, b.String())
	}
	return out
}
