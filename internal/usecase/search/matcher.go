package search

import (
	"html"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Highlight markers wrapped around every matched span.
const (
	markOpen  = "<mark>"
	markClose = "</mark>"
)

// match reports whether text contains term as a case-insensitive substring
// and, when it does, returns a highlighted copy with every occurrence wrapped
// in the highlight marker. All emitted text is HTML-escaped; only the marker
// itself is markup. An empty or whitespace-only term never matches and the
// original text comes back unchanged.
//
// The scan walks the original text rune by rune so highlight spans always
// land on rune boundaries, even where lowercasing changes a rune's byte
// length.
func match(text, term string) (bool, string) {
	term = strings.TrimSpace(term)
	if term == "" || text == "" {
		return false, text
	}

	want := []rune(term)
	for i, r := range want {
		want[i] = unicode.ToLower(r)
	}

	var b strings.Builder
	found := false
	start := 0
	i := 0
	for i < len(text) {
		n, ok := foldPrefixLen(text[i:], want)
		if !ok {
			_, size := utf8.DecodeRuneInString(text[i:])
			i += size
			continue
		}
		found = true
		b.WriteString(html.EscapeString(text[start:i]))
		b.WriteString(markOpen)
		b.WriteString(html.EscapeString(text[i : i+n]))
		b.WriteString(markClose)
		i += n
		start = i
	}
	if !found {
		return false, text
	}
	b.WriteString(html.EscapeString(text[start:]))

	return true, b.String()
}

// foldPrefixLen reports whether s starts with the lowered rune sequence want
// and returns the byte length of that prefix within s.
func foldPrefixLen(s string, want []rune) (int, bool) {
	n := 0
	for _, w := range want {
		r, size := utf8.DecodeRuneInString(s[n:])
		if size == 0 {
			return 0, false
		}
		if unicode.ToLower(r) != w {
			return 0, false
		}
		n += size
	}
	return n, true
}
