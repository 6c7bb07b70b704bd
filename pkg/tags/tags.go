// Package tags scans note and todo text for #word tokens.
package tags

import "strings"

// Token is a single #word occurrence in a piece of text.
type Token struct {
	Text  string // the word without the leading '#'
	Start int    // byte offset of the '#'
}

// Extract walks the text and collects every '#' followed by one or more word
// characters (letters, digits, underscore). Tokens come back in
// first-occurrence order and duplicates are kept.
func Extract(text string) []Token {
	var tokens []Token
	for i := 0; i < len(text); {
		if text[i] != '#' {
			i++
			continue
		}
		j := i + 1
		for j < len(text) && isWord(text[j]) {
			j++
		}
		if j == i+1 {
			// Bare '#', no word characters after it.
			i++
			continue
		}
		tokens = append(tokens, Token{Text: text[i+1 : j], Start: i})
		i = j
	}
	return tokens
}

// Values returns the token words, case preserved.
func Values(text string) []string {
	tokens := Extract(text)
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.Text)
	}
	return out
}

// Lowered returns the token words lowercased.
func Lowered(text string) []string {
	out := Values(text)
	for i := range out {
		out[i] = strings.ToLower(out[i])
	}
	return out
}

// Strip removes every token from the text, collapsing the whitespace left
// behind. Stripping is idempotent: Extract(Strip(s)) is always empty.
func Strip(text string) string {
	tokens := Extract(text)
	if len(tokens) == 0 {
		return strings.Join(strings.Fields(text), " ")
	}
	var b strings.Builder
	last := 0
	for _, t := range tokens {
		b.WriteString(text[last:t.Start])
		last = t.Start + 1 + len(t.Text)
	}
	b.WriteString(text[last:])
	return strings.Join(strings.Fields(b.String()), " ")
}

func isWord(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_':
		return true
	}
	return false
}
