// Package normalize prepares input words for expansion and folds variants back
// Word pipeline
// 1 Sanitize drop control characters and invalid UTF-8
// 2 Unicode NFKC normalization
// 3 Case folding
// 4 Remove combining marks and format characters (ZWJ, ZWNJ, FEFF)
// 5 Width fold fullwidth to ASCII
// 6 Trim surrounding whitespace
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalizer is concurrency safe; transformer chains are pooled
type Normalizer struct{}

var chainPool = sync.Pool{
	New: func() any {
		// order mirrors the documented pipeline
		return transform.Chain(
			norm.NFKC,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Mn)),
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
		)
	},
}

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Normalize returns the prepared form of word
func (n *Normalizer) Normalize(word string) string {
	if word == "" {
		return ""
	}
	word = Sanitize(word)

	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, word)
	tr.Reset()
	chainPool.Put(tr)

	return strings.TrimSpace(ns)
}

// Words normalizes every word. The result lines up with the input index for index:
// a word that normalizes to "" stays, and expands to the single variant ""
func (n *Normalizer) Words(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = n.Normalize(w)
	}
	return out
}

// Fold maps the lookalikes of the default pack back to their letters
// Fold(v) == w for every variant v the default pack expands from a digit-free word w
func Fold(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '4', '@':
			b.WriteRune('a')
		case '0':
			b.WriteRune('o')
		case '1', '!':
			b.WriteRune('i')
		case '3':
			b.WriteRune('e')
		case '5', '$':
			b.WriteRune('s')
		case '7':
			b.WriteRune('t')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
