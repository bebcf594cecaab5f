// Package leet expands words into every leetspeak variant allowed by a substitution dictionary
package leet

import (
	"sort"
	"unicode/utf8"

	perr "leetgen/internal/platform/errors"
)

// Dictionary maps a character to its ordered substitution set
// A set may include the character itself. Treat as read-only once handed to Expand
type Dictionary map[rune][]rune

// Lookup returns the substitution set for r, or the singleton {r} when r has no entry
func (d Dictionary) Lookup(r rune) []rune {
	if set, ok := d[r]; ok {
		return set
	}
	return []rune{r}
}

// FromStrings builds a Dictionary from the wire form where keys and values are one-character strings
func FromStrings(in map[string][]string) (Dictionary, error) {
	d := make(Dictionary, len(in))
	for k, vs := range in {
		key, ok := single(k)
		if !ok {
			return nil, perr.WithField(perr.InvalidArgf("dictionary key %q must be a single character", k), k)
		}
		set := make([]rune, 0, len(vs))
		for _, v := range vs {
			r, ok := single(v)
			if !ok {
				return nil, perr.WithField(
					perr.InvalidArgf("dictionary value %q for key %q must be a single character", v, k), k)
			}
			set = append(set, r)
		}
		d[key] = set
	}
	return d, nil
}

// Strings converts d back into the wire form
func (d Dictionary) Strings() map[string][]string {
	out := make(map[string][]string, len(d))
	for k, set := range d {
		vs := make([]string, len(set))
		for i, r := range set {
			vs[i] = string(r)
		}
		out[string(k)] = vs
	}
	return out
}

// Validate reports the first key (in key order) mapped to an empty substitution set
// Expand accepts such dictionaries and yields zero variants for any word using that key,
// so edges that take dictionaries from users should call this first
func (d Dictionary) Validate() error {
	for _, k := range d.Keys() {
		if len(d[k]) == 0 {
			return perr.WithField(
				perr.Validationf("dictionary key %q has an empty substitution set", string(k)),
				string(k))
		}
	}
	return nil
}

// Merge returns a new Dictionary with other's entries layered over d
func (d Dictionary) Merge(other Dictionary) Dictionary {
	out := make(Dictionary, len(d)+len(other))
	for k, v := range d {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Keys returns the dictionary keys in ascending code point order
func (d Dictionary) Keys() []rune {
	keys := make([]rune, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// single decodes s when it is exactly one well-formed rune. U+FFFD written out is
// accepted; a stray byte that only decodes to it is not
func single(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || (r == utf8.RuneError && size == 1) {
		return 0, false
	}
	return r, true
}
