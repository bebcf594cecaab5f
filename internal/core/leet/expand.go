package leet

import "strings"

// Expand returns every variant of word under dict in odometer order
// The leftmost character varies slowest. Identical variants are kept.
// An empty word yields a single empty string; a nil dict yields just word.
// A key mapped to an empty set yields no variants at all
func Expand(word string, dict Dictionary) []string {
	sets := positions(word, dict)
	total := product(sets)
	out := make([]string, 0, min(total, maxPrealloc))
	if total == 0 {
		return out
	}

	// idx[i] is the current choice for position i
	idx := make([]int, len(sets))
	var b strings.Builder
	b.Grow(len(word))
	for {
		b.Reset()
		for i, set := range sets {
			b.WriteRune(set[idx[i]])
		}
		out = append(out, b.String())

		// advance rightmost first, carry leftwards
		i := len(sets) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(sets[i]) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return out
		}
	}
}

// Count returns how many variants Expand would produce without building them
// Saturates at the max int instead of overflowing
func Count(word string, dict Dictionary) int {
	return product(positions(word, dict))
}

func positions(word string, dict Dictionary) [][]rune {
	sets := make([][]rune, 0, len(word))
	for _, r := range word {
		sets = append(sets, dict.Lookup(r))
	}
	return sets
}

const (
	maxInt      = int(^uint(0) >> 1)
	maxPrealloc = 1 << 20
)

func product(sets [][]rune) int {
	n := 1
	for _, s := range sets {
		if len(s) == 0 {
			return 0
		}
		if n > maxInt/len(s) {
			n = maxInt
			continue
		}
		n *= len(s)
	}
	return n
}
