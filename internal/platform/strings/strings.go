// Package strings holds the small string helpers module wiring and the CLI share
package strings

import std "strings"

// MustString returns s, panicking with "<name> is required" when s is blank
func MustString(s, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix turns " leet/ " into "/leet"; panics when nothing but slashes is left
func MustPrefix(s string) string {
	p := std.Trim(std.TrimSpace(s), "/")
	if p == "" {
		panic("route prefix is required")
	}
	return "/" + p
}

// NonBlank trims every entry of in and drops the blank ones, keeping order
func NonBlank(in []string) []string {
	out := in[:0:0]
	for _, s := range in {
		if s = std.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
