// Package raw reads bootstrap settings straight from the environment
// nothing here may log: the logger itself is configured from these values
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Env is a prefixed view over environment variables, e.g. New().Prefix("LOG_")
type Env struct{ prefix string }

// New returns an unprefixed view
func New() Env { return Env{} }

// Prefix returns a view that prepends p to every key
func (e Env) Prefix(p string) Env { return Env{prefix: e.prefix + p} }

func (e Env) value(key string) string { return strings.TrimSpace(os.Getenv(e.prefix + key)) }

// Get returns the trimmed value or def when unset or blank
func (e Env) Get(key, def string) string {
	if v := e.value(key); v != "" {
		return v
	}
	return def
}

// GetBool accepts 1/0, true/false, yes/no, on/off in any case; anything else is def
func (e Env) GetBool(key string, def bool) bool {
	switch strings.ToLower(e.value(key)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

// GetInt returns a non-negative integer or def
func (e Env) GetInt(key string, def int) int {
	n, err := strconv.Atoi(e.value(key))
	if err != nil || n < 0 {
		return def
	}
	return n
}
