// Package config reads service settings from prefixed environment variables
// Bad values never stop the process silently: they are logged and replaced by the default,
// except where a wrong value would change behaviour in a way nobody asked for (enums, ports)
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"leetgen/internal/platform/logger"
)

// Conf is a namespaced view over the environment, e.g. New().Prefix("CORE_EXPAND_")
type Conf struct{ prefix string }

// New returns the unprefixed root view
func New() Conf { return Conf{} }

// Prefix returns a child view with p appended to the prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) lookup(k string) string { return strings.TrimSpace(os.Getenv(c.key(k))) }

// may parses the value at k, falling back to def when it is unset or unparsable
func may[T any](c Conf, k string, def T, parse func(string) (T, error)) T {
	s := c.lookup(k)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Named("config").Warn().
			Str("key", c.key(k)).
			Str("value", s).
			Interface("default", def).
			Msg("unparsable value, using default")
		return def
	}
	return v
}

// MayString returns the value or def
func (c Conf) MayString(k, def string) string {
	return may(c, k, def, func(s string) (string, error) { return s, nil })
}

// MayInt returns the value or def
func (c Conf) MayInt(k string, def int) int { return may(c, k, def, strconv.Atoi) }

// MayBool returns the value or def; accepts what strconv.ParseBool accepts
func (c Conf) MayBool(k string, def bool) bool { return may(c, k, def, strconv.ParseBool) }

// MayDuration returns the value or def; accepts what time.ParseDuration accepts
func (c Conf) MayDuration(k string, def time.Duration) time.Duration {
	return may(c, k, def, time.ParseDuration)
}

// MayEnum returns the value lowercased when it is one of allowed, def when unset
// panics on anything else
func (c Conf) MayEnum(k, def string, allowed ...string) string {
	v := c.lookup(k)
	if v == "" {
		return def
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return strings.ToLower(a)
		}
	}
	logger.Named("config").Panic().
		Str("key", c.key(k)).
		Str("value", v).
		Strs("allowed", allowed).
		Msg("value not allowed")
	return ""
}

// MayPort returns a listen address. A bare port becomes ":port"; values already holding a
// colon ("127.0.0.1:0", ":4000") pass through. Panics on a bare port outside 1..65535
func (c Conf) MayPort(k, def string) string {
	s := c.lookup(k)
	switch {
	case s == "":
		return def
	case strings.Contains(s, ":"):
		return s
	}
	if p, err := strconv.Atoi(s); err != nil || p < 1 || p > 65535 {
		logger.Named("config").Panic().Str("key", c.key(k)).Str("value", s).Msg("not a TCP port")
	}
	return ":" + s
}
