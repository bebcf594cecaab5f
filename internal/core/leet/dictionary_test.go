package leet

import (
	"reflect"
	"testing"
	"unicode/utf8"

	perr "leetgen/internal/platform/errors"
)

func TestFromStrings(t *testing.T) {
	d, err := FromStrings(map[string][]string{
		"a": {"a", "@", "4"},
		"é": {"3"},
	})
	if err != nil {
		t.Fatalf("FromStrings: %v", err)
	}
	if !reflect.DeepEqual(d['a'], []rune{'a', '@', '4'}) {
		t.Fatalf("d[a] = %q", d['a'])
	}
	if !reflect.DeepEqual(d['é'], []rune{'3'}) {
		t.Fatalf("d[é] = %q", d['é'])
	}
	if !reflect.DeepEqual(d.Strings(), map[string][]string{"a": {"a", "@", "4"}, "é": {"3"}}) {
		t.Fatalf("Strings() round trip mismatch: %v", d.Strings())
	}
}

func TestFromStrings_Rejects(t *testing.T) {
	cases := []struct {
		name  string
		in    map[string][]string
		field string
	}{
		{name: "multi char key", in: map[string][]string{"ab": {"x"}}, field: "ab"},
		{name: "empty key", in: map[string][]string{"": {"x"}}, field: ""},
		{name: "multi char value", in: map[string][]string{"a": {"4", "/-\\"}}, field: "a"},
		{name: "empty value", in: map[string][]string{"o": {""}}, field: "o"},
		{name: "invalid utf8", in: map[string][]string{"s": {string([]byte{0xff})}}, field: "s"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromStrings(tc.in)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
				t.Fatalf("code = %v, want InvalidArgument", perr.CodeOf(err))
			}
			e, _ := perr.As(err)
			if e.Field() != tc.field {
				t.Fatalf("field = %q, want %q", e.Field(), tc.field)
			}
		})
	}
}

func TestFromStrings_ReplacementCharacter(t *testing.T) {
	d, err := FromStrings(map[string][]string{"\uFFFD": {"?", "\uFFFD"}, "u": {"\uFFFD"}})
	if err != nil {
		t.Fatalf("FromStrings: %v", err)
	}
	if !reflect.DeepEqual(d[utf8.RuneError], []rune{'?', utf8.RuneError}) || d['u'][0] != utf8.RuneError {
		t.Fatalf("d = %q", d)
	}
	if _, err := FromStrings(map[string][]string{"u": {"\xef\xbf"}}); err == nil {
		t.Fatalf("truncated encoding accepted")
	}
}

func TestFromStrings_EmptySetAllowed(t *testing.T) {
	d, err := FromStrings(map[string][]string{"a": {}})
	if err != nil {
		t.Fatalf("FromStrings: %v", err)
	}
	if err := d.Validate(); !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("Validate = %v, want validation error", err)
	}
}

func TestValidate(t *testing.T) {
	if err := (Dictionary{}).Validate(); err != nil {
		t.Fatalf("empty dict: %v", err)
	}
	if err := arma.Validate(); err != nil {
		t.Fatalf("arma: %v", err)
	}
	err := Dictionary{'z': {}, 'b': nil, 'a': {'4'}}.Validate()
	e, ok := perr.As(err)
	if !ok || e.Field() != "b" {
		t.Fatalf("Validate = %v, want first empty key b", err)
	}
}

func TestMergeAndKeys(t *testing.T) {
	base := Dictionary{'a': {'4'}, 'o': {'0'}}
	over := Dictionary{'a': {'@'}, 's': {'5'}}
	m := base.Merge(over)

	if !reflect.DeepEqual(m.Keys(), []rune{'a', 'o', 's'}) {
		t.Fatalf("Keys = %q", m.Keys())
	}
	if !reflect.DeepEqual(m['a'], []rune{'@'}) {
		t.Fatalf("override lost: %q", m['a'])
	}
	if !reflect.DeepEqual(base['a'], []rune{'4'}) {
		t.Fatalf("Merge mutated receiver: %q", base['a'])
	}
}
