package normalize

import (
	"reflect"
	"testing"

	"leetgen/internal/core/dictpack"
	"leetgen/internal/core/leet"
)

func TestNormalize_Table(t *testing.T) {
	n := New()

	tests := []struct {
		name string
		in   string
		out  string
	}{
		{name: "identity ascii", in: "leet", out: "leet"},
		{name: "empty", in: "", out: ""},
		{name: "utf8 repair drops invalid bytes", in: string([]byte{0xff, 'l', 'e', 0x80, 'e', 't'}), out: "leet"},
		{name: "controls dropped", in: "le\x00et\t", out: "leet"},
		{name: "case fold", in: "LeEt", out: "leet"},
		{name: "remove zero-widths", in: "le\u200Bet\u200D", out: "leet"},
		{name: "remove combining marks", in: "leet\u0336", out: "leet"},
		{name: "width fold fullwidth", in: "\uFF2C\uFF25\uFF25\uFF34", out: "leet"},
		{name: "nfkc ligature", in: "\uFB01re", out: "fire"},
		{name: "trim", in: "  arma  ", out: "arma"},
		{name: "idempotent", in: n.Normalize("\uFF21\u200Brma  "), out: "arma"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := n.Normalize(tc.in)
			if got != tc.out {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.out)
			}
			if again := n.Normalize(got); again != got {
				t.Fatalf("Normalize not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestWords_KeepsPositions(t *testing.T) {
	got := New().Words([]string{"ARMA", " ", "\u200B", "", "Carro"})
	if !reflect.DeepEqual(got, []string{"arma", "", "", "", "carro"}) {
		t.Fatalf("Words = %q", got)
	}
	if got := New().Words(nil); len(got) != 0 {
		t.Fatalf("Words(nil) = %q", got)
	}
}

func TestSanitize(t *testing.T) {
	cases := map[string]string{
		"arma":             "arma",
		"a\trm\na":         "arma",
		"c\u0085arro\x7f":  "carro",
		"\xffs\xc3at":      "sat",
		"caf\u00e9 \uFFFD": "caf\u00e9 \uFFFD",
		"":                 "",
	}
	for in, want := range cases {
		if got := Sanitize(in); got != want {
			t.Fatalf("Sanitize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFold(t *testing.T) {
	cases := map[string]string{
		"":       "",
		"l337":   "leet",
		"@rm4":   "arma",
		"5!7$":   "sits",
		"pl41n!": "plaini",
		"0k":     "ok",
	}
	for in, want := range cases {
		if got := Fold(in); got != want {
			t.Fatalf("Fold(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFold_InvertsDefaultPack(t *testing.T) {
	p, err := dictpack.Load()
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []string{"arma", "toast", "poise", "satire"} {
		for _, v := range leet.Expand(w, p.Dict) {
			if got := Fold(v); got != w {
				t.Fatalf("Fold(%q) = %q, want %q", v, got, w)
			}
		}
	}
}
