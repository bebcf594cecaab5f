package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"leetgen/internal/core/dictpack"
	"leetgen/internal/services/expand/domain"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String()
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func writeDict(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_Args(t *testing.T) {
	code, out := runCLI(t, "", "arma")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	want := []string{"arma", "arm@", "arm4", "@rma", "@rm@", "@rm4", "4rma", "4rm@", "4rm4"}
	if got := lines(out); !reflect.DeepEqual(got, want) {
		t.Fatalf("run(arma) = %q, want %q", got, want)
	}
}

func TestRun_DictParallelKeepsOrder(t *testing.T) {
	dict := writeDict(t, "c.yaml", "version: 1\nentries:\n  c: [c, k]\n")

	_, seq := runCLI(t, "", "-dict", dict, "arma", "carro")
	code, par := runCLI(t, "", "-dict", dict, "-parallel", "-workers", "1", "arma", "carro")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if seq != par {
		t.Fatalf("parallel output differs from sequential:\n%s\nvs\n%s", par, seq)
	}
	got := lines(par)
	if len(got) != 21 {
		t.Fatalf("got %d variants, want 21", len(got))
	}
	if got[9] != "carro" || got[20] != "k4rr0" {
		t.Fatalf("carro block misplaced: first=%q last=%q", got[9], got[20])
	}
}

func TestRun_Stdin(t *testing.T) {
	code, out := runCLI(t, "arma\n\n  \ncarro\n")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	// arma 9, carro a3 o2 = 6
	if got := lines(out); len(got) != 15 || got[0] != "arma" || got[9] != "carro" {
		t.Fatalf("stdin run = %q", got)
	}
}

func TestRun_Empty(t *testing.T) {
	code, out := runCLI(t, "")
	if code != 0 || out != "" {
		t.Fatalf("empty run = %d %q", code, out)
	}
}

func TestRun_Count(t *testing.T) {
	code, out := runCLI(t, "", "-count", "arma", "b")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if out != "arma\t9\nb\t1\ntotal\t10\n" {
		t.Fatalf("count output = %q", out)
	}
}

func TestRun_JSON(t *testing.T) {
	code, out := runCLI(t, "", "-json", "-normalize", "\uFF2F\uFF2B")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	var res domain.ExpandResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(res.Variants, []string{"ok", "0k"}) || res.Strategy != domain.StrategySequential {
		t.Fatalf("json result = %+v", res)
	}
}

func TestRun_NoDefault(t *testing.T) {
	_, out := runCLI(t, "", "-no-default", "arma")
	if out != "arma\n" {
		t.Fatalf("identity run = %q", out)
	}

	dict := writeDict(t, "only.json", `{"version":1,"entries":{"r":["r","2"]}}`)
	_, out = runCLI(t, "", "-no-default", "-dict", dict, "arma")
	if got := lines(out); !reflect.DeepEqual(got, []string{"arma", "a2ma"}) {
		t.Fatalf("bare dict run = %q", got)
	}
}

func TestRun_Dump(t *testing.T) {
	code, out := runCLI(t, "", "-dump", "yaml")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	p, err := dictpack.Parse([]byte(out), dictpack.FormatYAML)
	if err != nil {
		t.Fatalf("dumped yaml does not parse: %v", err)
	}
	def, err := dictpack.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(p.Dict, def.Dict) {
		t.Fatalf("dumped dictionary differs from default")
	}
}

func TestRun_Failures(t *testing.T) {
	cases := []struct {
		name string
		args []string
		code int
	}{
		{name: "missing dict", args: []string{"-dict", filepath.Join(t.TempDir(), "nope.json"), "arma"}, code: 1},
		{name: "bad dict", args: []string{"-dict", writeDict(t, "bad.json", `{"version":1,"entries":{"a":[]}}`), "arma"}, code: 1},
		{name: "bad dump format", args: []string{"-dump", "toml"}, code: 2},
		{name: "unknown flag", args: []string{"-frobnicate"}, code: 2},
		{name: "help", args: []string{"-h"}, code: 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if code, _ := runCLI(t, "", tc.args...); code != tc.code {
				t.Fatalf("exit = %d, want %d", code, tc.code)
			}
		})
	}
}

func TestRun_Verify(t *testing.T) {
	code, out := runCLI(t, "", "-verify", "arma", "carro")
	if code != 0 || len(lines(out)) != 15 {
		t.Fatalf("default pack verify = %d, %d lines", code, len(lines(out)))
	}

	// z -> 2 is not a lookalike Fold knows
	dict := writeDict(t, "z.json", `{"version":1,"entries":{"z":["z","2"]}}`)
	code, out = runCLI(t, "", "-verify", "-dict", dict, "zoo")
	if code != 1 {
		t.Fatalf("custom pack verify exit = %d", code)
	}
	if got := lines(out); len(got) != 8 || got[0] != "zoo" {
		t.Fatalf("variants still printed: %q", got)
	}
}

func TestRun_Version(t *testing.T) {
	code, out := runCLI(t, "", "-version")
	if code != 0 || !strings.Contains(out, `"service": "leetgen"`) {
		t.Fatalf("version = %d %q", code, out)
	}
}
