package leet

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	kit "leetgen/internal/platform/testkit"
)

var carro = Dictionary{
	'c': {'c', 'k'},
	'a': {'a', '@', '4'},
	'o': {'o', '0'},
}

func TestRun_Examples(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		dict  Dictionary
		want  []string
	}{
		{name: "no dict", words: []string{"a"}, want: []string{"a"}},
		{name: "single", words: []string{"a"}, dict: arma, want: []string{"a", "@", "4"}},
		{name: "absent", words: []string{"b"}, dict: Dictionary{'a': {'@', '4'}}, want: []string{"b"}},
		{
			name:  "arma",
			words: []string{"arma"},
			dict:  arma,
			want:  []string{"arma", "arm@", "arm4", "@rma", "@rm@", "@rm4", "4rma", "4rm@", "4rm4"},
		},
		{name: "no words", words: nil, dict: arma, want: []string{}},
		{name: "empty word", words: []string{"", "a"}, dict: arma, want: []string{"", "a", "@", "4"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := Run(tc.words, tc.dict)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Run(%q) = %q, want %q", tc.words, got, tc.want)
			}
			par := RunParallel(tc.words, tc.dict)
			if !reflect.DeepEqual(par, tc.want) {
				t.Fatalf("RunParallel(%q) = %q, want %q", tc.words, par, tc.want)
			}
		})
	}
}

func TestRun_Concatenation(t *testing.T) {
	words := []string{"arma", "carro"}
	got := Run(words, carro)
	if len(got) != 21 {
		t.Fatalf("len(Run) = %d, want 21", len(got))
	}

	var want []string
	for _, w := range words {
		want = append(want, Expand(w, carro)...)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Run = %q, want %q", got, want)
	}

	// carro block: c slowest, then a, then o
	if got[9] != "carro" || got[10] != "carr0" || got[11] != "c@rro" || got[20] != "k4rr0" {
		t.Fatalf("unexpected carro ordering: %q", got[9:])
	}
}

func TestRunParallel_MatchesRun(t *testing.T) {
	words := make([]string, 0, 200)
	for i := 0; i < 200; i++ {
		words = append(words, fmt.Sprintf("cocoa%d", i%7), "arma", "", "zzz")
	}
	want := Run(words, carro)
	for i := 0; i < 5; i++ {
		if got := RunParallel(words, carro); !reflect.DeepEqual(got, want) {
			t.Fatalf("RunParallel diverged from Run on attempt %d", i)
		}
	}
}

func TestRunBounded_Workers(t *testing.T) {
	words := []string{"arma", "carro", "coco", "a", ""}
	want := Run(words, carro)
	for _, n := range []int{-1, 0, 1, 2, 3, 100} {
		n := n
		t.Run(fmt.Sprintf("workers=%d", n), func(t *testing.T) {
			if got := RunBounded(words, carro, n); !reflect.DeepEqual(got, want) {
				t.Fatalf("RunBounded(%d) = %q, want %q", n, got, want)
			}
		})
	}
}

func TestRunBounded_EmptyInput(t *testing.T) {
	got := RunBounded(nil, carro, 4)
	if got == nil || len(got) != 0 {
		t.Fatalf("RunBounded(nil) = %#v, want empty non-nil", got)
	}
}

func TestRunParallel_WorkerPanicPropagates(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &expandFn, func(w string, d Dictionary) []string {
		if w == "bad" {
			panic("boom")
		}
		return Expand(w, d)
	})
	kit.MustPanic(t, func() { _ = RunParallel([]string{"a", "bad", "a"}, arma) })
}

func TestRunParallel_OrderIndependentOfCompletion(t *testing.T) {
	kit.Serial(t)
	words := []string{"arma", "carro", "coco", "taco"}
	last := len(words) - 1
	lastDone := make(chan struct{})

	kit.Swap(t, &expandFn, func(w string, d Dictionary) []string {
		switch w {
		case words[0]:
			select {
			case <-lastDone:
			case <-time.After(5 * time.Second):
				t.Errorf("word 0 never saw word %d finish", last)
			}
		case words[last]:
			defer close(lastDone)
		}
		return Expand(w, d)
	})

	if got, want := RunParallel(words, carro), Run(words, carro); !reflect.DeepEqual(got, want) {
		t.Fatalf("RunParallel = %q, want %q", got, want)
	}
}

func TestRunParallel_LowestPanicWins(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &expandFn, func(w string, d Dictionary) []string {
		if w == "bad" || w == "worse" {
			panic(w)
		}
		return Expand(w, d)
	})
	defer func() {
		msg, _ := recover().(string)
		kit.MustContain(t, msg, `word 1 ("bad") panicked: bad`)
	}()
	_ = RunParallel([]string{"a", "bad", "a", "worse"}, arma)
}
