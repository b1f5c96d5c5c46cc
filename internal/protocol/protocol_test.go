package protocol

import (
	"strings"
	"testing"
	"time"
)

func TestGenerate_Shape(t *testing.T) {
	p := Generate()
	if !Pattern.MatchString(p) {
		t.Fatalf("protocol %q does not match %s", p, Pattern)
	}
	if !strings.HasPrefix(p, time.Now().Format("20060102")+"-") {
		t.Fatalf("protocol %q missing today's date prefix", p)
	}
}

func TestGenerateAt_DatePrefix(t *testing.T) {
	at := time.Date(2026, 8, 28, 14, 30, 0, 0, time.Local)
	p := generateAt(at)
	if !strings.HasPrefix(p, "20260828-") {
		t.Fatalf("expected prefix 20260828-, got %q", p)
	}
	if len(p) != 15 {
		t.Fatalf("expected 15 chars, got %d (%q)", len(p), p)
	}
}

func TestGenerate_TokenVaries(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		p := Generate()
		if _, dup := seen[p]; dup {
			t.Fatalf("duplicate protocol after %d generations: %q", i, p)
		}
		seen[p] = struct{}{}
	}
}

func TestValid(t *testing.T) {
	cases := map[string]bool{
		"20260828-A1B2C3": true,
		"20260828-ABCDEF": true,
		"20260828-abcdef": false, // lowercase token
		"2026828-ABCDEF":  false, // short date
		"20260828-ABCDE":  false, // short token
		"20260828ABCDEF":  false, // missing hyphen
		"":                false,
	}
	for p, want := range cases {
		if got := Valid(p); got != want {
			t.Fatalf("Valid(%q) = %v, want %v", p, got, want)
		}
	}
}
