package otp

import (
	"strconv"
	"testing"
)

func TestNumericGenerateBounds(t *testing.T) {
	gen := NewNumeric(6)

	for range 1000 {
		code, err := gen.Generate()
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("len(%q) = %d, want 6", code, len(code))
		}

		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code %q is not numeric: %v", code, err)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("code %d outside [100000, 999999]", n)
		}
	}
}

func TestNumericGenerateWidths(t *testing.T) {
	for _, digits := range []int{4, 5, 6, 7, 8, 9} {
		gen := NewNumeric(digits)
		code, err := gen.Generate()
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if len(code) != digits {
			t.Fatalf("digits=%d produced %q", digits, code)
		}
	}
}

func TestNumericFallbackDigits(t *testing.T) {
	for _, digits := range []int{0, 3, 10, -1} {
		code, err := NewNumeric(digits).Generate()
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("digits=%d should fall back to 6, got %q", digits, code)
		}
	}
}

func TestNumericGenerateVaries(t *testing.T) {
	gen := NewNumeric(6)

	seen := map[string]struct{}{}
	for range 50 {
		code, err := gen.Generate()
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		seen[code] = struct{}{}
	}

	if len(seen) < 2 {
		t.Fatal("expected generated codes to vary")
	}
}
