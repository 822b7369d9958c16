package common

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// ---------- MakeRandAlnumString ----------

func TestMakeRandAlnumString_Alphabet(t *testing.T) {
	s, err := MakeRandAlnumString(64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("expected length 64, got %d", len(s))
	}
	for _, r := range s {
		if !strings.ContainsRune(saltAlphabet, r) {
			t.Fatalf("unexpected rune %q in %q", r, s)
		}
	}
}

func TestMakeRandAlnumString_NoSeparator(t *testing.T) {
	// salts are embedded in "$"-separated hash strings
	s, err := MakeRandAlnumString(128)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(s, "$") {
		t.Fatalf("salt must not contain '$': %q", s)
	}
}

// ---------- WipeByteArray ----------

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

// ---------- sentinels ----------

func TestSentinels_MatchThroughWrapping(t *testing.T) {
	err := fmt.Errorf("%w: list destinations: %w", ErrPersistence, ErrTimeout)
	if !errors.Is(err, ErrPersistence) || !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected both sentinels to match %v", err)
	}
	if errors.Is(err, ErrorNotFound) {
		t.Fatalf("unexpected match with ErrorNotFound")
	}
}
