package ids

import (
	"errors"
	"regexp"
	"testing"
)

var idRe = regexp.MustCompile(`^[1-9][0-9]{3}-[1-9][0-9]{3}-[1-9][0-9]{3}$`)

func TestNewFormat(t *testing.T) {
	for i := 0; i < 200; i++ {
		id := New()
		if !idRe.MatchString(id) {
			t.Fatalf("id %q does not match dddd-dddd-dddd with non-zero leading digits", id)
		}
	}
}

func TestNewUniqueRetriesTakenIDs(t *testing.T) {
	calls := 0
	id, err := NewUnique(func(string) (bool, error) {
		calls++
		return calls < 3, nil
	})
	if err != nil {
		t.Fatalf("NewUnique: %v", err)
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
	if !idRe.MatchString(id) {
		t.Fatalf("id %q malformed", id)
	}
}

func TestNewUniqueGivesUp(t *testing.T) {
	calls := 0
	_, err := NewUnique(func(string) (bool, error) {
		calls++
		return true, nil
	})
	if err == nil {
		t.Fatal("expected an error when every candidate is taken")
	}
	if calls != maxAttempts {
		t.Fatalf("calls = %d, want %d", calls, maxAttempts)
	}
}

func TestNewUniquePropagatesLookupError(t *testing.T) {
	lookupErr := errors.New("connection refused")
	_, err := NewUnique(func(string) (bool, error) {
		return false, lookupErr
	})
	if !errors.Is(err, lookupErr) {
		t.Fatalf("err = %v, want the lookup error", err)
	}
}
