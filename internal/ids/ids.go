// Package ids generates the human-facing business identifiers used across
// the system: three four-digit segments, e.g. "4821-0937-5512". The UUID
// primary keys are separate and never shown to callers.
package ids

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const maxAttempts = 10

func segment() string {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		// crypto/rand only fails when the platform source is broken
		panic(err)
	}
	return fmt.Sprintf("%04d", 1000+n.Int64())
}

// New returns a fresh candidate identifier.
func New() string {
	return fmt.Sprintf("%s-%s-%s", segment(), segment(), segment())
}

// NewUnique generates identifiers until exists reports a free one. exists
// receives each candidate and returns whether it is already taken; a lookup
// error aborts the loop.
func NewUnique(exists func(id string) (bool, error)) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		id := New()
		taken, err := exists(id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
	}
	return "", fmt.Errorf("ids: no free identifier after %d attempts", maxAttempts)
}
