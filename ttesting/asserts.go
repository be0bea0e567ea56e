// Package ttesting holds small assert helpers shared by this module's
// tests.
package ttesting

import (
	"bytes"
	"errors"
	"testing"
)

func AssertEqualInt(t *testing.T, name string, got, want int) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertEqualUint32(t *testing.T, name string, got, want uint32) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertEqualBytes(t *testing.T, name string, got, want []byte) {
	t.Run(name, func(t *testing.T) {
		if !bytes.Equal(got, want) {
			t.Errorf("got % x; want % x", got, want)
		}
	})
}

func AssertErrorIs(t *testing.T, name string, got, want error) {
	t.Run(name, func(t *testing.T) {
		if !errors.Is(got, want) {
			t.Errorf("got %v; want %v", got, want)
		}
	})
}
