package singleton

import (
	"errors"
	"testing"
)

// TestInstance_NilRegistry covers a wrapper assembled by hand instead of
// through Wrap: a set constructor but no registry must fail cleanly.
func TestInstance_NilRegistry(t *testing.T) {
	w := &Wrapper[int, struct{}]{
		key: "orphan",
		ctor: func(struct{}) (*int, error) {
			v := 1
			return &v, nil
		},
	}

	if _, err := w.Instance(struct{}{}); !errors.Is(err, ErrNilRegistry) {
		t.Errorf("got %v want ErrNilRegistry", err)
	}
	if w.Resolved() {
		t.Error("registry-less wrapper should not report resolved")
	}
}
