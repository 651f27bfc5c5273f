package singleton

import (
	"errors"
	"strconv"
)

// ── Sentinels ────────────────────────────────────────────────────────────────

var (
	// ErrDuplicate matches any DuplicateInstantiationError via errors.Is.
	ErrDuplicate = errors.New("singleton: duplicate instantiation")

	// ErrInvalidKey is returned for an empty registration key.
	ErrInvalidKey = errors.New("singleton: invalid key")

	// ErrNilConstructor is returned when GetOrCreate is called without a constructor.
	ErrNilConstructor = errors.New("singleton: nil constructor")

	// ErrNilRegistry is returned by a Wrapper built without a registry.
	ErrNilRegistry = errors.New("singleton: nil registry")
)

// ── Typed errors ─────────────────────────────────────────────────────────────

// DuplicateInstantiationError is returned when a Strict key already holds an
// instance and a caller attempts to create another. It carries the key for
// diagnostics. The stored instance is left untouched.
type DuplicateInstantiationError struct{ Key string }

// Error implements the error interface.
func (e DuplicateInstantiationError) Error() string {
	// Example: singleton: duplicate instantiation of "session"
	return "singleton: duplicate instantiation of " + strconv.Quote(e.Key)
}

// Is reports true for ErrDuplicate so callers can use errors.Is without
// knowing the concrete type.
func (e DuplicateInstantiationError) Is(target error) bool { return target == ErrDuplicate }

// WrongTypeError is returned by a Wrapper whose key holds an instance of a
// different type — two wrappers sharing one key with mismatched type
// parameters.
type WrongTypeError struct {
	// Key is the registration key requested.
	Key string

	// GotType describes the stored instance's actual type.
	GotType string
}

// Error implements the error interface.
func (e WrongTypeError) Error() string {
	// Example: singleton: instance for "logger" has wrong type (*cache.Redis)
	return "singleton: instance for " + strconv.Quote(e.Key) + " has wrong type (" + e.GotType + ")"
}
