package singleton

import "reflect"

// ── Wrapper ──────────────────────────────────────────────────────────────────

// Wrapper is a wrapped constructor: key, policy, and constructor fixed once,
// resolution through a single typed entry point. It plays the role the class
// decorator plays in dynamic languages — calling Instance looks like calling
// the constructor, but at most one instance is ever built.
//
// T is the wrapped unit's type, A the shape of its construction arguments.
// Use a struct (or a single value) for A; pass struct{}{} when the
// constructor takes nothing.
type Wrapper[T, A any] struct {
	reg    *Registry
	key    string
	policy Policy
	ctor   func(A) (*T, error)
}

// Wrap builds a Wrapper over ctor, registered in reg under key.
//
//	logger := singleton.Wrap(reg, "logger", openLogger, singleton.DefaultPolicy())
func Wrap[T, A any](reg *Registry, key string, ctor func(A) (*T, error), policy Policy) *Wrapper[T, A] {
	return &Wrapper[T, A]{reg: reg, key: key, policy: policy, ctor: ctor}
}

// Key returns the wrapper's registration key.
func (w *Wrapper[T, A]) Key() string { return w.key }

// Instance returns the singleton, constructing it from args on the first
// call. Once the instance exists, args are discarded entirely: the stored
// instance is returned (non-strict) or a DuplicateInstantiationError is
// returned (strict), and the constructor is not re-invoked either way.
//
// A constructor failure propagates unchanged and leaves the key absent, so a
// later Instance call retries construction.
func (w *Wrapper[T, A]) Instance(args A) (*T, error) {
	if w == nil || w.ctor == nil {
		return nil, ErrNilConstructor
	}
	if w.reg == nil {
		return nil, ErrNilRegistry
	}

	raw, err := w.reg.GetOrCreate(w.key, w.policy, func() (any, error) {
		v, err := w.ctor(args)
		if err != nil {
			return nil, err
		}
		return v, nil
	})
	if err != nil {
		return nil, err
	}

	typed, ok := raw.(*T)
	if !ok {
		// Key collision: some other wrapper stored a different type here.
		return nil, WrongTypeError{Key: w.key, GotType: reflect.TypeOf(raw).String()}
	}
	return typed, nil
}

// MustInstance is Instance with a panic on error. Useful at bootstrap where a
// failed singleton is fatal anyway.
func (w *Wrapper[T, A]) MustInstance(args A) *T {
	v, err := w.Instance(args)
	if err != nil {
		panic(err)
	}
	return v
}

// Resolved reports whether the wrapper's key already holds an instance.
func (w *Wrapper[T, A]) Resolved() bool {
	return w != nil && w.reg != nil && w.reg.Resolved(w.key)
}
