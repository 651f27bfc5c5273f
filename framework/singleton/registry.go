package singleton

import (
	"reflect"
	"sort"
	"sync"
)

// ── Policy ───────────────────────────────────────────────────────────────────

// Policy controls how a key behaves. It is fixed when the key is first seen;
// the stored policy governs every later call for that key.
type Policy struct {
	// ThreadSafe serializes first construction across concurrent callers.
	// Off, the check-construct-store sequence runs unlocked and a concurrent
	// first creation may construct more than once (last store wins).
	ThreadSafe bool

	// Strict makes creation attempts after the instance exists fail with a
	// DuplicateInstantiationError instead of returning the cached instance.
	Strict bool
}

// DefaultPolicy returns the standard policy: thread-safe, non-strict.
func DefaultPolicy() Policy { return Policy{ThreadSafe: true} }

// ── Registry ─────────────────────────────────────────────────────────────────

// entry associates a key with its single instance and the policy it was
// created under.
type entry struct {
	instance any
	policy   Policy
}

// Registry maps registration keys to at most one instance each.
//
// It mirrors the instance cache inside an IoC container — the map behind
// Laravel's $app->instance() — as a standalone object. Present keys are read
// without locking; absent keys construct under one registry-wide mutex when
// their policy asks for it.
//
// The zero Registry is not usable; call New.
type Registry struct {
	// mu guards first construction for every ThreadSafe key. One lock for
	// the whole registry: unrelated keys serialize their first construction
	// against each other, reads of present keys never touch it.
	mu sync.Mutex

	// entries stores key → *entry. sync.Map publishes stored pointers
	// safely, which keeps the unlocked fast path and the ThreadSafe=false
	// opt-out memory-safe.
	entries sync.Map
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// GetOrCreate returns the instance for key, constructing it via ctor if the
// key is absent.
//
//   - Absent key: ctor runs once, its result is stored and returned. With
//     policy.ThreadSafe this happens under the registry lock with a re-check,
//     so concurrent callers construct exactly once.
//   - Present key, non-strict: the stored instance is returned; ctor is never
//     invoked again, whatever state it closes over.
//   - Present key, strict: DuplicateInstantiationError carrying the key.
//
// A ctor error propagates unchanged and stores nothing — the key stays
// absent and a later call may retry.
//
// Strictness is decided by the policy stored with the entry at creation time,
// not by the policy of the current call.
func (r *Registry) GetOrCreate(key string, policy Policy, ctor func() (any, error)) (any, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}
	if ctor == nil {
		return nil, ErrNilConstructor
	}

	// Fast path: no lock once the instance exists.
	if e, ok := r.entries.Load(key); ok {
		return r.hit(key, e.(*entry))
	}

	if !policy.ThreadSafe {
		return r.construct(key, policy, ctor)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check: another caller may have constructed while we waited.
	if e, ok := r.entries.Load(key); ok {
		return r.hit(key, e.(*entry))
	}
	return r.construct(key, policy, ctor)
}

// hit resolves a present entry under its stored policy.
func (r *Registry) hit(key string, e *entry) (any, error) {
	if e.policy.Strict {
		return nil, DuplicateInstantiationError{Key: key}
	}
	return e.instance, nil
}

// construct runs ctor and stores the result. Caller holds mu when the policy
// is ThreadSafe.
func (r *Registry) construct(key string, policy Policy, ctor func() (any, error)) (any, error) {
	v, err := ctor()
	if err != nil {
		return nil, err
	}
	r.entries.Store(key, &entry{instance: v, policy: policy})
	return v, nil
}

// ── Introspection ────────────────────────────────────────────────────────────

// Get returns the stored instance for key without counting as a creation
// attempt: it never constructs and never trips Strict.
func (r *Registry) Get(key string) (any, bool) {
	e, ok := r.entries.Load(key)
	if !ok {
		return nil, false
	}
	return e.(*entry).instance, true
}

// Resolved reports whether key holds an instance.
//
//	// Laravel: $app->resolved(Cache::class)
func (r *Registry) Resolved(key string) bool {
	_, ok := r.entries.Load(key)
	return ok
}

// Keys returns all keys holding an instance, in lexicographic order.
func (r *Registry) Keys() []string {
	var keys []string
	r.entries.Range(func(k, _ any) bool {
		keys = append(keys, k.(string))
		return true
	})
	sort.Strings(keys)
	return keys
}

// Len returns the number of keys holding an instance.
func (r *Registry) Len() int {
	n := 0
	r.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// ── Reset (explicit extensions) ──────────────────────────────────────────────

// Forget drops the instance for key, returning the key to the absent state.
// The core lifecycle never removes instances; this exists for tests and
// controlled teardown.
//
//	// Laravel: $app->forgetInstance(Cache::class)
func (r *Registry) Forget(key string) {
	r.entries.Delete(key)
}

// Flush drops every instance.
func (r *Registry) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries.Range(func(k, _ any) bool {
		r.entries.Delete(k)
		return true
	})
}

// ── Generic helpers ──────────────────────────────────────────────────────────

// Resolve returns the instance for key typed as T.
// ok is false when the key is absent or the instance is not a T.
//
//	logger, ok := singleton.Resolve[*logging.Logger](reg, "logger")
func Resolve[T any](r *Registry, key string) (T, bool) {
	raw, ok := r.Get(key)
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := raw.(T)
	return typed, ok
}

// ── Reflect helpers ──────────────────────────────────────────────────────────

// TypeKey returns the package-qualified type name of v, useful as a stable
// key when one instance per type is wanted. An untyped nil has no type and
// yields "", which the registry rejects as an invalid key.
//
//	key := singleton.TypeKey(&logging.Logger{})  // "…/logging.Logger"
func TypeKey(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.PkgPath() + "." + t.Name()
}

// KeyOf is the generic form of TypeKey: it derives the key from the type
// parameter alone, no value needed.
func KeyOf[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.PkgPath() + "." + t.Name()
}
