// Package singleton provides Laravel-style singleton lifecycle management as a
// standalone utility: at most one instance of a registered unit exists per
// Registry for the lifetime of the process.
//
// It extracts the singleton half of an IoC container — the part behind
// Laravel's $app->singleton() — without the rest of the container graph.
// There are no transient bindings, no aliases, no contextual bindings: one
// key, one instance, created lazily on first request.
//
// # Registry
//
// A Registry is an explicit object, not a hidden global. Construct one per
// application (or per test) and pass it to whatever needs singleton semantics:
//
//	reg := singleton.New()
//
//	// Laravel: $app->singleton('cache', fn($app) => new RedisCache)
//	v, err := reg.GetOrCreate("cache", singleton.DefaultPolicy(), func() (any, error) {
//	    return cache.NewRedis(cfg)
//	})
//
// The first call for a key constructs and stores the instance; every later
// call returns the stored instance and never re-invokes the constructor.
// A failed constructor stores nothing — the key stays absent and a later
// call may retry.
//
// # Policy
//
// Each key carries a Policy, fixed when the key is first seen:
//
//	singleton.Policy{ThreadSafe: true, Strict: false}   // the default
//
// ThreadSafe serializes first construction across concurrent callers using
// double-checked locking: present keys are read without the lock, absent keys
// re-check under the lock before constructing. Turning it off skips the lock
// entirely; concurrent first creation may then construct more than once, with
// the last store winning. That is an intentional opt-out for single-threaded
// callers.
//
// Strict turns repeat creation attempts into errors instead of cache hits:
//
//	_, err := reg.GetOrCreate("session", strict, ctor) // second call
//	errors.Is(err, singleton.ErrDuplicate)             // true
//
// The Registry uses one lock shared by every key, matching the classic
// implementation of this pattern. Unrelated keys therefore serialize their
// first construction against each other; reads of present keys never contend.
//
// # Wrapper
//
// Wrapper[T, A] is the decorator analog: it fixes the key, policy, and
// constructor once, and exposes a single typed entry point.
//
//	logger := singleton.Wrap(reg, "logger", func(path string) (*logging.Logger, error) {
//	    return logging.Open(path, "append")
//	}, singleton.DefaultPolicy())
//
//	a, _ := logger.Instance("system.log")
//	b, _ := logger.Instance("debug.log")
//	// a == b — the second path is ignored
//
// Note the sharp edge, inherited deliberately: once the instance exists,
// arguments passed to later Instance calls are discarded without complaint.
// Callers expecting per-call reconfiguration should not use a singleton.
//
// # Keys
//
// Keys are arbitrary non-empty strings. For type-derived keys use
//
//	singleton.KeyOf[logging.Logger]()     // "pkg/logging.Logger"
//	singleton.TypeKey(&logging.Logger{})  // same, from a value
package singleton
