package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/km-arc/go-singleton/app"
	"github.com/km-arc/go-singleton/framework/singleton"
	"github.com/km-arc/go-singleton/logging"
)

// session is the strict-mode example: materializing it twice is a bug we want
// surfaced, not papered over with a cache hit.
type session struct {
	ID string
}

func main() {
	application := app.New() // loads .env automatically

	reg := application.Singletons
	cfg := application.Config

	// ── Shared logger — one instance, one file, however often it's resolved ──

	logger := singleton.Wrap(reg, singleton.KeyOf[logging.Logger](),
		func(path string) (*logging.Logger, error) {
			return logging.Open(path, cfg.Log.Mode)
		}, singleton.DefaultPolicy())

	// ── Strict session — second creation attempt is an error ─────────────────

	sessions := singleton.Wrap(reg, "session",
		func(id string) (*session, error) {
			return &session{ID: id}, nil
		}, singleton.Policy{ThreadSafe: true, Strict: true})

	r := application.Router

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		l, err := logger.Instance(cfg.Log.File)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"message": err.Error()})
			return
		}
		_ = l.Write("GET / from " + req.RemoteAddr)
		writeJSON(w, http.StatusOK, map[string]any{
			"data": map[string]any{"message": "Welcome to " + cfg.App.Name + "!"},
		})
	})

	// Resolves the logger with a different path — same instance comes back,
	// still writing to the original file.
	r.Get("/audit", func(w http.ResponseWriter, req *http.Request) {
		l, err := logger.Instance("audit.log")
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"message": err.Error()})
			return
		}
		_ = l.Write("GET /audit from " + req.RemoteAddr)
		writeJSON(w, http.StatusOK, map[string]any{
			"data": map[string]any{"logfile": l.Path()},
		})
	})

	r.Post("/session", func(w http.ResponseWriter, req *http.Request) {
		s, err := sessions.Instance(req.Header.Get("X-Session-Id"))
		if errors.Is(err, singleton.ErrDuplicate) {
			writeJSON(w, http.StatusConflict, map[string]any{"message": err.Error()})
			return
		}
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"message": err.Error()})
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"data": map[string]any{"session": s.ID},
		})
	})

	r.Get("/singletons", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"data": map[string]any{"keys": reg.Keys(), "count": reg.Len()},
		})
	})

	application.Run()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
