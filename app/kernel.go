package app

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/km-arc/go-singleton/framework/config"
	"github.com/km-arc/go-singleton/framework/singleton"
)

// Application is the top-level container for the demo app: typed config, the
// process-wide singleton registry, and an HTTP router.
type Application struct {
	Config     *config.Config
	Singletons *singleton.Registry
	Router     chi.Router
}

// New bootstraps the application.
//
//	application := app.New() // loads .env automatically
//	application.Router.Get("/", handler)
//	application.Run()
func New(envFiles ...string) *Application {
	cfg := config.Load(envFiles...)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	return &Application{
		Config:     cfg,
		Singletons: singleton.New(),
		Router:     r,
	}
}

// Run starts the HTTP server on APP_PORT (default 8000).
func (a *Application) Run() {
	addr := ":" + a.Config.App.Port
	fmt.Printf("🚀  %s running on http://localhost%s  [%s]\n",
		a.Config.App.Name, addr, a.Config.App.Env)

	if err := http.ListenAndServe(addr, a.Router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.Config.App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsDebug() bool       { return a.Config.App.Debug }
