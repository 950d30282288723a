package ui

import (
	"net/http"
	"net/http/pprof"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"seqsense/internal"
	"seqsense/internal/config"
)

// AdminRouter is the side router for operational endpoints: liveness
// and, when enabled, the pprof handlers. It stays off the public port.
func AdminRouter(cfg config.ProfilingConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if cfg.Enabled {
		r.Route("/debug/pprof", func(r chi.Router) {
			r.Get("/", pprof.Index)
			r.Get("/cmdline", pprof.Cmdline)
			r.Get("/profile", pprof.Profile)
			r.Get("/symbol", pprof.Symbol)
			r.Get("/trace", pprof.Trace)
			r.Handle("/*", http.HandlerFunc(pprof.Index))
		})
	}
	return r
}

// ServeAdmin runs the admin router on its own port.
func ServeAdmin(cfg config.AdminConfig, profiling config.ProfilingConfig, logger *internal.Logger) {
	if !cfg.Enabled {
		return
	}
	addr := ":" + cfg.Port
	logger.Info("admin server listening on %s", addr)
	if err := http.ListenAndServe(addr, AdminRouter(profiling)); err != nil {
		logger.Error("admin server: %v", err)
	}
}
