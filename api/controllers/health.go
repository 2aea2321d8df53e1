package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/pawtraits-dev/pawtraits-backend/api/responses"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/config"
	pkgerrors "github.com/pawtraits-dev/pawtraits-backend/pkg/errors"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/logger"
)

const readinessTimeout = 3 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Pawtraits-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness of the storage dependencies. The platform
// API is deliberately excluded: its outages degrade specific validations
// rather than the whole service.
func HealthReady(cfg *config.Config, logg *logger.Logger, db, cache pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Pawtraits-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		checks := map[string]string{}
		healthy := true

		for name, dep := range map[string]pinger{"db": db, "redis": cache} {
			if dep == nil {
				checks[name] = "skipped"
				continue
			}
			if err := dep.Ping(ctx); err != nil {
				checks[name] = "down"
				healthy = false
				continue
			}
			checks[name] = "ok"
		}

		if !healthy {
			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeDependency, "service not ready").WithDetails(checks))
			return
		}
		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}

func Ping() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}
