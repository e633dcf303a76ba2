// internal/app/features/deliveries/routes.go
package deliveries

import (
	"github.com/foodfindapp/foodfind/internal/app/system/ratelimit"
	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter that serves the delivery endpoints. gate
// limits the code-gated mutations so one-time codes cannot be guessed
// by brute force.
func Routes(h *Handler, gate *ratelimit.Limiter) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Post("/", h.ServeCreate)
	r.Get("/stream", h.ServeStream)
	r.Post("/{requestID}/accept", h.ServeAccept)

	r.Group(func(r chi.Router) {
		r.Use(ratelimit.Middleware(gate))
		r.Post("/{requestID}/finish", h.ServeFinish)
		r.Post("/{requestID}/dismiss", h.ServeDismiss)
	})

	return r // mounted under /deliveries
}
