// internal/app/features/donations/routes.go
package donations

import (
	"github.com/foodfindapp/foodfind/internal/app/system/ratelimit"
	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter that serves the donation endpoints. gate
// limits the password-gated mutations so post passwords cannot be
// guessed by brute force.
func Routes(h *Handler, gate *ratelimit.Limiter) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Post("/", h.ServeCreate)
	r.Get("/stream", h.ServeStream)
	r.Get("/{donationID}/share", h.ServeShare)
	r.Post("/{donationID}/analysis", h.ServeAnalysis)

	r.Group(func(r chi.Router) {
		r.Use(ratelimit.Middleware(gate))
		r.Post("/{donationID}/status", h.ServeChangeStatus)
		r.Delete("/{donationID}", h.ServeDelete)
	})

	return r // mounted under /donations
}
