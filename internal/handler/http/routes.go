package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Post("/api/auth/owner", h.ownerLogin)
	router.Get("/api/version/", h.getServerVersion)

	router.Route("/api/custody", func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/resources", h.resources)
		r.Post("/withdraw", h.withdraw)
		r.Post("/withdraw/confidential", h.withdrawConfidential)

		r.Get("/balance", h.balance)
		r.Get("/fees", h.fees)
		r.Get("/counter", h.counter)
		r.Post("/counter/increase", h.increase)
		r.Get("/journal", h.journal)

		r.Group(func(r chi.Router) {
			r.Use(h.mintHashing)
			r.Post("/mint/fungible", h.mintFungible)
			r.Post("/mint/non-fungible", h.mintNonFungible)
			r.Post("/mint/confidential", h.mintConfidential)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
