package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getAppBuildInfo)
	})

	// panel routes behind the session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/tickets/{ticketID}/open", h.openTicket)
		r.Post("/api/tickets/{ticketID}/type", h.changeType)
		r.Post("/api/tickets/{ticketID}/request", h.saveRequest)
		r.Delete("/api/tickets/{ticketID}/request", h.clearRequest)
		r.Post("/api/tickets/{ticketID}/execute", h.execute)
		r.Post("/api/tickets/{ticketID}/reject", h.reject)

		r.Get("/api/references/{uid}", h.resolveReference)
		r.Delete("/api/references/{uid}", h.removeReference)
	})

	return router
}
