package http

import (
	"github.com/go-chi/chi/v5"
)

// MountRoutes registers all API routes on the given chi router.
func MountRoutes(r chi.Router, h *Handlers) {
	r.Route("/api", func(r chi.Router) {
		// Dashboard
		r.Get("/dashboard", h.GetDashboard)

		// Organizations
		r.Get("/organizations", handleList(h.Orgs.List))
		r.Post("/organizations", h.CreateOrganization)

		// Contacts
		r.Get("/contacts", handleList(h.Contacts.List))
		r.Post("/contacts", h.CreateContact)

		// Deals
		r.Get("/deals", handleList(h.Deals.List))
		r.Post("/deals", h.CreateDeal)
		r.Get("/deals/{id}", handleGet(h.Deals.Get, "deal not found"))
		r.Put("/deals/{id}/win", h.WinDeal)

		// Projects and their tasks
		r.Get("/projects", handleList(h.Projects.List))
		r.Get("/projects/{id}/tasks", handleListByParam("id", h.Projects.Tasks))
	})
}
