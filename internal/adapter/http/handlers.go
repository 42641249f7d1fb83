package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dealflowhq/dealflow/internal/domain/contact"
	"github.com/dealflowhq/dealflow/internal/domain/deal"
	"github.com/dealflowhq/dealflow/internal/domain/organization"
	"github.com/dealflowhq/dealflow/internal/service"
)

const maxRequestBodySize = 1 << 20 // 1 MB

// Handlers bundles the services the HTTP layer dispatches to.
type Handlers struct {
	Orgs      *service.OrganizationService
	Contacts  *service.ContactService
	Deals     *service.DealService
	Projects  *service.ProjectService
	Dashboard *service.DashboardService
}

// createdResponse is the body returned by create endpoints.
type createdResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// winResponse is the body returned when a deal is won.
type winResponse struct {
	Message   string `json:"message"`
	ProjectID string `json:"projectId"`
}

// GetDashboard returns every collection in one aggregate payload.
func (h *Handlers) GetDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.Dashboard.Get(r.Context())
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// CreateOrganization creates an organization.
func (h *Handlers) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[organization.CreateRequest](w, r, maxRequestBodySize)
	if !ok {
		return
	}
	o, err := h.Orgs.Create(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, "organization creation failed")
		return
	}
	writeJSON(w, http.StatusCreated, createdResponse{Message: "organization created", ID: o.ID})
}

// CreateContact creates a contact, optionally linked to an organization.
func (h *Handlers) CreateContact(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[contact.CreateRequest](w, r, maxRequestBodySize)
	if !ok {
		return
	}
	c, err := h.Contacts.Create(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, "contact creation failed")
		return
	}
	writeJSON(w, http.StatusCreated, createdResponse{Message: "contact created", ID: c.ID})
}

// CreateDeal creates a deal in stage "new".
func (h *Handlers) CreateDeal(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[deal.CreateRequest](w, r, maxRequestBodySize)
	if !ok {
		return
	}
	d, err := h.Deals.Create(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, "deal creation failed")
		return
	}
	writeJSON(w, http.StatusCreated, createdResponse{Message: "deal created", ID: d.ID})
}

// WinDeal transitions a deal to won and returns the spawned project's ID.
func (h *Handlers) WinDeal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.Deals.Win(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "deal not found")
		return
	}
	writeJSON(w, http.StatusOK, winResponse{Message: "deal won, project created", ProjectID: p.ID})
}
