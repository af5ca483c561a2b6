package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/landsetu/landsetu/internal/domain/entity"
	"github.com/landsetu/landsetu/internal/platform/logger"
	"github.com/landsetu/landsetu/internal/port/httpserver/middleware"
	"github.com/landsetu/landsetu/internal/service"
)

type ContactHandler struct {
	contacts service.ContactService
	log      logger.Logger
}

func NewContactHandler(contacts service.ContactService, log logger.Logger) *ContactHandler {
	return &ContactHandler{contacts: contacts, log: log}
}

type contactRequest struct {
	LandID  string `json:"landId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Create is public: buyers do not need an account to inquire.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "Invalid request body")
		return
	}

	contact, err := h.contacts.Create(r.Context(), service.ContactInput{
		LandID:  req.LandID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, contact)
}

func (h *ContactHandler) ListForSeller(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeError(w, h.log, service.ErrUnauthorized)
		return
	}

	contacts, err := h.contacts.ListForSeller(r.Context(), session.UserID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeError(w, h.log, service.ErrUnauthorized)
		return
	}

	var req updateStatusRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "Invalid request body")
		return
	}

	err := h.contacts.UpdateStatus(r.Context(), chi.URLParam(r, "id"), session.UserID, entity.ContactStatus(req.Status))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Status updated"})
}
