package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/passform/passform-go/internal/form"
	"github.com/passform/passform-go/internal/model"
	"github.com/passform/passform-go/internal/service"
)

// FormHandler exposes form sessions over HTTP.
type FormHandler struct {
	service *service.FormService
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(svc *service.FormService) *FormHandler {
	return &FormHandler{service: svc}
}

// Routes mounts the form endpoints on r.
func (h *FormHandler) Routes(r chi.Router) {
	r.Post("/", h.HandleCreate)
	r.Route("/{form_id}", func(r chi.Router) {
		r.Get("/", h.HandleGet)
		r.Put("/", h.HandleUpdate)
		r.Delete("/", h.HandleDelete)
		r.Post("/toggle/{class}", h.HandleToggle)
		r.Post("/submit", h.HandleSubmit)
		r.Post("/reset", h.HandleReset)
	})
}

// HandleCreate handles POST /api/v1/forms requests.
func (h *FormHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, h.service.Create())
}

// HandleGet handles GET /api/v1/forms/{form_id} requests.
func (h *FormHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Get(chi.URLParam(r, "form_id"))
	h.respond(w, resp, err)
}

// HandleUpdate handles PUT /api/v1/forms/{form_id} requests.
func (h *FormHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateFormRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := h.service.Update(chi.URLParam(r, "form_id"), req)
	h.respond(w, resp, err)
}

// HandleToggle handles POST /api/v1/forms/{form_id}/toggle/{class} requests.
func (h *FormHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Toggle(chi.URLParam(r, "form_id"), chi.URLParam(r, "class"))
	h.respond(w, resp, err)
}

// HandleSubmit handles POST /api/v1/forms/{form_id}/submit requests.
func (h *FormHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Submit(chi.URLParam(r, "form_id"))
	h.respond(w, resp, err)
}

// HandleReset handles POST /api/v1/forms/{form_id}/reset requests.
func (h *FormHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Reset(chi.URLParam(r, "form_id"))
	h.respond(w, resp, err)
}

// HandleDelete handles DELETE /api/v1/forms/{form_id} requests.
func (h *FormHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(chi.URLParam(r, "form_id")); err != nil {
		h.respond(w, model.FormResponse{}, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *FormHandler) respond(w http.ResponseWriter, resp model.FormResponse, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, resp)
	case errors.Is(err, service.ErrFormNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
	case form.IsValidationError(err), errors.Is(err, form.ErrUnknownClass):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}
