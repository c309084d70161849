package handler

import (
	"net/http"

	"github.com/dangerclosesec/sitebook/core/quote"
	"github.com/dangerclosesec/sitebook/internal/service"
)

type QuoteHandler struct {
	quotes *service.QuoteService
}

func NewQuoteHandler(quotes *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

func (h *QuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	quotes, err := h.quotes.List(r.Context(), app.OrgID())
	if err != nil {
		respondWithServiceError(w, r, "Failed to list quotes", err)
		return
	}
	respondWithJSON(w, http.StatusOK, quotes)
}

func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	var input service.QuoteInput
	if !decodeJSON(w, r, &input) {
		return
	}
	q, err := h.quotes.Create(r.Context(), app.OrgID(), input)
	if err != nil {
		respondWithServiceError(w, r, "Failed to create quote", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, q)
}

func (h *QuoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	q, err := h.quotes.Get(r.Context(), app.OrgID(), id)
	if err != nil {
		respondWithServiceError(w, r, "Failed to get quote", err)
		return
	}
	respondWithJSON(w, http.StatusOK, q)
}

type quoteStatusRequest struct {
	Status quote.Status `json:"status"`
}

func (h *QuoteHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req quoteStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.quotes.UpdateStatus(r.Context(), app.OrgID(), id, req.Status); err != nil {
		respondWithServiceError(w, r, "Failed to update quote status", err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *QuoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.quotes.Delete(r.Context(), app.OrgID(), id); err != nil {
		respondWithServiceError(w, r, "Failed to delete quote", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
