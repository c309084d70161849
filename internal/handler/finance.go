package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dangerclosesec/sitebook/core/ledger"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/dangerclosesec/sitebook/internal/serializer"
	"github.com/dangerclosesec/sitebook/internal/service"
	"github.com/google/uuid"
)

type FinanceHandler struct {
	transactions *service.TransactionService
}

func NewFinanceHandler(transactions *service.TransactionService) *FinanceHandler {
	return &FinanceHandler{transactions: transactions}
}

// List supports ?year=, ?type=invoice|expense, ?site_id= and ?q= filters.
func (h *FinanceHandler) List(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	var query service.TransactionQuery
	if raw := q.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid year")
			return
		}
		query.Year = year
	}
	if raw := q.Get("type"); raw != "" {
		query.Type = ledger.EntryType(raw)
		if query.Type != ledger.EntryInvoice && query.Type != ledger.EntryExpense {
			respondWithError(w, http.StatusBadRequest, "Invalid type")
			return
		}
	}
	if raw := q.Get("site_id"); raw != "" {
		siteID, err := uuid.Parse(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid site_id")
			return
		}
		query.SiteID = &siteID
	}
	query.Search = q.Get("q")

	rows, err := h.transactions.List(r.Context(), app.OrgID(), query)
	if err != nil {
		respondWithServiceError(w, r, "Failed to list transactions", err)
		return
	}
	if rows == nil {
		rows = []model.Transaction{}
	}
	respondWithJSON(w, http.StatusOK, rows)
}

func (h *FinanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	var input service.TransactionInput
	if !decodeJSON(w, r, &input) {
		return
	}
	t, err := h.transactions.Create(r.Context(), app.OrgID(), input)
	if err != nil {
		respondWithServiceError(w, r, "Failed to create transaction", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, t)
}

func (h *FinanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	t, err := h.transactions.Get(r.Context(), app.OrgID(), id)
	if err != nil {
		respondWithServiceError(w, r, "Failed to get transaction", err)
		return
	}
	respondWithJSON(w, http.StatusOK, t)
}

func (h *FinanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var input service.TransactionInput
	if !decodeJSON(w, r, &input) {
		return
	}
	t, err := h.transactions.Update(r.Context(), app.OrgID(), id, input)
	if err != nil {
		respondWithServiceError(w, r, "Failed to update transaction", err)
		return
	}
	respondWithJSON(w, http.StatusOK, t)
}

type paidRequest struct {
	IsPaid *bool `json:"is_paid"`
}

// SetPaid stores the paid flag sent in the body.
func (h *FinanceHandler) SetPaid(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req paidRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.IsPaid == nil {
		respondWithError(w, http.StatusBadRequest, "is_paid is required")
		return
	}
	t, err := h.transactions.SetPaid(r.Context(), app.OrgID(), id, *req.IsPaid)
	if err != nil {
		respondWithServiceError(w, r, "Failed to update paid flag", err)
		return
	}
	respondWithJSON(w, http.StatusOK, t)
}

func (h *FinanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.transactions.Delete(r.Context(), app.OrgID(), id); err != nil {
		respondWithServiceError(w, r, "Failed to delete transaction", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *FinanceHandler) Overview(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	year, ok := queryYear(w, r)
	if !ok {
		return
	}
	overview, err := h.transactions.Overview(r.Context(), app.OrgID(), year)
	if err != nil {
		respondWithServiceError(w, r, "Failed to build finance overview", err)
		return
	}
	respondWithJSON(w, http.StatusOK, overview)
}

// Export streams the year's transactions as a CSV attachment. The body is
// buffered so a failed query still gets a JSON error response.
func (h *FinanceHandler) Export(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	year, ok := queryYear(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.transactions.Export(r.Context(), app.OrgID(), year, &buf); err != nil {
		respondWithServiceError(w, r, "Failed to export transactions", err)
		return
	}

	contentType, err := serializer.ContentType([]model.Transaction{}, serializer.FormatCSV)
	if err != nil {
		respondWithServiceError(w, r, "Failed to export transactions", err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="transactions-%d.csv"`, year))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
