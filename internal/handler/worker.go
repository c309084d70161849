package handler

import (
	"net/http"

	"github.com/dangerclosesec/sitebook/internal/service"
)

// WorkerHandler serves the employee mode: active sites and own attendance.
type WorkerHandler struct {
	attendance *service.AttendanceService
}

func NewWorkerHandler(attendance *service.AttendanceService) *WorkerHandler {
	return &WorkerHandler{attendance: attendance}
}

func (h *WorkerHandler) Sites(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	sites, err := h.attendance.WorkerSites(r.Context(), app.OrgID())
	if err != nil {
		respondWithServiceError(w, r, "Failed to list worker sites", err)
		return
	}
	respondWithJSON(w, http.StatusOK, sites)
}

func (h *WorkerHandler) Log(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	var input service.AttendanceInput
	if !decodeJSON(w, r, &input) {
		return
	}
	entry, err := h.attendance.Log(r.Context(), app, input)
	if err != nil {
		respondWithServiceError(w, r, "Failed to log attendance", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, entry)
}

func (h *WorkerHandler) MyLogs(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	logs, err := h.attendance.ListMine(r.Context(), app)
	if err != nil {
		respondWithServiceError(w, r, "Failed to list attendance", err)
		return
	}
	respondWithJSON(w, http.StatusOK, logs)
}
