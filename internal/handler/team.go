package handler

import (
	"net/http"

	"github.com/dangerclosesec/sitebook/internal/service"
)

type TeamHandler struct {
	team       *service.TeamService
	attendance *service.AttendanceService
	payroll    *service.PayrollService
}

func NewTeamHandler(team *service.TeamService, attendance *service.AttendanceService, payroll *service.PayrollService) *TeamHandler {
	return &TeamHandler{team: team, attendance: attendance, payroll: payroll}
}

// List returns active members, or archived ones with ?archived=true.
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	members, err := h.team.List(r.Context(), app.OrgID(), r.URL.Query().Get("archived") == "true")
	if err != nil {
		respondWithServiceError(w, r, "Failed to list members", err)
		return
	}
	respondWithJSON(w, http.StatusOK, members)
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	var input service.MemberInput
	if !decodeJSON(w, r, &input) {
		return
	}
	member, err := h.team.CreateMember(r.Context(), app.OrgID(), input)
	if err != nil {
		respondWithServiceError(w, r, "Failed to create member", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, member)
}

func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	member, err := h.team.Get(r.Context(), app.OrgID(), id)
	if err != nil {
		respondWithServiceError(w, r, "Failed to get member", err)
		return
	}
	respondWithJSON(w, http.StatusOK, member)
}

func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var input service.MemberInput
	if !decodeJSON(w, r, &input) {
		return
	}
	member, err := h.team.Update(r.Context(), app.OrgID(), id, input)
	if err != nil {
		respondWithServiceError(w, r, "Failed to update member", err)
		return
	}
	respondWithJSON(w, http.StatusOK, member)
}

func (h *TeamHandler) Archive(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.team.Archive(r.Context(), app.OrgID(), id); err != nil {
		respondWithServiceError(w, r, "Failed to archive member", err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *TeamHandler) Restore(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.team.Restore(r.Context(), app.OrgID(), id); err != nil {
		respondWithServiceError(w, r, "Failed to restore member", err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.team.Delete(r.Context(), app.OrgID(), id); err != nil {
		respondWithServiceError(w, r, "Failed to delete member", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Logs lists a member's attendance for the admin view.
func (h *TeamHandler) Logs(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	logs, err := h.attendance.ListFor(r.Context(), app.OrgID(), id)
	if err != nil {
		respondWithServiceError(w, r, "Failed to list attendance", err)
		return
	}
	respondWithJSON(w, http.StatusOK, logs)
}

func (h *TeamHandler) DeleteLog(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "logID")
	if !ok {
		return
	}
	if err := h.attendance.Delete(r.Context(), app.OrgID(), id); err != nil {
		respondWithServiceError(w, r, "Failed to delete attendance log", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TeamHandler) Payroll(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	summary, err := h.payroll.Summary(r.Context(), app.OrgID(), id)
	if err != nil {
		respondWithServiceError(w, r, "Failed to compute payroll", err)
		return
	}
	respondWithJSON(w, http.StatusOK, summary)
}

func (h *TeamHandler) Payout(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var input service.PayoutInput
	if !decodeJSON(w, r, &input) {
		return
	}
	t, err := h.payroll.Disburse(r.Context(), app.OrgID(), id, input)
	if err != nil {
		respondWithServiceError(w, r, "Failed to record payout", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, t)
}
