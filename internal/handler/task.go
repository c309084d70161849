package handler

import (
	"net/http"

	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/dangerclosesec/sitebook/internal/service"
)

type TaskHandler struct {
	tasks *service.TaskService
}

func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// Calendar returns the week around ?date= (YYYY-MM-DD, default today) laid
// out in ?tz=.
func (h *TaskHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	loc, ok := queryLocation(w, r)
	if !ok {
		return
	}
	ref, ok := queryDate(w, r, "date", loc)
	if !ok {
		return
	}
	cal, err := h.tasks.Calendar(r.Context(), app.OrgID(), ref)
	if err != nil {
		respondWithServiceError(w, r, "Failed to load calendar", err)
		return
	}
	respondWithJSON(w, http.StatusOK, cal)
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	var input service.TaskInput
	if !decodeJSON(w, r, &input) {
		return
	}
	t, err := h.tasks.Create(r.Context(), app.OrgID(), input)
	if err != nil {
		respondWithServiceError(w, r, "Failed to create task", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, t)
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	t, err := h.tasks.Get(r.Context(), app.OrgID(), id)
	if err != nil {
		respondWithServiceError(w, r, "Failed to get task", err)
		return
	}
	respondWithJSON(w, http.StatusOK, t)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var input service.TaskInput
	if !decodeJSON(w, r, &input) {
		return
	}
	t, err := h.tasks.Update(r.Context(), app.OrgID(), id, input)
	if err != nil {
		respondWithServiceError(w, r, "Failed to update task", err)
		return
	}
	respondWithJSON(w, http.StatusOK, t)
}

type taskStatusRequest struct {
	Status model.TaskStatus `json:"status"`
}

func (h *TaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req taskStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.tasks.UpdateStatus(r.Context(), app.OrgID(), id, req.Status); err != nil {
		respondWithServiceError(w, r, "Failed to update task status", err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// Reschedule moves a task to the dropped day and hour.
func (h *TaskHandler) Reschedule(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var input service.RescheduleInput
	if !decodeJSON(w, r, &input) {
		return
	}
	t, err := h.tasks.Reschedule(r.Context(), app.OrgID(), id, input)
	if err != nil {
		respondWithServiceError(w, r, "Failed to reschedule task", err)
		return
	}
	respondWithJSON(w, http.StatusOK, t)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.tasks.Delete(r.Context(), app.OrgID(), id); err != nil {
		respondWithServiceError(w, r, "Failed to delete task", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
