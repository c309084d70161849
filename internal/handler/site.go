package handler

import (
	"net/http"

	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/dangerclosesec/sitebook/internal/service"
)

type SiteHandler struct {
	sites     *service.SiteService
	materials *service.MaterialService
}

func NewSiteHandler(sites *service.SiteService, materials *service.MaterialService) *SiteHandler {
	return &SiteHandler{sites: sites, materials: materials}
}

// List returns the sites of one board tab (?group=leads|active|archive),
// or all sites when no group is given.
func (h *SiteHandler) List(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	sites, err := h.sites.List(r.Context(), app.OrgID(), model.SiteGroup(r.URL.Query().Get("group")))
	if err != nil {
		respondWithServiceError(w, r, "Failed to list sites", err)
		return
	}
	respondWithJSON(w, http.StatusOK, sites)
}

func (h *SiteHandler) Create(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	var input service.SiteInput
	if !decodeJSON(w, r, &input) {
		return
	}
	site, err := h.sites.Create(r.Context(), app.OrgID(), input)
	if err != nil {
		respondWithServiceError(w, r, "Failed to create site", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, site)
}

func (h *SiteHandler) Get(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	site, err := h.sites.Get(r.Context(), app.OrgID(), id)
	if err != nil {
		respondWithServiceError(w, r, "Failed to get site", err)
		return
	}
	respondWithJSON(w, http.StatusOK, site)
}

func (h *SiteHandler) Update(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var input service.SiteInput
	if !decodeJSON(w, r, &input) {
		return
	}
	site, err := h.sites.Update(r.Context(), app.OrgID(), id, input)
	if err != nil {
		respondWithServiceError(w, r, "Failed to update site", err)
		return
	}
	respondWithJSON(w, http.StatusOK, site)
}

type siteStatusRequest struct {
	Status model.SiteStatus `json:"status"`
}

func (h *SiteHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req siteStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.sites.UpdateStatus(r.Context(), app.OrgID(), id, req.Status); err != nil {
		respondWithServiceError(w, r, "Failed to update site status", err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// Delete removes the site together with its quotes, transactions,
// materials and tasks.
func (h *SiteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.sites.Delete(r.Context(), app.OrgID(), id); err != nil {
		respondWithServiceError(w, r, "Failed to delete site", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SiteHandler) Rollup(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	rollup, err := h.sites.Rollup(r.Context(), app.OrgID(), id)
	if err != nil {
		respondWithServiceError(w, r, "Failed to compute site rollup", err)
		return
	}
	respondWithJSON(w, http.StatusOK, rollup)
}

func (h *SiteHandler) ListMaterials(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	siteID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	materials, err := h.materials.List(r.Context(), app.OrgID(), siteID)
	if err != nil {
		respondWithServiceError(w, r, "Failed to list materials", err)
		return
	}
	respondWithJSON(w, http.StatusOK, materials)
}

func (h *SiteHandler) CreateMaterial(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	siteID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var input service.MaterialInput
	if !decodeJSON(w, r, &input) {
		return
	}
	material, err := h.materials.Create(r.Context(), app.OrgID(), siteID, input)
	if err != nil {
		respondWithServiceError(w, r, "Failed to create material", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, material)
}

func (h *SiteHandler) UpdateMaterial(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "materialID")
	if !ok {
		return
	}
	var input service.MaterialInput
	if !decodeJSON(w, r, &input) {
		return
	}
	material, err := h.materials.Update(r.Context(), app.OrgID(), id, input)
	if err != nil {
		respondWithServiceError(w, r, "Failed to update material", err)
		return
	}
	respondWithJSON(w, http.StatusOK, material)
}

func (h *SiteHandler) DeleteMaterial(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "materialID")
	if !ok {
		return
	}
	if err := h.materials.Delete(r.Context(), app.OrgID(), id); err != nil {
		respondWithServiceError(w, r, "Failed to delete material", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
