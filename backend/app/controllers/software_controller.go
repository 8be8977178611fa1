package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"soft-admin/backend/app/dto"
	"soft-admin/backend/app/services"
	"soft-admin/backend/global"
)

const maxUploadBytes = 64 << 20

type SoftwareController struct {
	Softwares *services.SoftwareService
}

func NewSoftwareController(softwares *services.SoftwareService) *SoftwareController {
	return &SoftwareController{Softwares: softwares}
}

// pathID parses the {id} route segment. The mux matches any segment, so
// non-numeric ids are rejected here as an unknown route.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		dto.WriteError(w, dto.CodeRouteNotFound, "route not found")
		return 0, false
	}
	return id, true
}

func (c *SoftwareController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit < 1 {
		limit = 10
	}
	total, items, err := c.Softwares.List(r.Context(), page, limit, q.Get("keyword"))
	if err != nil {
		dto.WriteError(w, dto.CodeInvalid, "list failed")
		return
	}
	dto.WriteJSON(w, dto.ListResponse{Total: total, Data: items})
}

func (c *SoftwareController) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		dto.WriteError(w, dto.CodeInvalid, "invalid form")
		return
	}
	var upload *services.Upload
	file, header, err := r.FormFile("file")
	if err == nil {
		defer file.Close()
		data, readErr := io.ReadAll(file)
		if readErr != nil {
			dto.WriteError(w, dto.CodeInvalid, "upload failed")
			return
		}
		upload = &services.Upload{Filename: header.Filename, Data: data}
	} else if !errors.Is(err, http.ErrMissingFile) {
		dto.WriteError(w, dto.CodeInvalid, "upload failed")
		return
	}

	id, err := c.Softwares.Add(r.Context(),
		r.FormValue("name"), r.FormValue("version"),
		r.FormValue("author"), r.FormValue("desc"), upload)
	switch {
	case errors.Is(err, services.ErrMissingField):
		dto.WriteError(w, dto.CodeInvalid, "name and version are required")
	case err != nil:
		global.Logger.Error().Err(err).Msg("add software")
		dto.WriteError(w, dto.CodeInvalid, "add failed")
	default:
		dto.WriteOK(w, "added", dto.AddResult{ID: id})
	}
}

func (c *SoftwareController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.Softwares.Delete(r.Context(), id); err != nil {
		global.Logger.Error().Err(err).Int64("id", id).Msg("delete software")
		dto.WriteError(w, dto.CodeInvalid, "delete failed")
		return
	}
	dto.WriteOK(w, "deleted", nil)
}

func (c *SoftwareController) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.ToggleRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	err := c.Softwares.Toggle(r.Context(), id, req.Enabled)
	switch {
	case errors.Is(err, services.ErrNotFound):
		dto.WriteError(w, dto.CodeInvalid, "not found")
	case err != nil:
		dto.WriteError(w, dto.CodeInvalid, "toggle failed")
	case req.Enabled:
		dto.WriteOK(w, "enabled", nil)
	default:
		dto.WriteOK(w, "disabled", nil)
	}
}

func (c *SoftwareController) Status(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	status, err := c.Softwares.Status(r.Context(), id)
	switch {
	case errors.Is(err, services.ErrNotFound):
		dto.WriteError(w, dto.CodeInvalid, "not found")
	case err != nil:
		dto.WriteError(w, dto.CodeInvalid, "status failed")
	default:
		dto.WriteOK(w, "", status)
	}
}

func (c *SoftwareController) Query(w http.ResponseWriter, r *http.Request) {
	items, err := c.Softwares.Query(r.Context(), r.URL.Query().Get("keyword"))
	switch {
	case errors.Is(err, services.ErrMissingKeyword):
		dto.WriteError(w, dto.CodeInvalid, "software id or name required")
	case err != nil:
		dto.WriteError(w, dto.CodeInvalid, "query failed")
	case len(items) == 0:
		dto.WriteOK(w, "", dto.QueryData{List: []dto.QueryItem{}, Msg: "no matching software found"})
	default:
		dto.WriteOK(w, "", dto.QueryData{List: items, Msg: fmt.Sprintf("found %d matching software", len(items))})
	}
}

// Permission is the public startup check: no session, soft denial for
// unknown ids.
func (c *SoftwareController) Permission(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	data, found, err := c.Softwares.Permission(r.Context(), id)
	if err != nil {
		dto.WriteError(w, dto.CodeInvalid, "permission check failed")
		return
	}
	code := dto.CodeOK
	if !found {
		code = dto.CodeInvalid
	}
	dto.WriteJSON(w, dto.Response{Code: code, Data: data})
}
