package dto

import "soft-admin/backend/app/models"

// ListResponse is the admin listing payload. It is not wrapped in the
// envelope: the page consumes {total, data} directly.
type ListResponse struct {
	Total int               `json:"total"`
	Data  []models.Software `json:"data"`
}

type AddResult struct {
	ID int64 `json:"id"`
}

type ToggleRequest struct {
	Enabled bool `json:"enabled"`
}

type StatusData struct {
	ID      int64 `json:"id"`
	Enabled bool  `json:"enabled"`
}

// QueryItem is one row of the authenticated keyword query.
type QueryItem struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Version string `json:"version"`
	Enabled bool   `json:"enabled"`
	CanRun  bool   `json:"canRun"`
	Reason  string `json:"reason"`
}

type QueryData struct {
	List []QueryItem `json:"list"`
	Msg  string      `json:"msg"`
}

type SoftwareInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// PermissionData is the public startup-check payload. Field names are a
// wire contract consumed by external clients.
type PermissionData struct {
	CanRun   bool          `json:"canRun"`
	Reason   string        `json:"reason"`
	Software *SoftwareInfo `json:"software,omitempty"`
}
