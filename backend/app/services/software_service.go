package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"soft-admin/backend/app/dto"
	"soft-admin/backend/app/models"
	"soft-admin/backend/app/store"
)

const (
	reasonAuthorized    = "authorized"
	reasonDisabled      = "disabled"
	reasonNotRegistered = "software not registered"
)

// Upload carries an optional file attached to an add request.
type Upload struct {
	Filename string
	Data     []byte
}

type SoftwareService struct {
	store store.Store
	blobs store.BlobStore
}

func NewSoftwareService(st store.Store, blobs store.BlobStore) *SoftwareService {
	return &SoftwareService{store: st, blobs: blobs}
}

// List filters by a case-sensitive substring on name or desc, then pages.
// Total counts the filtered set before paging. Entries are in registry
// order, newest first.
func (s *SoftwareService) List(ctx context.Context, page, limit int, keyword string) (int, []models.Software, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return 0, nil, err
	}
	list := doc.Softwares
	if keyword != "" {
		filtered := make([]models.Software, 0, len(list))
		for _, sw := range list {
			if strings.Contains(sw.Name, keyword) || strings.Contains(sw.Desc, keyword) {
				filtered = append(filtered, sw)
			}
		}
		list = filtered
	}
	total := len(list)

	if page < 1 {
		page = 1
	}
	if limit < 0 {
		limit = 0
	}
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	items := make([]models.Software, 0, end-start)
	items = append(items, list[start:end]...)
	return total, items, nil
}

// Add creates an entry with a millisecond-timestamp id, disabled, and
// prepends it so listings come out newest first. An attached file is
// stored under "<millis><ext>" before the registry is written.
func (s *SoftwareService) Add(ctx context.Context, name, version, author, desc string, upload *Upload) (int64, error) {
	if name == "" || version == "" {
		return 0, ErrMissingField
	}
	doc, err := s.store.Load(ctx)
	if err != nil {
		return 0, err
	}

	id := time.Now().UnixMilli()
	// Two adds in the same millisecond must still get unique, increasing ids.
	for _, sw := range doc.Softwares {
		if id <= sw.ID {
			id = sw.ID + 1
		}
	}

	entry := models.Software{
		ID:         id,
		Name:       name,
		Version:    version,
		Author:     author,
		Desc:       desc,
		CreateTime: time.Now().Format("2006-01-02 15:04:05"),
		Enabled:    false,
	}
	if upload != nil {
		stored := strconv.FormatInt(id, 10) + filepath.Ext(upload.Filename)
		if err := s.blobs.Put(ctx, stored, upload.Data); err != nil {
			return 0, fmt.Errorf("store upload: %w", err)
		}
		entry.Filename = stored
		entry.Filepath = "/uploads/" + stored
	}

	doc.Softwares = append([]models.Software{entry}, doc.Softwares...)
	if err := s.store.Save(ctx, doc); err != nil {
		return 0, err
	}
	return id, nil
}

// Delete removes the entry and, first, its upload if it has one. A
// failed blob removal aborts the whole delete. An unknown id succeeds
// without touching anything, matching the deployed behavior.
func (s *SoftwareService) Delete(ctx context.Context, id int64) error {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	for _, sw := range doc.Softwares {
		if sw.ID == id && sw.Filename != "" {
			if err := s.blobs.Delete(ctx, sw.Filename); err != nil {
				return fmt.Errorf("delete upload: %w", err)
			}
			break
		}
	}
	kept := make([]models.Software, 0, len(doc.Softwares))
	for _, sw := range doc.Softwares {
		if sw.ID != id {
			kept = append(kept, sw)
		}
	}
	doc.Softwares = kept
	return s.store.Save(ctx, doc)
}

// Toggle sets the enabled flag exactly as given.
func (s *SoftwareService) Toggle(ctx context.Context, id int64, enabled bool) error {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	for i := range doc.Softwares {
		if doc.Softwares[i].ID == id {
			doc.Softwares[i].Enabled = enabled
			return s.store.Save(ctx, doc)
		}
	}
	return ErrNotFound
}

func (s *SoftwareService) Status(ctx context.Context, id int64) (dto.StatusData, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return dto.StatusData{}, err
	}
	for _, sw := range doc.Softwares {
		if sw.ID == id {
			return dto.StatusData{ID: sw.ID, Enabled: sw.Enabled}, nil
		}
	}
	return dto.StatusData{}, ErrNotFound
}

// GetUpload fetches a stored upload by its generated name.
func (s *SoftwareService) GetUpload(ctx context.Context, name string) ([]byte, bool, error) {
	return s.blobs.Get(ctx, name)
}

// Query resolves a keyword to permission rows. An exact id match comes
// first, then case-insensitive name substring matches in registry order,
// deduplicated by id keeping the first occurrence. An empty result is
// not an error.
func (s *SoftwareService) Query(ctx context.Context, keyword string) ([]dto.QueryItem, error) {
	if keyword == "" {
		return nil, ErrMissingKeyword
	}
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	var matches []models.Software
	if id, convErr := strconv.ParseInt(keyword, 10, 64); convErr == nil {
		for _, sw := range doc.Softwares {
			if sw.ID == id {
				matches = append(matches, sw)
				break
			}
		}
	}
	lower := strings.ToLower(keyword)
	for _, sw := range doc.Softwares {
		if strings.Contains(strings.ToLower(sw.Name), lower) {
			matches = append(matches, sw)
		}
	}

	seen := make(map[int64]bool, len(matches))
	items := make([]dto.QueryItem, 0, len(matches))
	for _, sw := range matches {
		if seen[sw.ID] {
			continue
		}
		seen[sw.ID] = true
		reason := reasonDisabled
		if sw.Enabled {
			reason = reasonAuthorized
		}
		items = append(items, dto.QueryItem{
			ID:      sw.ID,
			Name:    sw.Name,
			Version: sw.Version,
			Enabled: sw.Enabled,
			CanRun:  sw.Enabled,
			Reason:  reason,
		})
	}
	return items, nil
}

// Permission answers the public startup check. An unknown id is a
// structured denial, not an error; found reports whether the entry exists
// so the controller can pick the envelope code.
func (s *SoftwareService) Permission(ctx context.Context, id int64) (dto.PermissionData, bool, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return dto.PermissionData{}, false, err
	}
	for _, sw := range doc.Softwares {
		if sw.ID == id {
			reason := reasonDisabled
			if sw.Enabled {
				reason = reasonAuthorized
			}
			return dto.PermissionData{
				CanRun:   sw.Enabled,
				Reason:   reason,
				Software: &dto.SoftwareInfo{Name: sw.Name, Version: sw.Version},
			}, true, nil
		}
	}
	return dto.PermissionData{CanRun: false, Reason: reasonNotRegistered}, false, nil
}
