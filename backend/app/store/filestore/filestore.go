// Package filestore keeps the registry in a JSON file and uploads in a
// local directory.
package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"soft-admin/backend/app/models"
	"soft-admin/backend/global"
)

// Store serves the registry document from a single JSON file. The raw
// bytes of the last read are cached; an fsnotify watcher on the parent
// directory drops the cache when the file is changed from outside the
// process.
type Store struct {
	path    string
	mu      sync.Mutex
	cached  []byte
	watcher *fsnotify.Watcher
}

func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		b, _ := json.MarshalIndent(models.DefaultDocument(), "", "  ")
		if err := os.WriteFile(path, b, 0o644); err != nil {
			return nil, fmt.Errorf("seed db file: %w", err)
		}
	}

	s := &Store{path: filepath.Clean(path)}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch db file: %w", err)
	}
	if err := w.Add(filepath.Dir(s.path)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch db dir: %w", err)
	}
	s.watcher = w
	go s.watch()
	return s, nil
}

func (s *Store) watch() {
	for {
		select {
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != s.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				s.mu.Lock()
				s.cached = nil
				s.mu.Unlock()
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			global.Logger.Warn().Err(err).Str("path", s.path).Msg("db file watcher error")
		}
	}
}

func (s *Store) Load(ctx context.Context) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.cached
	if data == nil {
		b, err := os.ReadFile(s.path)
		if err != nil {
			global.Logger.Warn().Err(err).Str("path", s.path).Msg("db file unreadable, using default registry")
			return models.DefaultDocument(), nil
		}
		data = b
		s.cached = b
	}

	if strings.TrimSpace(string(data)) == "" {
		return models.DefaultDocument(), nil
	}
	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		global.Logger.Warn().Err(err).Str("path", s.path).Msg("db file malformed, using default registry")
		return models.DefaultDocument(), nil
	}
	return doc, nil
}

func (s *Store) Save(ctx context.Context, doc models.Document) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write registry: %w", err)
	}
	s.cached = b
	return nil
}

func (s *Store) Close() error {
	return s.watcher.Close()
}

// BlobStore writes uploads under a single directory, one file per blob.
type BlobStore struct {
	dir string
}

func NewBlobStore(dir string) (*BlobStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &BlobStore{dir: dir}, nil
}

func (b *BlobStore) Put(ctx context.Context, name string, data []byte) error {
	return os.WriteFile(filepath.Join(b.dir, filepath.Base(name)), data, 0o644)
}

func (b *BlobStore) Get(ctx context.Context, name string) ([]byte, bool, error) {
	data, err := os.ReadFile(filepath.Join(b.dir, filepath.Base(name)))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (b *BlobStore) Delete(ctx context.Context, name string) error {
	err := os.Remove(filepath.Join(b.dir, filepath.Base(name)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
