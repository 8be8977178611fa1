// Package sqlitestore keeps the registry in an embedded sqlite file: the
// document in a single row, uploads in a blob table. Whole-document
// load/save semantics are the same as the other backends.
package sqlitestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"soft-admin/backend/app/models"
	"soft-admin/backend/global"
)

type registryRow struct {
	ID   uint `gorm:"primaryKey"`
	Data []byte
}

func (registryRow) TableName() string { return "registry" }

type blobRow struct {
	Name string `gorm:"primaryKey;size:191"`
	Data []byte
}

func (blobRow) TableName() string { return "blobs" }

func Open(path string) (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := gdb.AutoMigrate(&registryRow{}, &blobRow{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return gdb, nil
}

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

func (s *Store) Load(ctx context.Context) (models.Document, error) {
	var row registryRow
	err := s.db.WithContext(ctx).First(&row, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultDocument(), nil
	}
	if err != nil {
		global.Logger.Warn().Err(err).Msg("registry row unreadable, using default registry")
		return models.DefaultDocument(), nil
	}
	var doc models.Document
	if err := json.Unmarshal(row.Data, &doc); err != nil {
		global.Logger.Warn().Err(err).Msg("registry row malformed, using default registry")
		return models.DefaultDocument(), nil
	}
	return doc, nil
}

func (s *Store) Save(ctx context.Context, doc models.Document) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}
	if err := s.db.WithContext(ctx).Save(&registryRow{ID: 1, Data: b}).Error; err != nil {
		return fmt.Errorf("write registry: %w", err)
	}
	return nil
}

type BlobStore struct {
	db *gorm.DB
}

func NewBlobStore(db *gorm.DB) *BlobStore { return &BlobStore{db: db} }

func (b *BlobStore) Put(ctx context.Context, name string, data []byte) error {
	return b.db.WithContext(ctx).Save(&blobRow{Name: name, Data: data}).Error
}

func (b *BlobStore) Get(ctx context.Context, name string) ([]byte, bool, error) {
	var row blobRow
	err := b.db.WithContext(ctx).First(&row, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return row.Data, true, nil
}

func (b *BlobStore) Delete(ctx context.Context, name string) error {
	return b.db.WithContext(ctx).Delete(&blobRow{}, "name = ?", name).Error
}
