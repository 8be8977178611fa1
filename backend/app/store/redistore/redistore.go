// Package redistore keeps the registry document under one redis key and
// uploads under a key prefix, mirroring the KV/object-store deployment.
package redistore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"soft-admin/backend/app/models"
	"soft-admin/backend/global"
)

type Store struct {
	rdb *redis.Client
	key string
}

func NewStore(rdb *redis.Client, key string) *Store {
	return &Store{rdb: rdb, key: key}
}

func (s *Store) Load(ctx context.Context) (models.Document, error) {
	val, err := s.rdb.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return models.DefaultDocument(), nil
	}
	if err != nil {
		global.Logger.Warn().Err(err).Str("key", s.key).Msg("registry key unreadable, using default registry")
		return models.DefaultDocument(), nil
	}
	if strings.TrimSpace(val) == "" {
		return models.DefaultDocument(), nil
	}
	var doc models.Document
	if err := json.Unmarshal([]byte(val), &doc); err != nil {
		global.Logger.Warn().Err(err).Str("key", s.key).Msg("registry key malformed, using default registry")
		return models.DefaultDocument(), nil
	}
	return doc, nil
}

func (s *Store) Save(ctx context.Context, doc models.Document) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}
	if err := s.rdb.Set(ctx, s.key, b, 0).Err(); err != nil {
		return fmt.Errorf("write registry: %w", err)
	}
	return nil
}

// BlobStore keeps each upload in its own key under a prefix.
type BlobStore struct {
	rdb    *redis.Client
	prefix string
}

func NewBlobStore(rdb *redis.Client, prefix string) *BlobStore {
	return &BlobStore{rdb: rdb, prefix: prefix}
}

func (b *BlobStore) blobKey(name string) string {
	return b.prefix + name
}

func (b *BlobStore) Put(ctx context.Context, name string, data []byte) error {
	return b.rdb.Set(ctx, b.blobKey(name), data, 0).Err()
}

func (b *BlobStore) Get(ctx context.Context, name string) ([]byte, bool, error) {
	data, err := b.rdb.Get(ctx, b.blobKey(name)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (b *BlobStore) Delete(ctx context.Context, name string) error {
	return b.rdb.Del(ctx, b.blobKey(name)).Err()
}
