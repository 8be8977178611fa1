package sqlitestore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soft-admin/backend/app/models"
)

func openTest(t *testing.T) (*Store, *BlobStore) {
	t.Helper()
	gdb, err := Open(filepath.Join(t.TempDir(), "registry.db"))
	require.NoError(t, err)
	return NewStore(gdb), NewBlobStore(gdb)
}

func TestLoadEmptyDatabaseYieldsDefault(t *testing.T) {
	s, _ := openTest(t)

	doc, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, doc.Users, 1)
	assert.Equal(t, "admin", doc.Users[0].Username)
	assert.Empty(t, doc.Softwares)
}

func TestSaveThenLoad(t *testing.T) {
	s, _ := openTest(t)
	ctx := context.Background()

	doc := models.DefaultDocument()
	doc.Softwares = []models.Software{{ID: 42, Name: "Tool", Version: "1.0", Enabled: true}}
	require.NoError(t, s.Save(ctx, doc))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Softwares, 1)
	assert.Equal(t, int64(42), got.Softwares[0].ID)
	assert.True(t, got.Softwares[0].Enabled)

	// a second save overwrites the single row
	doc.Softwares = nil
	require.NoError(t, s.Save(ctx, doc))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Softwares)
}

func TestBlobRoundTrip(t *testing.T) {
	_, b := openTest(t)
	ctx := context.Background()

	require.NoError(t, b.Put(ctx, "99.zip", []byte("payload")))

	data, ok, err := b.Get(ctx, "99.zip")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), data)

	// put on the same name overwrites
	require.NoError(t, b.Put(ctx, "99.zip", []byte("v2")))
	data, ok, err = b.Get(ctx, "99.zip")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v2"), data)

	require.NoError(t, b.Delete(ctx, "99.zip"))
	_, ok, err = b.Get(ctx, "99.zip")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, b.Delete(ctx, "99.zip"))
}
