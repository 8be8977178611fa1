package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soft-admin/backend/app/models"
	"soft-admin/backend/app/session"
)

// memStore keeps the document in memory, copying on the way in and out
// like a real backend would.
type memStore struct {
	doc models.Document
}

func newMemStore() *memStore {
	return &memStore{doc: models.DefaultDocument()}
}

func (m *memStore) Load(ctx context.Context) (models.Document, error) {
	doc := models.Document{
		Users:     append([]models.User(nil), m.doc.Users...),
		Softwares: append([]models.Software(nil), m.doc.Softwares...),
	}
	return doc, nil
}

func (m *memStore) Save(ctx context.Context, doc models.Document) error {
	m.doc = doc
	return nil
}

type memBlobs struct {
	blobs map[string][]byte
}

func newMemBlobs() *memBlobs {
	return &memBlobs{blobs: make(map[string][]byte)}
}

func (m *memBlobs) Put(ctx context.Context, name string, data []byte) error {
	m.blobs[name] = data
	return nil
}

func (m *memBlobs) Get(ctx context.Context, name string) ([]byte, bool, error) {
	data, ok := m.blobs[name]
	return data, ok, nil
}

func (m *memBlobs) Delete(ctx context.Context, name string) error {
	delete(m.blobs, name)
	return nil
}

func newServices() (*UserService, *SoftwareService, *memStore, *memBlobs) {
	st := newMemStore()
	blobs := newMemBlobs()
	sessions := session.NewStore()
	return NewUserService(st, sessions), NewSoftwareService(st, blobs), st, blobs
}

func TestLoginSeededAdmin(t *testing.T) {
	users, _, _, _ := newServices()

	token, data, err := users.Login(context.Background(), "admin", "123456")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "admin", data.Username)
	assert.Equal(t, models.RoleAdmin, data.Role)
	assert.Equal(t, "/admin-list.html", data.Redirect)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	users, _, _, _ := newServices()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "admin", password: "wrong"},
		{name: "unknown user", username: "nobody", password: "123456"},
		{name: "case-sensitive username", username: "Admin", password: "123456"},
		{name: "case-sensitive password", username: "admin", password: "123456 "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, _, err := users.Login(context.Background(), tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.Empty(t, token)
		})
	}
}

func TestRegisterThenLogin(t *testing.T) {
	users, _, _, _ := newServices()

	require.NoError(t, users.Register(context.Background(), "alice", "pw1"))

	_, data, err := users.Login(context.Background(), "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, data.Role)
	assert.Equal(t, "/user-index.html", data.Redirect)
}

func TestRegisterValidation(t *testing.T) {
	users, _, st, _ := newServices()

	assert.ErrorIs(t, users.Register(context.Background(), "", "pw"), ErrMissingField)
	assert.ErrorIs(t, users.Register(context.Background(), "alice", ""), ErrMissingField)

	require.NoError(t, users.Register(context.Background(), "alice", "pw1"))
	before := len(st.doc.Users)
	assert.ErrorIs(t, users.Register(context.Background(), "alice", "pw2"), ErrDuplicateUser)
	assert.Len(t, st.doc.Users, before)
}

func TestAddPrependsDisabledEntry(t *testing.T) {
	_, softwares, _, _ := newServices()
	ctx := context.Background()

	first, err := softwares.Add(ctx, "Tool", "1.0", "", "", nil)
	require.NoError(t, err)
	second, err := softwares.Add(ctx, "Other", "2.0", "me", "a thing", nil)
	require.NoError(t, err)

	assert.Greater(t, second, first)

	total, items, err := softwares.List(ctx, 1, 10, "")
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, items, 2)
	assert.Equal(t, "Other", items[0].Name)
	assert.False(t, items[0].Enabled)
	assert.Equal(t, "Tool", items[1].Name)
}

func TestAddRequiresNameAndVersion(t *testing.T) {
	_, softwares, _, _ := newServices()

	_, err := softwares.Add(context.Background(), "", "1.0", "", "", nil)
	assert.ErrorIs(t, err, ErrMissingField)
	_, err = softwares.Add(context.Background(), "Tool", "", "", "", nil)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestAddStoresUpload(t *testing.T) {
	_, softwares, st, blobs := newServices()

	id, err := softwares.Add(context.Background(), "Tool", "1.0", "", "",
		&Upload{Filename: "installer.zip", Data: []byte("zipzip")})
	require.NoError(t, err)

	entry := st.doc.Softwares[0]
	assert.Equal(t, id, entry.ID)
	require.NotEmpty(t, entry.Filename)
	assert.Equal(t, "/uploads/"+entry.Filename, entry.Filepath)

	data, ok, err := blobs.Get(context.Background(), entry.Filename)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("zipzip"), data)
}

func TestListFilterAndPaging(t *testing.T) {
	_, softwares, _, _ := newServices()
	ctx := context.Background()

	_, err := softwares.Add(ctx, "Editor", "1.0", "", "writes text", nil)
	require.NoError(t, err)
	_, err = softwares.Add(ctx, "Viewer", "1.0", "", "reads text", nil)
	require.NoError(t, err)
	_, err = softwares.Add(ctx, "editor pro", "2.0", "", "", nil)
	require.NoError(t, err)

	// keyword matches name or desc, case-sensitively
	total, items, err := softwares.List(ctx, 1, 10, "Editor")
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Editor", items[0].Name)

	total, items, err = softwares.List(ctx, 1, 10, "text")
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	// total counts the filtered set before paging
	total, items, err = softwares.List(ctx, 1, 2, "")
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, items, 2)

	total, items, err = softwares.List(ctx, 2, 2, "")
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, items, 1)

	// out-of-range page is empty, not an error
	_, items, err = softwares.List(ctx, 9, 10, "")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestToggleAndStatus(t *testing.T) {
	_, softwares, _, _ := newServices()
	ctx := context.Background()

	id, err := softwares.Add(ctx, "Tool", "1.0", "", "", nil)
	require.NoError(t, err)

	require.NoError(t, softwares.Toggle(ctx, id, true))
	status, err := softwares.Status(ctx, id)
	require.NoError(t, err)
	assert.True(t, status.Enabled)

	require.NoError(t, softwares.Toggle(ctx, id, false))
	status, err = softwares.Status(ctx, id)
	require.NoError(t, err)
	assert.False(t, status.Enabled)

	assert.ErrorIs(t, softwares.Toggle(ctx, id+1, true), ErrNotFound)
	_, err = softwares.Status(ctx, id+1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRemovesEntryAndBlob(t *testing.T) {
	_, softwares, _, blobs := newServices()
	ctx := context.Background()

	id, err := softwares.Add(ctx, "Tool", "1.0", "", "",
		&Upload{Filename: "setup.exe", Data: []byte("bin")})
	require.NoError(t, err)

	require.NoError(t, softwares.Delete(ctx, id))

	_, err = softwares.Status(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, blobs.blobs)
}

func TestDeleteUnknownIDSucceeds(t *testing.T) {
	_, softwares, _, _ := newServices()
	assert.NoError(t, softwares.Delete(context.Background(), 12345))
}

func TestQueryIDMatchComesFirstWithoutDuplicates(t *testing.T) {
	_, softwares, st, _ := newServices()
	ctx := context.Background()

	// fixed ids so the id keyword can collide with a name match
	st.doc.Softwares = []models.Software{
		{ID: 300, Name: "tool 100", Version: "3.0"},
		{ID: 200, Name: "other", Version: "2.0"},
		{ID: 100, Name: "tool 100", Version: "1.0", Enabled: true},
	}

	items, err := softwares.Query(ctx, "100")
	require.NoError(t, err)
	require.Len(t, items, 2)
	// id match first even though its name also matches the keyword
	assert.Equal(t, int64(100), items[0].ID)
	assert.Equal(t, int64(300), items[1].ID)

	seen := map[int64]bool{}
	for _, it := range items {
		assert.False(t, seen[it.ID])
		seen[it.ID] = true
	}
}

func TestQueryNameMatchIsCaseInsensitive(t *testing.T) {
	_, softwares, _, _ := newServices()
	ctx := context.Background()

	_, err := softwares.Add(ctx, "PhotoShop", "1.0", "", "", nil)
	require.NoError(t, err)

	items, err := softwares.Query(ctx, "photo")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "PhotoShop", items[0].Name)
	assert.False(t, items[0].CanRun)
	assert.Equal(t, "disabled", items[0].Reason)
}

func TestQueryReasonReflectsEnabled(t *testing.T) {
	_, softwares, _, _ := newServices()
	ctx := context.Background()

	id, err := softwares.Add(ctx, "Tool", "1.0", "", "", nil)
	require.NoError(t, err)
	require.NoError(t, softwares.Toggle(ctx, id, true))

	items, err := softwares.Query(ctx, "Tool")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].CanRun)
	assert.Equal(t, "authorized", items[0].Reason)
}

func TestQueryEmptyResultIsNotAnError(t *testing.T) {
	_, softwares, _, _ := newServices()

	items, err := softwares.Query(context.Background(), "nothing here")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestQueryRequiresKeyword(t *testing.T) {
	_, softwares, _, _ := newServices()
	_, err := softwares.Query(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingKeyword)
}

func TestPermission(t *testing.T) {
	_, softwares, _, _ := newServices()
	ctx := context.Background()

	id, err := softwares.Add(ctx, "Tool", "1.0", "", "", nil)
	require.NoError(t, err)

	data, found, err := softwares.Permission(ctx, id)
	require.NoError(t, err)
	assert.True(t, found)
	assert.False(t, data.CanRun)
	assert.Equal(t, "disabled", data.Reason)
	require.NotNil(t, data.Software)
	assert.Equal(t, "Tool", data.Software.Name)
	assert.Equal(t, "1.0", data.Software.Version)

	require.NoError(t, softwares.Toggle(ctx, id, true))
	data, found, err = softwares.Permission(ctx, id)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, data.CanRun)
	assert.Equal(t, "authorized", data.Reason)
}

func TestPermissionUnknownID(t *testing.T) {
	_, softwares, _, _ := newServices()

	data, found, err := softwares.Permission(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, found)
	assert.False(t, data.CanRun)
	assert.Equal(t, "software not registered", data.Reason)
	assert.Nil(t, data.Software)
}
