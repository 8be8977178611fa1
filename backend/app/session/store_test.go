package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndLookup(t *testing.T) {
	s := NewStore()

	token := s.Create(Identity{Username: "alice", Role: "user"})
	require.NotEmpty(t, token)

	id, ok := s.Lookup(token)
	require.True(t, ok)
	assert.Equal(t, "alice", id.Username)
	assert.Equal(t, "user", id.Role)
	assert.False(t, id.LoginTime.IsZero())
}

func TestTokensAreDistinct(t *testing.T) {
	s := NewStore()
	a := s.Create(Identity{Username: "alice", Role: "user"})
	b := s.Create(Identity{Username: "alice", Role: "user"})
	assert.NotEqual(t, a, b)
}

func TestLookupUnknownToken(t *testing.T) {
	s := NewStore()
	_, ok := s.Lookup("no-such-token")
	assert.False(t, ok)
}

func TestRevoke(t *testing.T) {
	s := NewStore()
	token := s.Create(Identity{Username: "bob", Role: "admin"})

	s.Revoke(token)
	_, ok := s.Lookup(token)
	assert.False(t, ok)

	// revoking again is a no-op
	s.Revoke(token)
	s.Revoke("never-existed")
}
