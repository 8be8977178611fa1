package services

import (
	"context"

	"soft-admin/backend/app/dto"
	"soft-admin/backend/app/models"
	"soft-admin/backend/app/session"
	"soft-admin/backend/app/store"
)

const (
	adminListPage = "/admin-list.html"
	userIndexPage = "/user-index.html"
)

type UserService struct {
	store    store.Store
	sessions *session.Store
}

func NewUserService(st store.Store, sessions *session.Store) *UserService {
	return &UserService{store: st, sessions: sessions}
}

// Login matches username and password exactly against the registry.
// Passwords are stored and compared in cleartext; this mirrors the
// deployed scheme and the seeded admin/123456 account depends on it.
func (s *UserService) Login(ctx context.Context, username, password string) (string, dto.LoginData, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return "", dto.LoginData{}, err
	}
	for _, u := range doc.Users {
		if u.Username != username || u.Password != password {
			continue
		}
		role := u.Role
		if role == "" {
			role = models.RoleUser
		}
		token := s.sessions.Create(session.Identity{Username: u.Username, Role: role})
		redirect := userIndexPage
		if role == models.RoleAdmin {
			redirect = adminListPage
		}
		return token, dto.LoginData{Username: u.Username, Role: role, Redirect: redirect}, nil
	}
	return "", dto.LoginData{}, ErrInvalidCredentials
}

// Register appends a user-role account. It does not log the account in.
func (s *UserService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrMissingField
	}
	doc, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	for _, u := range doc.Users {
		if u.Username == username {
			return ErrDuplicateUser
		}
	}
	doc.Users = append(doc.Users, models.User{Username: username, Password: password, Role: models.RoleUser})
	return s.store.Save(ctx, doc)
}

// Logout revokes the session. Unknown tokens are ignored.
func (s *UserService) Logout(token string) {
	s.sessions.Revoke(token)
}
