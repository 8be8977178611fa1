package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"soft-admin/backend/app/dto"
	"soft-admin/backend/app/middleware"
	"soft-admin/backend/app/services"
)

// Session cookies advertise a 24h lifetime to the browser; the server
// itself never expires a session.
const sessionMaxAge = 24 * 60 * 60

type AuthController struct {
	Users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{Users: users}
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	token, data, err := c.Users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		dto.WriteError(w, dto.CodeInvalid, "invalid username or password")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   sessionMaxAge,
	})
	dto.WriteOK(w, "login successful", data)
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	err := c.Users.Register(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, services.ErrMissingField):
		dto.WriteError(w, dto.CodeInvalid, "username and password are required")
	case errors.Is(err, services.ErrDuplicateUser):
		dto.WriteError(w, dto.CodeInvalid, "username already exists")
	case err != nil:
		dto.WriteError(w, dto.CodeInvalid, "registration failed")
	default:
		dto.WriteOK(w, "registration successful", nil)
	}
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil {
		c.Users.Logout(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	dto.WriteOK(w, "logged out", nil)
}

func (c *AuthController) Info(w http.ResponseWriter, r *http.Request) {
	ident := middleware.GetIdentity(r.Context())
	if ident == nil {
		dto.WriteError(w, dto.CodeUnauthorized, "login required")
		return
	}
	dto.WriteOK(w, "", dto.UserInfo{Username: ident.Username, Role: ident.Role})
}
