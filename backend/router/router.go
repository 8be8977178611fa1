package router

import (
	"net/http"

	"soft-admin/backend/app/controllers"
	"soft-admin/backend/app/dto"
	"soft-admin/backend/app/middleware"
)

func New(authCtrl *controllers.AuthController, softCtrl *controllers.SoftwareController, mw *middleware.Auth, publicDir string) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("POST /api/login", authCtrl.Login)
	mux.HandleFunc("POST /api/register", authCtrl.Register)
	mux.HandleFunc("POST /api/logout", authCtrl.Logout)
	mux.HandleFunc("GET /api/software/{id}/permission", softCtrl.Permission)

	// any authenticated role
	mux.Handle("GET /api/user/info", mw.RequireAuth(http.HandlerFunc(authCtrl.Info)))
	mux.Handle("GET /api/software/query", mw.RequireAuth(http.HandlerFunc(softCtrl.Query)))

	// admin only
	mux.Handle("GET /api/software", mw.RequireAdmin(http.HandlerFunc(softCtrl.List)))
	mux.Handle("POST /api/software", mw.RequireAdmin(http.HandlerFunc(softCtrl.Add)))
	mux.Handle("DELETE /api/software/{id}", mw.RequireAdmin(http.HandlerFunc(softCtrl.Delete)))
	mux.Handle("PUT /api/software/{id}/toggle", mw.RequireAdmin(http.HandlerFunc(softCtrl.Toggle)))
	mux.Handle("GET /api/software/{id}/status", mw.RequireAdmin(http.HandlerFunc(softCtrl.Status)))

	// anything else under /api answers the envelope, not a transport 404
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		dto.WriteError(w, dto.CodeRouteNotFound, "route not found")
	})

	mux.HandleFunc("GET /uploads/{name}", softCtrl.ServeUpload)

	// static pages, with gated direct access to the role-specific ones
	pages := http.FileServer(http.Dir(publicDir))
	mux.Handle("/admin-list.html", mw.GateAdminPage(pages))
	mux.Handle("/admin-add.html", mw.GateAdminPage(pages))
	mux.Handle("/user-index.html", mw.GateUserPage(pages))
	mux.Handle("/", pages)

	return mux
}
