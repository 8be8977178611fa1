package dto

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginData tells the UI who logged in and where to go next.
type LoginData struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Redirect string `json:"redirect"`
}

type UserInfo struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
