package models

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type Software struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Version    string `json:"version"`
	Author     string `json:"author"`
	Desc       string `json:"desc"`
	Filename   string `json:"filename"`
	Filepath   string `json:"filepath"`
	CreateTime string `json:"createTime"`
	Enabled    bool   `json:"enabled"`
}

// Document is the whole registry as persisted: one JSON object holding
// every user and every software entry.
type Document struct {
	Users     []User     `json:"users"`
	Softwares []Software `json:"softwares"`
}

// DefaultDocument is what a fresh or unreadable registry falls back to:
// the seeded admin account and no software.
func DefaultDocument() Document {
	return Document{
		Users:     []User{{Username: "admin", Password: "123456", Role: RoleAdmin}},
		Softwares: []Software{},
	}
}
