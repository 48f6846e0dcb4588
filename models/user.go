package models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
