package models

// Admin accounts live in their own collection; usernames are unique within
// it independently of the user collection.
type Admin struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
