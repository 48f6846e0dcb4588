package models

// AdminSecrets mirrors admin_secrets.json. No route reads it; the file is
// seeded for compatibility with earlier deployments.
type AdminSecrets struct {
	AdminUser string `json:"admin_user"`
	AdminPass string `json:"admin_pass"`
}
