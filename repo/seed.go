package repo

import (
	"campus-events/config"
	"campus-events/models"
	"campus-events/storage"
)

const SecretsFile = "admin_secrets.json"

// Seed creates every collection file that does not exist yet. The admin
// seed record comes from config so prod deployments can supply it from
// Secrets Manager. admin_secrets.json is written for compatibility with
// earlier deployments; no route reads it.
func Seed(backend storage.Backend, admin config.AdminConfig) error {
	seeds := []struct {
		name  string
		value any
	}{
		{AdminsFile, []models.Admin{{
			Username: admin.Username,
			Password: admin.Password,
			Role:     models.RoleAdmin,
		}}},
		{EventsFile, []models.Event{}},
		{UsersFile, []models.User{}},
		{SecretsFile, models.AdminSecrets{
			AdminUser: "superadmin",
			AdminPass: "NTU_Admin_Secure_2025",
		}},
		{AttendanceFile, map[string][]int{}},
	}
	for _, seed := range seeds {
		if err := storage.EnsureJSON(backend, seed.name, seed.value); err != nil {
			return err
		}
	}
	return nil
}
