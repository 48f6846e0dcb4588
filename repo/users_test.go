package repo_test

import (
	"testing"

	"campus-events/models"
	"campus-events/repo"
	"campus-events/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersCreateAndList(t *testing.T) {
	users := repo.NewUsers(storage.NewMemoryBackend())

	require.NoError(t, users.Create(models.User{Username: "alice", Password: "p1", Role: "user"}))
	require.NoError(t, users.Create(models.User{Username: "bob", Password: "p2", Role: "user"}))

	list := users.List()
	require.Len(t, list, 2)
	assert.Equal(t, "alice", list[0].Username)
	assert.Equal(t, "bob", list[1].Username)
}

func TestUsersCreateDuplicate(t *testing.T) {
	users := repo.NewUsers(storage.NewMemoryBackend())

	require.NoError(t, users.Create(models.User{Username: "alice", Password: "p1", Role: "user"}))
	err := users.Create(models.User{Username: "alice", Password: "other", Role: "user"})
	assert.ErrorIs(t, err, repo.ErrUsernameTaken)
	assert.Len(t, users.List(), 1)
}

func TestUsersUniquenessIsCaseSensitive(t *testing.T) {
	users := repo.NewUsers(storage.NewMemoryBackend())

	require.NoError(t, users.Create(models.User{Username: "alice", Password: "p1", Role: "user"}))
	assert.NoError(t, users.Create(models.User{Username: "Alice", Password: "p2", Role: "user"}))
}

func TestUsersFindByCredentials(t *testing.T) {
	users := repo.NewUsers(storage.NewMemoryBackend())
	require.NoError(t, users.Create(models.User{Username: "alice", Password: "p1", Role: "user"}))

	user, ok := users.FindByCredentials("alice", "p1")
	require.True(t, ok)
	assert.Equal(t, "alice", user.Username)

	_, ok = users.FindByCredentials("alice", "wrong")
	assert.False(t, ok)
	_, ok = users.FindByCredentials("nobody", "p1")
	assert.False(t, ok)
}

func TestUsersExists(t *testing.T) {
	users := repo.NewUsers(storage.NewMemoryBackend())
	require.NoError(t, users.Create(models.User{Username: "alice", Password: "p1", Role: "user"}))

	assert.True(t, users.Exists("alice"))
	assert.False(t, users.Exists("bob"))
}

func TestAdminsFind(t *testing.T) {
	backend := storage.NewMemoryBackend()
	require.NoError(t, storage.WriteJSON(backend, repo.AdminsFile, []models.Admin{
		{Username: "admin", Password: "admin123", Role: "admin"},
	}))
	admins := repo.NewAdmins(backend)

	admin, ok := admins.Find("admin")
	require.True(t, ok)
	assert.Equal(t, "admin123", admin.Password)

	_, ok = admins.Find("other")
	assert.False(t, ok)
}
