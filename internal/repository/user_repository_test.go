package repository

import (
	"testing"

	"echoprep/internal/model"
	"echoprep/internal/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(testhelpers.SetupTestDB(t))

	user := &model.User{Username: "alice", PasswordHash: "hash"}
	require.NoError(t, repo.Create(user))
	assert.NotZero(t, user.ID)

	byID, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	byName, err := repo.FindByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	repo := NewUserRepository(testhelpers.SetupTestDB(t))

	require.NoError(t, repo.Create(&model.User{Username: "alice", PasswordHash: "hash"}))
	err := repo.Create(&model.User{Username: "alice", PasswordHash: "other"})
	assert.Error(t, err, "unique index on username should reject the second insert")
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := NewUserRepository(testhelpers.SetupTestDB(t))

	_, err := repo.FindByID(999)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.FindByUsername("ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
