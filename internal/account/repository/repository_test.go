package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	accountModel "github.com/aidnetlk/aidnet/internal/account/model"
	organizationModel "github.com/aidnetlk/aidnet/internal/organization/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&organizationModel.Organization{}, &organizationModel.Location{}, &accountModel.Account{})
	require.NoError(t, err)

	return db
}

func seedOrganization(t *testing.T, db *gorm.DB, name string, approved bool) uint {
	org := &organizationModel.Organization{Name: name, Approved: approved}
	require.NoError(t, db.Create(org).Error)
	return org.ID
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)
		orgID := seedOrganization(t, db, "Helping Hands", false)

		account := &accountModel.Account{
			FirstName:      "Nimal",
			LastName:       "Perera",
			Email:          "nimal@example.org",
			HashedPassword: "hash",
			IsActive:       true,
			UserRoles:      []int64{1, 2},
			OrganizationID: orgID,
		}
		require.NoError(t, repo.Create(ctx, account))
		assert.NotZero(t, account.ID)

		found, err := repo.GetByEmail(ctx, "nimal@example.org")
		require.NoError(t, err)
		assert.Equal(t, account.ID, found.ID)
		assert.Equal(t, []int64{1, 2}, found.UserRoles)
	})

	t.Run("duplicate email", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)
		orgID := seedOrganization(t, db, "Helping Hands", false)

		first := &accountModel.Account{
			FirstName: "Nimal", LastName: "Perera", Email: "nimal@example.org",
			HashedPassword: "hash", OrganizationID: orgID,
		}
		require.NoError(t, repo.Create(ctx, first))

		second := &accountModel.Account{
			FirstName: "Kamala", LastName: "Silva", Email: "nimal@example.org",
			HashedPassword: "hash", OrganizationID: orgID,
		}
		err := repo.Create(ctx, second)
		assert.ErrorIs(t, err, accountModel.ErrEmailTaken)
	})
}

func TestRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		account, err := repo.GetByEmail(ctx, "missing@example.org")
		assert.Nil(t, account)
		assert.ErrorIs(t, err, accountModel.ErrAccountNotFound)
	})
}

func TestRepository_ResetToken(t *testing.T) {
	ctx := context.Background()

	t.Run("set and clear on password update", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)
		orgID := seedOrganization(t, db, "Helping Hands", false)

		account := &accountModel.Account{
			FirstName: "Nimal", LastName: "Perera", Email: "nimal@example.org",
			HashedPassword: "old", OrganizationID: orgID,
		}
		require.NoError(t, repo.Create(ctx, account))

		expiry := time.Now().Add(time.Hour)
		require.NoError(t, repo.SetResetToken(ctx, account.ID, "tokenhash", expiry))

		found, err := repo.GetByID(ctx, account.ID)
		require.NoError(t, err)
		require.NotNil(t, found.ResetPasswordHash)
		assert.Equal(t, "tokenhash", *found.ResetPasswordHash)
		require.NotNil(t, found.ResetPasswordHashExpiry)

		require.NoError(t, repo.UpdatePassword(ctx, account.ID, "new"))

		found, err = repo.GetByID(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, "new", found.HashedPassword)
		assert.Nil(t, found.ResetPasswordHash)
		assert.Nil(t, found.ResetPasswordHashExpiry)
	})
}

func TestRepository_GetOrganizationRef(t *testing.T) {
	ctx := context.Background()

	t.Run("returns id and approval", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)
		orgID := seedOrganization(t, db, "Helping Hands", true)

		ref, err := repo.GetOrganizationRef(ctx, orgID)
		require.NoError(t, err)
		require.NotNil(t, ref)
		assert.Equal(t, orgID, ref.ID)
		assert.True(t, ref.Approved)
	})

	t.Run("missing organization yields nil", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		ref, err := repo.GetOrganizationRef(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, ref)
	})
}
