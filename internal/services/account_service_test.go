package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dkarpov/hirehub/internal/apperr"
	"github.com/dkarpov/hirehub/internal/dtos"
	"github.com/dkarpov/hirehub/internal/models"
)

func seekerRequest(email string) *dtos.RegisterRequest {
	return &dtos.RegisterRequest{
		Name:     "Ana",
		Email:    email,
		Password: "sup3rsecret",
		Role:     "seeker",
	}
}

func TestRegisterStoresHashedCredential(t *testing.T) {
	svc := NewAccountService(newTestDB(t), testLogger())

	account, err := svc.Register(seekerRequest("ana@x.com"))
	require.NoError(t, err)

	var stored models.Account
	require.NoError(t, svc.DB.First(&stored, account.ID).Error)

	assert.NotEqual(t, "sup3rsecret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("sup3rsecret")))
	assert.Equal(t, models.RoleSeeker, stored.Role)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc := NewAccountService(newTestDB(t), testLogger())

	_, err := svc.Register(seekerRequest("ana@x.com"))
	require.NoError(t, err)

	_, err = svc.Register(seekerRequest("ana@x.com"))
	require.ErrorIs(t, err, apperr.ErrConflict)

	var count int64
	require.NoError(t, svc.DB.Model(&models.Account{}).Where("email = ?", "ana@x.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := NewAccountService(newTestDB(t), testLogger())

	req := seekerRequest("ana@x.com")
	req.Role = "admin"
	_, err := svc.Register(req)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestAuthenticate(t *testing.T) {
	svc := NewAccountService(newTestDB(t), testLogger())
	_, err := svc.Register(seekerRequest("ana@x.com"))
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		account, err := svc.Authenticate("ana@x.com", "sup3rsecret")
		require.NoError(t, err)
		assert.Equal(t, "ana@x.com", account.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate("ana@x.com", "nope")
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Authenticate("ghost@x.com", "sup3rsecret")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestUpdateProfilePartialEdit(t *testing.T) {
	svc := NewAccountService(newTestDB(t), testLogger())
	account, err := svc.Register(seekerRequest("ana@x.com"))
	require.NoError(t, err)

	phone := "555-0101"
	updated, err := svc.UpdateProfile(account.ID, &dtos.UpdateProfileRequest{Phone: &phone}, "")
	require.NoError(t, err)

	assert.Equal(t, "555-0101", updated.Phone)
	assert.Equal(t, "Ana", updated.Name, "unsubmitted fields stay put")
	assert.Equal(t, models.RoleSeeker, updated.Role)
}

func TestUpdateProfileIgnoresWrongRoleFields(t *testing.T) {
	svc := NewAccountService(newTestDB(t), testLogger())
	account, err := svc.Register(seekerRequest("ana@x.com"))
	require.NoError(t, err)

	company := "Acme"
	updated, err := svc.UpdateProfile(account.ID, &dtos.UpdateProfileRequest{CompanyName: &company}, "")
	require.NoError(t, err)

	assert.Empty(t, updated.CompanyName, "employer-only field on a seeker is not applied")
}

func TestUpdateProfileAvatarReference(t *testing.T) {
	svc := NewAccountService(newTestDB(t), testLogger())
	account, err := svc.Register(seekerRequest("ana@x.com"))
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(account.ID, &dtos.UpdateProfileRequest{}, "avatars/avatar-1-abc.png")
	require.NoError(t, err)
	assert.Equal(t, "avatars/avatar-1-abc.png", updated.Avatar)

	// An edit without a new file keeps the existing reference.
	updated, err = svc.UpdateProfile(account.ID, &dtos.UpdateProfileRequest{}, "")
	require.NoError(t, err)
	assert.Equal(t, "avatars/avatar-1-abc.png", updated.Avatar)

	// A new file replaces it.
	updated, err = svc.UpdateProfile(account.ID, &dtos.UpdateProfileRequest{}, "avatars/avatar-2-def.png")
	require.NoError(t, err)
	assert.Equal(t, "avatars/avatar-2-def.png", updated.Avatar)
}
