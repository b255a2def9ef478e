package service

import (
	"testing"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthEnv(t *testing.T) (AuthService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	userRepo := repository.NewUserRepo(db)
	svc := NewAuthService(userRepo, []byte("test-secret"))

	user := &model.User{Email: "admin@example.com", FullName: "Admin", IsActive: true}
	require.NoError(t, user.SetPassword("admin123"))
	require.NoError(t, db.Create(user).Error)

	return svc, db
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newAuthEnv(t)

	resp, err := svc.Login("admin@example.com", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin@example.com", resp.User.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthEnv(t)

	_, err := svc.Login("admin@example.com", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("ghost@example.com", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	svc, db := newAuthEnv(t)
	require.NoError(t, db.Model(&model.User{}).
		Where("email = ?", "admin@example.com").
		Update("is_active", false).Error)

	_, err := svc.Login("admin@example.com", "admin123")
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestLoginRotatesTokenVersion(t *testing.T) {
	svc, _ := newAuthEnv(t)

	first, err := svc.Login("admin@example.com", "admin123")
	require.NoError(t, err)

	// Logging in again invalidates the first session's token.
	_, err = svc.Login("admin@example.com", "admin123")
	require.NoError(t, err)

	_, err = svc.ValidateToken(first.Token)
	assert.Error(t, err)
}

func TestResetPassword(t *testing.T) {
	svc, _ := newAuthEnv(t)

	require.NoError(t, svc.ResetPassword("admin@example.com", "admin123", "newpass1"))

	_, err := svc.Login("admin@example.com", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("admin@example.com", "newpass1")
	assert.NoError(t, err)
}

func TestResetPasswordWrongOld(t *testing.T) {
	svc, _ := newAuthEnv(t)

	err := svc.ResetPassword("admin@example.com", "nope", "newpass1")
	assert.ErrorIs(t, err, ErrWrongPassword)
}
