package auth

import (
	"context"
	"testing"

	"coden/config"
	staffRepo "coden/database/repository/staff"
	"coden/models"
	"coden/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStaff(t *testing.T) (*staffRepo.MemoryStaffRepo, *models.Staff) {
	t.Helper()
	config.AppConfig.JWTSecret = "test-secret"

	repo := staffRepo.NewMemoryStaffRepo()
	hash, err := HashPassword("kopi-susu")
	require.NoError(t, err)

	staff := &models.Staff{
		ID:           "staff-1",
		EmployeeID:   "EMP001",
		Email:        "sari@coden.example",
		Name:         "Sari",
		Role:         models.RoleStaff,
		PasswordHash: hash,
		IsActive:     true,
	}
	require.NoError(t, repo.Create(staff))
	return repo, staff
}

func TestAuthenticateByEmployeeID(t *testing.T) {
	repo, staff := seedStaff(t)
	svc := &DefaultSessionService{Repo: repo}

	principal, token, err := svc.Authenticate(context.Background(), "EMP001", "kopi-susu")
	require.NoError(t, err)
	assert.Equal(t, staff.ID, principal.ID)
	assert.Equal(t, models.RoleStaff, principal.Role)
	assert.NotEmpty(t, token)
}

func TestAuthenticateByEmail(t *testing.T) {
	repo, _ := seedStaff(t)
	svc := &DefaultSessionService{Repo: repo}

	principal, _, err := svc.Authenticate(context.Background(), "sari@coden.example", "kopi-susu")
	require.NoError(t, err)
	assert.Equal(t, "staff-1", principal.ID)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	repo, _ := seedStaff(t)
	svc := &DefaultSessionService{Repo: repo}

	_, _, err := svc.Authenticate(context.Background(), "EMP001", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnknownIdentifier(t *testing.T) {
	repo, _ := seedStaff(t)
	svc := &DefaultSessionService{Repo: repo}

	_, _, err := svc.Authenticate(context.Background(), "EMP999", "kopi-susu")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateInactiveAccount(t *testing.T) {
	repo, staff := seedStaff(t)
	staff.IsActive = false
	require.NoError(t, repo.Update(staff))
	svc := &DefaultSessionService{Repo: repo}

	_, _, err := svc.Authenticate(context.Background(), "EMP001", "kopi-susu")
	assert.ErrorIs(t, err, ErrAccountInactive)
}

func TestVerifyRoundTrip(t *testing.T) {
	repo, staff := seedStaff(t)
	svc := &DefaultSessionService{Repo: repo}

	_, token, err := svc.Authenticate(context.Background(), "EMP001", "kopi-susu")
	require.NoError(t, err)

	principal, err := svc.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, staff.ID, principal.ID)
	assert.Equal(t, staff.Role, principal.Role)
	assert.Equal(t, staff.Name, principal.Name)
}

func TestCachedSessionCarriesName(t *testing.T) {
	raw := encodeSession("some-token", "Sari")

	cs, ok := decodeSession(raw)
	require.True(t, ok)
	assert.Equal(t, "Sari", cs.Name, "a cache hit must return a complete principal")
	assert.Equal(t, utils.HashToken("some-token"), cs.TokenHash)
}

func TestDecodeSessionRejectsBareHash(t *testing.T) {
	// Values written before the name was cached hold only the hash; they
	// must fall through to the staff repository instead of half-matching.
	_, ok := decodeSession(utils.HashToken("some-token"))
	assert.False(t, ok)
}

func TestVerifyGarbageToken(t *testing.T) {
	repo, _ := seedStaff(t)
	svc := &DefaultSessionService{Repo: repo}

	_, err := svc.Verify(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsDeactivatedStaff(t *testing.T) {
	repo, staff := seedStaff(t)
	svc := &DefaultSessionService{Repo: repo}

	_, token, err := svc.Authenticate(context.Background(), "EMP001", "kopi-susu")
	require.NoError(t, err)

	staff.IsActive = false
	require.NoError(t, repo.Update(staff))

	_, err = svc.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
