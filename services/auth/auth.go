package auth

import (
	"context"
	"encoding/json"
	"errors"

	staffRepo "coden/database/repository/staff"
	"coden/models"
	"coden/utils"

	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"
)

// Authentication errors surfaced to the HTTP layer.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is not active")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// SessionService authenticates staff and verifies session tokens.
type SessionService interface {
	// Authenticate checks an employee ID or email plus password and, on
	// success, returns the principal and a signed session token.
	Authenticate(ctx context.Context, identifier, password string) (*models.Principal, string, error)
	// Verify validates a session token and returns its principal.
	Verify(ctx context.Context, token string) (*models.Principal, error)
}

// DefaultSessionService implements SessionService with bcrypt passwords,
// HS256 tokens and a Redis session cache.
type DefaultSessionService struct {
	Repo      staffRepo.StaffRepository
	AuthCache *redis.Client
}

// cachedSession is the Redis value behind a verified token: the token hash
// plus the display name, so a cache hit returns a complete principal.
type cachedSession struct {
	TokenHash string `json:"tokenHash"`
	Name      string `json:"name"`
}

func encodeSession(token, name string) string {
	raw, _ := json.Marshal(cachedSession{TokenHash: utils.HashToken(token), Name: name})
	return string(raw)
}

func decodeSession(raw string) (cachedSession, bool) {
	var cs cachedSession
	if err := json.Unmarshal([]byte(raw), &cs); err != nil || cs.TokenHash == "" {
		return cachedSession{}, false
	}
	return cs, true
}

// Authenticate checks credentials and issues a session token.
func (s *DefaultSessionService) Authenticate(ctx context.Context, identifier, password string) (*models.Principal, string, error) {
	if identifier == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	staff, err := s.Repo.GetByEmployeeID(identifier)
	if err != nil {
		return nil, "", err
	}
	if staff == nil {
		staff, err = s.Repo.GetByEmail(identifier)
		if err != nil {
			return nil, "", err
		}
	}
	if staff == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !staff.IsActive {
		return nil, "", ErrAccountInactive
	}

	token, err := utils.GenerateToken(staff.ID, staff.Role, utils.SessionTokenTTL)
	if err != nil {
		return nil, "", err
	}

	// Cache the session so Verify can short-circuit without re-reading the
	// staff record.
	if s.AuthCache != nil {
		cacheKey := utils.AuthCachePrefix + staff.ID
		_ = s.AuthCache.Set(ctx, cacheKey, encodeSession(token, staff.Name), utils.AuthCacheTTL).Err()
	}

	return &models.Principal{ID: staff.ID, Role: staff.Role, Name: staff.Name}, token, nil
}

// Verify validates a session token and returns its principal.
func (s *DefaultSessionService) Verify(ctx context.Context, token string) (*models.Principal, error) {
	subject, role, err := utils.ClaimsFromToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if s.AuthCache != nil {
		cacheKey := utils.AuthCachePrefix + subject
		raw, err := s.AuthCache.Get(ctx, cacheKey).Result()
		if err == nil {
			if cs, ok := decodeSession(raw); ok && cs.TokenHash == utils.HashToken(token) {
				_ = s.AuthCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
				return &models.Principal{ID: subject, Role: role, Name: cs.Name}, nil
			}
		}
	}

	staff, err := s.Repo.GetByID(subject)
	if err != nil {
		return nil, err
	}
	if staff == nil || !staff.IsActive {
		return nil, ErrInvalidToken
	}
	if staff.Role != role {
		return nil, ErrInvalidToken
	}

	if s.AuthCache != nil {
		cacheKey := utils.AuthCachePrefix + subject
		_ = s.AuthCache.Set(ctx, cacheKey, encodeSession(token, staff.Name), utils.AuthCacheTTL).Err()
	}

	return &models.Principal{ID: staff.ID, Role: staff.Role, Name: staff.Name}, nil
}

// HashPassword is a helper for seeding staff accounts.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
