// Package services contains server-side business logic. This file implements
// AuthService, which handles registration, login, profile access, issuing and
// refreshing JWTs plus server-stored refresh tokens, and the transactional
// account-deletion workflow.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dkarklins/fitauth/internal/common"
	"github.com/dkarklins/fitauth/internal/dbx"
	"github.com/dkarklins/fitauth/internal/server/auth"
	"github.com/dkarklins/fitauth/internal/server/config"
	"github.com/dkarklins/fitauth/internal/server/models"
	"github.com/dkarklins/fitauth/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RegisterParams carries the fields of a registration request. Optional
// profile fields are pointers; nil is stored as NULL.
type RegisterParams struct {
	UserID   string
	Image    *string
	FullName *string
	Email    string
	Password string
	Contact  *string
	Gender   *string
}

// AuthService provides the account lifecycle:
//   - Register: create accounts with hashed passwords
//   - Login: verify credentials and mint the token pair
//   - GetProfile / UpdateProfile: profile access
//   - RefreshAccessToken / Logout: refresh-token handling
//   - DeleteAccount: atomic multi-table removal
type AuthService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                           db,
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Register hashes the password and inserts the account row. Storage failures
// (including a duplicate email) surface as common.ErrInternal; the API does
// not distinguish conflicts. No tokens are issued on registration.
func (s *AuthService) Register(ctx context.Context, params RegisterParams) (string, error) {
	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return "", common.ErrInternal
	}

	user := &models.User{
		ID:           params.UserID,
		Image:        nullString(params.Image),
		FullName:     nullString(params.FullName),
		Email:        sql.NullString{String: params.Email, Valid: true},
		PasswordHash: hash,
		Contact:      nullString(params.Contact),
		Gender:       nullString(params.Gender),
	}

	repo := s.repomanager.Users(s.db)
	if _, err := repo.Create(ctx, user); err != nil {
		return "", common.ErrInternal
	}

	return user.ID, nil
}

// Login verifies the credentials and, on success, returns a new TokenPair.
// The refresh token is persisted before anything is returned: a pair the
// caller sees always has a matching session record.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}

	if err := auth.CheckPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrInternal
	}

	return s.generateTokenPair(ctx, user.ID, user.Email.String, s.db)
}

// GetProfile returns the reduced user projection. The token may outlive the
// account, so a valid identity can still come back not-found.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	repo := s.repomanager.Users(s.db)

	profile, err := repo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}

	return profile, nil
}

// UpdateProfile overwrites the full profile row. At least one field must be
// supplied; fields not supplied are written as NULL rather than left
// unchanged (overwrite semantics, not patch).
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) error {
	if update.Empty() {
		return common.ErrNoFieldsToUpdate
	}

	repo := s.repomanager.Users(s.db)

	affected, err := repo.UpdateProfile(ctx, userID, update)
	if err != nil {
		return common.ErrInternal
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}

// RefreshAccessToken validates the refresh token's signature and expiry and
// mints a new access token. The refresh token is not rotated, re-persisted,
// or checked against the store; revocation bites at logout/delete time.
func (s *AuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := auth.ParseToken(refreshToken, s.jwtSecret)
	if err != nil {
		return "", common.ErrInvalidToken
	}

	access, err := auth.GenerateToken(claims.UserID, claims.Email, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrInternal
	}

	return access, nil
}

// Logout validates the refresh token and revokes its persisted record.
// A token that validates but has no record left returns common.ErrNotFound.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if _, err := auth.ParseToken(refreshToken, s.jwtSecret); err != nil {
		return common.ErrInvalidToken
	}

	repo := s.repomanager.RefreshTokens(s.db)

	affected, err := repo.Delete(ctx, refreshToken)
	if err != nil {
		return common.ErrInternal
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}

// ListMetrics returns the caller's physical-metrics samples.
func (s *AuthService) ListMetrics(ctx context.Context, userID string) ([]models.PhysicalMetric, error) {
	repo := s.repomanager.Metrics(s.db)

	result, err := repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, common.ErrInternal
	}

	return result, nil
}

// DeleteAccount removes the session record, the user's physical-metrics rows,
// and the account row in one transaction, in that order. The session goes
// first so a concurrently-refreshing client cannot mint a token for a
// half-deleted account. Any failed step rolls the whole thing back:
// a zero-row delete of the token or the account reports common.ErrNotFound,
// a storage error reports common.ErrInternal, and nothing is committed.
func (s *AuthService) DeleteAccount(ctx context.Context, userID, refreshToken string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		tokens := s.repomanager.RefreshTokens(tx)
		affected, err := tokens.DeleteForUser(ctx, userID, refreshToken)
		if err != nil {
			return common.ErrInternal
		}
		if affected == 0 {
			return common.ErrNotFound
		}

		// Zero metrics rows is fine; the user may have none.
		if _, err := s.repomanager.Metrics(tx).DeleteForUser(ctx, userID); err != nil {
			return common.ErrInternal
		}

		users := s.repomanager.Users(tx)
		affected, err = users.Delete(ctx, userID)
		if err != nil {
			return common.ErrInternal
		}
		if affected == 0 {
			return common.ErrNotFound
		}

		return nil
	})
}

// --- helpers below ---

func (s *AuthService) generateTokenPair(ctx context.Context, userID, email string, db dbx.DBTX) (*TokenPair, error) {
	access, err := auth.GenerateToken(userID, email, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrInternal
	}
	refresh, err := auth.GenerateToken(userID, email, s.jwtSecret, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, common.ErrInternal
	}

	refreshRepo := s.repomanager.RefreshTokens(db)
	if err := refreshRepo.Create(ctx, userID, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrInternal
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}
