package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dkarklins/fitauth/internal/common"
	"github.com/dkarklins/fitauth/internal/dbx"
	"github.com/dkarklins/fitauth/internal/server/models"
)

// PostgresRepository implements the users Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (user_id, image, fullname, email, password, contact, gender)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Image, user.FullName, user.Email, user.PasswordHash, user.Contact, user.Gender)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT user_id, image, fullname, email, password, contact, gender
		FROM users
		WHERE email = $1
	`
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Image, &user.FullName, &user.Email, &user.PasswordHash, &user.Contact, &user.Gender)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	query := `
		SELECT user_id, image, fullname, email, contact, gender
		FROM users
		WHERE user_id = $1
	`
	var (
		profile models.Profile
		image   sql.NullString
		name    sql.NullString
		email   sql.NullString
		contact sql.NullString
		gender  sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.UserID, &image, &name, &email, &contact, &gender)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	profile.Image = nullableString(image)
	profile.FullName = nullableString(name)
	profile.Email = nullableString(email)
	profile.Contact = nullableString(contact)
	profile.Gender = nullableString(gender)

	return &profile, nil
}

// UpdateProfile always writes all five columns; omitted fields become NULL.
// This mirrors the upstream API contract (overwrite, not patch).
func (r *PostgresRepository) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (int64, error) {
	query := `
		UPDATE users
		SET image = $1, fullname = $2, email = $3, contact = $4, gender = $5
		WHERE user_id = $6
	`
	res, err := r.db.ExecContext(ctx, query,
		update.Image, update.FullName, update.Email, update.Contact, update.Gender, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return affected, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID string) (int64, error) {
	query := `
		DELETE FROM users
		WHERE user_id = $1
	`
	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return affected, nil
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}
