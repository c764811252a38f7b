package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dkarklins/fitauth/internal/common"
	"github.com/dkarklins/fitauth/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func strPtr(s string) *string { return &s }

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+users\s*\(user_id,\s*image,\s*fullname,\s*email,\s*password,\s*contact,\s*gender\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6,\s*\$7\)\s*$`

	mock.ExpectExec(q).
		WithArgs("u-1", nil, "Alice A", "alice@example.com", "hashed", nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	u := &models.User{
		ID:           "u-1",
		FullName:     sql.NullString{String: "Alice A", Valid: true},
		Email:        sql.NullString{String: "alice@example.com", Valid: true},
		PasswordHash: "hashed",
	}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "u-1" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+users`).
		WillReturnError(errors.New("duplicate key value violates unique constraint"))

	_, err := repo.Create(context.Background(), &models.User{ID: "u-1", PasswordHash: "h"})
	if err == nil || !regexp.MustCompile(`db error: .*duplicate key`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+user_id,\s*image,\s*fullname,\s*email,\s*password,\s*contact,\s*gender\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1\s*$`

	rows := sqlmock.NewRows([]string{"user_id", "image", "fullname", "email", "password", "contact", "gender"}).
		AddRow("u-1", nil, "Alice A", "alice@example.com", "hashed", nil, nil)
	mock.ExpectQuery(q).
		WithArgs("alice@example.com").
		WillReturnRows(rows)

	got, err := repo.GetByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.ID != "u-1" || got.PasswordHash != "hashed" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if got.Image.Valid {
		t.Fatalf("image should be NULL: %+v", got)
	}
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+user_id,.*FROM\s+users`).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestGetProfile_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+user_id,\s*image,\s*fullname,\s*email,\s*contact,\s*gender\s+FROM\s+users\s+WHERE\s+user_id\s*=\s*\$1\s*$`

	rows := sqlmock.NewRows([]string{"user_id", "image", "fullname", "email", "contact", "gender"}).
		AddRow("u-1", "pic.png", "Alice A", "alice@example.com", nil, "female")
	mock.ExpectQuery(q).
		WithArgs("u-1").
		WillReturnRows(rows)

	got, err := repo.GetProfile(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("GetProfile error: %v", err)
	}
	if got.UserID != "u-1" || got.Image == nil || *got.Image != "pic.png" {
		t.Fatalf("unexpected profile: %+v", got)
	}
	if got.Contact != nil {
		t.Fatalf("contact should be nil: %+v", got)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+user_id,.*FROM\s+users`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetProfile(context.Background(), "ghost")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestUpdateProfile_WritesAllColumns(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*UPDATE\s+users\s+SET\s+image\s*=\s*\$1,\s*fullname\s*=\s*\$2,\s*email\s*=\s*\$3,\s*contact\s*=\s*\$4,\s*gender\s*=\s*\$5\s+WHERE\s+user_id\s*=\s*\$6\s*$`

	// Only fullname supplied: the other four columns are still written (as NULL).
	mock.ExpectExec(q).
		WithArgs(nil, "New Name", nil, nil, nil, "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.UpdateProfile(context.Background(), "u-1", models.ProfileUpdate{FullName: strPtr("New Name")})
	if err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected = %d, want 1", affected)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestUpdateProfile_ZeroRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+users\s+SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := repo.UpdateProfile(context.Background(), "ghost", models.ProfileUpdate{FullName: strPtr("x")})
	if err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}
	if affected != 0 {
		t.Fatalf("affected = %d, want 0", affected)
	}
}

func TestDelete_ReturnsAffectedCount(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*DELETE\s+FROM\s+users\s+WHERE\s+user_id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).
		WithArgs("u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.Delete(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected = %d, want 1", affected)
	}
}

func TestDelete_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+users`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Delete(context.Background(), "u-1")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
