package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"faq-service/internal/models"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const adminColumns = "id, email, password, refresh_token, created_at, updated_at"

func scanAdmin(row *sql.Row) (*models.Admin, error) {
	var a models.Admin
	err := row.Scan(&a.ID, &a.Email, &a.Password, &a.RefreshToken, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// isDuplicateKey reports whether err is a unique-constraint violation from
// either supported driver.
func isDuplicateKey(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlErrDupEntry
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}

const mysqlErrDupEntry = 1062

// CreateAdmin inserts a new admin. passwordHash must already be hashed.
// The email's UNIQUE constraint decides duplicates, so concurrent
// registrations of one email yield exactly one admin.
func (s *Store) CreateAdmin(ctx context.Context, email, passwordHash string) (*models.Admin, error) {
	now := s.now()
	a := &models.Admin{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  passwordHash,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO admins ("+adminColumns+") VALUES (?, ?, ?, ?, ?, ?)",
		a.ID, a.Email, a.Password, a.RefreshToken, a.CreatedAt, a.UpdatedAt,
	)
	if isDuplicateKey(err) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, fmt.Errorf("inserting admin: %w", err)
	}
	return a, nil
}

func (s *Store) GetAdminByID(ctx context.Context, id string) (*models.Admin, error) {
	return scanAdmin(s.db.QueryRowContext(ctx,
		"SELECT "+adminColumns+" FROM admins WHERE id = ?", id))
}

func (s *Store) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return scanAdmin(s.db.QueryRowContext(ctx,
		"SELECT "+adminColumns+" FROM admins WHERE email = ?", email))
}

func (s *Store) GetAdminByRefreshToken(ctx context.Context, token string) (*models.Admin, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	return scanAdmin(s.db.QueryRowContext(ctx,
		"SELECT "+adminColumns+" FROM admins WHERE refresh_token = ?", token))
}

// SetRefreshToken stores the admin's current refresh token; an empty token
// clears it (logged out).
func (s *Store) SetRefreshToken(ctx context.Context, adminID, token string) error {
	value := sql.NullString{String: token, Valid: token != ""}

	res, err := s.db.ExecContext(ctx,
		"UPDATE admins SET refresh_token = ?, updated_at = ? WHERE id = ?",
		value, s.now(), adminID,
	)
	if err != nil {
		return fmt.Errorf("updating refresh token: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
