package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"eventrsvp/internal/domain"
)

// Expected schema:
//
//	CREATE TABLE users (
//	    id            TEXT PRIMARY KEY,
//	    email         TEXT NOT NULL UNIQUE,
//	    full_name     TEXT NOT NULL,
//	    password_hash TEXT NOT NULL,
//	    salt          TEXT NOT NULL,
//	    is_admin      BOOLEAN NOT NULL DEFAULT FALSE,
//	    has_rsvped    BOOLEAN NOT NULL DEFAULT FALSE,
//	    rsvp_id       TEXT,
//	    created_at    TIMESTAMPTZ NOT NULL,
//	    updated_at    TIMESTAMPTZ NOT NULL
//	);
type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{DB: db}
}

// isUniqueViolation reports whether err is a postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (id, email, full_name, password_hash, salt, is_admin, has_rsvped, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.DB.ExecContext(ctx, query,
		u.ID, u.Email, u.FullName, u.PasswordHash, u.Salt, u.IsAdmin, u.HasRSVPed, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, full_name, password_hash, salt, is_admin, has_rsvped, rsvp_id, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, email, full_name, password_hash, salt, is_admin, has_rsvped, rsvp_id, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *userRepository) scanOne(row *sql.Row) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.Salt,
		&u.IsAdmin, &u.HasRSVPed, &u.RSVPID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// Update persists profile fields only. RSVP back-references are written by
// the RSVP repository inside its submit transaction.
func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `
		UPDATE users
		SET full_name = $1, email = $2, updated_at = $3
		WHERE id = $4
	`
	res, err := r.DB.ExecContext(ctx, query, u.FullName, u.Email, u.UpdatedAt, u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `
		SELECT id, email, full_name, password_hash, salt, is_admin, has_rsvped, rsvp_id, created_at, updated_at
		FROM users
		ORDER BY created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u := &domain.User{}
		if err := rows.Scan(&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.Salt,
			&u.IsAdmin, &u.HasRSVPed, &u.RSVPID, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return users, nil
}
