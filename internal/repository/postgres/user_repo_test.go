package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"eventrsvp/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		user    *domain.User
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
		errIs   error
	}{
		{
			name: "success",
			user: &domain.User{
				ID: "user-uuid-1", Email: "alice@example.com", FullName: "Alice Adams",
				PasswordHash: "hash", Salt: "salt", CreatedAt: now, UpdatedAt: now,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs("user-uuid-1", "alice@example.com", "Alice Adams", "hash", "salt", false, false, now, now).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "unique violation returns ErrDuplicateEmail",
			user: &domain.User{ID: "user-uuid-2", Email: "taken@example.com", FullName: "Bob", CreatedAt: now, UpdatedAt: now},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: true,
			errIs:   domain.ErrDuplicateEmail,
		},
		{
			name: "db error",
			user: &domain.User{ID: "user-uuid-3", Email: "a@b.com", FullName: "A", CreatedAt: now, UpdatedAt: now},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)

			repo := NewUserRepository(db)
			err = repo.Create(ctx, tt.user)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				}
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	columns := []string{"id", "email", "full_name", "password_hash", "salt", "is_admin", "has_rsvped", "rsvp_id", "created_at", "updated_at"}

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM users`).
			WithArgs("alice@example.com").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow("user-uuid-1", "alice@example.com", "Alice Adams", "hash", "salt", false, true, "rsvp-uuid-1", now, now))

		repo := NewUserRepository(db)
		u, err := repo.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, "user-uuid-1", u.ID)
		assert.Equal(t, "Alice Adams", u.FullName)
		assert.True(t, u.HasRSVPed)
		require.NotNil(t, u.RSVPID)
		assert.Equal(t, "rsvp-uuid-1", *u.RSVPID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows returns ErrUserNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM users`).
			WithArgs("missing@example.com").
			WillReturnError(sql.ErrNoRows)

		repo := NewUserRepository(db)
		_, err = repo.GetByEmail(ctx, "missing@example.com")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_Update(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		user    *domain.User
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
		errIs   error
	}{
		{
			name: "success",
			user: &domain.User{
				ID: "user-uuid-1", Email: "alice@example.com", FullName: "Alice Adams",
				UpdatedAt: time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC),
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE users`).
					WithArgs("Alice Adams", "alice@example.com", time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC), "user-uuid-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found zero rows affected",
			user: &domain.User{ID: "nonexistent", Email: "a@b.com", FullName: "A", UpdatedAt: time.Now()},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE users`).
					WithArgs("A", "a@b.com", sqlmock.AnyArg(), "nonexistent").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: true,
			errIs:   domain.ErrUserNotFound,
		},
		{
			name: "unique violation returns ErrDuplicateEmail",
			user: &domain.User{ID: "user-uuid-1", Email: "taken@example.com", FullName: "Alice", UpdatedAt: time.Now()},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE users`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: true,
			errIs:   domain.ErrDuplicateEmail,
		},
		{
			name: "db error",
			user: &domain.User{ID: "user-1", Email: "a@b.com", FullName: "A", UpdatedAt: time.Now()},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE users`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)

			repo := NewUserRepository(db)
			err = repo.Update(ctx, tt.user)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				}
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_List(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	columns := []string{"id", "email", "full_name", "password_hash", "salt", "is_admin", "has_rsvped", "rsvp_id", "created_at", "updated_at"}

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM users`).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow("user-1", "a@x.com", "A", "h", "s", true, false, nil, now, now).
				AddRow("user-2", "b@x.com", "B", "h", "s", false, true, "rsvp-1", now, now))

		repo := NewUserRepository(db)
		users, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.True(t, users[0].IsAdmin)
		assert.Nil(t, users[0].RSVPID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty returns empty slice", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM users`).
			WillReturnRows(sqlmock.NewRows(columns))

		repo := NewUserRepository(db)
		users, err := repo.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
