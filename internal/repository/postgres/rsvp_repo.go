package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventrsvp/internal/domain"
)

// Expected schema:
//
//	CREATE TABLE rsvps (
//	    id               TEXT PRIMARY KEY,
//	    user_id          TEXT NOT NULL UNIQUE REFERENCES users (id),
//	    attending        BOOLEAN NOT NULL,
//	    meal_preference  TEXT NOT NULL,
//	    allergies        TEXT NOT NULL DEFAULT '',
//	    additional_notes TEXT NOT NULL DEFAULT '',
//	    created_at       TIMESTAMPTZ NOT NULL,
//	    updated_at       TIMESTAMPTZ NOT NULL
//	);
//
// The UNIQUE constraint on user_id is what actually enforces one RSVP per
// user; the service-level existence check only produces a friendlier path
// for the common case.
type rsvpRepository struct {
	DB *sql.DB
}

func NewRSVPRepository(db *sql.DB) domain.RSVPRepository {
	return &rsvpRepository{DB: db}
}

// Create inserts the RSVP and flips the owner's has_rsvped/rsvp_id in a
// single transaction, so neither write is observable without the other.
// A unique violation on user_id maps to ErrRSVPExists, which makes losing
// a concurrent-submit race indistinguishable from a pre-checked duplicate.
func (r *rsvpRepository) Create(ctx context.Context, rsvp *domain.RSVP) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin submit tx: %w", err)
	}
	defer tx.Rollback()

	insert := `
		INSERT INTO rsvps (id, user_id, attending, meal_preference, allergies, additional_notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := tx.ExecContext(ctx, insert,
		rsvp.ID, rsvp.UserID, rsvp.Attending, rsvp.MealPreference,
		rsvp.Allergies, rsvp.AdditionalNotes, rsvp.CreatedAt, rsvp.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRSVPExists
		}
		return err
	}

	attach := `
		UPDATE users
		SET has_rsvped = TRUE, rsvp_id = $1, updated_at = $2
		WHERE id = $3
	`
	res, err := tx.ExecContext(ctx, attach, rsvp.ID, rsvp.UpdatedAt, rsvp.UserID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}

	if err := tx.Commit(); err != nil {
		// The transaction outcome is unknown; surface it distinctly instead
		// of guessing.
		return fmt.Errorf("%w: %v", domain.ErrPartialOutcome, err)
	}
	return nil
}

func (r *rsvpRepository) GetByUserID(ctx context.Context, userID string) (*domain.RSVP, error) {
	query := `
		SELECT id, user_id, attending, meal_preference, allergies, additional_notes, created_at, updated_at
		FROM rsvps
		WHERE user_id = $1
	`
	rsvp := &domain.RSVP{}
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&rsvp.ID, &rsvp.UserID, &rsvp.Attending, &rsvp.MealPreference,
		&rsvp.Allergies, &rsvp.AdditionalNotes, &rsvp.CreatedAt, &rsvp.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRSVPNotFound
		}
		return nil, err
	}
	return rsvp, nil
}

// Update persists the mutable fields. Identity and owner never change.
func (r *rsvpRepository) Update(ctx context.Context, rsvp *domain.RSVP) error {
	query := `
		UPDATE rsvps
		SET attending = $1, meal_preference = $2, allergies = $3, additional_notes = $4, updated_at = $5
		WHERE id = $6
	`
	res, err := r.DB.ExecContext(ctx, query,
		rsvp.Attending, rsvp.MealPreference, rsvp.Allergies, rsvp.AdditionalNotes, rsvp.UpdatedAt, rsvp.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrRSVPNotFound
	}
	return nil
}
