package postgres

import (
	"context"
	"database/sql"
	"strings"

	"eventrsvp/internal/domain"
)

// Expected schema:
//
//	CREATE TABLE invitations (
//	    email      TEXT PRIMARY KEY,
//	    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type invitationRepository struct {
	DB *sql.DB
}

// NewInvitationRepository returns an InviteRegistry backed by the
// invitations table, for deployments that manage the guest list in the
// database instead of configuration.
func NewInvitationRepository(db *sql.DB) domain.InviteRegistry {
	return &invitationRepository{DB: db}
}

func (r *invitationRepository) IsInvited(ctx context.Context, email string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM invitations WHERE email = $1)
	`
	var invited bool
	err := r.DB.QueryRowContext(ctx, query, strings.TrimSpace(strings.ToLower(email))).Scan(&invited)
	if err != nil {
		return false, err
	}
	return invited, nil
}
