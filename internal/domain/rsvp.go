package domain

import (
	"context"
	"time"
)

// RSVP represents a user's single attendance decision for the event.
// swagger:model RSVP
type RSVP struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Attending       bool      `json:"attending"`
	MealPreference  string    `json:"meal_preference"`
	Allergies       string    `json:"allergies"`
	AdditionalNotes string    `json:"additional_notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewRSVP returns a new RSVP owned by userID. ID is assigned by the caller.
func NewRSVP(userID string, attending bool, mealPreference, allergies, additionalNotes string, now time.Time) *RSVP {
	return &RSVP{
		UserID:          userID,
		Attending:       attending,
		MealPreference:  mealPreference,
		Allergies:       allergies,
		AdditionalNotes: additionalNotes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// RSVPPatch carries a partial RSVP update. Nil fields are left unchanged.
type RSVPPatch struct {
	Attending       *bool   `json:"attending"`
	MealPreference  *string `json:"meal_preference"`
	Allergies       *string `json:"allergies"`
	AdditionalNotes *string `json:"additional_notes"`
}

// RSVPRepository defines storage operations for RSVPs. The store enforces
// at most one RSVP per user with a unique constraint on user_id; Create
// returns ErrRSVPExists when that constraint is violated, so a lost race
// is indistinguishable from a pre-checked duplicate. Create also flips the
// owning user's has_rsvped/rsvp_id in the same transaction.
type RSVPRepository interface {
	Create(ctx context.Context, rsvp *RSVP) error
	GetByUserID(ctx context.Context, userID string) (*RSVP, error)
	Update(ctx context.Context, rsvp *RSVP) error
}

// InviteRegistry answers membership queries against the guest list.
// It is read-only at request time.
type InviteRegistry interface {
	IsInvited(ctx context.Context, email string) (bool, error)
}

// RSVPService owns the RSVP state machine: NoRSVP -> Submit -> HasRSVP,
// with Edit as a self-loop. Nothing removes an RSVP.
type RSVPService interface {
	// Submit creates the caller's RSVP. It fails with ErrNotInvited when the
	// caller's email is not on the guest list (checked before anything else),
	// ErrRSVPExists when one already exists, and ErrInvalidInput when
	// meal_preference is missing. Submission is never idempotent.
	Submit(ctx context.Context, userID string, attending bool, mealPreference, allergies, additionalNotes string) (*RSVP, error)
	// Edit applies a partial update to an existing RSVP. It fails with
	// ErrRSVPNotFound when none exists; it never creates one.
	Edit(ctx context.Context, userID string, patch RSVPPatch) (*RSVP, error)
	// Get returns the caller's own RSVP, or ErrRSVPNotFound.
	Get(ctx context.Context, userID string) (*RSVP, error)
	// GetForUser returns targetUserID's RSVP, subject to the self-or-admin rule.
	GetForUser(ctx context.Context, requesterID, targetUserID string) (*RSVP, error)
}
