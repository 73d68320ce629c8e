package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"eventrsvp/internal/domain"
)

type rsvpService struct {
	rsvpRepo domain.RSVPRepository
	userRepo domain.UserRepository
	registry domain.InviteRegistry
}

// NewRSVPService creates an RSVPService with the given repositories and
// invite registry.
func NewRSVPService(rsvpRepo domain.RSVPRepository, userRepo domain.UserRepository, registry domain.InviteRegistry) domain.RSVPService {
	return &rsvpService{
		rsvpRepo: rsvpRepo,
		userRepo: userRepo,
		registry: registry,
	}
}

func (s *rsvpService) Submit(ctx context.Context, userID string, attending bool, mealPreference, allergies, additionalNotes string) (*domain.RSVP, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	// Invite gate first: an uninvited caller never learns whether an RSVP
	// already exists.
	invited, err := s.registry.IsInvited(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("check invite: %w", err)
	}
	if !invited {
		return nil, domain.ErrNotInvited
	}

	if _, err := s.rsvpRepo.GetByUserID(ctx, userID); err == nil {
		return nil, domain.ErrRSVPExists
	} else if !errors.Is(err, domain.ErrRSVPNotFound) {
		return nil, fmt.Errorf("get rsvp: %w", err)
	}

	mealPreference = strings.TrimSpace(mealPreference)
	if mealPreference == "" {
		return nil, fmt.Errorf("%w: meal_preference is required", domain.ErrInvalidInput)
	}

	rsvp := domain.NewRSVP(userID, attending, mealPreference, allergies, additionalNotes, time.Now())
	rsvp.ID = uuid.NewString()
	// The repository inserts the RSVP and attaches it to the user in one
	// transaction; losing a concurrent-submit race surfaces as the same
	// ErrRSVPExists the pre-check above produces.
	if err := s.rsvpRepo.Create(ctx, rsvp); err != nil {
		if errors.Is(err, domain.ErrRSVPExists) {
			return nil, domain.ErrRSVPExists
		}
		if errors.Is(err, domain.ErrPartialOutcome) {
			return nil, err
		}
		return nil, fmt.Errorf("create rsvp: %w", err)
	}
	return rsvp, nil
}

func (s *rsvpService) Edit(ctx context.Context, userID string, patch domain.RSVPPatch) (*domain.RSVP, error) {
	rsvp, err := s.rsvpRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRSVPNotFound) {
			return nil, domain.ErrRSVPNotFound
		}
		return nil, fmt.Errorf("get rsvp: %w", err)
	}

	// Partial semantics: only fields present in the patch change.
	if patch.Attending != nil {
		rsvp.Attending = *patch.Attending
	}
	if patch.MealPreference != nil {
		meal := strings.TrimSpace(*patch.MealPreference)
		if meal == "" {
			return nil, fmt.Errorf("%w: meal_preference cannot be empty", domain.ErrInvalidInput)
		}
		rsvp.MealPreference = meal
	}
	if patch.Allergies != nil {
		rsvp.Allergies = *patch.Allergies
	}
	if patch.AdditionalNotes != nil {
		rsvp.AdditionalNotes = *patch.AdditionalNotes
	}
	rsvp.UpdatedAt = time.Now()

	if err := s.rsvpRepo.Update(ctx, rsvp); err != nil {
		if errors.Is(err, domain.ErrRSVPNotFound) {
			return nil, domain.ErrRSVPNotFound
		}
		return nil, fmt.Errorf("update rsvp: %w", err)
	}
	return rsvp, nil
}

func (s *rsvpService) Get(ctx context.Context, userID string) (*domain.RSVP, error) {
	rsvp, err := s.rsvpRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRSVPNotFound) {
			return nil, domain.ErrRSVPNotFound
		}
		return nil, fmt.Errorf("get rsvp: %w", err)
	}
	return rsvp, nil
}

// GetForUser checks the self-or-admin rule with the requester's admin flag
// loaded from storage, then returns the target user's RSVP.
func (s *rsvpService) GetForUser(ctx context.Context, requesterID, targetUserID string) (*domain.RSVP, error) {
	if requesterID != targetUserID {
		requester, err := s.userRepo.GetByID(ctx, requesterID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, domain.ErrForbidden
			}
			return nil, fmt.Errorf("get requester: %w", err)
		}
		if !domain.CanActOn(requester.ID, requester.IsAdmin, targetUserID) {
			return nil, domain.ErrForbidden
		}
	}
	return s.Get(ctx, targetUserID)
}
