package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventrsvp/internal/domain"
)

type userService struct {
	userRepo domain.UserRepository
}

// NewUserService creates a UserService with the given repository.
func NewUserService(userRepo domain.UserRepository) domain.UserService {
	return &userService{userRepo: userRepo}
}

// requester loads the requesting user so authorization always runs against
// the stored admin flag, never a token claim.
func (s *userService) requester(ctx context.Context, requesterID string) (*domain.User, error) {
	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, fmt.Errorf("get requester: %w", err)
	}
	return requester, nil
}

func (s *userService) GetByID(ctx context.Context, requesterID, targetID string) (*domain.User, error) {
	if requesterID != targetID {
		requester, err := s.requester(ctx, requesterID)
		if err != nil {
			return nil, err
		}
		if !domain.CanActOn(requester.ID, requester.IsAdmin, targetID) {
			return nil, domain.ErrForbidden
		}
	}

	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, requesterID, targetID string, patch domain.UserPatch) (*domain.User, error) {
	if requesterID != targetID {
		requester, err := s.requester(ctx, requesterID)
		if err != nil {
			return nil, err
		}
		if !domain.CanActOn(requester.ID, requester.IsAdmin, targetID) {
			return nil, domain.ErrForbidden
		}
	}

	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if patch.FullName != nil {
		name := strings.TrimSpace(*patch.FullName)
		if name == "" {
			return nil, fmt.Errorf("%w: full_name cannot be empty", domain.ErrInvalidInput)
		}
		user.FullName = name
	}
	if patch.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*patch.Email))
		if !emailRegexp.MatchString(email) {
			return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
		}
		user.Email = email
	}
	user.UpdatedAt = time.Now()

	// Email uniqueness is re-checked by the store on change.
	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) || errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, requesterID string) ([]*domain.User, error) {
	requester, err := s.requester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if !requester.IsAdmin {
		return nil, domain.ErrForbidden
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
