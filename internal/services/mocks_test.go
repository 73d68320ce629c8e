package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"eventrsvp/internal/domain"
)

// Hand-rolled fakes shared by the service tests.

type mockUserRepository struct {
	byID      map[string]*domain.User
	createErr error
	updateErr error
	listUsers []*domain.User
	listErr   error
	created   *domain.User
	updated   *domain.User
}

func newMockUserRepository(users ...*domain.User) *mockUserRepository {
	m := &mockUserRepository{byID: map[string]*domain.User{}}
	for _, u := range users {
		m.byID[u.ID] = u
	}
	return m
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, u := range m.byID {
		if u.Email == user.Email {
			return domain.ErrDuplicateEmail
		}
	}
	m.byID[user.ID] = user
	m.created = user
	return nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.byID[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	m.byID[user.ID] = user
	m.updated = user
	return nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listUsers, nil
}

type mockRSVPRepository struct {
	byUser    map[string]*domain.RSVP
	createErr error
	updateErr error
	created   *domain.RSVP
	updated   *domain.RSVP
}

func newMockRSVPRepository(rsvps ...*domain.RSVP) *mockRSVPRepository {
	m := &mockRSVPRepository{byUser: map[string]*domain.RSVP{}}
	for _, r := range rsvps {
		m.byUser[r.UserID] = r
	}
	return m
}

func (m *mockRSVPRepository) Create(ctx context.Context, rsvp *domain.RSVP) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.byUser[rsvp.UserID]; ok {
		return domain.ErrRSVPExists
	}
	m.byUser[rsvp.UserID] = rsvp
	m.created = rsvp
	return nil
}

func (m *mockRSVPRepository) GetByUserID(ctx context.Context, userID string) (*domain.RSVP, error) {
	r, ok := m.byUser[userID]
	if !ok {
		return nil, domain.ErrRSVPNotFound
	}
	return r, nil
}

func (m *mockRSVPRepository) Update(ctx context.Context, rsvp *domain.RSVP) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.byUser[rsvp.UserID]; !ok {
		return domain.ErrRSVPNotFound
	}
	m.byUser[rsvp.UserID] = rsvp
	m.updated = rsvp
	return nil
}

type mockRegistry struct {
	invited map[string]bool
	err     error
}

func (m *mockRegistry) IsInvited(ctx context.Context, email string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.invited[email], nil
}

type mockHasher struct {
	saltErr error
	hashErr error
}

func (m *mockHasher) GenerateSalt() (string, error) {
	if m.saltErr != nil {
		return "", m.saltErr
	}
	return "static-salt", nil
}

// digest mimics a real hasher: the output is a fixed-width hex digest
// from which neither salt nor password can be read back.
func (m *mockHasher) digest(salt, password string) string {
	sum := sha256.Sum256([]byte(salt + password))
	return hex.EncodeToString(sum[:])
}

func (m *mockHasher) Hash(salt, password string) (string, error) {
	if m.hashErr != nil {
		return "", m.hashErr
	}
	return m.digest(salt, password), nil
}

func (m *mockHasher) Compare(hash, salt, password string) error {
	if hash != m.digest(salt, password) {
		return errors.New("mismatch")
	}
	return nil
}

type mockIssuer struct {
	err error
}

func (m *mockIssuer) Issue(userID, email, fullName string, expiry time.Duration) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return "token-for-" + userID, nil
}
