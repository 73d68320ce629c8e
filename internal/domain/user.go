package domain

import (
	"context"
	"time"
)

// User represents a registered user.
// PasswordHash and Salt never leave the account service; they are excluded
// from JSON serialization.
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	HasRSVPed    bool      `json:"has_rsvped"`
	RSVPID       *string   `json:"rsvp_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserPatch carries a partial profile update. Nil fields are left unchanged.
type UserPatch struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// Claims is the verified identity carried by a session token. Claims are
// identity only; authoritative flags such as IsAdmin are re-read from
// storage on privileged calls rather than trusted from the token.
type Claims struct {
	UserID   string
	Email    string
	FullName string
}

// TokenIssuer issues signed, time-boxed tokens for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email, fullName string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns its claims.
// Verification is stateless: it never consults storage.
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

// UserRepository defines the interface for user storage.
// Create and Update return ErrDuplicateEmail on a unique-constraint
// violation for the email column.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, user *User) error
	List(ctx context.Context) ([]*User, error)
}

// AccountService defines registration and authentication. Both return a
// signed session token alongside the user on success.
type AccountService interface {
	Register(ctx context.Context, fullName, email, password string) (token string, user *User, err error)
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
}

// UserService defines profile and admin operations. Every operation that
// targets another user consults the self-or-admin rule with the requester's
// admin flag loaded fresh from storage.
type UserService interface {
	GetByID(ctx context.Context, requesterID, targetID string) (*User, error)
	Update(ctx context.Context, requesterID, targetID string, patch UserPatch) (*User, error)
	List(ctx context.Context, requesterID string) ([]*User, error)
}
