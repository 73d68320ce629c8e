// Package invite provides InviteRegistry implementations. The guest list is
// read-only at request time; swapping the static list for the
// database-backed registry is a wiring change only.
package invite

import (
	"context"
	"strings"

	"eventrsvp/internal/domain"
)

type staticRegistry struct {
	emails map[string]struct{}
}

// NewStaticRegistry returns an InviteRegistry backed by a fixed list of
// emails, typically loaded from configuration. Entries are normalized to
// lowercase; the registry is immutable after construction.
func NewStaticRegistry(emails []string) domain.InviteRegistry {
	set := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		e = strings.TrimSpace(strings.ToLower(e))
		if e != "" {
			set[e] = struct{}{}
		}
	}
	return &staticRegistry{emails: set}
}

func (r *staticRegistry) IsInvited(_ context.Context, email string) (bool, error) {
	_, ok := r.emails[strings.TrimSpace(strings.ToLower(email))]
	return ok, nil
}
