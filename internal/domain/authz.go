package domain

// CanActOn reports whether a requester may act on the resources owned by
// targetUserID: admins may act on anyone, everyone else only on themselves.
// Pure function; callers must load requesterIsAdmin from storage, not from
// token claims.
func CanActOn(requesterID string, requesterIsAdmin bool, targetUserID string) bool {
	return requesterIsAdmin || requesterID == targetUserID
}
