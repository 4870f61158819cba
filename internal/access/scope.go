package access

import "github.com/job000/wedding2025-backend/internal/shared"

// ListScope is the tri-level listing rule: admins see everything, authenticated
// users see public items plus their own, anonymous callers see public items only.
// Stores translate it into a WHERE clause.
type ListScope struct {
	All      bool
	ViewerID int64
}

func ScopeFor(r Requester) ListScope {
	if r.IsAdmin() {
		return ListScope{All: true}
	}
	return ListScope{ViewerID: r.UserID}
}

func (s ListScope) Allows(res Resource) bool {
	if s.All || res.VisibilityLevel() == shared.VisibilityPublic {
		return true
	}
	return s.ViewerID != 0 && res.OwnerID() == s.ViewerID
}
