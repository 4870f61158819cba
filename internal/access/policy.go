// Package access decides who may read and change gallery entities.
//
// Every function here is pure: the answer depends only on the entity's owner,
// its visibility and the requester handed in by the auth layer.
package access

import "github.com/job000/wedding2025-backend/internal/shared"

// Requester is the resolved identity attached to an inbound request.
// The zero value is an anonymous caller.
type Requester struct {
	UserID   int64
	Username string
	Role     shared.Role
}

func Anonymous() Requester { return Requester{} }

func (r Requester) Authenticated() bool { return r.UserID != 0 }

func (r Requester) IsAdmin() bool { return r.Authenticated() && r.Role == shared.RoleAdmin }

// Owned is implemented by every entity that has a single owning user.
type Owned interface {
	OwnerID() int64
}

// Resource is an owned entity carrying its own visibility flag.
type Resource interface {
	Owned
	VisibilityLevel() shared.Visibility
}

func isOwner(res Owned, r Requester) bool {
	return r.Authenticated() && res.OwnerID() == r.UserID
}

// CanView is the gate for single-item flows (detail, comment, like, album detail).
// Anonymous callers are denied even for public items; only listings expose
// public items to them (see ListScope).
func CanView(res Resource, r Requester) bool {
	switch {
	case r.IsAdmin():
		return true
	case isOwner(res, r):
		return true
	case r.Authenticated() && res.VisibilityLevel() == shared.VisibilityPublic:
		return true
	}
	return false
}

// CanModify applies to media, comments (author is owner) and albums.
func CanModify(res Owned, r Requester) bool {
	return r.IsAdmin() || isOwner(res, r)
}

// CanChangeVisibility gates the visibility field of an update: the owner may set
// any value, anyone else needs the admin role.
func CanChangeVisibility(res Owned, r Requester) bool {
	return isOwner(res, r) || r.IsAdmin()
}

// CanUploadPrivate reports whether r may create media that starts out private.
// Only admins may, including for their own uploads.
func CanUploadPrivate(r Requester) bool {
	return r.IsAdmin()
}

// FilterVisible keeps the items r may view, preserving order.
func FilterVisible[T Resource](items []T, r Requester) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if CanView(it, r) {
			out = append(out, it)
		}
	}
	return out
}
