package shared

import (
	"fmt"
	"strings"
)

// Visibility of media items and albums
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

var ValidVisibilities = map[Visibility]struct{}{
	VisibilityPublic:  {},
	VisibilityPrivate: {},
}

func ParseVisibility(s string) (Visibility, error) {
	v := Visibility(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := ValidVisibilities[v]; !ok {
		return "", fmt.Errorf("invalid visibility %q", s)
	}
	return v, nil
}

func (v Visibility) String() string { return string(v) }

// MediaKind of an uploaded item
type MediaKind string

const (
	KindImage MediaKind = "image"
	KindVideo MediaKind = "video"
	KindText  MediaKind = "text"
)

var ValidKinds = map[MediaKind]struct{}{
	KindImage: {},
	KindVideo: {},
	KindText:  {},
}

// ParseMediaKind matches case-insensitively, so "IMAGE" and "Image" are both accepted.
func ParseMediaKind(s string) (MediaKind, error) {
	k := MediaKind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := ValidKinds[k]; !ok {
		return "", fmt.Errorf("invalid media type %q", s)
	}
	return k, nil
}

func (k MediaKind) String() string { return string(k) }

// Role of a user account
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

var ValidRoles = map[Role]struct{}{
	RoleUser:  {},
	RoleAdmin: {},
}

func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := ValidRoles[r]; !ok {
		return "", fmt.Errorf("invalid role %q", s)
	}
	return r, nil
}

func (r Role) String() string { return string(r) }
