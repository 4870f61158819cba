package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/job000/wedding2025-backend/internal/shared"
)

type item struct {
	owner int64
	vis   shared.Visibility
}

func (i item) OwnerID() int64                     { return i.owner }
func (i item) VisibilityLevel() shared.Visibility { return i.vis }

var (
	alice = Requester{UserID: 1, Username: "alice", Role: shared.RoleUser}
	bob   = Requester{UserID: 2, Username: "bob", Role: shared.RoleUser}
	admin = Requester{UserID: 99, Username: "admin", Role: shared.RoleAdmin}
	anon  = Anonymous()
)

func TestCanView(t *testing.T) {
	public := item{owner: alice.UserID, vis: shared.VisibilityPublic}
	private := item{owner: alice.UserID, vis: shared.VisibilityPrivate}

	tests := []struct {
		name string
		res  Resource
		r    Requester
		want bool
	}{
		{"owner public", public, alice, true},
		{"owner private", private, alice, true},
		{"other user public", public, bob, true},
		{"other user private", private, bob, false},
		{"admin private", private, admin, true},
		{"anonymous public", public, anon, false},
		{"anonymous private", private, anon, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanView(tt.res, tt.r))
		})
	}
}

func TestCanView_PrivateNeverLeaksToNonOwners(t *testing.T) {
	for owner := int64(1); owner <= 5; owner++ {
		for viewer := int64(1); viewer <= 5; viewer++ {
			if owner == viewer {
				continue
			}
			res := item{owner: owner, vis: shared.VisibilityPrivate}
			assert.False(t, CanView(res, Requester{UserID: viewer, Role: shared.RoleUser}))
		}
	}
}

func TestCanModify(t *testing.T) {
	res := item{owner: alice.UserID, vis: shared.VisibilityPublic}

	assert.True(t, CanModify(res, alice))
	assert.True(t, CanModify(res, admin))
	assert.False(t, CanModify(res, bob))
	assert.False(t, CanModify(res, anon))
}

func TestCanChangeVisibility(t *testing.T) {
	res := item{owner: alice.UserID, vis: shared.VisibilityPublic}

	assert.True(t, CanChangeVisibility(res, alice))
	assert.True(t, CanChangeVisibility(res, admin))
	assert.False(t, CanChangeVisibility(res, bob))
}

func TestAnonymousNeverOwns(t *testing.T) {
	// an entity with a zero owner must not match the zero requester
	res := item{owner: 0, vis: shared.VisibilityPrivate}
	assert.False(t, CanView(res, anon))
	assert.False(t, CanModify(res, anon))
}

func TestCanUploadPrivate(t *testing.T) {
	assert.True(t, CanUploadPrivate(admin))
	assert.False(t, CanUploadPrivate(alice))
	assert.False(t, CanUploadPrivate(anon))
}

func TestFilterVisible(t *testing.T) {
	items := []item{
		{owner: alice.UserID, vis: shared.VisibilityPublic},
		{owner: bob.UserID, vis: shared.VisibilityPrivate},
		{owner: alice.UserID, vis: shared.VisibilityPrivate},
	}

	assert.Len(t, FilterVisible(items, alice), 2)
	assert.Len(t, FilterVisible(items, bob), 2)
	assert.Len(t, FilterVisible(items, admin), 3)
	assert.Empty(t, FilterVisible(items, anon))
}

func TestListScope(t *testing.T) {
	public := item{owner: alice.UserID, vis: shared.VisibilityPublic}
	private := item{owner: alice.UserID, vis: shared.VisibilityPrivate}

	assert.True(t, ScopeFor(anon).Allows(public))
	assert.False(t, ScopeFor(anon).Allows(private))
	assert.True(t, ScopeFor(alice).Allows(private))
	assert.False(t, ScopeFor(bob).Allows(private))
	assert.True(t, ScopeFor(admin).Allows(private))
	assert.True(t, ScopeFor(admin).All)
}
