package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/job000/wedding2025-backend/internal/service"
	"github.com/job000/wedding2025-backend/internal/shared"
)

func TestComments(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	alice := e.user(t, "alice", shared.RoleUser)
	bob := e.user(t, "bob", shared.RoleUser)
	admin := e.user(t, "admin", shared.RoleAdmin)
	id := e.upload(t, alice, "Dance", "public")
	other := e.upload(t, alice, "Cake", "public")

	_, err := e.comments.Add(ctx, bob, id, "   ")
	assert.ErrorIs(t, err, service.ErrValidation)
	_, err = e.comments.Add(ctx, bob, 999, "hi")
	assert.ErrorIs(t, err, service.ErrNotFound)

	c, err := e.comments.Add(ctx, bob, id, " lovely ")
	require.NoError(t, err)
	assert.Equal(t, "lovely", c.Body)
	assert.Equal(t, "bob", c.UserName)

	_, err = e.comments.Edit(ctx, alice, id, c.ID, "hijacked")
	assert.ErrorIs(t, err, service.ErrForbidden)

	_, err = e.comments.Edit(ctx, bob, other, c.ID, "wrong media")
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.EqualError(t, err, "Comment not found")

	edited, err := e.comments.Edit(ctx, bob, id, c.ID, "gorgeous")
	require.NoError(t, err)
	assert.Equal(t, "gorgeous", edited.Body)
	assert.False(t, edited.UpdatedAt.Before(edited.CreatedAt))

	assert.ErrorIs(t, e.comments.Delete(ctx, alice, id, c.ID), service.ErrForbidden)
	require.NoError(t, e.comments.Delete(ctx, admin, id, c.ID))
	assert.ErrorIs(t, e.comments.Delete(ctx, bob, id, c.ID), service.ErrNotFound)
}

func TestComments_PrivateMedia(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	alice := e.user(t, "alice", shared.RoleUser)
	bob := e.user(t, "bob", shared.RoleUser)
	id := e.makePrivate(t, alice, "Secret")

	_, err := e.comments.Add(ctx, bob, id, "can I see?")
	assert.ErrorIs(t, err, service.ErrForbidden)
	_, err = e.comments.Add(ctx, alice, id, "note to self")
	assert.NoError(t, err)
}
