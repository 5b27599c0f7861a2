package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/M0nkiiii/Screentime-Management/pkg/errno"
)

func TestEmitAppendsUnreadNotification(t *testing.T) {
	repo := newFakeNotificationRepo()
	app := NewNotificationApp(repo)

	err := app.Emit(context.Background(), testUser, "Goal Achieved", "Your goal \"Read more\" is achieved.")
	require.NoError(t, err)

	list, err := app.ListNotifications(context.Background(), testUser)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Goal Achieved", list[0].Title)
	assert.False(t, list[0].IsRead)
	assert.Nil(t, list[0].ReadAt)
}

func TestEmitRequiresUser(t *testing.T) {
	app := NewNotificationApp(newFakeNotificationRepo())

	err := app.Emit(context.Background(), "", "Title", "Description")
	assert.ErrorIs(t, err, errno.ErrParameterInvalid)
}

func TestListNotificationsNewestFirst(t *testing.T) {
	repo := newFakeNotificationRepo()
	app := NewNotificationApp(repo)

	require.NoError(t, app.Emit(context.Background(), testUser, "First", "a"))
	require.NoError(t, app.Emit(context.Background(), testUser, "Second", "b"))
	require.NoError(t, app.Emit(context.Background(), "other-user", "Noise", "c"))

	list, err := app.ListNotifications(context.Background(), testUser)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Second", list[0].Title)
	assert.Equal(t, "First", list[1].Title)
}

func TestUnreadCount(t *testing.T) {
	repo := newFakeNotificationRepo()
	app := NewNotificationApp(repo)

	require.NoError(t, app.Emit(context.Background(), testUser, "One", "a"))
	require.NoError(t, app.Emit(context.Background(), testUser, "Two", "b"))

	count, err := app.UnreadCount(context.Background(), testUser)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count.UnreadCount)
}

func TestMarkAllReadIdempotent(t *testing.T) {
	repo := newFakeNotificationRepo()
	app := NewNotificationApp(repo)

	require.NoError(t, app.Emit(context.Background(), testUser, "One", "a"))
	require.NoError(t, app.Emit(context.Background(), testUser, "Two", "b"))

	require.NoError(t, app.MarkAllRead(context.Background(), testUser))
	count, err := app.UnreadCount(context.Background(), testUser)
	require.NoError(t, err)
	assert.Zero(t, count.UnreadCount)

	list, err := app.ListNotifications(context.Background(), testUser)
	require.NoError(t, err)
	for _, n := range list {
		assert.True(t, n.IsRead)
		assert.NotNil(t, n.ReadAt)
	}

	// With nothing unread the call still succeeds.
	require.NoError(t, app.MarkAllRead(context.Background(), testUser))
}

func TestNotificationQueriesRequireUser(t *testing.T) {
	app := NewNotificationApp(newFakeNotificationRepo())

	_, err := app.ListNotifications(context.Background(), "")
	assert.ErrorIs(t, err, errno.ErrUnauthorized)
	_, err = app.UnreadCount(context.Background(), "")
	assert.ErrorIs(t, err, errno.ErrUnauthorized)
	err = app.MarkAllRead(context.Background(), "")
	assert.ErrorIs(t, err, errno.ErrUnauthorized)
}
