package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayat/parivartan/internal/app/models"
)

func TestNewID(t *testing.T) {
	first := NewID("post")
	second := NewID("post")

	assert.Contains(t, first, "post-")
	assert.NotEqual(t, first, second)
}

func TestUserByUsername_CaseInsensitive(t *testing.T) {
	s := New()
	s.InsertUser(models.User{ID: "user-1", Username: "BeingHayat", Role: models.RoleAdmin})

	user, found := s.UserByUsername("beinghayat")
	require.True(t, found)
	assert.Equal(t, "user-1", user.ID)

	user, found = s.UserByUsername("BEINGHAYAT")
	require.True(t, found)
	assert.Equal(t, "user-1", user.ID)

	_, found = s.UserByUsername("nobody")
	assert.False(t, found)
}

func TestInsertPost_NewestFirst(t *testing.T) {
	s := New()
	s.InsertPost(models.Post{ID: "post-a"})
	s.InsertPost(models.Post{ID: "post-b"})
	s.InsertPost(models.Post{ID: "post-c"})

	posts := s.Posts()
	require.Len(t, posts, 3)
	assert.Equal(t, "post-c", posts[0].ID)
	assert.Equal(t, "post-b", posts[1].ID)
	assert.Equal(t, "post-a", posts[2].ID)
}

func TestInsertAnnouncement_NewestFirst(t *testing.T) {
	s := New()
	s.InsertAnnouncement(models.Announcement{ID: "ann-a"})
	s.InsertAnnouncement(models.Announcement{ID: "ann-b"})

	announcements := s.Announcements()
	require.Len(t, announcements, 2)
	assert.Equal(t, "ann-b", announcements[0].ID)
	assert.Equal(t, "ann-a", announcements[1].ID)
}

func TestInsertAchievement_SortedByDate(t *testing.T) {
	s := New()
	s.InsertAchievement(models.Achievement{ID: "ach-old", Date: time.Date(2023, 11, 20, 0, 0, 0, 0, time.UTC)})
	s.InsertAchievement(models.Achievement{ID: "ach-new", Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)})
	s.InsertAchievement(models.Achievement{ID: "ach-mid", Date: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)})

	achievements := s.Achievements()
	require.Len(t, achievements, 3)
	assert.Equal(t, "ach-new", achievements[0].ID)
	assert.Equal(t, "ach-mid", achievements[1].ID)
	assert.Equal(t, "ach-old", achievements[2].ID)
}

func TestUpdateAchievement_ResortsOnDateChange(t *testing.T) {
	s := New()
	s.InsertAchievement(models.Achievement{ID: "ach-1", Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)})
	s.InsertAchievement(models.Achievement{ID: "ach-2", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})

	found := s.UpdateAchievement("ach-1", func(a *models.Achievement) {
		a.Date = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	})
	require.True(t, found)

	achievements := s.Achievements()
	assert.Equal(t, "ach-1", achievements[0].ID)
	assert.Equal(t, "ach-2", achievements[1].ID)
}

func TestUpdateEvent_ResortsOnDateChange(t *testing.T) {
	now := time.Now()
	s := New()
	s.InsertEvent(models.Event{ID: "event-1", Date: now.Add(24 * time.Hour)})
	s.InsertEvent(models.Event{ID: "event-2", Date: now.Add(48 * time.Hour)})

	found := s.UpdateEvent("event-1", func(e *models.Event) {
		e.Date = now.Add(72 * time.Hour)
	})
	require.True(t, found)

	events := s.Events()
	assert.Equal(t, "event-1", events[0].ID)
	assert.Equal(t, "event-2", events[1].ID)
}

func TestUpdateAnnouncement_MissingID(t *testing.T) {
	s := New()
	called := false

	found := s.UpdateAnnouncement("missing", func(a *models.Announcement) { called = true })

	assert.False(t, found)
	assert.False(t, called)
}

func TestDeletePost(t *testing.T) {
	s := New()
	s.InsertPost(models.Post{ID: "post-1"})

	assert.True(t, s.DeletePost("post-1"))
	assert.False(t, s.DeletePost("post-1"))
	assert.Empty(t, s.Posts())
}

func TestDeletePostsByAuthor(t *testing.T) {
	s := New()
	s.InsertPost(models.Post{ID: "post-1", AuthorID: "user-1"})
	s.InsertPost(models.Post{ID: "post-2", AuthorID: "user-2"})
	s.InsertPost(models.Post{ID: "post-3", AuthorID: "user-1"})

	removed := s.DeletePostsByAuthor("user-1")

	assert.Equal(t, 2, removed)
	posts := s.Posts()
	require.Len(t, posts, 1)
	assert.Equal(t, "post-2", posts[0].ID)

	assert.Equal(t, 0, s.DeletePostsByAuthor("user-1"))
}

func TestSnapshotIsolation(t *testing.T) {
	s := New()
	s.InsertPost(models.Post{ID: "post-1", Content: "original"})

	snapshot := s.Posts()
	snapshot[0].Content = "mutated"

	stored, found := s.PostByID("post-1")
	require.True(t, found)
	assert.Equal(t, "original", stored.Content)
}

func TestChatMessages_AppendOnlyOrder(t *testing.T) {
	s := New()
	s.AppendChatMessage(models.ChatMessage{ID: "chat-1"})
	s.AppendChatMessage(models.ChatMessage{ID: "chat-2"})

	messages := s.ChatMessages()
	require.Len(t, messages, 2)
	assert.Equal(t, "chat-1", messages[0].ID)
	assert.Equal(t, "chat-2", messages[1].ID)
}

func TestMarkNotificationRead(t *testing.T) {
	s := New()
	s.InsertNotification(models.Notification{ID: "notif-1"})
	s.InsertNotification(models.Notification{ID: "notif-2"})

	assert.Equal(t, 2, s.UnreadNotificationCount())

	changed, found := s.MarkNotificationRead("notif-1")
	assert.True(t, changed)
	assert.True(t, found)
	assert.Equal(t, 1, s.UnreadNotificationCount())

	// Second mark is a no-op
	changed, found = s.MarkNotificationRead("notif-1")
	assert.False(t, changed)
	assert.True(t, found)
	assert.Equal(t, 1, s.UnreadNotificationCount())

	changed, found = s.MarkNotificationRead("missing")
	assert.False(t, changed)
	assert.False(t, found)
}

func TestInsertNotification_NewestFirst(t *testing.T) {
	s := New()
	s.InsertNotification(models.Notification{ID: "notif-1"})
	s.InsertNotification(models.Notification{ID: "notif-2"})

	notifications := s.Notifications()
	require.Len(t, notifications, 2)
	assert.Equal(t, "notif-2", notifications[0].ID)
}
