package store

import (
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/hayat/parivartan/internal/app/models"
)

// Store holds all application state in memory behind a single RWMutex.
// Readers receive snapshot copies so callers can never observe a
// partially applied write. State is lost on process restart.
type Store struct {
	mu sync.RWMutex

	users         []models.User
	posts         []models.Post
	announcements []models.Announcement
	achievements  []models.Achievement
	events        []models.Event
	chatMessages  []models.ChatMessage
	notifications []models.Notification
}

// New creates an empty store
func New() *Store {
	return &Store{}
}

// NewID generates a collision-free identifier with a type prefix
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// --- Users ---

// Users returns a snapshot of all users
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// UserByID returns the user with the given id
func (s *Store) UserByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			return s.users[i], true
		}
	}
	return models.User{}, false
}

// UserByUsername returns the user with the given username.
// Lookup is case-insensitive.
func (s *Store) UserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if strings.EqualFold(s.users[i].Username, username) {
			return s.users[i], true
		}
	}
	return models.User{}, false
}

// InsertUser appends a user
func (s *Store) InsertUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, user)
}

// DeleteUser removes a user by id and reports whether it existed
func (s *Store) DeleteUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return true
		}
	}
	return false
}

// DeletePostsByAuthor removes every post written by the given user and
// returns how many were removed. Used when a member account is deleted.
func (s *Store) DeletePostsByAuthor(authorID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.posts[:0]
	removed := 0
	for i := range s.posts {
		if s.posts[i].AuthorID == authorID {
			removed++
			continue
		}
		kept = append(kept, s.posts[i])
	}
	s.posts = kept
	return removed
}

// --- Posts ---

// Posts returns a snapshot of all posts, newest first
func (s *Store) Posts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// PostByID returns the post with the given id
func (s *Store) PostByID(id string) (models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			return s.posts[i], true
		}
	}
	return models.Post{}, false
}

// InsertPost places a post at the head of the feed
func (s *Store) InsertPost(post models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]models.Post{post}, s.posts...)
}

// DeletePost removes a post by id and reports whether it existed
func (s *Store) DeletePost(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return true
		}
	}
	return false
}

// --- Announcements ---

// Announcements returns a snapshot of all announcements, newest first
func (s *Store) Announcements() []models.Announcement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Announcement, len(s.announcements))
	copy(out, s.announcements)
	return out
}

// AnnouncementByID returns the announcement with the given id
func (s *Store) AnnouncementByID(id string) (models.Announcement, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.announcements {
		if s.announcements[i].ID == id {
			return s.announcements[i], true
		}
	}
	return models.Announcement{}, false
}

// InsertAnnouncement places an announcement at the head of the list
func (s *Store) InsertAnnouncement(a models.Announcement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.announcements = append([]models.Announcement{a}, s.announcements...)
}

// UpdateAnnouncement applies fn to the announcement with the given id
// under the write lock and reports whether it existed
func (s *Store) UpdateAnnouncement(id string, fn func(*models.Announcement)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.announcements {
		if s.announcements[i].ID == id {
			fn(&s.announcements[i])
			return true
		}
	}
	return false
}

// DeleteAnnouncement removes an announcement by id and reports whether it existed
func (s *Store) DeleteAnnouncement(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.announcements {
		if s.announcements[i].ID == id {
			s.announcements = append(s.announcements[:i], s.announcements[i+1:]...)
			return true
		}
	}
	return false
}

// --- Achievements ---

// Achievements returns a snapshot of all achievements, most recent date first
func (s *Store) Achievements() []models.Achievement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Achievement, len(s.achievements))
	copy(out, s.achievements)
	return out
}

// AchievementByID returns the achievement with the given id
func (s *Store) AchievementByID(id string) (models.Achievement, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.achievements {
		if s.achievements[i].ID == id {
			return s.achievements[i], true
		}
	}
	return models.Achievement{}, false
}

// InsertAchievement adds an achievement and keeps the list sorted by
// occurrence date, most recent first
func (s *Store) InsertAchievement(a models.Achievement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.achievements = append(s.achievements, a)
	sortAchievements(s.achievements)
}

// UpdateAchievement applies fn to the achievement with the given id under
// the write lock, re-sorts in case the date changed, and reports whether
// it existed
func (s *Store) UpdateAchievement(id string, fn func(*models.Achievement)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.achievements {
		if s.achievements[i].ID == id {
			fn(&s.achievements[i])
			sortAchievements(s.achievements)
			return true
		}
	}
	return false
}

// DeleteAchievement removes an achievement by id and reports whether it existed
func (s *Store) DeleteAchievement(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.achievements {
		if s.achievements[i].ID == id {
			s.achievements = append(s.achievements[:i], s.achievements[i+1:]...)
			return true
		}
	}
	return false
}

func sortAchievements(items []models.Achievement) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
}

// --- Events ---

// Events returns a snapshot of all events, most recent date first
func (s *Store) Events() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Event, len(s.events))
	copy(out, s.events)
	return out
}

// EventByID returns the event with the given id
func (s *Store) EventByID(id string) (models.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.events {
		if s.events[i].ID == id {
			return s.events[i], true
		}
	}
	return models.Event{}, false
}

// InsertEvent adds an event and keeps the list sorted by date, most
// recent first
func (s *Store) InsertEvent(e models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	sortEvents(s.events)
}

// UpdateEvent applies fn to the event with the given id under the write
// lock, re-sorts in case the date changed, and reports whether it existed
func (s *Store) UpdateEvent(id string, fn func(*models.Event)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID == id {
			fn(&s.events[i])
			sortEvents(s.events)
			return true
		}
	}
	return false
}

// DeleteEvent removes an event by id and reports whether it existed
func (s *Store) DeleteEvent(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return true
		}
	}
	return false
}

func sortEvents(items []models.Event) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
}

// --- Chat ---

// ChatMessages returns a snapshot of the chat history, oldest first
func (s *Store) ChatMessages() []models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ChatMessage, len(s.chatMessages))
	copy(out, s.chatMessages)
	return out
}

// AppendChatMessage appends a message to the chat history
func (s *Store) AppendChatMessage(m models.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatMessages = append(s.chatMessages, m)
}

// --- Notifications ---

// Notifications returns a snapshot of all notifications, newest first
func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// InsertNotification places a notification at the head of the list
func (s *Store) InsertNotification(n models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append([]models.Notification{n}, s.notifications...)
}

// MarkNotificationRead marks a notification as read. It returns whether
// the flag changed and whether the notification exists; marking an
// already-read notification is a no-op.
func (s *Store) MarkNotificationRead(id string) (changed, found bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			if s.notifications[i].Read {
				return false, true
			}
			s.notifications[i].Read = true
			return true, true
		}
	}
	return false, false
}

// UnreadNotificationCount returns how many notifications are unread
func (s *Store) UnreadNotificationCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for i := range s.notifications {
		if !s.notifications[i].Read {
			count++
		}
	}
	return count
}
