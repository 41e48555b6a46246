package seed

import (
	"time"

	"github.com/hayat/parivartan/internal/app/models"
	"github.com/hayat/parivartan/internal/app/store"
	"github.com/hayat/parivartan/internal/pkg/logger"
)

// Demo credentials for the built-in accounts
const (
	AdminUsername = "beinghayat"
	AdminPassword = "hayat@Miet"
)

// ViewerUser is the shared read-only identity used for viewer logins.
// It has no credentials and never appears in the member directory.
var ViewerUser = models.User{
	ID:        "guest",
	Name:      "Viewer",
	Username:  "viewer",
	Role:      models.RoleGuest,
	AvatarURL: "https://ui-avatars.com/api/?name=V&background=d1d5db&color=fff",
}

// Populate loads the demo data set into an empty store. IDs are fixed
// so the sample accounts and content are stable across restarts.
func Populate(s *store.Store) {
	now := time.Now()

	users := []models.User{
		{
			ID:        "user-1",
			Name:      "Hayat",
			Username:  AdminUsername,
			Password:  AdminPassword,
			Email:     "admin@parivartan-miet.org",
			Role:      models.RoleAdmin,
			AvatarURL: "https://storage.googleapis.com/aistudio-hosting/prompts/images/hayat.jpg",
		},
		{
			ID:        "user-2",
			Name:      "Priya Sharma",
			Username:  "priyasharma",
			Password:  "password2",
			Email:     "priya.s@parivartan-miet.org",
			Role:      models.RoleMember,
			AvatarURL: "https://storage.googleapis.com/aistudio-hosting/prompts/images/priya.jpg",
		},
		{
			ID:        "user-3",
			Name:      "Rohan Verma",
			Username:  "rohanverma",
			Password:  "password3",
			Email:     "rohan.v@parivartan-miet.org",
			Role:      models.RoleMember,
			AvatarURL: "https://storage.googleapis.com/aistudio-hosting/prompts/images/rohan.jpg",
		},
		{
			ID:        "user-4",
			Name:      "Aisha Khan",
			Username:  "aishakhan",
			Password:  "password4",
			Email:     "aisha.k@parivartan-miet.org",
			Role:      models.RoleMember,
			AvatarURL: "https://storage.googleapis.com/aistudio-hosting/prompts/images/aisha.jpg",
		},
	}
	for _, u := range users {
		s.InsertUser(u)
	}

	posts := []models.Post{
		{
			ID:        "post-3",
			AuthorID:  "user-1",
			Content:   "Let's give a warm welcome to our new members! We're thrilled to have you join our mission to bring education to every child.",
			ImageURL:  "https://storage.googleapis.com/aistudio-hosting/prompts/images/welcome.jpg",
			CreatedAt: now.Add(-48 * time.Hour),
		},
		{
			ID:        "post-2",
			AuthorID:  "user-3",
			Content:   "Planning for the upcoming book donation camp is underway. We need more volunteers for sorting and distribution. Let's make it bigger than last year! 📚",
			CreatedAt: now.Add(-24 * time.Hour),
		},
		{
			ID:        "post-1",
			AuthorID:  "user-2",
			Content:   "Our weekend teaching drive was a massive success! So proud of everyone who volunteered. The kids were so enthusiastic and eager to learn. ❤️ #Parivartan #EducationForAll",
			ImageURL:  "https://storage.googleapis.com/aistudio-hosting/prompts/images/class.jpg",
			CreatedAt: now.Add(-2 * time.Hour),
		},
	}
	// Oldest inserted first so the feed comes out newest first
	for _, p := range posts {
		s.InsertPost(p)
	}

	announcements := []models.Announcement{
		{
			ID:        "ann-2",
			AuthorID:  "user-1",
			Title:     "Stationery Donation Drive - Collection Point Update",
			Content:   "The collection point for the stationery donation drive has been moved from the main gate to the library entrance. Please drop off all donations there. Thank you for your contributions!",
			CreatedAt: now.Add(-120 * time.Hour),
		},
		{
			ID:        "ann-1",
			AuthorID:  "user-1",
			Title:     "Urgent: Volunteer Requirement for Weekend Classes",
			Content:   "We have an urgent requirement for volunteers for this weekend's teaching drive (Saturday & Sunday). We are short by 5 members. Please sign up in the events section if you are available. Your support is crucial!",
			CreatedAt: now.Add(-72 * time.Hour),
		},
	}
	for _, a := range announcements {
		s.InsertAnnouncement(a)
	}

	achievements := []models.Achievement{
		{
			ID:          "ach-1",
			AuthorID:    "user-2",
			Title:       "Education Excellence Award 2023",
			Description: "Our group was recognized by the District Education Board for our outstanding contribution to child literacy.",
			ImageURL:    "https://storage.googleapis.com/aistudio-hosting/prompts/images/award.jpg",
			Date:        time.Date(2023, time.November, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "ach-2",
			AuthorID:    "user-3",
			Title:       "1000+ Students Taught",
			Description: "We reached a major milestone this year, having provided free education to over one thousand underprivileged students since our inception.",
			ImageURL:    "https://storage.googleapis.com/aistudio-hosting/prompts/images/students.jpg",
			Date:        time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, a := range achievements {
		s.InsertAchievement(a)
	}

	events := []models.Event{
		{
			ID:               "event-1",
			AuthorID:         "user-2",
			Title:            "Community Book Drive",
			Description:      "Join us for our annual book drive! We are collecting new and gently used books for children in local shelters. Volunteers needed for sorting and distribution.",
			Date:             now.Add(14 * 24 * time.Hour),
			ImageURL:         "https://storage.googleapis.com/aistudio-hosting/prompts/images/books.jpg",
			RegistrationLink: "https://forms.gle/example",
		},
		{
			ID:               "event-2",
			AuthorID:         "user-1",
			Title:            "Winter Clothes Distribution",
			Description:      "We distributed warm clothes to over 200 families in the community. Thank you to all the donors and volunteers who made this possible!",
			Date:             now.Add(-30 * 24 * time.Hour),
			ImageURL:         "https://storage.googleapis.com/aistudio-hosting/prompts/images/winter.jpg",
			RegistrationLink: "https://forms.gle/example",
		},
	}
	for _, e := range events {
		s.InsertEvent(e)
	}

	chatMessages := []models.ChatMessage{
		{
			ID:        "chat-1",
			AuthorID:  "user-2",
			Content:   "Hey everyone, just confirming the meeting for the book drive is at 4 PM today.",
			CreatedAt: now.Add(-10 * time.Minute),
		},
		{
			ID:        "chat-2",
			AuthorID:  "user-1",
			Content:   "Confirmed! I've booked the main hall. See you all there.",
			CreatedAt: now.Add(-8 * time.Minute),
		},
		{
			ID:        "chat-3",
			AuthorID:  "user-3",
			Content:   "Great, I will bring the volunteer sign-up sheets. Here's how they look.",
			ImageURL:  "https://storage.googleapis.com/aistudio-hosting/prompts/images/signup-sheet.jpg",
			CreatedAt: now.Add(-5 * time.Minute),
		},
	}
	for _, m := range chatMessages {
		s.AppendChatMessage(m)
	}

	logger.Info().
		Int("users", len(users)).
		Int("posts", len(posts)).
		Int("announcements", len(announcements)).
		Int("achievements", len(achievements)).
		Int("events", len(events)).
		Int("chatMessages", len(chatMessages)).
		Msg("Seeded demo data")
}
