package services

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/hayat/parivartan/internal/app/models/dto"
	"github.com/hayat/parivartan/internal/app/store"
)

// SearchService defines the interface for ad-hoc content search
type SearchService interface {
	Search(query string) dto.SearchResponse
}

// searchServiceImpl implements SearchService. There is no prebuilt
// index; each query scans a snapshot of the live data, so results are
// always current.
type searchServiceImpl struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewSearchService creates a new SearchService
func NewSearchService(store *store.Store, logger zerolog.Logger) SearchService {
	return &searchServiceImpl{
		store:  store,
		logger: logger,
	}
}

// Search performs a case-insensitive substring match over posts,
// announcements, achievements and events. Post content matches include
// the author's display name. A blank query matches nothing.
func (s *searchServiceImpl) Search(query string) dto.SearchResponse {
	resp := dto.SearchResponse{
		Query:         query,
		Posts:         []dto.PostResponse{},
		Announcements: []dto.AnnouncementResponse{},
		Achievements:  []dto.AchievementResponse{},
		Events:        []dto.EventResponse{},
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return resp
	}

	authorNames := make(map[string]string)
	for _, u := range s.store.Users() {
		authorNames[u.ID] = strings.ToLower(u.Name)
	}

	for _, p := range s.store.Posts() {
		if strings.Contains(strings.ToLower(p.Content), q) ||
			strings.Contains(authorNames[p.AuthorID], q) {
			resp.Posts = append(resp.Posts, dto.ToPostResponse(&p))
		}
	}

	for _, a := range s.store.Announcements() {
		if strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Content), q) {
			resp.Announcements = append(resp.Announcements, dto.ToAnnouncementResponse(&a))
		}
	}

	for _, a := range s.store.Achievements() {
		if strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Description), q) {
			resp.Achievements = append(resp.Achievements, dto.ToAchievementResponse(&a))
		}
	}

	for _, e := range s.store.Events() {
		if strings.Contains(strings.ToLower(e.Title), q) ||
			strings.Contains(strings.ToLower(e.Description), q) {
			resp.Events = append(resp.Events, dto.ToEventResponse(&e))
		}
	}

	s.logger.Debug().
		Str("query", query).
		Int("posts", len(resp.Posts)).
		Int("announcements", len(resp.Announcements)).
		Int("achievements", len(resp.Achievements)).
		Int("events", len(resp.Events)).
		Msg("Search executed")

	return resp
}
