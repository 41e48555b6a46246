package dto

// SearchResponse groups search hits by content type
type SearchResponse struct {
	Query         string                 `json:"query"`
	Posts         []PostResponse         `json:"posts"`
	Announcements []AnnouncementResponse `json:"announcements"`
	Achievements  []AchievementResponse  `json:"achievements"`
	Events        []EventResponse        `json:"events"`
}
