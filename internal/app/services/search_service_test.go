package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_MatchesAcrossCollections(t *testing.T) {
	svc := NewSearchService(newSeededStore(), testLogger())

	resp := svc.Search("book")

	// "book" appears in a post and in the Community Book Drive event
	require.Len(t, resp.Posts, 1)
	assert.Equal(t, "post-2", resp.Posts[0].ID)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "event-1", resp.Events[0].ID)
	assert.Empty(t, resp.Announcements)
	assert.Empty(t, resp.Achievements)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	svc := NewSearchService(newSeededStore(), testLogger())

	resp := svc.Search("BOOK")
	assert.Len(t, resp.Posts, 1)
	assert.Len(t, resp.Events, 1)
}

func TestSearch_MatchesPostAuthorName(t *testing.T) {
	svc := NewSearchService(newSeededStore(), testLogger())

	// post-1 was written by Priya Sharma; the query hits her name even
	// though the post text never mentions it
	resp := svc.Search("priya")
	require.Len(t, resp.Posts, 1)
	assert.Equal(t, "post-1", resp.Posts[0].ID)
}

func TestSearch_MatchesAnnouncementsAndAchievements(t *testing.T) {
	svc := NewSearchService(newSeededStore(), testLogger())

	resp := svc.Search("stationery")
	require.Len(t, resp.Announcements, 1)
	assert.Equal(t, "ann-2", resp.Announcements[0].ID)

	resp = svc.Search("literacy")
	require.Len(t, resp.Achievements, 1)
	assert.Equal(t, "ach-1", resp.Achievements[0].ID)
}

func TestSearch_BlankQueryMatchesNothing(t *testing.T) {
	svc := NewSearchService(newSeededStore(), testLogger())

	for _, q := range []string{"", "   "} {
		resp := svc.Search(q)
		assert.NotNil(t, resp.Posts)
		assert.Empty(t, resp.Posts)
		assert.Empty(t, resp.Announcements)
		assert.Empty(t, resp.Achievements)
		assert.Empty(t, resp.Events)
	}
}

func TestSearch_NoMatches(t *testing.T) {
	svc := NewSearchService(newSeededStore(), testLogger())

	resp := svc.Search("zzzzzz")
	assert.Empty(t, resp.Posts)
	assert.Empty(t, resp.Announcements)
	assert.Empty(t, resp.Achievements)
	assert.Empty(t, resp.Events)
}
