package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayat/parivartan/internal/app/models"
	"github.com/hayat/parivartan/internal/app/models/dto"
	"github.com/hayat/parivartan/internal/pkg/apperrors"
	"github.com/hayat/parivartan/internal/pkg/genai"
)

// newAIFixture backs the AI service with a stub Gemini endpoint
func newAIFixture(t *testing.T, handler http.HandlerFunc) AIService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := genai.NewClient(genai.Config{APIKey: "test-key", BaseURL: srv.URL}, testLogger())
	return NewAIService(client, testAuthz(), testLogger())
}

func stubTextHandler(text string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"parts": []map[string]any{{"text": text}},
				},
			}},
		})
	}
}

func TestAIService_GuestDenied(t *testing.T) {
	svc := newAIFixture(t, stubTextHandler("unused"))

	_, err := svc.GenerateText(context.Background(), models.RoleGuest, &dto.GenerateTextRequest{Prompt: "hi"})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestAIService_UnavailableWithoutKey(t *testing.T) {
	client := genai.NewClient(genai.Config{}, testLogger())
	svc := NewAIService(client, testAuthz(), testLogger())

	_, err := svc.GenerateText(context.Background(), models.RoleMember, &dto.GenerateTextRequest{Prompt: "hi"})
	assert.ErrorIs(t, err, apperrors.ErrAIUnavailable)

	_, err = svc.GroundedSearch(context.Background(), models.RoleAdmin, &dto.GroundedSearchRequest{Query: "q"})
	assert.ErrorIs(t, err, apperrors.ErrAIUnavailable)
}

func TestGenerateText(t *testing.T) {
	svc := newAIFixture(t, stubTextHandler("Generated copy"))

	resp, err := svc.GenerateText(context.Background(), models.RoleMember, &dto.GenerateTextRequest{Prompt: "write something"})
	require.NoError(t, err)
	assert.Equal(t, "Generated copy", resp.Text)
}

func TestGenerateText_UpstreamFailure(t *testing.T) {
	svc := newAIFixture(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := svc.GenerateText(context.Background(), models.RoleMember, &dto.GenerateTextRequest{Prompt: "hi"})
	assert.ErrorIs(t, err, apperrors.ErrAIRequestFailed)
}

func TestQuickEdit(t *testing.T) {
	var gotPrompt string
	svc := newAIFixture(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotPrompt = body.Contents[0].Parts[0].Text
		stubTextHandler("#Parivartan #EducationForAll")(w, r)
	})

	resp, err := svc.QuickEdit(context.Background(), models.RoleMember, &dto.QuickEditRequest{
		Text:        "Great teaching drive today",
		Instruction: "add_hashtags",
	})
	require.NoError(t, err)
	assert.Equal(t, "#Parivartan #EducationForAll", resp.Text)
	assert.Contains(t, gotPrompt, "hashtags")
	assert.Contains(t, gotPrompt, "Great teaching drive today")
}

func TestQuickEdit_UnknownInstruction(t *testing.T) {
	svc := newAIFixture(t, stubTextHandler("unused"))

	_, err := svc.QuickEdit(context.Background(), models.RoleMember, &dto.QuickEditRequest{
		Text:        "text",
		Instruction: "translate_to_french",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDraftContent_UsesPersonaPrompt(t *testing.T) {
	var gotPrompt string
	svc := newAIFixture(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotPrompt = body.Contents[0].Parts[0].Text
		stubTextHandler("A heartwarming post")(w, r)
	})

	resp, err := svc.DraftContent(context.Background(), models.RoleMember, &dto.DraftContentRequest{
		Topic: "book donation camp",
	})
	require.NoError(t, err)
	assert.Equal(t, "A heartwarming post", resp.Text)
	assert.Contains(t, gotPrompt, "content writer for a college NGO")
	assert.Contains(t, gotPrompt, "book donation camp")
}

func TestGenerateImage(t *testing.T) {
	svc := newAIFixture(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"predictions": []map[string]any{{"bytesBase64Encoded": "aW1hZ2U="}},
		})
	})

	resp, err := svc.GenerateImage(context.Background(), models.RoleMember, &dto.GenerateImageRequest{
		Prompt: "children reading books",
	})
	require.NoError(t, err)
	assert.Equal(t, "aW1hZ2U=", resp.ImageBase64)
	assert.Equal(t, "image/png", resp.MimeType)
}

func TestGenerateSpeechAndTranscribe(t *testing.T) {
	svc := newAIFixture(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"parts": []map[string]any{
						{"inlineData": map[string]any{"mimeType": "audio/L16;rate=24000", "data": "YXVkaW8="}},
						{"text": "spoken words"},
					},
				},
			}},
		})
	})

	speech, err := svc.GenerateSpeech(context.Background(), models.RoleMember, &dto.SpeechRequest{Text: "Welcome"})
	require.NoError(t, err)
	assert.Equal(t, "YXVkaW8=", speech.AudioBase64)

	transcript, err := svc.Transcribe(context.Background(), models.RoleMember, &dto.TranscribeRequest{
		AudioBase64: "YXVkaW8=",
		MimeType:    "audio/webm",
	})
	require.NoError(t, err)
	assert.Equal(t, "spoken words", transcript.Text)
}

func TestGroundedSearch(t *testing.T) {
	svc := newAIFixture(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"parts": []map[string]any{{"text": "MIET is in Meerut."}},
				},
				"groundingMetadata": map[string]any{
					"groundingChunks": []map[string]any{
						{"web": map[string]any{"title": "MIET", "uri": "https://example.com/miet"}},
					},
				},
			}},
		})
	})

	resp, err := svc.GroundedSearch(context.Background(), models.RoleAdmin, &dto.GroundedSearchRequest{
		Query: "Where is MIET?",
	})
	require.NoError(t, err)
	assert.Equal(t, "MIET is in Meerut.", resp.Text)
	require.Len(t, resp.Sources, 1)
	assert.Equal(t, "https://example.com/miet", resp.Sources[0].URI)
}
