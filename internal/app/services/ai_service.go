package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hayat/parivartan/internal/app/auth"
	"github.com/hayat/parivartan/internal/app/models"
	"github.com/hayat/parivartan/internal/app/models/dto"
	"github.com/hayat/parivartan/internal/pkg/apperrors"
	"github.com/hayat/parivartan/internal/pkg/genai"
)

// Prompt templates for the portal's AI helpers
const (
	draftPromptTemplate = `You are a content writer for a college NGO that teaches underprivileged students. Write a social media post based on the following idea. Keep it positive, engaging, and under 100 words. Idea: %q`

	hashtagsPrompt = "Suggest 3-5 relevant and engaging hashtags for the following social media post:\n\n%q"
	grammarPrompt  = "Check and correct the grammar and spelling of the following text:\n\n%q"
	engagingPrompt = "Rewrite the following text to make it more engaging and impactful for a social media audience:\n\n%q"
)

// AIService defines the interface for the generative AI helpers. Every
// operation requires the AI tools capability; guests get a permission
// error before any network call is made.
type AIService interface {
	GenerateText(ctx context.Context, actorRole models.Role, req *dto.GenerateTextRequest) (*dto.GenerateTextResponse, error)
	QuickEdit(ctx context.Context, actorRole models.Role, req *dto.QuickEditRequest) (*dto.GenerateTextResponse, error)
	DraftContent(ctx context.Context, actorRole models.Role, req *dto.DraftContentRequest) (*dto.GenerateTextResponse, error)
	GenerateImage(ctx context.Context, actorRole models.Role, req *dto.GenerateImageRequest) (*dto.ImageResponse, error)
	EditImage(ctx context.Context, actorRole models.Role, req *dto.EditImageRequest) (*dto.ImageResponse, error)
	AnalyzeImage(ctx context.Context, actorRole models.Role, req *dto.AnalyzeImageRequest) (*dto.GenerateTextResponse, error)
	GenerateSpeech(ctx context.Context, actorRole models.Role, req *dto.SpeechRequest) (*dto.SpeechResponse, error)
	Transcribe(ctx context.Context, actorRole models.Role, req *dto.TranscribeRequest) (*dto.TranscribeResponse, error)
	GroundedSearch(ctx context.Context, actorRole models.Role, req *dto.GroundedSearchRequest) (*dto.GroundedSearchResponse, error)
}

// aiServiceImpl implements AIService
type aiServiceImpl struct {
	client  *genai.Client
	authzSv *auth.AuthorizationService
	logger  zerolog.Logger
}

// NewAIService creates a new AIService
func NewAIService(client *genai.Client, authzSv *auth.AuthorizationService, logger zerolog.Logger) AIService {
	return &aiServiceImpl{
		client:  client,
		authzSv: authzSv,
		logger:  logger,
	}
}

func (s *aiServiceImpl) guard(actorRole models.Role) error {
	if err := s.authzSv.RequireCapability(actorRole, auth.CapabilityAITools); err != nil {
		return err
	}
	if !s.client.Available() {
		return apperrors.ErrAIUnavailable
	}
	return nil
}

// wrap maps client failures onto the application error taxonomy
func (s *aiServiceImpl) wrap(err error, op string) error {
	if errors.Is(err, genai.ErrUnavailable) {
		return apperrors.ErrAIUnavailable
	}
	s.logger.Error().Err(err).Str("operation", op).Msg("AI request failed")
	return apperrors.NewAIError(fmt.Sprintf("AI %s failed", op))
}

// GenerateText runs a free-form prompt
func (s *aiServiceImpl) GenerateText(ctx context.Context, actorRole models.Role, req *dto.GenerateTextRequest) (*dto.GenerateTextResponse, error) {
	if err := s.guard(actorRole); err != nil {
		return nil, err
	}

	text, err := s.client.GenerateText(ctx, genai.ModelText, req.Prompt)
	if err != nil {
		return nil, s.wrap(err, "text generation")
	}
	return &dto.GenerateTextResponse{Text: text}, nil
}

// QuickEdit rewrites draft text according to a named instruction
func (s *aiServiceImpl) QuickEdit(ctx context.Context, actorRole models.Role, req *dto.QuickEditRequest) (*dto.GenerateTextResponse, error) {
	if err := s.guard(actorRole); err != nil {
		return nil, err
	}

	var prompt string
	switch req.Instruction {
	case "add_hashtags":
		prompt = fmt.Sprintf(hashtagsPrompt, req.Text)
	case "fix_grammar":
		prompt = fmt.Sprintf(grammarPrompt, req.Text)
	case "make_engaging":
		prompt = fmt.Sprintf(engagingPrompt, req.Text)
	default:
		return nil, apperrors.NewValidationError("Unknown quick edit instruction")
	}

	text, err := s.client.GenerateText(ctx, genai.ModelTextLite, prompt)
	if err != nil {
		return nil, s.wrap(err, "quick edit")
	}
	return &dto.GenerateTextResponse{Text: text}, nil
}

// DraftContent asks the NGO content-writer persona for a short post
func (s *aiServiceImpl) DraftContent(ctx context.Context, actorRole models.Role, req *dto.DraftContentRequest) (*dto.GenerateTextResponse, error) {
	if err := s.guard(actorRole); err != nil {
		return nil, err
	}

	text, err := s.client.GenerateText(ctx, genai.ModelText, fmt.Sprintf(draftPromptTemplate, req.Topic))
	if err != nil {
		return nil, s.wrap(err, "content drafting")
	}
	return &dto.GenerateTextResponse{Text: text}, nil
}

// GenerateImage creates an image from a text prompt
func (s *aiServiceImpl) GenerateImage(ctx context.Context, actorRole models.Role, req *dto.GenerateImageRequest) (*dto.ImageResponse, error) {
	if err := s.guard(actorRole); err != nil {
		return nil, err
	}

	data, err := s.client.GenerateImage(ctx, req.Prompt, req.AspectRatio)
	if err != nil {
		return nil, s.wrap(err, "image generation")
	}
	return &dto.ImageResponse{ImageBase64: data, MimeType: "image/png"}, nil
}

// EditImage applies a text instruction to an uploaded image
func (s *aiServiceImpl) EditImage(ctx context.Context, actorRole models.Role, req *dto.EditImageRequest) (*dto.ImageResponse, error) {
	if err := s.guard(actorRole); err != nil {
		return nil, err
	}

	data, mimeType, err := s.client.EditImage(ctx, req.ImageBase64, req.MimeType, req.Prompt)
	if err != nil {
		return nil, s.wrap(err, "image editing")
	}
	return &dto.ImageResponse{ImageBase64: data, MimeType: mimeType}, nil
}

// AnalyzeImage answers a question about an uploaded image
func (s *aiServiceImpl) AnalyzeImage(ctx context.Context, actorRole models.Role, req *dto.AnalyzeImageRequest) (*dto.GenerateTextResponse, error) {
	if err := s.guard(actorRole); err != nil {
		return nil, err
	}

	text, err := s.client.GenerateWithParts(ctx, genai.ModelText, []genai.Part{
		{InlineData: &genai.InlineData{MimeType: req.MimeType, Data: req.ImageBase64}},
		{Text: req.Question},
	})
	if err != nil {
		return nil, s.wrap(err, "image analysis")
	}
	return &dto.GenerateTextResponse{Text: text}, nil
}

// GenerateSpeech converts text to spoken audio
func (s *aiServiceImpl) GenerateSpeech(ctx context.Context, actorRole models.Role, req *dto.SpeechRequest) (*dto.SpeechResponse, error) {
	if err := s.guard(actorRole); err != nil {
		return nil, err
	}

	data, mimeType, err := s.client.GenerateSpeech(ctx, req.Text)
	if err != nil {
		return nil, s.wrap(err, "speech synthesis")
	}
	return &dto.SpeechResponse{AudioBase64: data, MimeType: mimeType}, nil
}

// Transcribe converts spoken audio to text
func (s *aiServiceImpl) Transcribe(ctx context.Context, actorRole models.Role, req *dto.TranscribeRequest) (*dto.TranscribeResponse, error) {
	if err := s.guard(actorRole); err != nil {
		return nil, err
	}

	text, err := s.client.Transcribe(ctx, req.AudioBase64, req.MimeType)
	if err != nil {
		return nil, s.wrap(err, "transcription")
	}
	return &dto.TranscribeResponse{Text: text}, nil
}

// GroundedSearch answers a question backed by web search results
func (s *aiServiceImpl) GroundedSearch(ctx context.Context, actorRole models.Role, req *dto.GroundedSearchRequest) (*dto.GroundedSearchResponse, error) {
	if err := s.guard(actorRole); err != nil {
		return nil, err
	}

	text, webSources, err := s.client.GroundedSearch(ctx, req.Query)
	if err != nil {
		return nil, s.wrap(err, "grounded search")
	}

	sources := make([]dto.GroundedSource, 0, len(webSources))
	for _, w := range webSources {
		sources = append(sources, dto.GroundedSource{Title: w.Title, URI: w.URI})
	}
	return &dto.GroundedSearchResponse{Text: text, Sources: sources}, nil
}
