package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Model names used by the portal's AI helpers
const (
	ModelText      = "gemini-2.5-flash"
	ModelTextLite  = "gemini-2.5-flash-lite"
	ModelImageEdit = "gemini-2.5-flash-image"
	ModelImageGen  = "imagen-4.0-generate-001"
	ModelTTS       = "gemini-2.5-flash-preview-tts"

	// Prebuilt voice for speech synthesis
	ttsVoice = "Kore"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// ErrUnavailable is returned when no API key is configured. The portal
// keeps working without AI; only these endpoints degrade.
var ErrUnavailable = errors.New("generative AI is not configured")

// Client is a thin JSON-over-HTTP client for the Gemini API
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Config holds client settings
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// NewClient creates a Gemini client. An empty API key produces a client
// whose calls all fail with ErrUnavailable.
func NewClient(cfg Config, logger zerolog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	if cfg.APIKey == "" {
		logger.Warn().Msg("Gemini API key not found. AI features will be disabled.")
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// Available reports whether an API key is configured
func (c *Client) Available() bool {
	return c.apiKey != ""
}

// Part is one piece of a content turn: text or inline binary data
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

// InlineData carries base64-encoded binary content
type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// WebSource is a web page backing a grounded answer
type WebSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

type content struct {
	Parts []Part `json:"parts"`
}

type generationConfig struct {
	ResponseModalities []string      `json:"responseModalities,omitempty"`
	SpeechConfig       *speechConfig `json:"speechConfig,omitempty"`
}

type speechConfig struct {
	VoiceConfig voiceConfig `json:"voiceConfig"`
}

type voiceConfig struct {
	PrebuiltVoiceConfig prebuiltVoiceConfig `json:"prebuiltVoiceConfig"`
}

type prebuiltVoiceConfig struct {
	VoiceName string `json:"voiceName"`
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
	Tools            []map[string]any  `json:"tools,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []Part `json:"parts"`
		} `json:"content"`
		GroundingMetadata struct {
			GroundingChunks []struct {
				Web *WebSource `json:"web"`
			} `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
}

// GenerateText runs a plain text prompt against the given model
func (c *Client) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.generateContent(ctx, model, generateRequest{
		Contents: []content{{Parts: []Part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}
	return firstText(resp)
}

// GenerateWithParts runs a multimodal prompt (e.g. image plus question)
func (c *Client) GenerateWithParts(ctx context.Context, model string, parts []Part) (string, error) {
	resp, err := c.generateContent(ctx, model, generateRequest{
		Contents: []content{{Parts: parts}},
	})
	if err != nil {
		return "", err
	}
	return firstText(resp)
}

// EditImage applies a text instruction to an image and returns the
// edited image as base64 data plus its mime type
func (c *Client) EditImage(ctx context.Context, imageBase64, mimeType, prompt string) (string, string, error) {
	resp, err := c.generateContent(ctx, ModelImageEdit, generateRequest{
		Contents: []content{{Parts: []Part{
			{InlineData: &InlineData{MimeType: mimeType, Data: imageBase64}},
			{Text: prompt},
		}}},
		GenerationConfig: &generationConfig{ResponseModalities: []string{"IMAGE"}},
	})
	if err != nil {
		return "", "", err
	}
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil {
				return part.InlineData.Data, part.InlineData.MimeType, nil
			}
		}
	}
	return "", "", fmt.Errorf("gemini: no image was returned from the edit request")
}

// GenerateImage creates an image from a text prompt using the Imagen
// predict endpoint. It returns base64 PNG data.
func (c *Client) GenerateImage(ctx context.Context, prompt, aspectRatio string) (string, error) {
	if !c.Available() {
		return "", ErrUnavailable
	}
	if aspectRatio == "" {
		aspectRatio = "1:1"
	}

	body := map[string]any{
		"instances": []map[string]any{{"prompt": prompt}},
		"parameters": map[string]any{
			"sampleCount": 1,
			"aspectRatio": aspectRatio,
		},
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:predict", c.baseURL, ModelImageGen)
	respBody, err := c.doJSONRequest(ctx, url, body)
	if err != nil {
		return "", err
	}

	var result struct {
		Predictions []struct {
			BytesBase64Encoded string `json:"bytesBase64Encoded"`
		} `json:"predictions"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("imagen decode: %w", err)
	}
	if len(result.Predictions) == 0 || result.Predictions[0].BytesBase64Encoded == "" {
		return "", fmt.Errorf("imagen: no image data returned")
	}
	return result.Predictions[0].BytesBase64Encoded, nil
}

// GenerateSpeech synthesizes spoken audio for the text and returns
// base64 audio data plus its mime type
func (c *Client) GenerateSpeech(ctx context.Context, text string) (string, string, error) {
	resp, err := c.generateContent(ctx, ModelTTS, generateRequest{
		Contents: []content{{Parts: []Part{{Text: text}}}},
		GenerationConfig: &generationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &speechConfig{
				VoiceConfig: voiceConfig{
					PrebuiltVoiceConfig: prebuiltVoiceConfig{VoiceName: ttsVoice},
				},
			},
		},
	})
	if err != nil {
		return "", "", err
	}
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil {
				return part.InlineData.Data, part.InlineData.MimeType, nil
			}
		}
	}
	return "", "", fmt.Errorf("gemini: no audio data returned")
}

// Transcribe converts spoken audio to text
func (c *Client) Transcribe(ctx context.Context, audioBase64, mimeType string) (string, error) {
	return c.GenerateWithParts(ctx, ModelText, []Part{
		{InlineData: &InlineData{MimeType: mimeType, Data: audioBase64}},
		{Text: "Transcribe this audio. Return only the spoken words."},
	})
}

// GroundedSearch answers a query with Google Search grounding and
// returns the answer text with its web sources
func (c *Client) GroundedSearch(ctx context.Context, query string) (string, []WebSource, error) {
	resp, err := c.generateContent(ctx, ModelText, generateRequest{
		Contents: []content{{Parts: []Part{{Text: query}}}},
		Tools:    []map[string]any{{"google_search": map[string]any{}}},
	})
	if err != nil {
		return "", nil, err
	}

	text, err := firstText(resp)
	if err != nil {
		return "", nil, err
	}

	sources := []WebSource{}
	if len(resp.Candidates) > 0 {
		for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
			if chunk.Web != nil {
				sources = append(sources, *chunk.Web)
			}
		}
	}
	return text, sources, nil
}

func (c *Client) generateContent(ctx context.Context, model string, req generateRequest) (*generateResponse, error) {
	if !c.Available() {
		return nil, ErrUnavailable
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, model)
	respBody, err := c.doJSONRequest(ctx, url, req)
	if err != nil {
		return nil, err
	}

	var result generateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("gemini decode: %w", err)
	}
	return &result, nil
}

// doJSONRequest performs a JSON HTTP request with API-key auth
func (c *Client) doJSONRequest(ctx context.Context, url string, body any) ([]byte, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http call: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("url", url).
			Msg("Gemini API call failed")
		return nil, fmt.Errorf("gemini error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

func firstText(resp *generateResponse) (string, error) {
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				return part.Text, nil
			}
		}
	}
	return "", fmt.Errorf("gemini: no text returned")
}
