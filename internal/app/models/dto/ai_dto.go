package dto

// GenerateTextRequest asks for free-form text from a prompt
type GenerateTextRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// GenerateTextResponse carries generated text
type GenerateTextResponse struct {
	Text string `json:"text"`
}

// QuickEditRequest rewrites draft text according to a named instruction
type QuickEditRequest struct {
	Text        string `json:"text" binding:"required"`
	Instruction string `json:"instruction" binding:"required" example:"add_hashtags" enums:"add_hashtags,fix_grammar,make_engaging"`
}

// DraftContentRequest asks the content-writer persona for a short draft
type DraftContentRequest struct {
	Topic string `json:"topic" binding:"required"`
}

// GenerateImageRequest asks for an image from a text prompt
type GenerateImageRequest struct {
	Prompt      string `json:"prompt" binding:"required"`
	AspectRatio string `json:"aspectRatio" example:"1:1"`
}

// ImageResponse carries a generated or edited image as base64 data
type ImageResponse struct {
	ImageBase64 string `json:"imageBase64"`
	MimeType    string `json:"mimeType" example:"image/png"`
}

// EditImageRequest applies a text instruction to an existing image
type EditImageRequest struct {
	ImageBase64 string `json:"imageBase64" binding:"required"`
	MimeType    string `json:"mimeType" binding:"required"`
	Prompt      string `json:"prompt" binding:"required"`
}

// AnalyzeImageRequest asks a question about an image
type AnalyzeImageRequest struct {
	ImageBase64 string `json:"imageBase64" binding:"required"`
	MimeType    string `json:"mimeType" binding:"required"`
	Question    string `json:"question" binding:"required"`
}

// SpeechRequest converts text to spoken audio
type SpeechRequest struct {
	Text string `json:"text" binding:"required"`
}

// SpeechResponse carries synthesized audio as base64 data
type SpeechResponse struct {
	AudioBase64 string `json:"audioBase64"`
	MimeType    string `json:"mimeType" example:"audio/L16;rate=24000"`
}

// TranscribeRequest converts spoken audio to text
type TranscribeRequest struct {
	AudioBase64 string `json:"audioBase64" binding:"required"`
	MimeType    string `json:"mimeType" binding:"required"`
}

// TranscribeResponse carries the recognized text
type TranscribeResponse struct {
	Text string `json:"text"`
}

// GroundedSearchRequest asks a question answered with web grounding
type GroundedSearchRequest struct {
	Query string `json:"query" binding:"required"`
}

// GroundedSource is a web source backing a grounded answer
type GroundedSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// GroundedSearchResponse carries the answer and its sources
type GroundedSearchResponse struct {
	Text    string           `json:"text"`
	Sources []GroundedSource `json:"sources"`
}
