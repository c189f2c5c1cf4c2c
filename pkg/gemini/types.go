package gemini

import "errors"

// ErrResponseShape indicates the provider returned JSON that does not
// carry the expected candidates/content/parts structure.
var ErrResponseShape = errors.New("unexpected response shape")

// Part is a single text fragment of a content payload.
type Part struct {
	Text string `json:"text"`
}

// Content groups the parts of one prompt or candidate.
type Content struct {
	Parts []Part `json:"parts"`
}

// GenerationConfig tunes sampling for a generation request.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	TopK            int     `json:"topK,omitempty"`
	TopP            float64 `json:"topP,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

// GenerateRequest is the body of a generateContent call.
type GenerateRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

// NewTextRequest builds a single-part request from prompt text.
func NewTextRequest(text string) *GenerateRequest {
	return &GenerateRequest{
		Contents: []Content{{Parts: []Part{{Text: text}}}},
	}
}

// Candidate is one generated completion.
type Candidate struct {
	Content Content `json:"content"`
}

// APIError is the error object embedded in provider error bodies.
type APIError struct {
	Message string `json:"message"`
}

// GenerateResponse is the body of a generateContent reply. Error is set
// on provider-declared failures.
type GenerateResponse struct {
	Candidates []Candidate `json:"candidates"`
	Error      *APIError   `json:"error,omitempty"`
}

// Text extracts the first candidate's first part. A missing or malformed
// shape is reported as ErrResponseShape, distinct from transport errors.
func (r *GenerateResponse) Text() (string, error) {
	if r == nil || len(r.Candidates) == 0 {
		return "", ErrResponseShape
	}
	parts := r.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", ErrResponseShape
	}
	return parts[0].Text, nil
}
