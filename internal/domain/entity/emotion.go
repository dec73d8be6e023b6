package entity

import (
	"encoding/json"
	"strings"
)

// Emotion is a single classification label
type Emotion string

const (
	EmotionHappy     Emotion = "happy"
	EmotionSad       Emotion = "sad"
	EmotionNostalgic Emotion = "nostalgic"
	EmotionInspired  Emotion = "inspired"
	EmotionBored     Emotion = "bored"
	EmotionUnknown   Emotion = "unknown"
)

// NormalizeEmotion trims surrounding whitespace and lowercases a raw label
func NormalizeEmotion(raw string) Emotion {
	return Emotion(strings.ToLower(strings.TrimSpace(raw)))
}

// ClassificationRequest is the inbound payload of a classification call.
// Text is nil when the caller did not send the field.
type ClassificationRequest struct {
	Text *string `json:"text"`
}

// TextOrEmpty returns the request text, or an empty string when absent
func (r *ClassificationRequest) TextOrEmpty() string {
	if r == nil || r.Text == nil {
		return ""
	}
	return *r.Text
}

// ParseClassificationRequest decodes a request body leniently.
// An absent, empty or undecodable body yields an empty request.
func ParseClassificationRequest(body []byte) *ClassificationRequest {
	var req ClassificationRequest
	if len(body) == 0 {
		return &req
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return &ClassificationRequest{}
	}
	return &req
}

// ClassificationResult is the outbound payload of a classification call
type ClassificationResult struct {
	Emotion Emotion `json:"emotion"`
}
