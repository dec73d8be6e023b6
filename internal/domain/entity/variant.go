package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Variant errors
var (
	ErrVariantNameRequired  = errors.New("variant name is required")
	ErrNoAllowedEmotions    = errors.New("variant has no allowed emotions")
	ErrDuplicateEmotion     = errors.New("variant lists an emotion twice")
	ErrInvalidEmotion       = errors.New("emotion must be a lowercase single word")
	ErrDefaultNotAllowed    = errors.New("default emotion is not in the allowed emotions")
	ErrDefaultEmotionNeeded = errors.New("variant default emotion is required")
)

// Variant is a deployment-time classifier profile: the closed label set,
// the label used on fallback, and the prompt sent to the completion service.
type Variant struct {
	Name            string    `json:"name" yaml:"name"`
	AllowedEmotions []Emotion `json:"allowed_emotions" yaml:"allowed_emotions"`
	DefaultEmotion  Emotion   `json:"default_emotion" yaml:"default_emotion"`
	SystemPrompt    string    `json:"-" yaml:"system_prompt"`
}

// NewVariant creates a validated Variant. An empty prompt is rendered
// from the allowed emotions.
func NewVariant(name string, allowed []Emotion, defaultEmotion Emotion, systemPrompt string) (*Variant, error) {
	v := &Variant{
		Name:            name,
		AllowedEmotions: allowed,
		DefaultEmotion:  defaultEmotion,
		SystemPrompt:    systemPrompt,
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if v.SystemPrompt == "" {
		v.SystemPrompt = v.RenderPrompt()
	}
	return v, nil
}

// Validate checks the variant invariants
func (v *Variant) Validate() error {
	if v.Name == "" {
		return ErrVariantNameRequired
	}
	if len(v.AllowedEmotions) == 0 {
		return fmt.Errorf("%s: %w", v.Name, ErrNoAllowedEmotions)
	}

	seen := make(map[Emotion]bool, len(v.AllowedEmotions))
	for _, e := range v.AllowedEmotions {
		if e == "" || NormalizeEmotion(string(e)) != e || strings.ContainsAny(string(e), " \t\n") {
			return fmt.Errorf("%s: %q: %w", v.Name, e, ErrInvalidEmotion)
		}
		if seen[e] {
			return fmt.Errorf("%s: %q: %w", v.Name, e, ErrDuplicateEmotion)
		}
		seen[e] = true
	}

	if v.DefaultEmotion == "" {
		return fmt.Errorf("%s: %w", v.Name, ErrDefaultEmotionNeeded)
	}
	if !seen[v.DefaultEmotion] {
		return fmt.Errorf("%s: %q: %w", v.Name, v.DefaultEmotion, ErrDefaultNotAllowed)
	}
	return nil
}

// Allows reports whether e is in the allow-list
func (v *Variant) Allows(e Emotion) bool {
	for _, allowed := range v.AllowedEmotions {
		if allowed == e {
			return true
		}
	}
	return false
}

// Resolve maps raw completion content onto the allow-list.
// The second return value is false when the default label was substituted.
func (v *Variant) Resolve(content string) (Emotion, bool) {
	e := NormalizeEmotion(content)
	if e == "" || !v.Allows(e) {
		return v.DefaultEmotion, false
	}
	return e, true
}

// Labels returns the allowed emotions as plain strings
func (v *Variant) Labels() []string {
	labels := make([]string, len(v.AllowedEmotions))
	for i, e := range v.AllowedEmotions {
		labels[i] = string(e)
	}
	return labels
}

// RenderPrompt builds the instruction text enumerating the labels and the default policy
func (v *Variant) RenderPrompt() string {
	return fmt.Sprintf(
		"You are an emotion classifier. Given a user's text, respond with ONLY one of these exact words: %s. "+
			"If the text does not fit any, respond with %q. Do not explain. Do not use any other words.",
		strings.Join(v.Labels(), ", "), string(v.DefaultEmotion),
	)
}
