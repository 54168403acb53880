package genai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatformGuideFallback(t *testing.T) {
	assert.Equal(t, platformGuides["facebook"], PlatformGuide("facebook"))
	assert.Equal(t, platformGuides["instagram"], PlatformGuide("instagram"))
	assert.Equal(t, platformGuides["tiktok"], PlatformGuide("tiktok"))

	// Anything unrecognized gets the facebook guide.
	assert.Equal(t, platformGuides["facebook"], PlatformGuide("myspace"))
	assert.Equal(t, platformGuides["facebook"], PlatformGuide(""))
}

func TestDescriptionPromptIncludesInputs(t *testing.T) {
	prompt := DescriptionPrompt("Gold Watch", "Accessories", []string{"elegant", "waterproof"})

	assert.Contains(t, prompt, "Gold Watch")
	assert.Contains(t, prompt, "Accessories")
	assert.Contains(t, prompt, "elegant, waterproof")
	assert.Contains(t, prompt, "100-150 words")
}

func TestSocialPostPromptUsesGuide(t *testing.T) {
	prompt := SocialPostPrompt("Gold Watch", 299.99, "A luxury timepiece", "tiktok")

	assert.Contains(t, prompt, "Gold Watch")
	assert.Contains(t, prompt, "299.99 EUR")
	assert.Contains(t, prompt, platformGuides["tiktok"])
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     []string
	}{
		{
			name:     "plain list",
			response: "luxury,gold,watch",
			want:     []string{"luxury", "gold", "watch"},
		},
		{
			name:     "whitespace around entries",
			response: " luxury , gold watch ,  timepiece",
			want:     []string{"luxury", "gold watch", "timepiece"},
		},
		{
			name:     "empty entries dropped",
			response: "luxury,,gold, ,",
			want:     []string{"luxury", "gold"},
		},
		{
			name:     "empty response",
			response: "",
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitTags(tt.response))
		})
	}
}
