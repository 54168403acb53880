package genai

import (
	"fmt"
	"strings"
)

// Fixed session ids for the content-generation endpoints. The chatbot uses
// the caller-supplied session id instead.
const (
	SessionDescription = "product_gen"
	SessionTags        = "tags_gen"
	SessionSocial      = "social_gen"
)

// AssistantPersona is the system prompt for content-generation calls.
const AssistantPersona = "You are a helpful AI assistant for Aurelia, a luxury e-commerce dropshipping store."

// SupportPersona is the system prompt for the customer-support chatbot.
const SupportPersona = `You are a helpful customer support assistant for Aurelia, a luxury dropshipping e-commerce store.

Answer questions about:
- Delivery times (typically 7-14 days domestic, 10-21 days international)
- Returns policy (30 days money-back guarantee)
- Payment methods (Stripe, PayPal, Credit Cards)
- Product quality and authenticity
- Order tracking
- Shipping costs (Free shipping on orders over 50 EUR)

Be friendly, professional, and concise. If you don't know something, politely suggest contacting support@aurelia.shop`

// DescriptionPrompt builds the prompt for the product-description call.
func DescriptionPrompt(productName, category string, keywords []string) string {
	return fmt.Sprintf(`Generate a compelling, SEO-optimized product description for an e-commerce luxury dropshipping store.

Product Name: %s
Category: %s
Keywords: %s

Create a description that:
- Highlights luxury and quality
- Is engaging and persuasive
- Includes relevant keywords naturally
- Is between 100-150 words
- Focuses on benefits and features

Return only the description text, no additional formatting.`,
		productName, category, strings.Join(keywords, ", "))
}

// TagsPrompt builds the prompt for the SEO-tag call.
func TagsPrompt(productName, category string) string {
	return fmt.Sprintf("Generate 5-7 relevant SEO tags for a product called '%s' in category '%s'. Return only comma-separated tags.",
		productName, category)
}

var platformGuides = map[string]string{
	"facebook":  "Create an engaging Facebook post with emojis, call-to-action, and friendly tone. Max 200 words.",
	"instagram": "Create an Instagram caption with relevant hashtags, emojis, and trendy language. Max 150 words.",
	"tiktok":    "Create a TikTok video script/caption that's fun, trendy, and encourages engagement. Max 100 words.",
}

// PlatformGuide returns the style guide for a platform, falling back to the
// facebook guide for unrecognized values.
func PlatformGuide(platform string) string {
	if guide, ok := platformGuides[platform]; ok {
		return guide
	}
	return platformGuides["facebook"]
}

// SocialPostPrompt builds the prompt for the social-post call.
func SocialPostPrompt(productName string, price float64, description, platform string) string {
	return fmt.Sprintf(`Create a social media post for %s to promote this product:

Product: %s
Price: %.2f EUR
Description: %s

Guidelines: %s

Make it compelling, luxury-focused, and include a clear call-to-action to visit the store.

Return only the post content.`,
		platform, productName, price, description, PlatformGuide(platform))
}

// SplitTags turns a comma-separated completion into a trimmed tag list,
// dropping empty entries.
func SplitTags(response string) []string {
	parts := strings.Split(response, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
