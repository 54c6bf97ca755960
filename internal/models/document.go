package models

// Document is a single reference snippet used for retrieval augmentation.
type Document struct {
	ID       string
	Content  string
	Category string
}

// Corpus returns the fixed set of reference documents. The corpus is
// loaded once at startup and never mutated; callers must treat the
// returned slice as read-only.
func Corpus() []Document {
	return documentCorpus
}

var documentCorpus = []Document{
	{
		ID:       "doc_1",
		Content:  "Effective social media posts start with a strong hook that captures attention within the first 3 seconds. Use questions, bold statements, or surprising facts.",
		Category: "social_media",
	},
	{
		ID:       "doc_2",
		Content:  "Instagram content performs best with authentic storytelling, behind-the-scenes content, and relatable experiences. Use 3-5 relevant hashtags for optimal reach.",
		Category: "instagram",
	},
	{
		ID:       "doc_3",
		Content:  "LinkedIn posts should provide professional value through insights, lessons learned, or industry expertise. Personal stories with professional takeaways drive engagement.",
		Category: "linkedin",
	},
	{
		ID:       "doc_4",
		Content:  "YouTube scripts need a compelling hook in the first 15 seconds, clear structure with timestamps, and a strong call-to-action for subscriptions and engagement.",
		Category: "youtube",
	},
	{
		ID:       "doc_5",
		Content:  "Call-to-action phrases that convert: 'Join now', 'Get started today', 'Don't miss out', 'Limited time offer', 'Click the link in bio'.",
		Category: "cta",
	},
	{
		ID:       "doc_6",
		Content:  "Engaging content uses the AIDA framework: Attention (hook), Interest (value proposition), Desire (benefits), Action (clear CTA).",
		Category: "framework",
	},
	{
		ID:       "doc_7",
		Content:  "Storytelling elements that resonate: conflict and resolution, personal transformation, lessons from failure, unexpected insights, and authentic vulnerability.",
		Category: "storytelling",
	},
	{
		ID:       "doc_8",
		Content:  "Content formatting tips: Use short paragraphs, bullet points for lists, emojis for visual breaks, and white space for readability on mobile devices.",
		Category: "formatting",
	},
	{
		ID:       "doc_9",
		Content:  "Emotional triggers in content: curiosity, fear of missing out, desire for belonging, aspiration for success, and need for validation.",
		Category: "psychology",
	},
	{
		ID:       "doc_10",
		Content:  "Video content structure: Hook (0-15s), Context (15-60s), Main Content (1-5min), Summary (30s), Call-to-Action (15s).",
		Category: "video",
	},
}
