package service

import (
	"fmt"
	"strings"

	"promptly/internal/models"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// platformTemplate holds the style rules used when prompting for a
// specific target platform.
type platformTemplate struct {
	Style        string
	Format       string
	Tone         string
	Requirements []string
}

const generalPlatform = "General"

var platformTemplates = map[string]platformTemplate{
	generalPlatform: {
		Style:  "clear, engaging, and well-structured",
		Format: "Use paragraphs with clear flow. Include an introduction, main points, and conclusion.",
		Tone:   "professional yet approachable",
		Requirements: []string{
			"Start with a compelling opening statement",
			"Develop ideas with supporting details",
			"End with a memorable takeaway or call-to-action",
		},
	},
	"Instagram": {
		Style:  "casual, authentic, and visually descriptive",
		Format: "Short punchy sentences. Use line breaks for readability. Include 3-5 relevant hashtags at the end.",
		Tone:   "friendly, relatable, and engaging",
		Requirements: []string{
			"Start with a scroll-stopping hook",
			"Tell a micro-story or share a relatable moment",
			"Include a clear call-to-action (save, share, comment)",
			"Use emojis strategically for visual appeal",
			"End with relevant hashtags",
		},
	},
	"LinkedIn": {
		Style:  "professional, insightful, and value-driven",
		Format: "Start with a bold statement or question. Use short paragraphs. Include bullet points for key takeaways.",
		Tone:   "authoritative yet personable, thought-leadership focused",
		Requirements: []string{
			"Open with a hook that speaks to professional challenges",
			"Share a personal experience or industry insight",
			"Provide actionable takeaways or lessons",
			"End with a question to encourage discussion",
			"Keep it under 1300 characters for optimal engagement",
		},
	},
	"YouTube Script": {
		Style:  "conversational, energetic, and structured",
		Format: "Include [HOOK], [INTRO], [MAIN CONTENT], [OUTRO] sections. Write for spoken delivery.",
		Tone:   "enthusiastic, clear, and personality-driven",
		Requirements: []string{
			"[HOOK]: Grab attention in first 5 seconds with a question or bold claim",
			"[INTRO]: Briefly explain what viewers will learn/gain",
			"[MAIN CONTENT]: Break into 3-5 key points with clear transitions",
			"[OUTRO]: Summarize key points, include CTA for like/subscribe/comment",
			"Write in conversational spoken language, not formal prose",
		},
	},
}

// PromptService assembles generation prompts and deterministic fallback
// content from static platform templates. Pure string construction, no
// external calls.
type PromptService struct {
	logger *zap.Logger
}

func NewPromptService(logger *zap.Logger) *PromptService {
	return &PromptService{logger: logger}
}

func lookupTemplate(platform string) platformTemplate {
	if template, ok := platformTemplates[platform]; ok {
		return template
	}
	return platformTemplates[generalPlatform]
}

// BuildPrompt constructs the generation prompt for the given topic and
// platform. Unknown platforms fall back to the General template.
func (s *PromptService) BuildPrompt(
	userText, platform string,
	intent models.Intent,
	sentiment models.Sentiment,
	documents []string,
	maxTokens int,
) string {
	template := lookupTemplate(platform)

	var context strings.Builder
	for i, doc := range documents {
		if i > 0 {
			context.WriteString("\n")
		}
		context.WriteString("- " + doc)
	}

	var requirements strings.Builder
	for i, req := range template.Requirements {
		if i > 0 {
			requirements.WriteString("\n")
		}
		requirements.WriteString("• " + req)
	}

	return fmt.Sprintf(`You are an expert content creator specializing in %s content.

TASK: Create %s content based on the following:

TOPIC/IDEA: %s

DETECTED INTENT: %s
DETECTED SENTIMENT: %s

REFERENCE INSIGHTS:
%s

PLATFORM REQUIREMENTS:
Style: %s
Format: %s
Tone: %s

SPECIFIC REQUIREMENTS:
%s

CRITICAL RULES:
1. Create ORIGINAL, platform-optimized content
2. DO NOT use generic filler phrases
3. DO NOT mention AI or that you are an assistant
4. MUST include specific hooks, structure, and CTAs
5. Make it ready to publish immediately
6. Match the %s sentiment and %s intent

Generate the content now:`,
		platform, platform, userText, intent, sentiment,
		context.String(),
		template.Style, template.Format, template.Tone,
		requirements.String(),
		sentiment, intent,
	)
}

// FallbackContent produces deterministic platform-specific content that
// embeds the user's text directly. It always returns a non-empty string.
func (s *PromptService) FallbackContent(
	userText, platform string,
	intent models.Intent,
	sentiment models.Sentiment,
) string {
	switch platform {
	case "Instagram":
		return fmt.Sprintf(`✨ %s

Here's something worth thinking about today...

%s

The journey matters more than the destination. Every step forward counts.

💬 What's your take? Drop a comment below!

#motivation #growth #mindset #inspiration #journey`, titleCase(userText), userText)

	case "LinkedIn":
		return fmt.Sprintf(`I've been thinking about %s...

Here's what I've learned:

→ Start with curiosity
→ Embrace the learning curve
→ Share your insights with others

The best professionals aren't those who know everything. They're the ones who never stop learning.

What's been your experience with this? I'd love to hear your thoughts. 👇`, strings.ToLower(userText))

	case "YouTube Script":
		return fmt.Sprintf(`[HOOK]
What if I told you that %s could change everything?

[INTRO]
Hey everyone! Today we're diving deep into %s.

[MAIN CONTENT]
Let's break this down into three key points...

Point 1: Understanding the basics
Point 2: Practical application
Point 3: Taking it to the next level

[OUTRO]
That's a wrap on today's video! If you found this helpful, smash that like button and subscribe for more content like this. Drop a comment below with your thoughts!`, strings.ToLower(userText), userText)

	default:
		return fmt.Sprintf(`%s

This topic deserves attention because it impacts how we think and act.

Key takeaways:
• Understanding leads to better decisions
• Small steps create big changes
• Sharing knowledge multiplies its value

What are your thoughts on this? Let's continue the conversation.`, titleCase(userText))
	}
}

func titleCase(text string) string {
	return cases.Title(language.English).String(text)
}
