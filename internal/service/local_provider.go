package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// LocalProvider is the terminal provider in the chain. It generates
// content by deterministic template filling over the prompt text and
// therefore cannot fail to produce output.
type LocalProvider struct {
	logger *zap.Logger
}

func NewLocalProvider(logger *zap.Logger) *LocalProvider {
	return &LocalProvider{logger: logger}
}

func (p *LocalProvider) Name() string { return providerLocal }

func (p *LocalProvider) Attempt(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	promptLower := strings.ToLower(prompt)
	topic := cleanTopic(promptLower)

	var content string
	switch detectPlatform(promptLower) {
	case "instagram":
		content = instagramContent(promptLower, topic)
	case "linkedin":
		content = linkedinContent(topic)
	case "youtube":
		content = youtubeContent(topic)
	case "twitter":
		content = twitterContent(topic)
	default:
		content = generalContent(topic)
	}

	p.logger.Debug("Local template content generated", zap.Int("length", len(content)))
	return content, nil
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

func detectPlatform(promptLower string) string {
	switch {
	case containsAny(promptLower, []string{"instagram", "ig", "story", "post", "feed", "photo"}):
		return "instagram"
	case containsAny(promptLower, []string{"linkedin", "professional", "career", "business", "workplace", "networking"}):
		return "linkedin"
	case containsAny(promptLower, []string{"youtube", "video", "script", "tutorial", "vlog"}):
		return "youtube"
	case containsAny(promptLower, []string{"twitter", "tweet", "thread"}):
		return "twitter"
	default:
		return "general"
	}
}

// cleanTopic strips common request phrasing and truncates the remainder to
// a short topic snippet suitable for template interpolation.
func cleanTopic(promptLower string) string {
	cleaned := promptLower
	for _, filler := range []string{"how to", "what is", "tell me", "help me", "give me", "show me"} {
		cleaned = strings.ReplaceAll(cleaned, filler, "")
	}
	cleaned = strings.TrimSpace(cleaned)
	if runes := []rune(cleaned); len(runes) > 50 {
		cleaned = string(runes[:50])
	}
	return cleaned
}

func instagramContent(promptLower, topic string) string {
	var body string
	switch {
	case containsAny(promptLower, []string{"food", "recipe", "cooking", "meal"}):
		body = "🍽️ Absolutely delicious! This recipe looks amazing and perfect for sharing your culinary journey. The colors and presentation are on point! 📸✨ #foodie #cooking #yummy #homemade"
	case containsAny(promptLower, []string{"travel", "vacation", "trip", "adventure"}):
		body = "✈️ Wanderlust captured perfectly! This destination looks absolutely incredible. The scenery and vibes are everything! 🌍📸 Perfect for inspiring your next adventure! #travel #wanderlust #adventure #explore"
	case containsAny(promptLower, []string{"fitness", "workout", "gym", "exercise"}):
		body = "💪 Strong and determined! This workout routine is perfect for reaching your fitness goals. Consistency is key! 🔥💯 #fitness #workout #motivation #strong"
	default:
		body = "✨ Beautiful moment captured! This content is perfect for your Instagram feed and has great engagement potential. The composition and energy are spot on! 💫📸"
	}
	return fmt.Sprintf("✨ %s\n\n📸 Perfect shot! What do you think? 👇", body)
}

func linkedinContent(topic string) string {
	return fmt.Sprintf(`I recently reflected on '%s...' and wanted to share some insights with this amazing network.

Key observations:
• Strategic thinking and planning are crucial for long-term success
• Continuous learning and adaptation drive professional growth
• Building strong relationships amplifies individual capabilities
• Innovation often comes from challenging conventional approaches

In today's rapidly evolving business landscape, those who embrace change and continuously develop their skills tend to outperform their peers. What strategies have worked best for you in navigating complex challenges?

I'd love to hear different perspectives from this community. Please share your thoughts and experiences below! 👇

#ProfessionalDevelopment #Leadership #BusinessStrategy #GrowthMindset`, topic)
}

func youtubeContent(topic string) string {
	return fmt.Sprintf(`🎬 Hey everyone! Today we're diving into '%s...'

In this comprehensive guide, you'll learn:

✅ Step-by-step breakdown of the fundamentals
✅ Pro tips and advanced techniques
✅ Common mistakes to avoid
✅ Real-world applications and examples

Whether you're just starting out or looking to level up your skills, this video has something valuable for everyone.

💡 Don't forget to hit that like button if this content helps you, and subscribe for more tutorials like this!

🎯 Drop a comment below and let me know:
• What's your biggest challenge with this topic?
• What would you like me to cover next?

Your feedback helps me create better content for you!`, topic)
}

func twitterContent(topic string) string {
	return fmt.Sprintf("💡 Quick insight about '%s...': Sometimes the most effective approach is also the simplest. Focus on fundamentals, build consistency, and results will follow. What's your experience with this? 👇", topic)
}

func generalContent(topic string) string {
	return fmt.Sprintf(`Here's a comprehensive take on '%s...':

• Breaking down complex concepts into digestible parts
• Providing practical, actionable insights
• Focusing on real-world applications and examples
• Emphasizing the importance of continuous improvement

This approach has proven effective across various domains and can be adapted to suit different contexts and goals. The key is to start with a solid foundation and build upon it systematically.

Remember: Progress, not perfection, is what leads to meaningful results. 🌟`, topic)
}
