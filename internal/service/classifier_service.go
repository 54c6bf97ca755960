package service

import (
	"strings"

	"promptly/internal/models"

	"go.uber.org/zap"
)

// intentTable and sentimentTable are ordered: ties between nonzero scores
// resolve to the earlier entry, so the order is part of the contract.
var intentTable = []struct {
	label    models.Intent
	keywords []string
}{
	{models.IntentPromotional, []string{
		"sell", "buy", "discount", "offer", "deal", "sale", "promo", "launch",
		"product", "service", "brand", "marketing", "advertise", "campaign",
	}},
	{models.IntentEducational, []string{
		"learn", "teach", "how to", "guide", "tutorial", "explain", "understand",
		"tips", "steps", "lesson", "course", "knowledge", "skill", "training",
	}},
	{models.IntentInspirational, []string{
		"inspire", "motivate", "dream", "achieve", "success", "believe", "hope",
		"courage", "strength", "overcome", "journey", "growth", "mindset", "goal",
	}},
	{models.IntentEntertaining, []string{
		"fun", "funny", "humor", "joke", "laugh", "meme", "entertainment",
		"game", "play", "enjoy", "relax", "comedy", "amusing", "hilarious",
	}},
	{models.IntentInformational, []string{
		"news", "update", "announce", "report", "fact", "data", "research",
		"study", "analysis", "insight", "trend", "statistics", "information",
	}},
}

var sentimentKeywords = map[models.Sentiment][]string{
	models.SentimentPositive: {
		"great", "amazing", "awesome", "excellent", "love", "happy", "joy",
		"fantastic", "wonderful", "best", "brilliant", "success", "achieve",
		"excited", "thrilled", "grateful", "blessed", "incredible", "perfect",
	},
	models.SentimentNegative: {
		"bad", "terrible", "awful", "hate", "sad", "angry", "frustrated",
		"disappointed", "worst", "fail", "problem", "issue", "struggle",
		"difficult", "hard", "challenge", "pain", "stress", "worry",
	},
	models.SentimentNeutral: {
		"think", "consider", "maybe", "perhaps", "could", "might", "should",
		"would", "information", "fact", "data", "report", "update", "news",
	},
}

// ClassifierService tags free text with an intent and a sentiment using
// keyword frequency. Both predictions are pure functions of the input.
type ClassifierService struct {
	logger *zap.Logger
}

func NewClassifierService(logger *zap.Logger) *ClassifierService {
	return &ClassifierService{logger: logger}
}

// countKeywords counts how many keywords from the list occur as substrings
// of text. Each keyword contributes at most 1 regardless of repetitions.
func countKeywords(text string, keywords []string) int {
	score := 0
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			score++
		}
	}
	return score
}

// PredictIntent classifies the intent of the input text. With no keyword
// matches at all the result defaults to informational.
func (s *ClassifierService) PredictIntent(text string) models.Intent {
	textLower := strings.ToLower(text)

	best := models.IntentInformational
	bestScore := 0
	for _, entry := range intentTable {
		if score := countKeywords(textLower, entry.keywords); score > bestScore {
			best = entry.label
			bestScore = score
		}
	}
	return best
}

// PredictSentiment classifies the sentiment of the input text. Negative
// wins a nonzero tie against positive. The neutral keyword count feeds the
// all-zero check and debug logging but never decides the branch on its own.
func (s *ClassifierService) PredictSentiment(text string) models.Sentiment {
	textLower := strings.ToLower(text)

	positive := countKeywords(textLower, sentimentKeywords[models.SentimentPositive])
	negative := countKeywords(textLower, sentimentKeywords[models.SentimentNegative])
	neutral := countKeywords(textLower, sentimentKeywords[models.SentimentNeutral])

	s.logger.Debug("sentiment keyword counts",
		zap.Int("positive", positive),
		zap.Int("negative", negative),
		zap.Int("neutral", neutral),
	)

	if positive == 0 && negative == 0 && neutral == 0 {
		return models.SentimentNeutral
	}
	if negative >= positive && negative > 0 {
		return models.SentimentNegative
	}
	if positive > negative {
		return models.SentimentPositive
	}
	return models.SentimentNeutral
}

// Analyze runs both classifiers over the same text.
func (s *ClassifierService) Analyze(text string) (models.Intent, models.Sentiment) {
	return s.PredictIntent(text), s.PredictSentiment(text)
}
