package service

import (
	"testing"

	"promptly/internal/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestClassifier() *ClassifierService {
	return NewClassifierService(zap.NewNop())
}

func TestPredictIntent(t *testing.T) {
	classifier := newTestClassifier()

	tests := []struct {
		name string
		text string
		want models.Intent
	}{
		{"promotional", "Huge discount on our new product launch, buy now", models.IntentPromotional},
		{"educational", "Learn how to guide with step by step tips", models.IntentEducational},
		{"inspirational", "Believe in your dream and achieve your goal", models.IntentInspirational},
		{"entertaining", "A funny joke to make you laugh", models.IntentEntertaining},
		{"informational", "Latest news update with research data", models.IntentInformational},
		{"no matches defaults to informational", "zzz qqq xxx", models.IntentInformational},
		{"empty text defaults to informational", "", models.IntentInformational},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.PredictIntent(tt.text))
		})
	}
}

func TestPredictIntent_Deterministic(t *testing.T) {
	classifier := newTestClassifier()
	text := "Learn how to sell your product with fun tips"

	first := classifier.PredictIntent(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, classifier.PredictIntent(text))
	}
}

func TestPredictIntent_CaseInsensitive(t *testing.T) {
	classifier := newTestClassifier()
	assert.Equal(t,
		classifier.PredictIntent("LEARN HOW TO GUIDE"),
		classifier.PredictIntent("learn how to guide"),
	)
}

func TestPredictIntent_NonzeroTieKeepsTableOrder(t *testing.T) {
	classifier := newTestClassifier()

	// One promotional keyword ("sell") and one educational keyword
	// ("learn"): promotional comes first in the category table.
	assert.Equal(t, models.IntentPromotional, classifier.PredictIntent("sell and learn"))
}

func TestPredictSentiment(t *testing.T) {
	classifier := newTestClassifier()

	tests := []struct {
		name string
		text string
		want models.Sentiment
	}{
		{"positive", "This is a great and amazing achievement, love it", models.SentimentPositive},
		{"negative", "A terrible, awful experience I hate", models.SentimentNegative},
		{"no matches", "zzz qqq xxx", models.SentimentNeutral},
		{"empty text", "", models.SentimentNeutral},
		{"neutral keywords only", "maybe consider the perhaps", models.SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.PredictSentiment(tt.text))
		})
	}
}

func TestPredictSentiment_NegativeWinsTie(t *testing.T) {
	classifier := newTestClassifier()

	// Exactly one positive keyword ("great") and one negative keyword
	// ("bad"): negative wins the tie.
	assert.Equal(t, models.SentimentNegative, classifier.PredictSentiment("great but bad"))
}

func TestPredictSentiment_NeutralCountNeverDecides(t *testing.T) {
	classifier := newTestClassifier()

	// Many neutral keywords plus a single positive one: the neutral count
	// is higher, yet the positive/negative comparison alone drives the
	// branch, so the result is positive.
	text := "think consider maybe perhaps could might should would great"
	assert.Equal(t, models.SentimentPositive, classifier.PredictSentiment(text))
}

func TestAnalyze(t *testing.T) {
	classifier := newTestClassifier()

	intent, sentiment := classifier.Analyze("Learn these amazing tips")
	assert.Equal(t, models.IntentEducational, intent)
	assert.Equal(t, models.SentimentPositive, sentiment)
}
