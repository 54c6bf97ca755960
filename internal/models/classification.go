package models

// Intent is the classified purpose of a content request.
type Intent string

const (
	IntentPromotional   Intent = "promotional"
	IntentEducational   Intent = "educational"
	IntentInspirational Intent = "inspirational"
	IntentEntertaining  Intent = "entertaining"
	IntentInformational Intent = "informational"
)

// Sentiment is the classified emotional tone of a content request.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)
