package frameworks

import (
	"strings"

	"textlens/domain/lexicon"
	"textlens/domain/metrics"
	"textlens/domain/text"
)

// subjectivitySaturation scales sentiment-word density onto [0,1]: ten
// sentiment words per hundred words reads as fully subjective.
const subjectivitySaturation = 10.0

// Emotion label thresholds on polarity.
const (
	positivePolarityThreshold = 0.3
	negativePolarityThreshold = -0.3
)

// SentimentAnalyzer is the lexicon-based polarity/subjectivity scorer.
// Each lexicon word counts once per text, by substring presence.
type SentimentAnalyzer struct {
	lex *lexicon.Lexicon
}

func NewSentimentAnalyzer(lex *lexicon.Lexicon) *SentimentAnalyzer {
	return &SentimentAnalyzer{lex: lex}
}

// Analyze scores polarity in [-1,1] and subjectivity in [0,1].
func (a *SentimentAnalyzer) Analyze(input string) metrics.Sentiment {
	lowered := strings.ToLower(input)

	positive := countPresent(a.lex.PositiveWords, lowered)
	negative := countPresent(a.lex.NegativeWords, lowered)
	neutral := countPresent(a.lex.NeutralWords, lowered)

	totalSentiment := positive + negative
	totalWords := text.WordCount(input)

	polarity := 0.0
	if totalSentiment > 0 {
		polarity = float64(positive-negative) / float64(totalSentiment)
	}

	subjectivity := metrics.RatioOf(totalSentiment, totalWords) * subjectivitySaturation
	if subjectivity > 1 {
		subjectivity = 1
	}

	return metrics.Sentiment{
		Polarity:      metrics.Round3(polarity),
		Subjectivity:  metrics.Round3(subjectivity),
		Emotion:       EmotionLabel(polarity),
		PositiveWords: positive,
		NegativeWords: negative,
		NeutralWords:  neutral,
	}
}

// EmotionLabel classifies a polarity value; averages use the same thresholds
// as single texts.
func EmotionLabel(polarity float64) string {
	switch {
	case polarity > positivePolarityThreshold:
		return "positive"
	case polarity < negativePolarityThreshold:
		return "negative"
	}
	return "neutral"
}

func countPresent(set lexicon.WordSet, lowered string) int {
	count := 0
	for word := range set {
		if strings.Contains(lowered, word) {
			count++
		}
	}
	return count
}
