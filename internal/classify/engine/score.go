package engine

import (
	"math"
	"math/rand/v2"
	"strings"

	"segmenter/internal/classify/domain"
)

// keyword sets driving the lightweight segmentation model
var (
	positiveWords = []string{"great", "fantastic", "love", "happy", "excellent"}
	negativeWords = []string{"terrible", "bad", "unhappy", "problem", "hate"}
)

// KeywordScorer is a lightweight keyword model. It emits one of three
// segments with a confidence drawn from a per-segment band
type KeywordScorer struct {
	// randf is a seam for deterministic tests; defaults to rand.Float64
	randf func() float64
}

// NewKeywordScorer constructs a KeywordScorer
func NewKeywordScorer() *KeywordScorer {
	return &KeywordScorer{randf: rand.Float64}
}

// Score classifies cleaned text. Total for any input including empty;
// confidence is always within [0, 1], rounded to 4 decimals
func (k *KeywordScorer) Score(text string) (domain.Score, error) {
	lower := strings.ToLower(text)

	var segment string
	var confidence float64
	switch {
	case containsAny(lower, positiveWords):
		segment = domain.SegmentHighValue
		confidence = 0.85 + k.randf()*0.14
	case containsAny(lower, negativeWords):
		segment = domain.SegmentAtRisk
		confidence = 0.75 + k.randf()*0.20
	default:
		segment = domain.SegmentMidValue
		confidence = 0.50 + k.randf()*0.30
	}

	return domain.Score{
		Segment:    segment,
		Confidence: math.Round(confidence*10000) / 10000,
	}, nil
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
