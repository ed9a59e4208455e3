package domain

import "context"

// ServicePort defines the classification pipeline contract
type ServicePort interface {
	Classify(ctx context.Context, in Input) (Result, error)
}

// Normalizer cleans review text before scoring. Implementations should be
// pure and total; the pipeline guards failures regardless
type Normalizer interface {
	Clean(text string) (string, error)
}

// Scorer assigns a segment and confidence to cleaned text
type Scorer interface {
	Score(text string) (Score, error)
}
