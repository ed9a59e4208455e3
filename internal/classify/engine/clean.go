// Package engine provides the bundled text-cleaning and scoring
// collaborators behind the domain ports. Both are pure and total; the
// pipeline treats them as swappable black boxes
package engine

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Cleaner normalizes review text. Pipeline order:
// 1 UTF-8 repair, drop invalid bytes
// 2 Unicode NFKC normalization and width fold
// 3 Lowercase
// 4 Remove digits and punctuation (keep letters, underscore, whitespace)
// 5 Trim surrounding whitespace
type Cleaner struct{}

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			width.Fold, // map fullwidth forms to ASCII
		)
	},
}

// NewCleaner constructs a Cleaner
func NewCleaner() *Cleaner { return &Cleaner{} }

// Clean returns the normalized form of s. It never fails for any string
// input including empty
func (c *Cleaner) Clean(s string) (string, error) {
	if s == "" {
		return "", nil
	}

	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err == nil {
		s = ns
	}

	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			// dropped
		case unicode.IsLetter(r), r == '_', unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String()), nil
}
