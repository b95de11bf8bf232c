// Package text provides the pure text-processing primitives the analysis
// engine is built on: multilingual tokenization, the declarative pattern
// library, and code-switch detection. Nothing here performs I/O and every
// function is safe for concurrent use.
package text

import (
	"regexp"
	"strings"

	"textlens/domain/lexicon"
)

// stripPattern removes everything except word characters, whitespace, hyphens,
// inverted/plain question marks, and the Spanish accented letters.
var stripPattern = regexp.MustCompile(`[^\w\s\-¿?áéíóúñü]`)

// Normalizer tokenizes mixed English/Spanish text against the shared lexicon.
type Normalizer struct {
	lex *lexicon.Lexicon
}

// NewNormalizer creates a normalizer bound to the given lexicon.
func NewNormalizer(lex *lexicon.Lexicon) *Normalizer {
	return &Normalizer{lex: lex}
}

// Tokenize lowercases, strips punctuation, splits on whitespace, and filters
// stop-words in both languages. When preserveCultural is set, a token in the
// cultural-preservation set always survives the filter, even if it is a
// stop-word in one of the languages: keep if (not stopword) or (preserved).
func (n *Normalizer) Tokenize(input string, preserveCultural bool) []string {
	lowered := strings.ToLower(input)
	cleaned := stripPattern.ReplaceAllString(lowered, " ")
	tokens := strings.Fields(cleaned)

	filtered := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if n.lex.IsStopword(tok) {
			if !preserveCultural || !n.lex.CulturalPreserve.Contains(tok) {
				continue
			}
		}
		filtered = append(filtered, tok)
	}
	return filtered
}

// WordCount counts whitespace-delimited words in the raw text. All density
// ratios in the engine are computed against this count.
func WordCount(input string) int {
	return len(strings.Fields(input))
}

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// SplitSentences splits on sentence-ending punctuation and drops empty parts.
func SplitSentences(input string) []string {
	parts := sentenceSplit.Split(input, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}
