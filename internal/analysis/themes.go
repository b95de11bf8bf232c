package analysis

import (
	"sort"

	"textlens/domain/metrics"
	"textlens/domain/text"
)

// ThemeExtractor ranks content words by frequency. Cultural-preservation
// words survive stop-word filtering so that code-switch vocabulary can
// surface as themes.
type ThemeExtractor struct {
	norm *text.Normalizer
}

func NewThemeExtractor(norm *text.Normalizer) *ThemeExtractor {
	return &ThemeExtractor{norm: norm}
}

// Top tokenizes the input and returns the n most frequent tokens, counts
// descending. Ties keep first-encountered order, so the ranking is a pure
// function of the input text.
func (e *ThemeExtractor) Top(input string, n int) []metrics.ThemeCount {
	tokens := e.norm.Tokenize(input, true)
	return rankTokens(tokens, n)
}

// TopPooled ranks the concatenated token streams of several texts, in the
// order given. Used for the cross-model comparative theme lists.
func (e *ThemeExtractor) TopPooled(inputs []string, n int) []metrics.ThemeCount {
	var tokens []string
	for _, input := range inputs {
		tokens = append(tokens, e.norm.Tokenize(input, true)...)
	}
	return rankTokens(tokens, n)
}

func rankTokens(tokens []string, n int) []metrics.ThemeCount {
	counts := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	ranked := make([]metrics.ThemeCount, len(order))
	for i, word := range order {
		ranked[i] = metrics.ThemeCount{Word: word, Count: counts[word]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
