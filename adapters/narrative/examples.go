package narrative

import (
	"regexp"
	"strings"

	"textlens/domain/text"
)

// Presentation patterns: the word lists the narrative templates quote
// evidence from. These overlap with but are wider than the extractor
// patterns, so they live here rather than in the shared library.
var (
	codeSwitchExampleWords = text.NewWordList("code_switch_examples",
		`mija|aquí|verdad|pero|sí|cómo|qué|ves|mira|océano|cielo|mar|entiendes|allá|acá|ni|tanto|también|ese|eso`)

	gestureExamplePattern = regexp.MustCompile(
		`(?i)(leans? in|touches?|snaps?|waves?|taps?|nods?|pauses?|gestures?)[^.!?]{0,50}`)

	multimodalModeWords = text.NewWordList("multimodal_modes",
		`visual|spatial|gestural|embodied`)
	multimodalFormWords = text.NewWordList("multimodal_forms",
		`composition|horizon|silhouette|shape|form`)

	// sentenceSpans matches each sentence including its terminator; evidence
	// extraction works sentence by sentence.
	sentenceSpans = regexp.MustCompile(`[^.!?]*[.!?]`)
)

// lastMatchPerSentence walks the text sentence by sentence and collects the
// last matching span of each sentence that has one, up to limit. Surface
// casing is preserved.
func lastMatchPerSentence(input string, spec text.Spec, limit int) []string {
	var out []string
	for _, sentence := range sentenceSpans.FindAllString(input, -1) {
		if len(out) >= limit {
			break
		}
		matches := spec.FindAll(sentence)
		if len(matches) == 0 {
			continue
		}
		out = append(out, matches[len(matches)-1])
	}
	return out
}

// extractCodeSwitchExamples pulls up to limit quoted code-switch words, one
// per sentence that contains any.
func extractCodeSwitchExamples(input string, limit int) []string {
	return lastMatchPerSentence(input, codeSwitchExampleWords, limit)
}

// extractGestures pulls up to five gesture verbs from the text.
func extractGestures(input string) []string {
	matches := gestureExamplePattern.FindAllStringSubmatch(input, -1)
	out := make([]string, 0, 5)
	for _, m := range matches {
		if len(out) >= 5 {
			break
		}
		out = append(out, m[1])
	}
	return out
}

// extractMultimodalRefs pulls up to three multimodal keywords: two from the
// mode vocabulary, two from the form vocabulary, capped at three overall.
func extractMultimodalRefs(input string) []string {
	out := lastMatchPerSentence(input, multimodalModeWords, 2)
	out = append(out, lastMatchPerSentence(input, multimodalFormWords, 2)...)
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// exampleAt quotes the i-th example, or "N/A" when there are not enough.
func exampleAt(items []string, i int) string {
	if i < len(items) {
		return items[i]
	}
	return "N/A"
}

func joinExamples(items []string, n int) string {
	return strings.Join(firstN(items, n), ", ")
}
