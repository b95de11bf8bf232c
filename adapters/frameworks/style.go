package frameworks

import (
	"strings"

	"textlens/domain/corpus"
	"textlens/domain/metrics"
	"textlens/domain/text"
)

// StyleAnalyzer measures the five semantic-style dimensions plus cultural
// markers and code-switch implications for one parameter text.
type StyleAnalyzer struct {
	lib *text.Library
}

func NewStyleAnalyzer(lib *text.Library) *StyleAnalyzer {
	return &StyleAnalyzer{lib: lib}
}

// Analyze runs every style dimension. The parameter name only affects the
// implied function assigned to code-switch placement.
func (a *StyleAnalyzer) Analyze(input, parameter string) metrics.SemanticStyle {
	return metrics.SemanticStyle{
		CulturalMarkers:        a.culturalMarkers(input),
		SentenceComplexity:     a.sentenceComplexity(input),
		WordChoices:            a.wordChoices(input),
		GrammaticalStructures:  a.grammaticalStructures(input),
		RhetoricalDevices:      a.rhetoricalDevices(input),
		CodeSwitchImplications: a.codeSwitchImplications(input, parameter),
	}
}

func (a *StyleAnalyzer) culturalMarkers(input string) metrics.CulturalMarkers {
	spanish := a.lib.Count(text.PatternSpanishTerms, input)
	refs := a.lib.Count(text.PatternCulturalRefs, input)
	gestures := a.lib.Count(text.PatternGestureDesc, input)
	return metrics.CulturalMarkers{
		SpanishTerms:        spanish,
		CulturalReferences:  refs,
		GestureDescriptions: gestures,
		Total:               spanish + refs + gestures,
	}
}

func (a *StyleAnalyzer) sentenceComplexity(input string) metrics.SentenceComplexity {
	sentences := text.SplitSentences(input)
	if len(sentences) == 0 {
		return metrics.SentenceComplexity{}
	}

	sum, maxLen := 0, 0
	minLen := -1
	for _, s := range sentences {
		n := text.WordCount(s)
		sum += n
		if n > maxLen {
			maxLen = n
		}
		if minLen < 0 || n < minLen {
			minLen = n
		}
	}

	return metrics.SentenceComplexity{
		AvgSentenceLength: metrics.Round2(float64(sum) / float64(len(sentences))),
		MaxSentenceLength: maxLen,
		MinSentenceLength: minLen,
		SentenceCount:     len(sentences),
	}
}

func (a *StyleAnalyzer) wordChoices(input string) metrics.WordChoices {
	emotional := a.lib.Count(text.PatternEmotionalWords, input)
	neutral := a.lib.Count(text.PatternNeutralVerbs, input)
	concrete := a.lib.Count(text.PatternConcreteWords, input)
	abstract := a.lib.Count(text.PatternAbstractWords, input)
	formal := a.lib.Count(text.PatternFormalWords, input)
	informal := a.lib.Count(text.PatternInformalWords, input)

	return metrics.WordChoices{
		EmotionalVsNeutral: metrics.RatioOf(emotional, neutral),
		ConcreteVsAbstract: metrics.RatioOf(concrete, abstract),
		FormalVsInformal:   metrics.RatioOf(formal, informal),
		EmotionalWords:     emotional,
		ConcreteWords:      concrete,
		FormalWords:        formal,
	}
}

func (a *StyleAnalyzer) grammaticalStructures(input string) metrics.GrammaticalStructures {
	active := a.lib.Count(text.PatternActiveGrammar, input)
	passive := a.lib.Count(text.PatternPassiveGrammar, input)
	questions := a.lib.Count(text.PatternQuestionMark, input)
	imperatives := a.lib.Count(text.PatternImperatives, input)

	return metrics.GrammaticalStructures{
		ActiveVoice:  active,
		PassiveVoice: passive,
		Questions:    questions,
		Imperatives:  imperatives,
		VoiceRatio:   metrics.RatioOf(active, passive),
	}
}

func (a *StyleAnalyzer) rhetoricalDevices(input string) metrics.RhetoricalDevices {
	metaphors := a.lib.Count(text.PatternMetaphor, input)
	similes := a.lib.Count(text.PatternSimile, input)
	personification := a.lib.Count(text.PatternPersonification, input)
	repetition := repeatedBigrams(input)

	return metrics.RhetoricalDevices{
		Metaphors:           metaphors,
		Similes:             similes,
		Personification:     personification,
		RepetitionInstances: repetition,
		TotalDevices:        metaphors + similes + personification + repetition,
	}
}

// repeatedBigrams counts distinct word bigrams that occur more than once.
func repeatedBigrams(input string) int {
	words := strings.Fields(strings.ToLower(input))
	if len(words) < 2 {
		return 0
	}
	seen := make(map[string]int, len(words))
	for i := 0; i+1 < len(words); i++ {
		seen[words[i]+" "+words[i+1]]++
	}
	repeated := 0
	for _, n := range seen {
		if n > 1 {
			repeated++
		}
	}
	return repeated
}

// impliedFunctions maps each parameter to the rhetorical work code-switching
// does within it.
var impliedFunctions = map[string]string{
	corpus.ParamContext:     "cultural_grounding",
	corpus.ParamAbstraction: "bridging_concrete_abstract",
	corpus.ParamConcept:     "emotional_philosophical_depth",
}

func (a *StyleAnalyzer) codeSwitchImplications(input, parameter string) metrics.CodeSwitchImplications {
	switches := text.DetectCodeSwitching(input)

	implied, ok := impliedFunctions[strings.ToLower(parameter)]
	if !ok {
		implied = "unknown"
	}

	return metrics.CodeSwitchImplications{
		SwitchCount:     len(switches),
		ImpliedFunction: implied,
		Switches:        markerWords(switches),
	}
}
