package text

import (
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"
)

// Kind selects how a Spec's expression is applied to text.
type Kind int

const (
	// WordList matches the alternation only at letter/digit boundaries.
	// Go's regexp \b is ASCII-only, so accented Spanish words (aquí, qué)
	// need the boundary check done on runes instead.
	WordList Kind = iota
	// Raw applies the expression exactly as written.
	Raw
)

// Spec is one named pattern in the library.
type Spec struct {
	Name string
	kind Kind
	re   *regexp.Regexp
}

func wordList(name, alternation string) Spec {
	return Spec{Name: name, kind: WordList, re: regexp.MustCompile(`(?i)(?:` + alternation + `)`)}
}

func raw(name, expr string) Spec {
	return Spec{Name: name, kind: Raw, re: regexp.MustCompile(expr)}
}

// NewWordList builds a boundary-checked pattern outside the fixed table,
// for callers with presentation-only word lists.
func NewWordList(name, alternation string) Spec {
	return wordList(name, alternation)
}

// NewRaw builds a raw pattern outside the fixed table.
func NewRaw(name, expr string) Spec {
	return raw(name, expr)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// boundedAt reports whether [start,end) sits at word boundaries in text.
func boundedAt(text string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(text[:start]); isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		if r, _ := utf8.DecodeRuneInString(text[end:]); isWordRune(r) {
			return false
		}
	}
	return true
}

// FindAllIndex returns non-overlapping match positions as byte offsets into
// text, in order of appearance.
func (s Spec) FindAllIndex(text string) [][]int {
	matches := s.re.FindAllStringIndex(text, -1)
	if s.kind == Raw || len(matches) == 0 {
		return matches
	}
	bounded := matches[:0]
	for _, m := range matches {
		if boundedAt(text, m[0], m[1]) {
			bounded = append(bounded, m)
		}
	}
	return bounded
}

// FindAll returns the matched surface spans, original casing preserved,
// duplicates retained.
func (s Spec) FindAll(text string) []string {
	idx := s.FindAllIndex(text)
	out := make([]string, len(idx))
	for i, m := range idx {
		out[i] = text[m[0]:m[1]]
	}
	return out
}

// Count returns the number of non-overlapping matches.
func (s Spec) Count(text string) int {
	return len(s.FindAllIndex(text))
}

// Pattern names, keyed by the analytical dimension they measure.
const (
	PatternCodeSwitchWords   = "code_switch_words"
	PatternSpanishQuestion   = "spanish_question"
	PatternVernacular        = "vernacular_markers"
	PatternGesture           = "gesture_markers"
	PatternVisualLiteracy    = "visual_literacy"
	PatternSpatialLiteracy   = "spatial_literacy"
	PatternGesturalLiteracy  = "gestural_literacy"
	PatternVisualDesc        = "visual_descriptions"
	PatternSpatialDesc       = "spatial_descriptions"
	PatternKinestheticDesc   = "kinesthetic_descriptions"
	PatternInterpretation    = "interpretation_markers"
	PatternEmpathy           = "empathy_markers"
	PatternCulturalAck       = "cultural_acknowledgment"
	PatternPerspective       = "perspective_markers"
	PatternQuestion          = "question_markers"
	PatternQuestionMark      = "question_marks"
	PatternSeamlessMarked    = "marked_switch_markers"
	PatternBlended           = "blended_structures"
	PatternRecognition       = "pattern_recognition"
	PatternGeneralization    = "generalizations"
	PatternSpecificDetail    = "specific_details"
	PatternAbstractionMarker = "abstraction_markers"
	PatternActiveSelf        = "active_voice_self"
	PatternPassiveHedge      = "passive_voice_hedge"
	PatternDefinitive        = "definitive_statements"
	PatternTentative         = "tentative_statements"
	PatternAuthoritative     = "authoritative_markers"
	PatternSpanishTerms      = "spanish_terms"
	PatternCulturalRefs      = "cultural_references"
	PatternGestureDesc       = "gesture_descriptions"
	PatternEmotionalWords    = "emotional_words"
	PatternNeutralVerbs      = "neutral_verbs"
	PatternConcreteWords     = "concrete_words"
	PatternAbstractWords     = "abstract_words"
	PatternFormalWords       = "formal_words"
	PatternInformalWords     = "informal_words"
	PatternActiveGrammar     = "active_voice_grammar"
	PatternPassiveGrammar    = "passive_voice_grammar"
	PatternImperatives       = "imperatives"
	PatternMetaphor          = "metaphors"
	PatternSimile            = "similes"
	PatternPersonification   = "personification"
)

// Library is the declarative pattern table: every analytical dimension the
// extractors count is a named, precompiled Spec here. The word lists and
// expressions are fixed calibration data.
type Library struct {
	specs map[string]Spec
}

// NewLibrary compiles the full pattern table.
func NewLibrary() *Library {
	all := []Spec{
		wordList(PatternCodeSwitchWords, `mija|aquí|verdad|pero|sí|cómo|qué|ves|mira|ahh|ese|eso|todo`),
		raw(PatternSpanishQuestion, `¿[^?]+\?`),
		wordList(PatternVernacular, `mija|aquí|ves|entiendes|verdad`),
		raw(PatternGesture, `(?i)(gestures?|leans?|touches?|snaps?|waves?|taps?)`),
		wordList(PatternVisualLiteracy, `visual|see|seeing|look|looking|gaze|image|picture|photo`),
		wordList(PatternSpatialLiteracy, `space|distance|horizon|edge|foreground|background|between`),
		wordList(PatternGesturalLiteracy, `gestures?|motion|movement|body|posture|stance`),
		wordList(PatternVisualDesc, `black and white|gray|grayscale|color|light|shadow|contrast|texture|shape`),
		wordList(PatternSpatialDesc, `composition|frame|horizontal|vertical|diagonal|bands|layers`),
		wordList(PatternKinestheticDesc, `movement|stillness|standing|walking|gazing|turning`),
		wordList(PatternInterpretation, `suggests?|implies?|evokes?|represents?|symbolizes?|metaphor`),
		wordList(PatternEmpathy, `understand|feel|sense|experience|lived|personal|intimate`),
		wordList(PatternCulturalAck, `cultura|heritage|tradition|community|belonging|identity|Caribbean|homeland|island`),
		wordList(PatternPerspective, `you're|you are|your|we|us|our`),
		raw(PatternQuestion, `¿[^?]+\?|\?`),
		raw(PatternQuestionMark, `\?`),
		wordList(PatternSeamlessMarked, `cómo se dice|that word|in Spanish`),
		wordList(PatternBlended, `pero it|y the|como that|es the|está the`),
		wordList(PatternRecognition, `pattern|common|typically|often|generally|suggests|indicates|tends`),
		wordList(PatternGeneralization, `overall|general|universal|abstract|concept|theme|idea`),
		wordList(PatternSpecificDetail, `specific|particular|detail|precisely|exactly|concrete`),
		wordList(PatternAbstractionMarker, `symbolizes|represents|metaphor|signifies|embodies|essence`),
		wordList(PatternActiveSelf, `I see|I identify|I analyze|we see|we observe|this shows|this reveals`),
		wordList(PatternPassiveHedge, `is seen|is shown|can be|may be|appears to|seems to`),
		wordList(PatternDefinitive, `is|are|represents|symbolizes|means`),
		wordList(PatternTentative, `might|could|perhaps|possibly|suggests|may indicate`),
		wordList(PatternAuthoritative, `clearly|obviously|certainly|definitely|undoubtedly`),
		wordList(PatternSpanishTerms, `mija|aquí|verdad|pero|sí|cómo|qué|ves|mira|océano|cielo|mar|entiendes`),
		wordList(PatternCulturalRefs, `Caribbean|homeland|island|Barbados|heritage|tradition|community`),
		raw(PatternGestureDesc, `(?i)(gestures?|leans?|touches?|snaps?|waves?|taps?|nods?|pauses?)\s+[^.]{0,50}`),
		wordList(PatternEmotionalWords, `feel|feeling|emotion|heart|soul|intimate|personal|deep`),
		wordList(PatternNeutralVerbs, `shows|displays|presents|depicts|illustrates|contains`),
		wordList(PatternConcreteWords, `beach|sand|water|ocean|sky|figure|person|head|body`),
		wordList(PatternAbstractWords, `concept|theme|idea|meaning|essence|significance|implication`),
		wordList(PatternFormalWords, `furthermore|moreover|consequently|therefore|thus|hence`),
		wordList(PatternInformalWords, `okay|yeah|like|kinda|sorta|gonna|wanna`),
		raw(PatternActiveGrammar, `(?i)\b(I|you|we|they)\s+(see|feel|observe|experience|create|show)\b`),
		raw(PatternPassiveGrammar, `(?i)\b(is|are|was|were)\s+\w+(ed|en)\b`),
		wordList(PatternImperatives, `look|see|consider|imagine|think|notice`),
		wordList(PatternMetaphor, `like a|as if|becomes|transforms into|metaphor for`),
		raw(PatternSimile, `(?i)\blike\s+\w+`),
		raw(PatternPersonification, `(?i)\b(ocean|water|beach|sky|horizon)\s+(invites|suggests|speaks|calls|whispers)\b`),
	}

	specs := make(map[string]Spec, len(all))
	for _, s := range all {
		specs[s.Name] = s
	}
	return &Library{specs: specs}
}

// Spec returns the named pattern; it panics on unknown names since the table
// is fixed at compile time and a miss is a programming error.
func (l *Library) Spec(name string) Spec {
	s, ok := l.specs[name]
	if !ok {
		panic(fmt.Sprintf("text: unknown pattern %q", name))
	}
	return s
}

// Count counts non-overlapping matches of the named pattern.
func (l *Library) Count(name, text string) int {
	return l.Spec(name).Count(text)
}

// FindAll returns the matched spans of the named pattern, casing preserved.
func (l *Library) FindAll(name, text string) []string {
	return l.Spec(name).FindAll(text)
}
