// Package lexicon holds the fixed word lists the analysis engine works from:
// stop-words for both corpus languages, the cultural-preservation set, and the
// sentiment word lists. Everything here is calibration data — constructed once
// at process start and never mutated.
package lexicon

// WordSet is an immutable membership set of lowercase words.
type WordSet map[string]struct{}

// Contains reports whether the word is in the set.
func (s WordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Words returns the set contents as a slice (unordered).
func (s WordSet) Words() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	return out
}

func newWordSet(words ...string) WordSet {
	s := make(WordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Lexicon bundles all fixed word lists. One instance is shared read-only
// across every extractor; it is safe for concurrent use.
type Lexicon struct {
	EnglishStopwords WordSet
	SpanishStopwords WordSet

	// CulturalPreserve lists culturally significant terms that survive
	// stop-word filtering regardless of language membership.
	CulturalPreserve WordSet

	PositiveWords WordSet
	NegativeWords WordSet
	NeutralWords  WordSet
}

// New constructs the full lexicon.
func New() *Lexicon {
	return &Lexicon{
		EnglishStopwords: newWordSet(
			// Core stopwords
			"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
			"of", "with", "by", "from", "as", "is", "was", "are", "were", "been",
			"be", "have", "has", "had", "do", "does", "did", "will", "would",
			"could", "should", "may", "might", "must", "can", "this", "that",
			"these", "those", "i", "you", "he", "she", "it", "we", "they",
			"what", "which", "who", "when", "where", "why", "how", "all", "each",
			"every", "both", "few", "more", "most", "other", "some", "such",
			"no", "nor", "not", "only", "own", "same", "so", "than", "too",
			"very", "just", "about", "also", "even", "here", "there", "into",
			// Additional common words
			"their", "them", "then", "now", "if", "its", "during", "before",
			"after", "above", "below", "between", "through", "under", "again",
			"further", "once", "because", "while", "being", "having", "doing",
			"against", "up", "down", "out", "off", "over", "any", "our", "ours",
			"your", "yours", "his", "hers", "theirs", "whom", "whose",
			"whether", "either", "neither", "another", "however",
			"therefore", "thus", "hence", "moreover", "furthermore", "nevertheless",
			"nonetheless", "meanwhile", "elsewhere", "somehow", "somewhere",
			"anyway", "anyhow", "anyone", "anything", "anywhere", "everyone",
			"everything", "everywhere", "someone", "something",
			"nobody", "nothing", "nowhere", "whoever", "whatever", "whichever",
			// Low-signal verbs
			"re", "said", "say", "says", "saying", "get", "gets", "getting",
			"got", "gotten", "go", "goes", "going", "went", "gone", "come",
			"comes", "coming", "came", "make", "makes", "making", "made",
			"take", "takes", "taking", "took", "taken", "give", "gives",
			"giving", "gave", "given", "become", "becomes", "becoming", "became",
			// Vague qualifiers
			"quite", "rather", "pretty", "fairly", "really", "truly", "actually",
			"basically", "literally", "certainly", "clearly", "obviously",
			"definitely", "probably", "possibly", "perhaps", "maybe", "sometimes",
			"often", "usually", "generally", "typically", "normally", "commonly",
			// Meta-descriptive words common to every image-description response
			"image", "picture", "photo", "photograph", "photography", "visual",
			"scene", "view", "context", "abstraction", "concept", "framework",
			"parameter", "parameters", "description", "described", "describes",
			"depicting", "depicts", "shown", "shows", "showing", "seen", "sees",
			"seeing", "appears", "appear", "appearing", "looks", "looking",
			"seems", "seeming", "suggests", "suggesting", "indicates", "indicating",
			"represents", "representing", "captures", "capturing", "presents",
			"presenting", "displays", "displaying", "illustrates", "illustrating",
			"features", "featuring", "contains", "containing", "includes",
			"including", "depicted", "portrays", "portraying",
			"conveys", "conveying",
		),
		SpanishStopwords: newWordSet(
			"el", "la", "de", "que", "y", "a", "en", "un", "ser", "se", "no",
			"haber", "por", "con", "su", "para", "como", "estar", "tener",
			"le", "lo", "todo", "pero", "más", "hacer", "o", "poder", "decir",
			"este", "ir", "otro", "ese", "si", "me", "ya", "ver", "porque",
			"dar", "cuando", "él", "muy", "sin", "vez", "mucho", "saber", "qué",
			"sobre", "mi", "alguno", "mismo", "yo", "también", "hasta", "año",
			"dos", "querer", "entre", "así", "primero", "desde", "grande", "eso",
			"ni", "nos", "llegar", "pasar", "tiempo", "ella", "sí", "día", "uno",
			"bien", "poco", "deber", "entonces", "poner", "cosa", "tanto", "hombre",
			"parecer", "nuestro", "tan", "donde", "ahora", "parte", "después", "vida",
			// Conjugations
			"está", "están", "estaba", "estaban", "sea", "sean", "fue", "fueron",
			"tiene", "tienen", "tenía", "tenían", "había", "habían", "hace",
			"hacen", "hacía", "hacían", "va", "van", "iba", "iban",
		),
		CulturalPreserve: newWordSet(
			"mija", "aquí", "verdad", "sí", "cómo", "qué", "océano",
			"cielo", "mar", "entiendes", "ves", "mira", "ay", "gestures", "leans",
			"touches", "snaps", "nods", "pauses", "allá", "acá",
		),
		PositiveWords: newWordSet(
			"peace", "beautiful", "hope", "calm", "quiet", "strength", "resilience",
			"empowerment", "clarity", "freedom", "renewal", "healing", "soft",
			"gentle", "serene", "contemplative", "peaceful", "restful",
		),
		NegativeWords: newWordSet(
			"loneliness", "isolation", "emptiness", "exile", "loss", "separation",
			"burden", "weight", "hollow", "sad", "melancholy", "alone", "distant",
			"abandoned", "invisible", "shadows", "crisis",
		),
		NeutralWords: newWordSet(
			"observation", "description", "composition", "structure", "form",
			"shape", "pattern", "texture", "line", "space",
		),
	}
}

// IsStopword reports whether the token is a stop-word in either language.
func (l *Lexicon) IsStopword(token string) bool {
	return l.EnglishStopwords.Contains(token) || l.SpanishStopwords.Contains(token)
}
