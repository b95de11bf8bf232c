package text

// Switch is one detected code-switch span. Start and End are byte offsets
// into the original (non-normalized) string, so text[Start:End] == Text.
// Downstream positional bucketing depends on these being true offsets.
type Switch struct {
	Text  string `json:"text"`
	Start int    `json:"position"`
	End   int    `json:"end"`
}

// codeSwitchSpecs lists the lexical and punctuation patterns associated with
// Spanish inside an otherwise English response.
var codeSwitchSpecs = []Spec{
	wordList(PatternCodeSwitchWords, `mija|aquí|verdad|pero|sí|cómo|qué|ves|mira|ahh|ese|eso|todo`),
	raw(PatternSpanishQuestion, `¿[^?]+\?`),
}

// DetectCodeSwitching finds Spanish-English code-switching instances.
// Matches are reported per pattern in order of appearance, duplicates and
// cross-pattern overlaps retained: a word inside a ¿...? span shows up twice.
// Repetition count is itself a signal, so nothing is deduplicated.
func DetectCodeSwitching(input string) []Switch {
	var switches []Switch
	for _, spec := range codeSwitchSpecs {
		for _, m := range spec.FindAllIndex(input) {
			switches = append(switches, Switch{
				Text:  input[m[0]:m[1]],
				Start: m[0],
				End:   m[1],
			})
		}
	}
	return switches
}
