// Package corpus defines the normalized input the engine receives from the
// document-ingestion collaborator and the analysis result it hands back to
// the reporting collaborators. The engine knows nothing about the original
// source document's format.
package corpus

// Parameter names every response is split into by the upstream parser.
const (
	ParamContext     = "context"
	ParamAbstraction = "abstraction"
	ParamConcept     = "concept"
	ParamUnified     = "unified"
)

// ParameterNames lists the per-response text parameters in analysis order.
var ParameterNames = []string{ParamContext, ParamAbstraction, ParamConcept}

// Response is one model's answer to a segment prompt, pre-split into
// parameter texts. Missing fields decode to empty strings and flow through
// the engine as zero-metric input.
type Response struct {
	FullText    string `json:"full_text"`
	Context     string `json:"context"`
	Abstraction string `json:"abstraction"`
	Concept     string `json:"concept"`
}

// Parameter returns the named parameter text, empty for unknown names.
func (r Response) Parameter(name string) string {
	switch name {
	case ParamContext:
		return r.Context
	case ParamAbstraction:
		return r.Abstraction
	case ParamConcept:
		return r.Concept
	}
	return ""
}

// Segment is one prompt plus every model's response to it.
type Segment struct {
	ID         int                 `json:"segment_id"`
	PromptType string              `json:"prompt_type"`
	Prompt     string              `json:"prompt"`
	Responses  map[string]Response `json:"llm_responses"`
}
