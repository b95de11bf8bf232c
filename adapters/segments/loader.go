// Package segments loads the pre-parsed corpus file the engine runs on:
// a JSON array of segments, each carrying its prompt and the per-model
// responses already split into parameter texts.
package segments

import (
	"encoding/json"
	"log"
	"os"

	"textlens/domain/corpus"
	"textlens/internal/errors"
)

// Load reads and decodes the segments file. Fields absent from the JSON
// decode to empty strings and flow through analysis as zero-metric input;
// only unreadable files and malformed JSON are errors.
func Load(path string) ([]corpus.Segment, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading segments file %s", path)
	}

	var segs []corpus.Segment
	if err := json.Unmarshal(raw, &segs); err != nil {
		return nil, errors.WithCode(errors.CodeSegmentsInvalid,
			errors.Wrapf(err, "decoding segments file %s", path))
	}
	if len(segs) == 0 {
		return nil, errors.SegmentsInvalid("segments file contains no segments")
	}

	log.Printf("[Segments] loaded %d segments from %s", len(segs), path)
	return segs, nil
}
