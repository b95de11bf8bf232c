package segments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textlens/internal/errors"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "segments.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FullSegment(t *testing.T) {
	path := writeTemp(t, `[
		{
			"segment_id": 1,
			"prompt_type": "both",
			"prompt": "Describe the image.",
			"llm_responses": {
				"model_a": {
					"full_text": "The gray ocean.",
					"context": "The gray ocean.",
					"abstraction": "Distance.",
					"concept": "Stillness."
				}
			}
		}
	]`)

	segs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, segs, 1)

	seg := segs[0]
	assert.Equal(t, 1, seg.ID)
	assert.Equal(t, "both", seg.PromptType)
	assert.Equal(t, "The gray ocean.", seg.Responses["model_a"].FullText)
	assert.Equal(t, "Distance.", seg.Responses["model_a"].Abstraction)
}

func TestLoad_MissingFieldsDecodeEmpty(t *testing.T) {
	path := writeTemp(t, `[
		{
			"segment_id": 2,
			"llm_responses": {
				"model_a": {"full_text": "Only the full text."}
			}
		}
	]`)

	segs, err := Load(path)
	require.NoError(t, err)

	resp := segs[0].Responses["model_a"]
	assert.Equal(t, "Only the full text.", resp.FullText)
	assert.Empty(t, resp.Context)
	assert.Empty(t, resp.Abstraction)
	assert.Empty(t, resp.Concept)
	assert.Empty(t, segs[0].Prompt)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeTemp(t, `{not json`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, errors.CodeSegmentsInvalid, errors.GetCode(err))
}

func TestLoad_EmptyArray(t *testing.T) {
	path := writeTemp(t, `[]`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, errors.CodeSegmentsInvalid, errors.GetCode(err))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
