package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentBlockTextRoundTrip(t *testing.T) {
	block := ContentBlock{Kind: ContentText, Text: "hello"}

	data, err := json.Marshal(block)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"text","text":"hello"}`, string(data))

	var decoded ContentBlock
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, block.Kind, decoded.Kind)
	assert.Equal(t, block.Text, decoded.Text)
}

func TestContentBlockUnknownKindRoundTripsVerbatim(t *testing.T) {
	original := []byte(`{"type":"video","uri":"file:///clip.mp4","duration":12}`)

	var decoded ContentBlock
	require.NoError(t, json.Unmarshal(original, &decoded))
	assert.Equal(t, "video", decoded.OtherKind)
	assert.Equal(t, "", string(decoded.Kind))

	reencoded, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, string(original), string(reencoded))
}

func TestContentBlockResource(t *testing.T) {
	block := ContentBlock{
		Kind: ContentResource,
		Resource: &EmbeddedResource{
			URI:  "file:///a.txt",
			Text: "contents",
		},
	}

	data, err := json.Marshal(block)
	require.NoError(t, err)

	var decoded ContentBlock
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.Resource)
	assert.Equal(t, "file:///a.txt", decoded.Resource.URI)
	assert.Equal(t, "contents", decoded.Resource.Text)
}
