package documents_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enerdocs.dev/idfls/internal/documents"
)

func TestDocumentAccessors(t *testing.T) {
	doc := documents.NewDocument("file:///model.idf", "idf", 3, "Zone,\n  Core;\n")

	assert.Equal(t, "file:///model.idf", doc.URI())
	assert.Equal(t, "idf", doc.LanguageID())
	assert.Equal(t, 3, doc.Version())
	assert.Equal(t, "Zone,\n  Core;\n", doc.Content())
}

func TestDocumentLines(t *testing.T) {
	doc := documents.NewDocument("file:///model.idf", "idf", 1, "Zone,\n  Core,\n  0.0;")
	assert.Equal(t, []string{"Zone,", "  Core,", "  0.0;"}, doc.Lines())

	empty := documents.NewDocument("file:///empty.idf", "idf", 1, "")
	assert.Equal(t, []string{""}, empty.Lines())
}

func TestDocumentSetContent(t *testing.T) {
	doc := documents.NewDocument("file:///model.idf", "idf", 2, "old")

	require.NoError(t, doc.SetContent("new", 3))
	assert.Equal(t, "new", doc.Content())
	assert.Equal(t, 3, doc.Version())

	// Equal versions are accepted, only strictly older ones are stale
	require.NoError(t, doc.SetContent("newer", 3))
	assert.Equal(t, "newer", doc.Content())

	err := doc.SetContent("stale", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stale")
	assert.Equal(t, "newer", doc.Content())
	assert.Equal(t, 3, doc.Version())
}
