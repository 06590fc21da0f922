package documents_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"enerdocs.dev/idfls/internal/documents"
)

func TestManagerOpenClose(t *testing.T) {
	manager := documents.NewManager()

	uri := "file:///model.idf"
	content := "Zone,\n  Core,\n  0.0;\n"

	assert.Nil(t, manager.Get(uri), "document should not exist before open")

	require.NoError(t, manager.DidOpen(uri, "idf", 1, content))

	doc := manager.Get(uri)
	require.NotNil(t, doc)
	assert.Equal(t, uri, doc.URI())
	assert.Equal(t, content, doc.Content())
	assert.Equal(t, "idf", doc.LanguageID())
	assert.Equal(t, 1, doc.Version())

	require.NoError(t, manager.DidClose(uri))
	assert.Nil(t, manager.Get(uri), "document should be removed after close")
}

func TestManagerFullUpdate(t *testing.T) {
	manager := documents.NewManager()
	uri := "file:///model.idf"

	require.NoError(t, manager.DidOpen(uri, "idf", 1, "Zone,\n  Core;\n"))

	newContent := "Zone,\n  Perimeter;\n"
	changes := []protocol.TextDocumentContentChangeEvent{
		{Text: newContent}, // no Range: full replacement
	}
	require.NoError(t, manager.DidChange(uri, 2, changes))

	doc := manager.Get(uri)
	assert.Equal(t, newContent, doc.Content())
	assert.Equal(t, 2, doc.Version())
}

func TestManagerIncrementalUpdate(t *testing.T) {
	manager := documents.NewManager()
	uri := "file:///model.idf"

	require.NoError(t, manager.DidOpen(uri, "idf", 1, "Zone,\n  Core,\n  0.0;"))

	// Replace "Core" with "Attic" on line 1
	changes := []protocol.TextDocumentContentChangeEvent{
		{
			Range: &protocol.Range{
				Start: protocol.Position{Line: 1, Character: 2},
				End:   protocol.Position{Line: 1, Character: 6},
			},
			Text: "Attic",
		},
	}
	require.NoError(t, manager.DidChange(uri, 2, changes))

	doc := manager.Get(uri)
	assert.Equal(t, "Zone,\n  Attic,\n  0.0;", doc.Content())
}

func TestManagerBatchChanges(t *testing.T) {
	manager := documents.NewManager()
	uri := "file:///model.idf"

	require.NoError(t, manager.DidOpen(uri, "idf", 1, "Zone,\n  a,\n  b;"))

	// Batch changes apply sequentially, each against the previous result
	changes := []protocol.TextDocumentContentChangeEvent{
		{
			Range: &protocol.Range{
				Start: protocol.Position{Line: 1, Character: 2},
				End:   protocol.Position{Line: 1, Character: 3},
			},
			Text: "First",
		},
		{
			Range: &protocol.Range{
				Start: protocol.Position{Line: 2, Character: 2},
				End:   protocol.Position{Line: 2, Character: 3},
			},
			Text: "Second",
		},
	}
	require.NoError(t, manager.DidChange(uri, 2, changes))

	doc := manager.Get(uri)
	assert.Equal(t, "Zone,\n  First,\n  Second;", doc.Content())
}

func TestManagerMultiLineReplace(t *testing.T) {
	manager := documents.NewManager()
	uri := "file:///model.idf"

	require.NoError(t, manager.DidOpen(uri, "idf", 1, "Zone,\n  Core,\n  0.0;"))

	// Collapse the record body onto the class-name line
	changes := []protocol.TextDocumentContentChangeEvent{
		{
			Range: &protocol.Range{
				Start: protocol.Position{Line: 0, Character: 5},
				End:   protocol.Position{Line: 2, Character: 6},
			},
			Text: "Core,0.0;",
		},
	}
	require.NoError(t, manager.DidChange(uri, 2, changes))

	doc := manager.Get(uri)
	assert.Equal(t, "Zone,Core,0.0;", doc.Content())
}

func TestManagerUTF16Positions(t *testing.T) {
	manager := documents.NewManager()
	uri := "file:///model.idf"

	// "! 🏠 " is 8 bytes but only 5 UTF-16 code units (🏠 = 2 units)
	content := "! 🏠 Zone comment"
	require.NoError(t, manager.DidOpen(uri, "idf", 1, content))

	changes := []protocol.TextDocumentContentChangeEvent{
		{
			Range: &protocol.Range{
				Start: protocol.Position{Line: 0, Character: 5},
				End:   protocol.Position{Line: 0, Character: 9},
			},
			Text: "Building",
		},
	}
	require.NoError(t, manager.DidChange(uri, 2, changes))

	doc := manager.Get(uri)
	assert.Equal(t, "! 🏠 Building comment", doc.Content())
}

func TestManagerEOFInsertion(t *testing.T) {
	manager := documents.NewManager()
	uri := "file:///model.idf"

	require.NoError(t, manager.DidOpen(uri, "idf", 1, "Zone,\n  Core;"))

	// Insert at line == number of lines, which clients send for appends
	changes := []protocol.TextDocumentContentChangeEvent{
		{
			Range: &protocol.Range{
				Start: protocol.Position{Line: 2, Character: 0},
				End:   protocol.Position{Line: 2, Character: 0},
			},
			Text: "\nBuilding,\n  HQ;",
		},
	}
	require.NoError(t, manager.DidChange(uri, 2, changes))

	doc := manager.Get(uri)
	assert.Equal(t, "Zone,\n  Core;\nBuilding,\n  HQ;", doc.Content())
}

func TestManagerErrorCases(t *testing.T) {
	manager := documents.NewManager()

	err := manager.DidChange("file:///missing.idf", 2, nil)
	assert.Error(t, err, "changing a document that was never opened should error")

	err = manager.DidClose("file:///missing.idf")
	assert.Error(t, err, "closing a document that was never opened should error")

	uri := "file:///model.idf"
	require.NoError(t, manager.DidOpen(uri, "idf", 5, "original"))

	// Stale version
	err = manager.DidChange(uri, 3, []protocol.TextDocumentContentChangeEvent{{Text: "stale"}})
	require.Error(t, err)
	assert.Equal(t, "original", manager.Get(uri).Content())

	// Out-of-bounds line
	err = manager.DidChange(uri, 6, []protocol.TextDocumentContentChangeEvent{
		{
			Range: &protocol.Range{
				Start: protocol.Position{Line: 10, Character: 0},
				End:   protocol.Position{Line: 10, Character: 0},
			},
			Text: "x",
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of bounds")
	assert.Equal(t, "original", manager.Get(uri).Content())
}

func TestManagerGetAll(t *testing.T) {
	manager := documents.NewManager()

	assert.Empty(t, manager.GetAll())

	_ = manager.DidOpen("file:///a.idf", "idf", 1, "a")
	_ = manager.DidOpen("file:///b.idf", "idf", 1, "b")

	docs := manager.GetAll()
	require.Len(t, docs, 2)

	uris := map[string]bool{}
	for _, doc := range docs {
		uris[doc.URI()] = true
	}
	assert.True(t, uris["file:///a.idf"])
	assert.True(t, uris["file:///b.idf"])
}
