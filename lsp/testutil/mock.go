// Package testutil provides shared fixtures for LSP handler tests.
package testutil

import (
	"context"
	"testing"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"enerdocs.dev/idfls/internal/collections"
	"enerdocs.dev/idfls/internal/documents"
	"enerdocs.dev/idfls/internal/idf"
	"enerdocs.dev/idfls/internal/schema"
	"enerdocs.dev/idfls/lsp/types"
)

// Verify that MockServerContext implements ServerContext
var _ types.ServerContext = (*MockServerContext)(nil)

// MockServerContext implements types.ServerContext for testing.
type MockServerContext struct {
	docs        *documents.Manager
	schemaCache *schema.Cache
	rootURI     string
	rootPath    string
	config      types.ServerConfig
	glspContext *glsp.Context
	hoverFormat protocol.MarkupKind

	// Tracking flags for tests that need to verify methods were called
	ConfigureSchemaSourceCalled bool
	ClientCapabilities          *protocol.ClientCapabilities
}

// NewMockServerContext creates a new mock server context with default behavior
func NewMockServerContext() *MockServerContext {
	return &MockServerContext{
		docs:        documents.NewManager(),
		schemaCache: schema.NewCache(nil),
		config:      types.DefaultConfig(),
		hoverFormat: protocol.MarkupKindMarkdown,
	}
}

// LoadSchema points the schema cache at the given document and loads it
func (m *MockServerContext) LoadSchema(t *testing.T, doc string) {
	t.Helper()
	m.schemaCache.SetFetcher(schema.FetcherFunc(func(ctx context.Context) ([]byte, error) {
		return []byte(doc), nil
	}))
	if m.schemaCache.EnsureLoaded(context.Background()) == nil {
		t.Fatalf("test schema failed to load")
	}
}

// OpenDocument opens a document in the mock's document manager
func (m *MockServerContext) OpenDocument(t *testing.T, uri, languageID, content string) {
	t.Helper()
	if err := m.docs.DidOpen(uri, languageID, 1, content); err != nil {
		t.Fatalf("failed to open document %s: %v", uri, err)
	}
}

func (m *MockServerContext) Document(uri string) *documents.Document {
	return m.docs.Get(uri)
}

func (m *MockServerContext) DocumentManager() *documents.Manager {
	return m.docs
}

func (m *MockServerContext) AllDocuments() []*documents.Document {
	return m.docs.GetAll()
}

func (m *MockServerContext) SchemaCache() *schema.Cache {
	return m.schemaCache
}

func (m *MockServerContext) Classifier() *idf.Classifier {
	var names []string
	if snapshot := m.schemaCache.Snapshot(); snapshot != nil {
		names = snapshot.ClassNames()
	}
	return idf.NewClassifier(collections.NewSet(names...))
}

func (m *MockServerContext) RootURI() string {
	return m.rootURI
}

func (m *MockServerContext) RootPath() string {
	return m.rootPath
}

func (m *MockServerContext) SetRootURI(uri string) {
	m.rootURI = uri
}

func (m *MockServerContext) SetRootPath(path string) {
	m.rootPath = path
}

func (m *MockServerContext) GetConfig() types.ServerConfig {
	return m.config
}

func (m *MockServerContext) SetConfig(config types.ServerConfig) {
	m.config = config
}

func (m *MockServerContext) ConfigureSchemaSource() {
	m.ConfigureSchemaSourceCalled = true
}

func (m *MockServerContext) SetClientCapabilities(capabilities protocol.ClientCapabilities) {
	m.ClientCapabilities = &capabilities
}

func (m *MockServerContext) PreferredHoverFormat() protocol.MarkupKind {
	return m.hoverFormat
}

// SetPreferredHoverFormat overrides the format returned by PreferredHoverFormat
func (m *MockServerContext) SetPreferredHoverFormat(format protocol.MarkupKind) {
	m.hoverFormat = format
}

func (m *MockServerContext) GLSPContext() *glsp.Context {
	return m.glspContext
}

func (m *MockServerContext) SetGLSPContext(ctx *glsp.Context) {
	m.glspContext = ctx
}
