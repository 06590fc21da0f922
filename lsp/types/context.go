package types

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"enerdocs.dev/idfls/internal/documents"
	"enerdocs.dev/idfls/internal/idf"
	"enerdocs.dev/idfls/internal/schema"
)

// ServerContext provides all dependencies needed for LSP handlers.
// Handlers receive it through RequestContext, which enables dependency
// injection for testing.
type ServerContext interface {
	// Document operations
	Document(uri string) *documents.Document
	DocumentManager() *documents.Manager
	AllDocuments() []*documents.Document

	// Schema operations
	SchemaCache() *schema.Cache
	Classifier() *idf.Classifier

	// Workspace operations
	RootURI() string
	RootPath() string
	SetRootURI(uri string)
	SetRootPath(path string)

	// Configuration
	GetConfig() ServerConfig
	SetConfig(config ServerConfig)

	// ConfigureSchemaSource rebuilds the schema fetcher from the current
	// configuration (file, URL, or workspace discovery) and resets the cache.
	ConfigureSchemaSource()

	// Client capabilities
	SetClientCapabilities(capabilities protocol.ClientCapabilities)
	PreferredHoverFormat() protocol.MarkupKind

	// LSP context (for window/logMessage notifications, etc.)
	GLSPContext() *glsp.Context
	SetGLSPContext(ctx *glsp.Context)
}
