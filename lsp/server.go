package lsp

import (
	"path/filepath"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"enerdocs.dev/idfls/internal/collections"
	"enerdocs.dev/idfls/internal/documents"
	"enerdocs.dev/idfls/internal/idf"
	"enerdocs.dev/idfls/internal/log"
	"enerdocs.dev/idfls/internal/schema"
	"enerdocs.dev/idfls/lsp/methods/lifecycle"
	"enerdocs.dev/idfls/lsp/methods/textDocument"
	foldingrange "enerdocs.dev/idfls/lsp/methods/textDocument/foldingRange"
	"enerdocs.dev/idfls/lsp/methods/textDocument/hover"
	semantictokens "enerdocs.dev/idfls/lsp/methods/textDocument/semanticTokens"
	"enerdocs.dev/idfls/lsp/methods/workspace"
	"enerdocs.dev/idfls/lsp/types"
)

// Verify that Server implements ServerContext interface
var _ types.ServerContext = (*Server)(nil)

// Server represents the IDF Language Server
type Server struct {
	documents   *documents.Manager
	schemaCache *schema.Cache
	glspServer  *server.Server

	stateMu            sync.RWMutex // Protects the fields below
	context            *glsp.Context
	rootURI            string
	rootPath           string
	config             types.ServerConfig
	clientCapabilities *protocol.ClientCapabilities

	classifierMu     sync.Mutex // Protects the lazily rebuilt classifier
	classifier       *idf.Classifier
	classifierSchema *schema.Schema
}

// NewServer creates a new IDF LSP server
func NewServer() (*Server, error) {
	s := &Server{
		documents:   documents.NewManager(),
		schemaCache: schema.NewCache(nil),
		config:      types.DefaultConfig(),
	}

	// Create the GLSP server with our handlers wrapped with middleware
	protocolHandler := protocol.Handler{
		Initialize:                      method(s, "initialize", lifecycle.Initialize),
		Initialized:                     notify(s, "initialized", lifecycle.Initialized),
		Shutdown:                        noParam(s, "shutdown", lifecycle.Shutdown),
		SetTrace:                        notify(s, "$/setTrace", lifecycle.SetTrace),
		WorkspaceDidChangeConfiguration: notify(s, "workspace/didChangeConfiguration", workspace.DidChangeConfiguration),
		TextDocumentDidOpen:             notify(s, "textDocument/didOpen", textDocument.DidOpen),
		TextDocumentDidChange:           notify(s, "textDocument/didChange", textDocument.DidChange),
		TextDocumentDidClose:            notify(s, "textDocument/didClose", textDocument.DidClose),
		TextDocumentHover:               method(s, "textDocument/hover", hover.Hover),
		TextDocumentFoldingRange:        method(s, "textDocument/foldingRange", foldingrange.FoldingRange),
		TextDocumentSemanticTokensFull:  method(s, "textDocument/semanticTokens/full", semantictokens.SemanticTokensFull),
	}

	// Create GLSP server with debug enabled for stdio
	s.glspServer = server.NewServer(&protocolHandler, "idf-language-server", true)

	return s, nil
}

// RunStdio starts the LSP server using stdio transport
func (s *Server) RunStdio() error {
	return s.glspServer.RunStdio()
}

// ServerContext interface implementation

// Document returns the document with the given URI
func (s *Server) Document(uri string) *documents.Document {
	return s.documents.Get(uri)
}

// DocumentManager returns the document manager
func (s *Server) DocumentManager() *documents.Manager {
	return s.documents
}

// AllDocuments returns all tracked documents
func (s *Server) AllDocuments() []*documents.Document {
	return s.documents.GetAll()
}

// SchemaCache returns the schema cache
func (s *Server) SchemaCache() *schema.Cache {
	return s.schemaCache
}

// Classifier returns a lexer classifier backed by the current schema
// snapshot. Before the schema loads it knows no class names, so every
// class-name line classifies as an unknown class.
func (s *Server) Classifier() *idf.Classifier {
	snapshot := s.schemaCache.Snapshot()

	s.classifierMu.Lock()
	defer s.classifierMu.Unlock()
	if s.classifier == nil || s.classifierSchema != snapshot {
		var names []string
		if snapshot != nil {
			names = snapshot.ClassNames()
		}
		s.classifier = idf.NewClassifier(collections.NewSet(names...))
		s.classifierSchema = snapshot
	}
	return s.classifier
}

// RootURI returns the workspace root URI
func (s *Server) RootURI() string {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.rootURI
}

// RootPath returns the workspace root path
func (s *Server) RootPath() string {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.rootPath
}

// SetRootURI sets the workspace root URI
func (s *Server) SetRootURI(uri string) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.rootURI = uri
}

// SetRootPath sets the workspace root path
func (s *Server) SetRootPath(path string) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.rootPath = path
}

// GetConfig returns the server configuration
func (s *Server) GetConfig() types.ServerConfig {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.config
}

// SetConfig sets the server configuration
func (s *Server) SetConfig(config types.ServerConfig) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.config = config
}

// ConfigureSchemaSource rebuilds the schema fetcher from the current
// configuration and resets the cache. Priority: explicit file, then
// URL, then workspace discovery.
func (s *Server) ConfigureSchemaSource() {
	config := s.GetConfig()
	rootPath := s.RootPath()

	switch {
	case config.SchemaFile != "":
		path := config.SchemaFile
		if rootPath != "" && !filepath.IsAbs(path) {
			path = filepath.Join(rootPath, path)
		}
		log.Info("Schema source: file %s", path)
		s.schemaCache.SetFetcher(&schema.FileFetcher{Path: path})
	case config.SchemaURL != "":
		log.Info("Schema source: url %s", config.SchemaURL)
		s.schemaCache.SetFetcher(&schema.HTTPFetcher{URL: config.SchemaURL})
	default:
		path := schema.Discover(rootPath)
		if path == "" {
			log.Warn("No schema source configured and none found in workspace")
			s.schemaCache.SetFetcher(nil)
			return
		}
		log.Info("Schema source: discovered %s", path)
		s.schemaCache.SetFetcher(&schema.FileFetcher{Path: path})
	}
}

// SetClientCapabilities stores the capabilities from the initialize request
func (s *Server) SetClientCapabilities(capabilities protocol.ClientCapabilities) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.clientCapabilities = &capabilities
}

// PreferredHoverFormat returns the client's first declared hover
// content format, defaulting to Markdown.
func (s *Server) PreferredHoverFormat() protocol.MarkupKind {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	caps := s.clientCapabilities
	if caps == nil || caps.TextDocument == nil || caps.TextDocument.Hover == nil {
		return protocol.MarkupKindMarkdown
	}
	formats := caps.TextDocument.Hover.ContentFormat
	if len(formats) == 0 {
		return protocol.MarkupKindMarkdown
	}
	return formats[0]
}

// GLSPContext returns the GLSP context.
// Access is protected by stateMu to prevent concurrent races.
func (s *Server) GLSPContext() *glsp.Context {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.context
}

// SetGLSPContext sets the GLSP context.
// Access is protected by stateMu to prevent concurrent races.
func (s *Server) SetGLSPContext(ctx *glsp.Context) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.context = ctx
}
