package lifecycle

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"enerdocs.dev/idfls/internal/log"
	"enerdocs.dev/idfls/internal/uriutil"
	"enerdocs.dev/idfls/internal/version"
	semantictokens "enerdocs.dev/idfls/lsp/methods/textDocument/semanticTokens"
	"enerdocs.dev/idfls/lsp/types"
)

// Initialize handles the LSP initialize request
func Initialize(req *types.RequestContext, params *protocol.InitializeParams) (any, error) {
	clientName := "unknown"
	if params.ClientInfo != nil {
		clientName = params.ClientInfo.Name
	}
	log.Info("Initializing for client: %s", clientName)

	req.Server.SetClientCapabilities(params.Capabilities)

	// Store the workspace root
	if params.RootURI != nil {
		req.Server.SetRootURI(*params.RootURI)
		req.Server.SetRootPath(uriutil.URIToPath(*params.RootURI))
		log.Info("Workspace root: %s", req.Server.RootPath())
	} else if params.RootPath != nil {
		req.Server.SetRootPath(*params.RootPath)
		req.Server.SetRootURI(uriutil.PathToURI(*params.RootPath))
		log.Info("Workspace root (from rootPath): %s", req.Server.RootPath())
	}

	// Merge the workspace config file, then point the schema cache at
	// the configured source
	config, err := types.LoadWorkspaceConfig(req.Server.RootPath())
	if err != nil {
		req.AddWarning(err)
	} else {
		req.Server.SetConfig(config)
	}
	req.Server.ConfigureSchemaSource()

	syncKind := protocol.TextDocumentSyncKindIncremental
	capabilities := map[string]any{
		"textDocumentSync": protocol.TextDocumentSyncOptions{
			OpenClose: boolPtr(true),
			Change:    &syncKind,
		},
		"hoverProvider":        true,
		"foldingRangeProvider": true,
		"semanticTokensProvider": map[string]any{
			"legend": map[string]any{
				"tokenTypes":     semantictokens.TokenTypes,
				"tokenModifiers": semantictokens.TokenModifiers,
			},
			"full": true,
		},
	}

	return struct {
		Capabilities any                                  `json:"capabilities"`
		ServerInfo   *protocol.InitializeResultServerInfo `json:"serverInfo,omitempty"`
	}{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    "idf-language-server",
			Version: strPtr(version.GetVersion()),
		},
	}, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func strPtr(s string) *string {
	return &s
}
