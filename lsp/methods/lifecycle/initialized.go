package lifecycle

import (
	"context"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"enerdocs.dev/idfls/internal/log"
	"enerdocs.dev/idfls/lsp/types"
)

// Initialized handles the LSP initialized notification
func Initialized(req *types.RequestContext, params *protocol.InitializedParams) error {
	log.Info("Server initialized")

	// Store context for later use (window/logMessage)
	req.Server.SetGLSPContext(req.GLSP)

	// Warm the schema cache so the first hover doesn't pay the fetch.
	// Concurrent hovers share this fetch via the cache's single-flight path.
	cache := req.Server.SchemaCache()
	go func() {
		if cache.EnsureLoaded(context.Background()) == nil {
			log.Warn("schema did not load, hover documentation unavailable until the source is fixed")
		}
	}()

	return nil
}
