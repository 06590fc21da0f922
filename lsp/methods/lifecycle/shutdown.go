package lifecycle

import (
	"enerdocs.dev/idfls/internal/log"
	"enerdocs.dev/idfls/lsp/types"
)

// Shutdown handles the LSP shutdown request
func Shutdown(req *types.RequestContext) error {
	log.Info("Server shutting down")
	return nil
}
