package lifecycle

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"enerdocs.dev/idfls/internal/log"
	"enerdocs.dev/idfls/lsp/types"
)

// SetTrace handles the $/setTrace notification
func SetTrace(req *types.RequestContext, params *protocol.SetTraceParams) error {
	log.Info("Trace level set to: %s", params.Value)
	return nil
}
