package foldingrange

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"enerdocs.dev/idfls/internal/idf"
	"enerdocs.dev/idfls/internal/log"
	"enerdocs.dev/idfls/lsp/types"
)

// FoldingRange handles the textDocument/foldingRange request.
// Each multi-line record folds from its class-name line to its last line.
func FoldingRange(req *types.RequestContext, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	uri := params.TextDocument.URI
	log.Info("Folding ranges requested for: %s", uri)

	doc := req.Server.Document(uri)
	if doc == nil {
		return nil, nil
	}
	if doc.LanguageID() != "idf" {
		return nil, nil
	}

	regions := idf.FoldRegions(doc.Lines())
	if len(regions) == 0 {
		return nil, nil
	}

	ranges := make([]protocol.FoldingRange, 0, len(regions))
	for _, region := range regions {
		ranges = append(ranges, protocol.FoldingRange{
			StartLine: protocol.UInteger(region.Start),
			EndLine:   protocol.UInteger(region.End),
		})
	}
	return ranges, nil
}
