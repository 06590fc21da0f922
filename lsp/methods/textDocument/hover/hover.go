package hover

import (
	"context"
	"errors"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"enerdocs.dev/idfls/internal/docs"
	"enerdocs.dev/idfls/internal/idf"
	"enerdocs.dev/idfls/internal/log"
	"enerdocs.dev/idfls/internal/position"
	"enerdocs.dev/idfls/lsp/types"
)

// Hover handles the textDocument/hover request.
// The cursor is resolved against the record it sits in, then the class
// or positional field documentation is rendered from the schema.
func Hover(req *types.RequestContext, params *protocol.HoverParams) (*protocol.Hover, error) {
	uri := params.TextDocument.URI
	pos := params.Position

	log.Info("Hover requested: %s at line %d, char %d", uri, pos.Line, pos.Character)

	doc := req.Server.Document(uri)
	if doc == nil {
		return nil, nil
	}
	if doc.LanguageID() != "idf" {
		return nil, nil
	}

	schema := req.Server.SchemaCache().EnsureLoaded(context.Background())
	if schema == nil {
		req.AddWarning(errors.New("schema unavailable, no hover documentation"))
		return nil, nil
	}

	lines := doc.Lines()
	line := int(pos.Line)
	if line < 0 || line >= len(lines) {
		return nil, nil
	}

	// LSP columns are UTF-16 code units, the engine wants byte offsets
	col := position.UTF16ToByteOffset(lines[line], int(pos.Character))

	hoverCtx := idf.ResolveHoverContext(lines, line, col)
	payload := docs.ForContext(hoverCtx, schema)
	if payload == nil {
		return nil, nil
	}

	format := req.Server.PreferredHoverFormat()
	content := payload.Markdown()
	if format == protocol.MarkupKindPlainText {
		content = payload.Plaintext()
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  format,
			Value: content,
		},
	}, nil
}
