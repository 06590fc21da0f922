package semantictokens

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"enerdocs.dev/idfls/internal/documents"
	"enerdocs.dev/idfls/internal/idf"
	"enerdocs.dev/idfls/internal/log"
	"enerdocs.dev/idfls/internal/position"
	"enerdocs.dev/idfls/lsp/types"
)

// Legend advertised in the initialize response. The indexes below
// (tokenTypeIndex, docModifierBit) are positions in these slices.
var (
	TokenTypes     = []string{"class", "macro", "keyword", "number", "string", "comment", "enumMember"}
	TokenModifiers = []string{"documentation"}
)

const docModifierBit = 1 // 1 << index of "documentation"

// tokenTypeIndex maps lexer categories to legend indexes. Categories
// absent from the map (whitespace, punctuation) are not highlighted.
var tokenTypeIndex = map[idf.Category]int{
	idf.ClassName:    0,
	idf.UnknownClass: 1,
	idf.Keyword:      2,
	idf.NumberInt:    3,
	idf.NumberFloat:  3,
	idf.Text:         4,
	idf.Comment:      5,
	idf.DocComment:   5,
	idf.Wildcard:     6,
	idf.DateLiteral:  6,
}

// SemanticTokenIntermediate represents an intermediate token before delta encoding
type SemanticTokenIntermediate struct {
	Line           int
	StartChar      int
	Length         int
	TokenType      int // Index into TokenTypes
	TokenModifiers int
}

// SemanticTokensFull handles the textDocument/semanticTokens/full request
func SemanticTokensFull(req *types.RequestContext, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	uri := params.TextDocument.URI
	log.Info("Semantic tokens requested for: %s", uri)

	doc := req.Server.Document(uri)
	if doc == nil {
		return nil, nil
	}
	if doc.LanguageID() != "idf" {
		return nil, nil
	}

	intermediate := GetSemanticTokensForDocument(req.Server.Classifier(), doc)

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(intermediate),
	}, nil
}

// GetSemanticTokensForDocument classifies every line of the document.
// Positions and lengths are in UTF-16 code units (LSP default encoding).
func GetSemanticTokensForDocument(classifier *idf.Classifier, doc *documents.Document) []SemanticTokenIntermediate {
	tokens := []SemanticTokenIntermediate{}

	for lineNum, line := range doc.Lines() {
		for _, token := range classifier.ClassifyLine(line, idf.IsRecordStart(line)) {
			typeIndex, ok := tokenTypeIndex[token.Category]
			if !ok {
				continue
			}

			modifiers := 0
			if token.Category == idf.DocComment {
				modifiers = docModifierBit
			}

			tokens = append(tokens, SemanticTokenIntermediate{
				Line:           lineNum,
				StartChar:      position.ByteOffsetToUTF16(line, token.Start),
				Length:         position.StringLengthUTF16(token.Text),
				TokenType:      typeIndex,
				TokenModifiers: modifiers,
			})
		}
	}

	return tokens
}

// encodeSemanticTokens converts intermediate tokens to delta-encoded format (LSP spec)
func encodeSemanticTokens(intermediate []SemanticTokenIntermediate) []protocol.UInteger {
	data := make([]protocol.UInteger, 0, len(intermediate)*5)
	prevLine := 0
	prevStartChar := 0

	for _, token := range intermediate {
		deltaLine := token.Line - prevLine
		deltaStart := token.StartChar
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStartChar
		}

		data = append(data,
			protocol.UInteger(deltaLine),
			protocol.UInteger(deltaStart),
			protocol.UInteger(token.Length),
			protocol.UInteger(token.TokenType),
			protocol.UInteger(token.TokenModifiers),
		)

		prevLine = token.Line
		prevStartChar = token.StartChar
	}

	return data
}
