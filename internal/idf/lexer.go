package idf

import (
	"regexp"
	"strings"

	"enerdocs.dev/idfls/internal/collections"
)

// Category is the lexical class of a token.
type Category int

const (
	// Whitespace is a run of blanks or tabs.
	Whitespace Category = iota
	// Comment is a trailing "!" comment.
	Comment
	// DocComment is a "!!" banner comment.
	DocComment
	// ClassName is a record-start identifier present in the known class set.
	ClassName
	// UnknownClass is a record-start identifier absent from the known class
	// set. Still structurally a class name; presentation may dim it.
	UnknownClass
	// Keyword is a reserved field value (autosize, autocalculate, yes, no).
	Keyword
	// NumberInt is an integer field value.
	NumberInt
	// NumberFloat is a floating-point field value.
	NumberFloat
	// Text is any other unquoted field value.
	Text
	// Wildcard is a lone "*" field value.
	Wildcard
	// DateLiteral is a schedule literal such as "Through: 12/31" or
	// "Until: 07:00".
	DateLiteral
	// Comma is the field delimiter.
	Comma
	// Terminator is the record-ending semicolon.
	Terminator
)

var categoryNames = map[Category]string{
	Whitespace:   "whitespace",
	Comment:      "comment",
	DocComment:   "comment.doc",
	ClassName:    "type",
	UnknownClass: "type.unknown",
	Keyword:      "keyword",
	NumberInt:    "number",
	NumberFloat:  "number.float",
	Text:         "string",
	Wildcard:     "constant",
	DateLiteral:  "date",
	Comma:        "delimiter",
	Terminator:   "delimiter.terminator",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return "unknown"
}

// Token is one classified span of a line. Tokens returned by ClassifyLine
// cover the line exactly: concatenating their Text in order reproduces the
// input.
type Token struct {
	Category Category
	Start    int // byte offset within the line
	Text     string
}

// End returns the byte offset one past the token's last byte.
func (t Token) End() int {
	return t.Start + len(t.Text)
}

var (
	floatRegexp = regexp.MustCompile(`^[+-]?\d+\.\d*([eE][+-]?\d+)?$`)
	intRegexp   = regexp.MustCompile(`^[+-]?\d+([eE][+-]?\d+)?$`)
)

// Schedule literals contain colons, slashes, and interior spaces, so they
// must be matched before the generic bare-run rule splits them apart.
var dateLiteralRegexps = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^Through:[ \t]*\d{1,2}/\d{1,2}`),
	regexp.MustCompile(`(?i)^For:[ \t]*[A-Za-z]+( [A-Za-z]+)*`),
	regexp.MustCompile(`(?i)^Until:[ \t]*\d{1,2}:\d{2}`),
	regexp.MustCompile(`(?i)^Interpolate:[ \t]*[A-Za-z]+`),
}

// Classifier assigns lexical categories to lines of IDF text. The known
// class-name set (lowercase) comes from the loaded schema; a nil set
// classifies every record start as UnknownClass.
type Classifier struct {
	classNames collections.Set[string]
}

// NewClassifier creates a classifier over the given set of lowercase class
// names.
func NewClassifier(classNames collections.Set[string]) *Classifier {
	return &Classifier{classNames: classNames}
}

// ClassifyLine splits one line into an ordered, covering sequence of tokens.
// recordStart tells the classifier whether this line begins a record; the
// host computes it per line with IsRecordStart. Classification carries no
// state between lines.
func (c *Classifier) ClassifyLine(line string, recordStart bool) []Token {
	var tokens []Token

	code := line
	commentAt := strings.IndexByte(line, CommentMarker)
	if commentAt >= 0 {
		code = line[:commentAt]
	}

	pos := 0
	if recordStart {
		if m := classNameRegexp.FindStringSubmatch(code); m != nil {
			name := m[1]
			cat := UnknownClass
			if c.classNames.Has(strings.ToLower(strings.TrimSpace(name))) {
				cat = ClassName
			}
			tokens = append(tokens, Token{Category: cat, Start: 0, Text: name})
			tokens = append(tokens, Token{Category: Comma, Start: len(name), Text: ","})
			pos = len(name) + 1
		}
	}

	for pos < len(code) {
		switch ch := code[pos]; {
		case ch == ' ' || ch == '\t' || ch == '\r':
			end := pos
			for end < len(code) && (code[end] == ' ' || code[end] == '\t' || code[end] == '\r') {
				end++
			}
			tokens = append(tokens, Token{Category: Whitespace, Start: pos, Text: code[pos:end]})
			pos = end
		case ch == ',':
			tokens = append(tokens, Token{Category: Comma, Start: pos, Text: ","})
			pos++
		case ch == TerminatorChar:
			tokens = append(tokens, Token{Category: Terminator, Start: pos, Text: ";"})
			pos++
		default:
			if tok, ok := matchDateLiteral(code, pos); ok {
				tokens = append(tokens, tok)
				pos = tok.End()
				continue
			}
			end := pos
			for end < len(code) && !isBareRunEnd(code[end]) {
				end++
			}
			run := code[pos:end]
			tokens = append(tokens, Token{Category: classifyRun(run), Start: pos, Text: run})
			pos = end
		}
	}

	if commentAt >= 0 {
		cat := Comment
		if strings.HasPrefix(line[commentAt:], "!!") {
			cat = DocComment
		}
		tokens = append(tokens, Token{Category: cat, Start: commentAt, Text: line[commentAt:]})
	}

	return tokens
}

func matchDateLiteral(code string, pos int) (Token, bool) {
	for _, re := range dateLiteralRegexps {
		if loc := re.FindStringIndex(code[pos:]); loc != nil {
			return Token{Category: DateLiteral, Start: pos, Text: code[pos : pos+loc[1]]}, true
		}
	}
	return Token{}, false
}

func isBareRunEnd(ch byte) bool {
	return ch == ',' || ch == TerminatorChar || ch == CommentMarker ||
		ch == ' ' || ch == '\t' || ch == '\r'
}

func classifyRun(run string) Category {
	switch {
	case run == "*":
		return Wildcard
	case floatRegexp.MatchString(run):
		return NumberFloat
	case intRegexp.MatchString(run):
		return NumberInt
	case Keywords.Has(strings.ToLower(run)):
		return Keyword
	default:
		return Text
	}
}
