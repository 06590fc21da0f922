package documents

import (
	"fmt"
	"strings"
)

// Document is an open IDF text document tracked by the server.
type Document struct {
	uri        string
	languageID string
	content    string
	version    int
}

// NewDocument creates a new document
func NewDocument(uri, languageID string, version int, content string) *Document {
	return &Document{
		uri:        uri,
		languageID: languageID,
		version:    version,
		content:    content,
	}
}

// URI returns the document's URI
func (d *Document) URI() string {
	return d.uri
}

// LanguageID returns the document's language identifier
func (d *Document) LanguageID() string {
	return d.languageID
}

// Version returns the document's version
func (d *Document) Version() int {
	return d.version
}

// Content returns the document's current content
func (d *Document) Content() string {
	return d.content
}

// Lines splits the document content on newlines. The IDF engine works
// line by line, so this is the form most callers want.
func (d *Document) Lines() []string {
	return strings.Split(d.content, "\n")
}

// SetContent updates the document's content and version.
// Updates carrying a version older than the current one are rejected.
func (d *Document) SetContent(content string, version int) error {
	if version < d.version {
		return fmt.Errorf("rejected stale update: document version is %d but update version is %d", d.version, version)
	}
	d.content = content
	d.version = version
	return nil
}
