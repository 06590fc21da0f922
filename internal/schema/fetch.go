package schema

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Fetcher retrieves the raw schema document from wherever the host keeps it.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context) ([]byte, error)

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context) ([]byte, error) {
	return f(ctx)
}

// HTTPFetcher fetches the schema document over HTTP.
type HTTPFetcher struct {
	URL    string
	Client *http.Client
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]byte, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build schema request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schema from %s: %w", f.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch schema from %s: %s", f.URL, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// FileFetcher reads the schema document from the local filesystem.
type FileFetcher struct {
	Path string
}

// Fetch implements Fetcher.
func (f *FileFetcher) Fetch(ctx context.Context) ([]byte, error) {
	return os.ReadFile(f.Path)
}

// DiscoverPatterns are the glob patterns used to locate a compact schema
// document in the workspace when the configuration does not name one.
var DiscoverPatterns = []string{
	"**/idd-schema.json",
	"**/*.idd.json",
	"**/Energy+.schema.json",
}

// Discover walks the workspace root looking for a schema document matching
// one of DiscoverPatterns. It returns the lexically first match so repeated
// discovery over an unchanged tree picks the same file, or "" when nothing
// matches.
func Discover(rootDir string) string {
	var matches []string

	_ = filepath.Walk(rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped, not fatal
		}
		if info.IsDir() {
			// Hidden and dependency directories never hold the schema.
			name := info.Name()
			if path != rootDir && (name == "node_modules" || name[0] == '.') {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, err := filepath.Rel(rootDir, path)
		if err != nil {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		for _, pattern := range DiscoverPatterns {
			if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
				matches = append(matches, path)
				return nil
			}
		}
		return nil
	})

	if len(matches) == 0 {
		return ""
	}
	sort.Strings(matches)
	return matches[0]
}
