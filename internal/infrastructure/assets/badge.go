// Package assets loads the optional branding badge placed on estimates.
// Every source here is best-effort: an error means "render without the
// badge", never "fail the document".
package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// maxBadgeBytes caps how much image data we are willing to embed.
const maxBadgeBytes = 2 << 20 // 2 MiB

// HTTPBadgeSource fetches the badge from a URL. The caller bounds the fetch
// with a context timeout; anything slow or broken just drops the badge.
type HTTPBadgeSource struct {
	url    string
	client *http.Client
}

// NewHTTPBadgeSource builds the source. The client's own timeout is left
// unset; cancellation comes from the request context.
func NewHTTPBadgeSource(url string) *HTTPBadgeSource {
	return &HTTPBadgeSource{url: url, client: &http.Client{}}
}

// Fetch downloads the badge bytes.
func (s *HTTPBadgeSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("assets: build badge request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("assets: fetch badge: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("assets: fetch badge: unexpected status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBadgeBytes))
	if err != nil {
		return nil, fmt.Errorf("assets: read badge body: %w", err)
	}
	return data, nil
}

// FileBadgeSource reads the badge from a local path (CLI use).
type FileBadgeSource struct {
	path string
}

// NewFileBadgeSource builds the source.
func NewFileBadgeSource(path string) *FileBadgeSource {
	return &FileBadgeSource{path: path}
}

// Fetch reads the badge file.
func (s *FileBadgeSource) Fetch(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("assets: read badge file: %w", err)
	}
	return data, nil
}
