package records

import (
	"net/url"
	"sort"
	"strings"
)

// APIRequest carries the per-request context needed to build absolute,
// content-negotiated links. It is constructed by the HTTP layer and never
// shared between requests.
type APIRequest struct {
	// BaseURL is the externally visible root of the service, without a
	// trailing slash (e.g. "http://localhost:8000").
	BaseURL string
	// Format is the negotiated media type of the current response.
	Format string
	// Formats reports the producible media types per document kind.
	Formats *FormatRegistry
}

// BuildURL resolves a path against the request base URL, appending query
// parameters in sorted key order so generated links are deterministic.
func (r *APIRequest) BuildURL(path string, kvp map[string]string) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimSuffix(r.BaseURL, "/"))
	if !strings.HasPrefix(path, "/") {
		sb.WriteString("/")
	}
	sb.WriteString(path)

	if len(kvp) > 0 {
		keys := make([]string, 0, len(kvp))
		for k := range kvp {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("?")
		for i, k := range keys {
			if i > 0 {
				sb.WriteString("&")
			}
			sb.WriteString(url.QueryEscape(k))
			sb.WriteString("=")
			sb.WriteString(url.QueryEscape(kvp[k]))
		}
	}

	return sb.String()
}
