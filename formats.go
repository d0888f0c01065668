package records

// Media types served by the API.
const (
	MediaTypeJSON    = "application/json"
	MediaTypeYAML    = "application/x-yaml"
	MediaTypeOpenAPI = "application/vnd.oai.openapi+json;version=3.0"
)

// DocumentKind selects which representation set applies to a document.
type DocumentKind int

const (
	// KindDocument covers the landing page, conformance declaration and
	// collection documents.
	KindDocument DocumentKind = iota
	// KindAPI is the OpenAPI description.
	KindAPI
	// KindItems covers per-collection item payloads. No item output
	// formats are registered by default.
	KindItems
)

// FormatRegistry reports the producible media types per document kind, in
// a stable order. The first type of a kind is its default representation.
// A registry is built per process and treated as read-only afterwards.
type FormatRegistry struct {
	kinds map[DocumentKind][]string
}

func NewFormatRegistry() *FormatRegistry {
	return &FormatRegistry{
		kinds: map[DocumentKind][]string{
			KindDocument: {MediaTypeJSON, MediaTypeYAML},
			KindAPI:      {MediaTypeOpenAPI, MediaTypeYAML},
			KindItems:    {},
		},
	}
}

// Declare appends media types to the producible set of a kind.
func (r *FormatRegistry) Declare(kind DocumentKind, mediaTypes ...string) {
	r.kinds[kind] = append(r.kinds[kind], mediaTypes...)
}

// Producible returns the media types servable for the given kind.
func (r *FormatRegistry) Producible(kind DocumentKind) []string {
	types := r.kinds[kind]
	out := make([]string, len(types))
	copy(out, types)
	return out
}

// Default returns the first producible type of a kind, or "" when the kind
// has no registered representations.
func (r *FormatRegistry) Default(kind DocumentKind) string {
	types := r.kinds[kind]
	if len(types) == 0 {
		return ""
	}
	return types[0]
}
