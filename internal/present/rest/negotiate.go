package rest

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/geostreams/records"
	"github.com/geostreams/records/internal/domain"
)

// apiRequest builds the per-request link context: base URL from the
// incoming request, negotiated format from the f parameter or the Accept
// header, falling back to the default representation of the kind.
func (h *Handler) apiRequest(c echo.Context, kind records.DocumentKind) (*records.APIRequest, error) {
	producible := h.formats.Producible(kind)

	format := c.QueryParam("f")
	if format != "" {
		found := false
		for _, mt := range producible {
			if mt == format {
				found = true
				break
			}
		}
		if !found {
			return nil, domain.InvalidParameterError{
				Parameter: "f",
				Message:   "Unsupported format " + format,
			}
		}
	} else {
		accept := c.Request().Header.Get(echo.HeaderAccept)
		format = negotiateAccept(accept, producible)
		if format == "" {
			format = h.formats.Default(kind)
		}
	}

	return &records.APIRequest{
		BaseURL: c.Scheme() + "://" + c.Request().Host,
		Format:  format,
		Formats: h.formats,
	}, nil
}

// negotiateAccept returns the first producible media type acceptable to
// the header, or "" when nothing matches. Ranges match by exact type,
// type/* or */*; q-values do not reorder the declared preference.
func negotiateAccept(accept string, producible []string) string {
	ranges := parseAcceptRanges(accept)
	if len(ranges) == 0 {
		return ""
	}
	for _, mt := range producible {
		if rangesMatch(ranges, mediaRange(mt)) {
			return mt
		}
	}
	return ""
}

// parseAcceptRanges splits an Accept header into bare media ranges,
// dropping q-values and other parameters.
func parseAcceptRanges(header string) []string {
	var ranges []string
	for _, part := range strings.Split(header, ",") {
		r := strings.TrimSpace(mediaRange(part))
		if r != "" {
			ranges = append(ranges, strings.ToLower(r))
		}
	}
	return ranges
}

func rangesMatch(ranges []string, mediaType string) bool {
	mediaType = strings.ToLower(mediaType)
	for _, r := range ranges {
		if r == mediaType || r == "*/*" {
			return true
		}
		if strings.HasSuffix(r, "/*") && strings.HasPrefix(mediaType, strings.TrimSuffix(r, "*")) {
			return true
		}
	}
	return false
}

// mediaRange strips media type parameters, so an Accept header matches
// parameterized types like the OpenAPI one.
func mediaRange(mediaType string) string {
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		return mediaType[:i]
	}
	return mediaType
}
