package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-yaml/yaml"
	"github.com/labstack/echo/v4"
	"github.com/zeebo/xxh3"

	"github.com/geostreams/records"
	"github.com/geostreams/records/internal/present/rest/presenter"
)

// respond serializes the document in the negotiated format. The body is
// buffered before anything is written, so a stream failing mid-listing
// yields an error response instead of a truncated one, and the buffered
// bytes drive ETag revalidation.
func (h *Handler) respond(c echo.Context, req *records.APIRequest, doc any) error {
	body, contentType, err := encode(doc, req.Format)
	if err != nil {
		return presenter.InternalError(c, err)
	}

	etag := fmt.Sprintf(`"%x"`, xxh3.Hash(body))
	// a 304 repeats the validator (RFC 9110, section 15.4.5)
	c.Response().Header().Set("ETag", etag)
	if c.Request().Header.Get("If-None-Match") == etag {
		return c.NoContent(http.StatusNotModified)
	}

	return c.Blob(http.StatusOK, contentType, body)
}

// encode renders a document as JSON or, for the YAML format, converts the
// JSON form so the wire field names stay identical across representations.
func encode(doc any, format string) ([]byte, string, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, "", err
	}

	if format == records.MediaTypeYAML {
		var generic map[string]any
		if err := json.Unmarshal(body, &generic); err != nil {
			return nil, "", err
		}
		converted, err := yaml.Marshal(generic)
		if err != nil {
			return nil, "", err
		}
		return converted, records.MediaTypeYAML, nil
	}

	return body, format, nil
}
