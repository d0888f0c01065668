package records

import (
	_ "embed"

	"github.com/go-yaml/yaml"
	"github.com/pkg/errors"
)

//go:embed openapi.yml
var openAPITemplate []byte

// OpenAPIDocument is the machine-readable API description. It is built
// from the embedded template plus the response formats declared per path;
// only the OpenAPI subset the template needs is modeled.
type OpenAPIDocument struct {
	OpenAPI    string               `json:"openapi" yaml:"openapi"`
	Info       APIInfo              `json:"info" yaml:"info"`
	Paths      map[string]*PathItem `json:"paths" yaml:"paths"`
	Components *Components          `json:"components,omitempty" yaml:"components,omitempty"`
}

type APIInfo struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Version     string `json:"version" yaml:"version"`
}

type PathItem struct {
	Get *Operation `json:"get,omitempty" yaml:"get,omitempty"`
}

type Operation struct {
	Summary     string               `json:"summary,omitempty" yaml:"summary,omitempty"`
	OperationID string               `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Parameters  []*ParameterRef      `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Responses   map[string]*Response `json:"responses" yaml:"responses"`
}

type ParameterRef struct {
	Ref string `json:"$ref,omitempty" yaml:"$ref,omitempty"`
}

type Response struct {
	Description string                      `json:"description" yaml:"description"`
	Content     map[string]*MediaTypeObject `json:"content,omitempty" yaml:"content,omitempty"`
}

type MediaTypeObject struct {
	Schema *SchemaObject `json:"schema,omitempty" yaml:"schema,omitempty"`
}

type SchemaObject struct {
	Type string   `json:"type,omitempty" yaml:"type,omitempty"`
	Enum []string `json:"enum,omitempty" yaml:"enum,omitempty"`
}

type Components struct {
	Parameters map[string]*Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

type Parameter struct {
	Name        string        `json:"name" yaml:"name"`
	In          string        `json:"in" yaml:"in"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool          `json:"required" yaml:"required"`
	Schema      *SchemaObject `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// BuildAPI parses the embedded template and adjusts it to the current
// service: title and description from the service configuration, response
// formats per path from the registry. Paths for unimplemented endpoints
// (item retrieval) are absent from the template on purpose.
func BuildAPI(title, description string, formats *FormatRegistry) (*OpenAPIDocument, error) {
	var api OpenAPIDocument
	if err := yaml.Unmarshal(openAPITemplate, &api); err != nil {
		return nil, errors.Wrap(err, "failed to parse the OpenAPI template")
	}

	if title == "" {
		title = DefaultTitle
	}
	api.Info.Title = title
	api.Info.Description = description

	api.declareGetResponseFormats("/", KindDocument, formats)
	api.declareGetResponseFormats("/api", KindAPI, formats)
	api.declareGetResponseFormats("/conformance", KindDocument, formats)
	api.declareGetResponseFormats("/collections", KindDocument, formats)
	api.declareGetResponseFormats("/collections/{collectionId}", KindDocument, formats)

	return &api, nil
}

func (api *OpenAPIDocument) declareGetResponseFormats(path string, kind DocumentKind, formats *FormatRegistry) {
	item, ok := api.Paths[path]
	if !ok || item.Get == nil {
		return
	}
	response, ok := item.Get.Responses["200"]
	if !ok {
		return
	}
	if response.Content == nil {
		response.Content = map[string]*MediaTypeObject{}
	}
	for _, mt := range formats.Producible(kind) {
		if _, ok := response.Content[mt]; !ok {
			response.Content[mt] = &MediaTypeObject{Schema: &SchemaObject{Type: "object"}}
		}
	}
}
