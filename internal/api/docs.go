package api

import (
	"encoding/json"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/swaggo/swag"
)

const DocsPath = "/docs/openapi.json"

// NewDocs builds a swag spec whose template is the embedded OpenAPI
// document with title, version and server URL left as placeholders.
func NewDocs(basePath string) (*swag.Spec, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}

	spec := &swag.Spec{
		Version:          doc.Info.Version,
		Title:            doc.Info.Title,
		BasePath:         basePath,
		InfoInstanceName: "swagger",
		LeftDelim:        "{{",
		RightDelim:       "}}",
	}
	if spec.BasePath == "" {
		spec.BasePath = "/"
	}

	doc.Info.Title = "{{.Title}}"
	doc.Info.Version = "{{.Version}}"
	doc.Servers = openapi3.Servers{{URL: "{{.BasePath}}"}}

	tmpl, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	spec.SwaggerTemplate = string(tmpl)
	return spec, nil
}

// RegisterDocsRoutes renders spec once and serves it under basePath.
// ReadDoc writes to its receiver, so it is never called per request.
func RegisterDocsRoutes(r chi.Router, basePath string, spec *swag.Spec) {
	body := []byte(spec.ReadDoc())
	r.Get(basePath+DocsPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	})
}
