package servers

import (
	_ "embed"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yml
var rawSpec []byte

var (
	swaggerOnce  sync.Once
	swaggerDoc   *openapi3.T
	swaggerErr   error
	registerOnce sync.Once
)

// GetSwagger returns the parsed and validated OpenAPI document. Callers must
// not mutate the result; use a copy when Servers need to be cleared.
func GetSwagger() (*openapi3.T, error) {
	swaggerOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(rawSpec)
		if err != nil {
			swaggerErr = err
			return
		}
		if err = doc.Validate(loader.Context); err != nil {
			swaggerErr = err
			return
		}
		swaggerDoc = doc
	})
	return swaggerDoc, swaggerErr
}

// RegisterSwaggerDoc publishes the document for the swagger UI under the
// default instance name. swag panics on a second registration, so only the
// first call registers.
func RegisterSwaggerDoc() error {
	doc, err := GetSwagger()
	if err != nil {
		return err
	}
	data, err := doc.MarshalJSON()
	if err != nil {
		return err
	}

	registerOnce.Do(func() {
		swag.Register(swag.Name, &swag.Spec{
			Version:          doc.Info.Version,
			Title:            doc.Info.Title,
			Description:      doc.Info.Description,
			InfoInstanceName: swag.Name,
			SwaggerTemplate:  string(data),
		})
	})
	return nil
}
