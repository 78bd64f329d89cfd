package servers

import (
	"fmt"

	"sellerdesk/api"

	"github.com/getkin/kin-openapi/openapi3"
)

// GetSwagger returns the parsed OpenAPI document of the console API.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(api.OpenAPI)
	if err != nil {
		return nil, fmt.Errorf("error loading openapi document: %w", err)
	}
	return doc, nil
}
