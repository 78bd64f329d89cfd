// Package api holds the OpenAPI document of the console HTTP API.
package api

import _ "embed"

// OpenAPI is the YAML source of the console API, served at /swagger and used
// to validate incoming requests.
//
//go:embed openapi.yaml
var OpenAPI []byte
