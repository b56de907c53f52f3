// Package api holds the OpenAPI contract of the shift HTTP API.
package api

import (
	_ "embed"
)

// OpenAPI is the contract in YAML. internal/generated/servers is derived from it.
//
//go:embed openapi.yml
var OpenAPI []byte
