// Package spec embeds the OpenAPI document of the travel planner API,
// served at /openapi.yaml.
package spec

import _ "embed"

// OpenAPI is the raw openapi.yaml, embedded at compile time.
//
//go:embed openapi.yaml
var OpenAPI []byte
