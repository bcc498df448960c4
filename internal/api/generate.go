// Package api holds the OpenAPI document of the gateway and the server
// code generated from it.
package api

//go:generate go tool oapi-codegen -config cfg.yaml openapi.yaml
