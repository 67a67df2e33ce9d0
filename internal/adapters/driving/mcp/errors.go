// Package mcp provides an MCP (Model Context Protocol) server adapter for
// evsearch. It lets AI assistants search the Everything index and list
// directories through the same facade as the command line.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrInvalidMode is returned when a tool call names an unknown transport.
var ErrInvalidMode = errors.New("mcp: unknown transport mode")
