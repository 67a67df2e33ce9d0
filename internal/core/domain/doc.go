// Package domain defines the core entities for evsearch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - FileResult: One file-system entry returned by a search or listing
//   - QueryOptions: Caller-facing search configuration
//   - Query: The normalised request handed to a transport
//   - AppSettings: Persisted preferences
//   - Notification / Prompt: Messages exchanged with the user-facing layer
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
