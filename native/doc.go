// Package native provides bindings for native libraries.
// This package isolates all foreign-function code from the pure Go core.
//
// Sub-packages:
//   - everything: Everything SDK bindings (Windows shared library)
package native
