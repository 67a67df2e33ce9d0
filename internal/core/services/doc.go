// Package services implements the driving port interfaces.
// Services contain the core logic and orchestrate calls to driven ports
// (adapters). They never talk to es.exe, the SDK library or the network
// directly.
package services
