// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - SearchTransport: Executes a query against Everything (es.exe or the SDK)
//   - Notifier: Reports failures and progress to the user
//   - FileSystem: Stat and directory reads for listings and enrichment
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Prompter: Asks yes/no questions. Without it, prompts are declined.
//   - BinaryInstaller: Downloads es.exe. Without it, a missing es.exe is terminal.
//   - ReleaseSource: Release metadata for the installer.
//   - ServiceInspector: SDK version and capability details.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
