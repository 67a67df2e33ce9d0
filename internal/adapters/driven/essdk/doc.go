// Package essdk implements driven.SearchTransport on top of the Everything
// SDK library.
//
// The SDK holds one global query/result state per process, so Transport is
// a guarded singleton: a mutex admits one query at a time, the state is
// reset before and after every query, and the library is loaded at most
// once. Hosts must call Shutdown on graceful exit; abrupt termination skips
// cleanup and leaves it to the operating system.
package essdk
