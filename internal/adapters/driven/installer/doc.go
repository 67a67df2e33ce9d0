// Package installer downloads es.exe from the voidtools/ES GitHub releases.
//
// The release asset for the running architecture is fetched, its SHA-256
// digest is checked against the digest GitHub publishes for the asset,
// and es.exe is extracted from the archive in memory and written
// atomically into the install directory. Nothing is written when the
// digest does not match.
package installer
