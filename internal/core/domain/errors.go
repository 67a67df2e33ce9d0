package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent failures the facade knows how to report.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTransportUnavailable indicates the selected backend cannot be used.
	ErrTransportUnavailable = errors.New("transport unavailable")

	// ErrMalformedOutput indicates a line of es.exe output had an
	// unexpected shape. It is logged per line and never aborts a query.
	ErrMalformedOutput = errors.New("malformed output")

	// ErrSessionBusy indicates a native query is already in flight.
	ErrSessionBusy = errors.New("native session busy")

	// ErrSessionDisposed indicates the native session has been shut down.
	ErrSessionDisposed = errors.New("native session disposed")
)

// TransportUnavailableError reports that a transport could not run at all:
// the native library failed to load, or es.exe could not be found.
type TransportUnavailableError struct {
	// Mode is the transport that is unavailable.
	Mode TransportMode

	// OverridePath is the user-configured executable path, if any.
	OverridePath string

	// Err is the underlying cause.
	Err error
}

func (e *TransportUnavailableError) Error() string {
	if e.OverridePath != "" {
		return fmt.Sprintf("%s transport unavailable: cannot find %s: %v", e.Mode, e.OverridePath, e.Err)
	}
	return fmt.Sprintf("%s transport unavailable: %v", e.Mode, e.Err)
}

func (e *TransportUnavailableError) Unwrap() error { return e.Err }

// Is matches ErrTransportUnavailable.
func (e *TransportUnavailableError) Is(target error) bool {
	return target == ErrTransportUnavailable
}

// ServiceError is a failure reported by the index service itself.
type ServiceError struct {
	// Code is the service-specific error code.
	Code uint32

	// Message is the human-readable description of Code.
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// IntegrityError reports a downloaded file whose digest does not match
// the digest published in the release metadata.
type IntegrityError struct {
	Asset    string
	Expected string
	Actual   string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("hash mismatch for %s: expected %s, actual %s", e.Asset, e.Expected, e.Actual)
}

// PartialResultError reports one native result index that could not be
// decoded. The entry is skipped; the query still succeeds.
type PartialResultError struct {
	Index  uint32
	Reason string
}

func (e *PartialResultError) Error() string {
	return fmt.Sprintf("result %d skipped: %s", e.Index, e.Reason)
}

// AcquisitionReason classifies why installing es.exe failed.
type AcquisitionReason string

// Acquisition failure reasons.
const (
	ReasonNetwork         AcquisitionReason = "network"
	ReasonUnsupportedArch AcquisitionReason = "unsupported-arch"
	ReasonAssetMissing    AcquisitionReason = "asset-missing"
	ReasonDigestMissing   AcquisitionReason = "digest-missing"
	ReasonIntegrity       AcquisitionReason = "integrity"
	ReasonArchive         AcquisitionReason = "archive"
	ReasonInstall         AcquisitionReason = "install"
)

// AcquisitionError reports a failed es.exe download or install.
type AcquisitionError struct {
	Reason AcquisitionReason
	Err    error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("es.exe acquisition failed (%s): %v", e.Reason, e.Err)
}

func (e *AcquisitionError) Unwrap() error { return e.Err }

// IsIntegrityFailure reports whether err is, or wraps, an integrity failure.
func IsIntegrityFailure(err error) bool {
	var integrityErr *IntegrityError
	if errors.As(err, &integrityErr) {
		return true
	}
	var acqErr *AcquisitionError
	return errors.As(err, &acqErr) && acqErr.Reason == ReasonIntegrity
}
