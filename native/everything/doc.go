// Package everything provides bindings for the Everything SDK.
//
// The SDK keeps one global search state per process: search text, flags,
// sort, request flags and the last result list all live inside the library.
// Callers must serialise access and Reset around every query.
//
// Open loads Everything_<arch>.dll and binds every export the API needs;
// it is only functional on Windows. Other platforms get a stub that
// returns ErrUnsupportedPlatform.
//
// The FILETIME and LARGE_INTEGER structures exchanged with the library are
// modelled by FileTime and LargeInteger, which own all conversion arithmetic.
package everything
