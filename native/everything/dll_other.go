//go:build !windows

package everything

// Open always fails on platforms without the Everything SDK.
func Open(_ string) (API, error) {
	return nil, ErrUnsupportedPlatform
}
