package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/evsearch/internal/core/domain"
)

func TestSDKInfoCmd(t *testing.T) {
	ts := setupTestServices(t, nil)
	ts.inspector.info = &domain.ServiceInfo{
		LibraryPath: `C:\evsearch\assets\native\Everything64.dll`,
		Version:     "1.4.1.1026",
		Target:      "x64",
		DBLoaded:    true,
		FastSort:    map[domain.SortKey]bool{domain.SortByName: true, domain.SortBySize: true, domain.SortByPath: false},
		Indexed:     map[string]bool{"size": true, "date-modified": true},
	}

	out, err := execute(t, "sdk", "info")

	require.NoError(t, err)
	assert.Contains(t, out, "Version:   1.4.1.1026")
	assert.Contains(t, out, "DB loaded: true")
	assert.Contains(t, out, "Indexed:   date-modified, size")
	assert.Contains(t, out, "Fast sort: name, size")
}

func TestSDKInfoCmd_Unavailable(t *testing.T) {
	ts := setupTestServices(t, nil)
	ts.inspector.err = &domain.TransportUnavailableError{Mode: domain.TransportNative, Err: errors.New("load failed")}

	_, err := execute(t, "sdk", "info")

	assert.ErrorIs(t, err, domain.ErrTransportUnavailable)
}

func TestEnabled(t *testing.T) {
	assert.Equal(t, "(none)", enabled(map[string]bool{"a": false}))
	assert.Equal(t, "a, b", enabled(map[string]bool{"b": true, "a": true, "c": false}))
}
