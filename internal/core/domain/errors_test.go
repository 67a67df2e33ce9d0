package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransportUnavailableError(t *testing.T) {
	cause := errors.New("executable file not found in %PATH%")

	t.Run("matches sentinel", func(t *testing.T) {
		err := fmt.Errorf("search: %w", &TransportUnavailableError{Mode: TransportCLI, Err: cause})
		assert.ErrorIs(t, err, ErrTransportUnavailable)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("message names override path", func(t *testing.T) {
		err := &TransportUnavailableError{Mode: TransportCLI, OverridePath: `D:\tools\es.exe`, Err: cause}
		assert.Contains(t, err.Error(), `D:\tools\es.exe`)
	})
}

func TestAcquisitionError(t *testing.T) {
	integrity := &IntegrityError{Asset: "ES-1.1.0.30.x64.zip", Expected: "aa", Actual: "bb"}
	err := &AcquisitionError{Reason: ReasonIntegrity, Err: integrity}

	var got *IntegrityError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, "bb", got.Actual)
	assert.True(t, IsIntegrityFailure(err))
	assert.Contains(t, err.Error(), "integrity")

	network := &AcquisitionError{Reason: ReasonNetwork, Err: errors.New("dial tcp: timeout")}
	assert.False(t, IsIntegrityFailure(network))
}

func TestPartialResultError(t *testing.T) {
	err := &PartialResultError{Index: 1, Reason: "missing path"}
	assert.Equal(t, "result 1 skipped: missing path", err.Error())
}
