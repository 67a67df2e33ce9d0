package cli

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"dev build", "dev"},
		{"release build", "0.3.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestServices(t, nil)
			original := version
			version = tt.version
			defer func() { version = original }()

			out, err := execute(t, "version")

			require.NoError(t, err)
			assert.Equal(t, "evsearch version "+tt.version+" ("+runtime.GOOS+"/"+runtime.GOARCH+")\n", out)
		})
	}
}
