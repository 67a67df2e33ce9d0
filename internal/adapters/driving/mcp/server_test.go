package mcp

import (
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/evsearch/internal/core/domain"
)

func TestNewServer(t *testing.T) {
	t.Run("nil search service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingSearchService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: &mockSearchService{}})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})

	t.Run("all ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Search:    &mockSearchService{},
			Settings:  &mockSettingsService{},
			Inspector: &mockInspector{},
		})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingSearchService)
	assert.NoError(t, (&Ports{Search: &mockSearchService{}}).Validate())
}

func TestServer_ToolNames(t *testing.T) {
	t.Run("without inspector", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: &mockSearchService{}})
		require.NoError(t, err)
		assert.Equal(t, []string{"search_files", "list_directory"}, server.ToolNames())
	})

	t.Run("with inspector", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: &mockSearchService{}, Inspector: &mockInspector{}})
		require.NoError(t, err)
		assert.Equal(t, []string{"search_files", "list_directory", "sdk_info"}, server.ToolNames())
	})
}

func TestInstructions(t *testing.T) {
	settings := domain.DefaultAppSettings()
	settings.Search.Mode = domain.TransportNative

	text := instructions(&Ports{Search: &mockSearchService{}, Settings: &mockSettingsService{settings: settings}})
	assert.Contains(t, text, "Default transport: Native (Everything SDK library).")
	assert.Contains(t, text, "sdk_info")

	text = instructions(&Ports{Search: &mockSearchService{}, Inspector: &mockInspector{}})
	assert.Contains(t, text, "Default transport: CLI (es.exe subprocess).")
	assert.NotContains(t, text, "not available")
}

func TestWithVersion(t *testing.T) {
	impl := &mcp.Implementation{Name: "evsearch", Version: Version}

	WithVersion("")(impl)
	assert.Equal(t, Version, impl.Version)

	WithVersion("1.2.0")(impl)
	assert.Equal(t, "1.2.0", impl.Version)
}
