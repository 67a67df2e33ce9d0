package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "evsearch", rootCmd.Use)
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
}

func TestBuildServices_UsesBuilderOnce(t *testing.T) {
	setupTestServices(t, nil)
	SetServices(&Services{})

	calls := 0
	search := &mockSearchService{}
	SetBuilder(func(interactive bool) (*Services, error) {
		calls++
		assert.True(t, interactive)
		return &Services{Search: search}, nil
	})

	_, err := execute(t, "search", "foo")
	require.NoError(t, err)
	_, err = execute(t, "search", "bar")
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, "bar", search.lastText)
}

func TestBuildServices_MCPIsNotInteractive(t *testing.T) {
	setupTestServices(t, nil)
	SetServices(&Services{})

	var got *bool
	SetBuilder(func(interactive bool) (*Services, error) {
		got = &interactive
		return &Services{Search: &mockSearchService{}}, nil
	})

	require.NoError(t, buildServices(mcpServeCmd, nil))
	require.NotNil(t, got)
	assert.False(t, *got)
}

func TestBuildServices_Error(t *testing.T) {
	setupTestServices(t, nil)
	SetServices(&Services{})
	SetBuilder(func(bool) (*Services, error) {
		return nil, errors.New("no config dir")
	})

	_, err := execute(t, "search", "foo")

	assert.EqualError(t, err, "no config dir")
}

func TestExecute_ClosesServices(t *testing.T) {
	setupTestServices(t, nil)
	closed := 0
	closer = func() error {
		closed++
		return nil
	}
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"version"})

	require.NoError(t, Execute(context.Background()))

	assert.Equal(t, 1, closed)
	assert.Nil(t, closer)
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("")
	assert.Equal(t, original, version)

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)
}

func TestBuildServices_SkipsVersion(t *testing.T) {
	setupTestServices(t, nil)
	SetServices(&Services{})
	SetBuilder(func(bool) (*Services, error) {
		t.Fatal("builder must not run for version")
		return nil, nil
	})

	_, err := execute(t, "version")

	assert.NoError(t, err)
}
