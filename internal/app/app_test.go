package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/evsearch/internal/adapters/driven/notify"
	"github.com/custodia-labs/evsearch/internal/core/domain"
)

func TestNew_NonInteractive(t *testing.T) {
	dir := t.TempDir()
	content := "[search]\nmode = \"native\"\nmax_results = 25\n\n[cli]\ninstall_dir = '" + filepath.Join(dir, "bin") + "'\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	a, err := New(Options{ConfigDir: dir})
	require.NoError(t, err)
	defer func() { assert.NoError(t, a.Close()) }()

	assert.IsType(t, notify.LogNotifier{}, a.Notifier)
	assert.Equal(t, filepath.Join(dir, "bin"), a.Installer.InstallDir())
	assert.Equal(t, domain.TransportCLI, a.CLI.Mode())
	assert.Equal(t, domain.TransportNative, a.Native.Mode())

	opts := a.QueryOptions()
	assert.Equal(t, domain.TransportNative, opts.Mode)
	assert.Equal(t, 25, opts.MaxResults)
}

func TestApp_QueryOptionsFollowSettings(t *testing.T) {
	a, err := New(Options{ConfigDir: t.TempDir()})
	require.NoError(t, err)
	defer func() { assert.NoError(t, a.Close()) }()

	assert.Equal(t, domain.TransportCLI, a.QueryOptions().Mode)

	require.NoError(t, a.Settings.Set("search.mode", "native"))
	assert.Equal(t, domain.TransportNative, a.QueryOptions().Mode)
}

func TestApp_WatchReloads(t *testing.T) {
	dir := t.TempDir()
	a, err := New(Options{ConfigDir: dir})
	require.NoError(t, err)

	require.NoError(t, a.Watch(context.Background()))
	require.NoError(t, os.WriteFile(a.Store.Path(), []byte("[search]\nsort = \"size-descending\"\n"), 0600))

	assert.Eventually(t, func() bool {
		return a.QueryOptions().Sort == domain.SortOrder{Key: domain.SortBySize, Descending: true}
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, a.Close())
}

func TestLibraryPath(t *testing.T) {
	assert.Equal(t, `C:\sdk\Everything64.dll`, libraryPath(domain.NativeSettings{LibraryPath: `C:\sdk\Everything64.dll`}))

	got := libraryPath(domain.NativeSettings{AssetsDir: filepath.FromSlash("/opt/evsearch/assets")})
	if got != "" {
		assert.Equal(t, filepath.FromSlash("/opt/evsearch/assets/native"), filepath.Dir(got))
	}
}
