package file

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".evsearch", "config.toml"), store.Path())
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("search.mode", "native"))
	require.NoError(t, store.Set("search.max_results", 250))
	require.NoError(t, store.Set("cli.utf8_console", true))

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"string", store.GetString("search.mode"), "native"},
		{"int", store.GetInt("search.max_results"), 250},
		{"bool", store.GetBool("cli.utf8_console"), true},
		{"missing string", store.GetString("cli.path"), ""},
		{"missing int", store.GetInt("search.min_chars"), 0},
		{"missing bool", store.GetBool("search.regex"), false},
		{"string as int", store.GetInt("search.mode"), 0},
		{"int as string", store.GetString("search.max_results"), ""},
		{"string as bool", store.GetBool("search.mode"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("cli.path", `C:\Tools\es.exe`))
	require.NoError(t, store1.Set("search.max_results", 42))
	require.NoError(t, store1.Set("search.regex", true))

	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, `C:\Tools\es.exe`, store2.GetString("cli.path"))
	assert.Equal(t, 42, store2.GetInt("search.max_results"))
	assert.True(t, store2.GetBool("search.regex"))
}

func TestConfigStore_WritesNestedTables(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("search.mode", "cli"))
	require.NoError(t, store.Set("cli.extra_args", "-p"))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[search]")
	assert.Contains(t, string(data), "[cli]")
	assert.NotContains(t, string(data), `"search.mode"`)
}

func TestConfigStore_ReadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := []byte(`
[search]
mode = "native"
sort = "date-modified-descending"

[native]
library_path = 'D:\sdk\Everything64.dll'
`)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), content, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "native", store.GetString("search.mode"))
	assert.Equal(t, "date-modified-descending", store.GetString("search.sort"))
	assert.Equal(t, `D:\sdk\Everything64.dll`, store.GetString("native.library_path"))
}

func TestConfigStore_EmptyOrCommentOnlyFile(t *testing.T) {
	for name, content := range map[string]string{
		"empty":        "",
		"comment only": "# Just a comment\n\n",
	} {
		t.Run(name, func(t *testing.T) {
			tmpDir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

			store, err := NewConfigStore(tmpDir)
			require.NoError(t, err)

			_, ok := store.Get("search.mode")
			assert.False(t, ok)
		})
	}
}

func TestConfigStore_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("github.token", "secret"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := "search.key" + string(rune('0'+id))
			_ = store.Set(key, id)
			_ = store.GetInt(key)
			_, _ = store.Get(key)
		}(i)
	}
	wg.Wait()
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("this is not valid TOML {{{[["), 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_Save_WriteFileError(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("search.mode", "cli"))

	// Replace the file with a directory to cause write error
	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	assert.Error(t, store.Save())
}

func TestConfigStore_SetWithUnmarshallableValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Set("channel", make(chan int)))
}

func TestNestMap(t *testing.T) {
	tests := []struct {
		name      string
		in        map[string]any
		want      map[string]any
		roundTrip bool
	}{
		{
			name:      "flat keys stay flat",
			in:        map[string]any{"a": 1},
			want:      map[string]any{"a": 1},
			roundTrip: true,
		},
		{
			name: "dotted keys nest",
			in:   map[string]any{"a.b": 1, "a.c": 2, "d.e.f": true},
			want: map[string]any{
				"a": map[string]any{"b": 1, "c": 2},
				"d": map[string]any{"e": map[string]any{"f": true}},
			},
			roundTrip: true,
		},
		{
			name: "value shadows table",
			in:   map[string]any{"a": "x", "a.b": 1},
			want: map[string]any{"a": "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nestMap(tt.in)
			assert.Equal(t, tt.want, got)
			if tt.roundTrip {
				assert.Equal(t, tt.in, flattenMap(got, ""))
			}
		})
	}
}
