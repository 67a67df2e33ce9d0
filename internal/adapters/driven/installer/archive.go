package installer

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// extractExecutable returns the contents of the archive member whose base
// name is name, ignoring case and directories.
func extractExecutable(archive []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		base := path.Base(strings.ReplaceAll(f.Name, `\`, "/"))
		if !strings.EqualFold(base, name) {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", f.Name, err)
		}
		defer rc.Close()

		data, err := io.ReadAll(io.LimitReader(rc, maxDownloadSize))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.Name, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%s not found in downloaded archive", name)
}

// writeAtomic writes data to dir/name through a temp file and rename.
func writeAtomic(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o755); err != nil {
		return "", fmt.Errorf("chmod %s: %w", tmpName, err)
	}

	dest := filepath.Join(dir, name)
	if err := os.Rename(tmpName, dest); err != nil {
		return "", fmt.Errorf("install %s: %w", dest, err)
	}
	return dest, nil
}
