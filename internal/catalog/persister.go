package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// BackupPath returns the sibling path the pre-write backup is copied to:
// the original path with ".backup" appended after the extension
// (Localizable.xcstrings -> Localizable.xcstrings.backup).
func BackupPath(path string) string {
	return path + ".backup"
}

// Save serializes the catalog to path with two-space indentation and literal
// (unescaped) non-ASCII text, writing through a temp file in the same
// directory so a failed save never leaves a half-written destination.
//
// When backup is true and a file already exists at path, it is first copied
// to BackupPath(path). A failed backup copy is reported as a warning and
// does not block the write.
func Save(cat *Catalog, path string, backup bool) error {
	if backup {
		if err := copyFile(path, BackupPath(path)); err != nil {
			if !os.IsNotExist(err) {
				slog.Warn("backup copy failed, writing without backup", "path", path, "error", err)
			}
		} else {
			slog.Debug("backup written", "path", BackupPath(path))
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cat); err != nil {
		return fmt.Errorf("%w: encode: %v", ErrSave, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSave, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrSave, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrSave, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrSave, err)
	}

	slog.Debug("catalog saved", "path", path, "bytes", buf.Len())
	return nil
}

// copyFile copies src to dst, preserving the source file mode.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
