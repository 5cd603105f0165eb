// Package fsutil contains small filesystem helpers shared by the stores
// that persist user data. Writes go through a temp file and rename so a
// crash mid-write never leaves a half-written file behind.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// BackupPath returns the sibling backup filename for path. Stores that
// keep a pre-write snapshot use this so readers and writers agree on
// where the backup lives.
func BackupPath(path string) string {
	return path + ".bak"
}

// WriteFileAtomic writes data to path via a temp file in the same
// directory, fsyncs it, then renames it into place.
//
// Rename is atomic on Unix. Windows refuses to rename over an existing
// destination, so there we remove the destination first and accept the
// small non-atomic window.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	renamed := false
	defer func() {
		if !renamed {
			_ = os.Remove(tmpPath)
		}
	}()

	if err := writeAndClose(tmp, data, perm); err != nil {
		return fmt.Errorf("stage %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		if runtime.GOOS == "windows" && replaceExisting(tmpPath, path) {
			renamed = true
			return syncDir(dir)
		}
		return fmt.Errorf("rename %s -> %s: %w", tmpPath, path, err)
	}
	renamed = true

	return syncDir(dir)
}

// BackupExisting snapshots the current contents of path to its backup
// sibling. Failures are swallowed: a missing backup must never block
// the write it precedes.
func BackupExisting(path string, perm os.FileMode) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	_ = WriteFileAtomic(BackupPath(path), data, perm)
}

func writeAndClose(f *os.File, data []byte, perm os.FileMode) error {
	if err := f.Chmod(perm); err != nil {
		_ = f.Close()
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// replaceExisting removes the destination and retries the rename. Only
// used on Windows, where rename over an existing file fails.
func replaceExisting(tmpPath, path string) bool {
	if _, err := os.Stat(path); err != nil {
		return false
	}
	if err := os.Remove(path); err != nil {
		return false
	}
	return os.Rename(tmpPath, path) == nil
}

func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return nil
	}
	defer f.Close()
	_ = f.Sync()
	return nil
}
