package preflight

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"draftscan/internal/store"
)

// CheckDirectoryAccess verifies that the directory is readable and writable.
// A missing directory passes when its nearest existing ancestor is writable,
// since stores create their parents on save.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
		}
		ancestor := existingAncestor(path)
		if ancestor == "" {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: no existing parent)", path)}
		}
		if err := unix.Access(ancestor, unix.W_OK|unix.X_OK); err != nil {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: cannot create under %s: %v)", path, ancestor, err)}
		}
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (will be created)", path)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckStoreFile verifies that a persisted store can be read and replaced.
// status loads the file and reports its state. A corrupt store passes
// because the next scan starts it over.
func CheckStoreFile(name, path string, status func(string) store.Status) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			dir := CheckDirectoryAccess(name, filepath.Dir(path))
			if !dir.Passed {
				return dir
			}
			return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (absent, created on first scan)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	// Save renames a temp file into place, so the directory must be writable too.
	if err := unix.Access(filepath.Dir(path), unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: directory not writable: %v)", path, err)}
	}
	if status != nil && status(path) == store.StatusCorrupt {
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (unreadable contents, replaced on next scan)", path)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

func existingAncestor(path string) string {
	current := filepath.Clean(path)
	for {
		parent := filepath.Dir(current)
		if parent == current {
			return ""
		}
		if info, err := os.Stat(parent); err == nil {
			if !info.IsDir() {
				return ""
			}
			return parent
		}
		current = parent
	}
}
