// SPDX-License-Identifier: AGPL-3.0-or-later

// Package hookfile installs the commit-msg shim into a repository's
// .git/hooks directory. Only shims carrying the marker comment are
// considered ours; anything else is left alone unless forced.
package hookfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// HookName is the git hook the shim is installed as.
const HookName = "commit-msg"

const marker = "# installed by commitgate"

const shim = `#!/bin/sh
` + marker + `; remove with: commitgate uninstall
exec commitgate lint "$1"
`

// ErrForeignHook reports an existing commit-msg hook that commitgate did not
// write.
var ErrForeignHook = errors.New("existing hook not managed by commitgate")

// FindGitDir walks up from start and returns the repository's .git
// directory. A .git file (worktrees, submodules) is followed through its
// gitdir pointer.
func FindGitDir(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}
	for {
		candidate := filepath.Join(dir, ".git")
		info, err := os.Stat(candidate)
		switch {
		case err == nil && info.IsDir():
			return candidate, nil
		case err == nil:
			return readGitDirPointer(candidate)
		case !os.IsNotExist(err):
			return "", fmt.Errorf("checking %s: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no .git directory above %s", start)
		}
		dir = parent
	}
}

func readGitDirPointer(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	line := strings.TrimSpace(string(data))
	target, ok := strings.CutPrefix(line, "gitdir: ")
	if !ok {
		return "", fmt.Errorf("%s is not a gitdir pointer", path)
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	return filepath.Clean(target), nil
}

// IsManaged reports whether hook content was written by commitgate.
func IsManaged(content []byte) bool {
	return strings.Contains(string(content), marker)
}

// Install writes the commit-msg shim under gitDir and returns its path. An
// existing hook that is not ours is only overwritten when force is set.
func Install(gitDir string, force bool) (string, error) {
	path := filepath.Join(gitDir, "hooks", HookName)

	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if !IsManaged(existing) && !force {
			return "", fmt.Errorf("%s: %w", path, ErrForeignHook)
		}
	case !os.IsNotExist(err):
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	if err := atomicWrite(path, []byte(shim), 0o755); err != nil {
		return "", err
	}
	return path, nil
}

// Uninstall removes the shim under gitDir. It reports whether a shim was
// removed; a hook we did not write is refused.
func Uninstall(gitDir string) (bool, error) {
	path := filepath.Join(gitDir, "hooks", HookName)

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	if !IsManaged(content) {
		return false, fmt.Errorf("%s: %w", path, ErrForeignHook)
	}

	if err := os.Remove(path); err != nil {
		return false, fmt.Errorf("removing %s: %w", path, err)
	}
	return true, nil
}

// atomicWrite writes content to path by writing a temp file in the same
// directory and renaming it into place.
func atomicWrite(path string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, HookName+"-tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing content: %w", err)
	}
	if err := tmpFile.Chmod(perm); err != nil {
		tmpFile.Close()
		return fmt.Errorf("setting mode: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), path); err != nil {
		return fmt.Errorf("moving temp file to %s: %w", path, err)
	}

	return nil
}
