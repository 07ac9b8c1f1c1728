package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/commitgate/internal/hookfile"
)

// chdir stands in for testing.T.Chdir, which requires Go 1.24: it changes
// into dir, sets PWD, and restores the previous working directory on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			t.Errorf("restore working directory: %v", err)
		}
	})
}

func repoFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	chdir(t, root)
	return root
}

func TestInstallAndUninstall(t *testing.T) {
	root := repoFixture(t)
	hookPath := filepath.Join(root, ".git", "hooks", "commit-msg")

	out, err := execute(t, "install")
	require.NoError(t, err)
	assert.Contains(t, out, "Installed")

	content, err := os.ReadFile(hookPath)
	require.NoError(t, err)
	assert.True(t, hookfile.IsManaged(content))

	out, err = execute(t, "uninstall")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed commit-msg hook")
	_, statErr := os.Stat(hookPath)
	assert.True(t, os.IsNotExist(statErr))

	out, err = execute(t, "uninstall")
	require.NoError(t, err)
	assert.Contains(t, out, "No commit-msg hook installed.")
}

func TestInstallForce(t *testing.T) {
	root := repoFixture(t)
	hooks := filepath.Join(root, ".git", "hooks")
	require.NoError(t, os.MkdirAll(hooks, 0o755))
	hookPath := filepath.Join(hooks, "commit-msg")
	require.NoError(t, os.WriteFile(hookPath, []byte("#!/bin/sh\necho theirs\n"), 0o755))

	_, err := execute(t, "install")
	require.ErrorIs(t, err, hookfile.ErrForeignHook)

	_, err = execute(t, "install", "--force")
	require.NoError(t, err)

	content, err := os.ReadFile(hookPath)
	require.NoError(t, err)
	assert.True(t, hookfile.IsManaged(content))
}

func TestInstallOutsideRepository(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	_, err := execute(t, "install")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .git directory")
}
