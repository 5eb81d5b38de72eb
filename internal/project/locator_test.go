package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAnchor(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, AnchorFile), []byte("{ }\n"), 0o644))
}

func TestLocate_FromRoot(t *testing.T) {
	root := t.TempDir()
	writeAnchor(t, root)

	got, err := Locate(root)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestLocate_FromDescendant(t *testing.T) {
	root := t.TempDir()
	writeAnchor(t, root)
	deep := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(deep, 0o755))

	got, err := Locate(deep)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestLocate_NearestAncestorWins(t *testing.T) {
	root := t.TempDir()
	writeAnchor(t, root)
	inner := filepath.Join(root, "sub")
	require.NoError(t, os.MkdirAll(filepath.Join(inner, "pkg"), 0o755))
	writeAnchor(t, inner)

	got, err := Locate(filepath.Join(inner, "pkg"))
	require.NoError(t, err)
	assert.Equal(t, inner, got)
}

func TestLocate_DirectoryNamedLikeAnchorIsIgnored(t *testing.T) {
	root := t.TempDir()
	writeAnchor(t, root)
	inner := filepath.Join(root, "sub")
	require.NoError(t, os.MkdirAll(filepath.Join(inner, AnchorFile), 0o755))

	got, err := Locate(inner)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestLocate_NotFound(t *testing.T) {
	// Assumes no flake.nix exists above the temp directory.
	start := filepath.Join(t.TempDir(), "x", "y")
	require.NoError(t, os.MkdirAll(start, 0o755))
	if _, err := Locate(os.TempDir()); err == nil {
		t.Skip("a flake.nix exists above the temp directory")
	}

	_, err := Locate(start)
	require.ErrorIs(t, err, ErrNoProject)
}

func TestDiscover_WithoutGitStillSucceeds(t *testing.T) {
	root := t.TempDir()
	writeAnchor(t, root)

	ctx, err := Discover(root, "x86_64-linux")
	require.NoError(t, err)
	assert.Equal(t, root, ctx.Root())
	assert.Equal(t, "x86_64-linux", ctx.System())
}

func TestDiscover_WithGit(t *testing.T) {
	root := t.TempDir()
	writeAnchor(t, root)
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	sub := filepath.Join(root, "src")
	require.NoError(t, os.Mkdir(sub, 0o755))

	ctx, err := Discover(sub, "aarch64-darwin")
	require.NoError(t, err)
	assert.Equal(t, root, ctx.Root())
	assert.Equal(t, "aarch64-darwin", ctx.System())
}

func TestOpen_UsesRootAsGiven(t *testing.T) {
	root := t.TempDir()

	// Open trusts the caller: no anchor lookup happens here.
	ctx := Open(root, "riscv64-linux")
	assert.Equal(t, root, ctx.Root())
	assert.Equal(t, "riscv64-linux", ctx.System())
}
