package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesNested(t *testing.T) {
	tmp := t.TempDir()
	want := filepath.Join(tmp, "kits", "k1")

	got, err := EnsureDir(want)
	require.NoError(t, err)
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}
}

func TestEnsureDir_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")

	_, err := EnsureDir(dir)
	require.NoError(t, err)
	_, err = EnsureDir(dir)
	require.NoError(t, err)
}

func TestEnsureDir_FileInTheWay(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "busy")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o600))

	_, err := EnsureDir(p)
	require.Error(t, err)
}

func TestEnsureParentDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a", "b", "state.db")
	require.NoError(t, EnsureParentDir(p))

	_, err := os.Stat(filepath.Dir(p))
	require.NoError(t, err)

	require.NoError(t, EnsureParentDir("state.db"))
}

func TestSafeName(t *testing.T) {
	assert.Equal(t, "cover-letter", SafeName("Cover Letter"))
	assert.Equal(t, "ats-score", SafeName("  ATS Score!!"))
	assert.Equal(t, "cv", SafeName("CV"))
	assert.Equal(t, "", SafeName("---"))
}
