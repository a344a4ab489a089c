package usecases

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepStaleDirs(t *testing.T) {
	base := t.TempDir()

	stale := filepath.Join(base, "job-stale")
	require.NoError(t, os.Mkdir(stale, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(stale, "download_temp.mp4"), []byte("x"), 0644))
	old := time.Now().Add(-3 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	fresh := filepath.Join(base, "job-fresh")
	require.NoError(t, os.Mkdir(fresh, 0755))

	// Dosyalar süpürülmez, yalnızca klasörler
	looseFile := filepath.Join(base, "notes.txt")
	require.NoError(t, os.WriteFile(looseFile, []byte("x"), 0644))
	require.NoError(t, os.Chtimes(looseFile, old, old))

	svc := NewCleanupService(base)
	require.NoError(t, svc.SweepStaleDirs(2*time.Hour))

	assert.NoDirExists(t, stale)
	assert.DirExists(t, fresh)
	assert.FileExists(t, looseFile)
}

func TestSweepStaleDirs_MissingBase(t *testing.T) {
	svc := NewCleanupService(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, svc.SweepStaleDirs(time.Hour))
}
