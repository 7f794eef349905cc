package archive_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/keep94/orderreports/orders/archive"
	"github.com/stretchr/testify/assert"
)

func TestArchive(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	archiveDir := filepath.Join(dir, "archive")
	assert.NoError(os.WriteFile(filepath.Join(dir, "r.csv"), []byte("x"), 0644))
	assert.NoError(os.WriteFile(filepath.Join(dir, "s.csv"), []byte("y"), 0644))
	a := &archive.Archiver{FileLoc: dir, ArchiveLoc: archiveDir}
	assert.NoError(a.Archive("r.csv"))
	// archive directory already exists the second time
	assert.NoError(a.Archive("s.csv"))
	_, err := os.Stat(filepath.Join(dir, "r.csv"))
	assert.True(os.IsNotExist(err))
	contents, err := os.ReadFile(filepath.Join(archiveDir, "r.csv"))
	assert.NoError(err)
	assert.Equal("x", string(contents))
	_, err = os.Stat(filepath.Join(archiveDir, "s.csv"))
	assert.NoError(err)
}

func TestArchiveTwiceFails(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	assert.NoError(os.WriteFile(filepath.Join(dir, "r.csv"), nil, 0644))
	a := &archive.Archiver{FileLoc: dir, ArchiveLoc: filepath.Join(dir, "old")}
	assert.NoError(a.Archive("r.csv"))
	err := a.Archive("r.csv")
	assert.True(os.IsNotExist(err))
}

func TestArchiveUnwritableDestination(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	assert.NoError(os.WriteFile(blocker, nil, 0644))
	assert.NoError(os.WriteFile(filepath.Join(dir, "r.csv"), nil, 0644))
	a := &archive.Archiver{FileLoc: dir, ArchiveLoc: filepath.Join(blocker, "sub")}
	assert.Error(a.Archive("r.csv"))
	_, err := os.Stat(filepath.Join(dir, "r.csv"))
	assert.NoError(err)
}
