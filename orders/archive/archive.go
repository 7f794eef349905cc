// Package archive moves consumed report files out of the working
// directory.
package archive

import (
	"os"
	"path/filepath"
)

// Archiver moves files from FileLoc to ArchiveLoc.
type Archiver struct {
	// The working directory
	FileLoc string
	// Where consumed files go. Created if it does not exist.
	ArchiveLoc string
}

// Archive moves fileName from the working directory to the archive
// directory keeping the same name.
func (a *Archiver) Archive(fileName string) error {
	if err := os.MkdirAll(a.ArchiveLoc, 0755); err != nil {
		return err
	}
	return os.Rename(
		filepath.Join(a.FileLoc, fileName),
		filepath.Join(a.ArchiveLoc, fileName))
}
