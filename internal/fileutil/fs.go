package fileutil

import (
	"os"
	"time"
)

// FileInfo is the metadata mdfiles reads for a candidate file.
type FileInfo struct {
	ModTime time.Time
}

// FS is the metadata source used by the filters. OSFS reads the real
// file system; tests substitute their own.
type FS interface {
	Stat(path string) (FileInfo, error)
}

// OSFS implements FS on top of the local file system.
type OSFS struct{}

// NewOSFS returns an FS backed by os.Stat.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Stat follows symlinks, like os.Stat.
func (OSFS) Stat(path string) (FileInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, err
	}

	return FileInfo{ModTime: st.ModTime()}, nil
}
