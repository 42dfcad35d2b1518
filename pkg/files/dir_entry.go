package files

import (
	"os"
	"path/filepath"
	"time"
)

type DirEntryOption func(*dirEntryInfo)

// NewDirEntry builds an os.DirEntry value for tests and fakes.
// The name must be a bare name without any path.
func NewDirEntry(name string, isDir bool, o ...DirEntryOption) DirEntry {
	if parent, _ := filepath.Split(name); parent != "" {
		// It's OK to have panic here.
		panic("dir entry name can not have path: " + name)
	}
	entry := DirEntry{
		name:  name,
		isDir: isDir,
	}
	if len(o) > 0 {
		entry.info = &dirEntryInfo{entry: entry}
		for _, opt := range o {
			opt(entry.info)
		}
	}
	return entry
}

func Size(v int64) DirEntryOption {
	return func(info *dirEntryInfo) {
		info.size = v
	}
}

func ModTime(v time.Time) DirEntryOption {
	return func(info *dirEntryInfo) {
		info.modTime = v
	}
}

var _ os.DirEntry = (*DirEntry)(nil)

type DirEntry struct {
	name  string
	isDir bool
	info  *dirEntryInfo
}

func (d DirEntry) Name() string { return d.name }
func (d DirEntry) IsDir() bool  { return d.isDir }
func (d DirEntry) Type() os.FileMode {
	if d.isDir {
		return os.ModeDir
	}
	return 0
}
func (d DirEntry) Info() (os.FileInfo, error) {
	if d.info == nil {
		return nil, nil
	}
	return d.info, nil
}

var _ os.FileInfo = (*dirEntryInfo)(nil)

type dirEntryInfo struct {
	entry   DirEntry
	size    int64
	modTime time.Time
}

func (f *dirEntryInfo) Name() string {
	if f == nil {
		return ""
	}
	return f.entry.name
}

func (f *dirEntryInfo) Size() int64 {
	if f == nil {
		return 0
	}
	return f.size
}

func (f *dirEntryInfo) Mode() os.FileMode {
	if f == nil {
		return 0
	}
	return f.entry.Type()
}

func (f *dirEntryInfo) ModTime() time.Time {
	if f == nil {
		return time.Time{}
	}
	return f.modTime
}

func (f *dirEntryInfo) IsDir() bool {
	if f == nil {
		return false
	}
	return f.entry.isDir
}

func (f *dirEntryInfo) Sys() any { return nil }
