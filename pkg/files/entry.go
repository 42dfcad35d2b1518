package files

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Entry is one filesystem object as shown in the browser: a directory
// entry pinned to the directory it was listed in. Entries are snapshots
// taken at scan time and are not kept in sync with later filesystem
// changes.
type Entry struct {
	os.DirEntry
	Dir string
}

func NewEntry(entry os.DirEntry, dir string) Entry {
	if parent, _ := filepath.Split(entry.Name()); parent != "" {
		// It's OK to have panic here.
		panic("entry name can not have path: " + entry.Name())
	}
	return Entry{
		Dir:      dir,
		DirEntry: entry,
	}
}

// FullName returns the absolute path of the entry.
func (e Entry) FullName() string {
	return filepath.Join(e.Dir, e.Name())
}

// Ext returns the lowercase extension including the leading dot,
// e.g. ".py". Directories have no extension.
func (e Entry) Ext() string {
	if e.IsDir() {
		return ""
	}
	return strings.ToLower(filepath.Ext(e.Name()))
}

func (e Entry) String() string {
	return path.Join(e.Dir, e.Name())
}
