package osfile

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/moesbr-222/tree-text-editor/pkg/files"
	"github.com/moesbr-222/tree-text-editor/pkg/fsutils"
)

var osReadDir = os.ReadDir
var readFileData = fsutils.ReadFileData
var osWriteFile = os.WriteFile
var osOpenFile = os.OpenFile
var osRemove = os.Remove
var osHostname = os.Hostname

var _ files.Store = (*Store)(nil)

// Store reads and writes the local filesystem.
type Store struct {
	title string
	root  string
}

func NewStore(root string) *Store {
	if root == "" {
		_, _ = fmt.Fprintf(os.Stderr, "osfile store root is empty, defaulting to /\n")
		root = "/"
	}
	store := Store{root: root}
	var err error
	if store.title, err = osHostname(); err != nil {
		store.title = err.Error()
	}
	return &store
}

func (s Store) RootTitle() string {
	return s.title
}

func (s Store) RootURL() url.URL {
	return url.URL{
		Scheme: "file",
		Path:   s.root,
	}
}

func (s Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osReadDir(name)
}

// ReadFile reads the whole file; contents are treated as one text blob.
func (s Store) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return readFileData(path, 0)
}

func (s Store) WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return osWriteFile(path, data, 0644)
}

// CreateFile creates an empty file and fails with os.ErrExist if the
// path is already taken.
func (s Store) CreateFile(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := osOpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}

func (s Store) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return osRemove(path)
}
