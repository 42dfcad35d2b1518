package files

import (
	"context"
	"net/url"
	"os"
)

// Store is the storage contract the browser and editor operate on.
// Contents are whole UTF-8 text blobs, there are no partial writes.
type Store interface {
	RootTitle() string
	RootURL() url.URL
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, data []byte) error
	CreateFile(ctx context.Context, path string) error
	Delete(ctx context.Context, path string) error
}
