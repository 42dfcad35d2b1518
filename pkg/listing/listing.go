package listing

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/moesbr-222/tree-text-editor/pkg/files"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Listing is the filtered, sorted set of entries for one directory level.
type Listing []files.Entry

// ScanError reports a failed directory enumeration. Callers should keep
// showing the previous listing rather than clearing it.
type ScanError struct {
	Dir string
	Err error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan %s: %v", e.Dir, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// List enumerates the direct children of dirPath, keeps directories with
// no hidden path segment and files with a supported extension, and sorts
// directories before files, each group ascending case-insensitive by
// full path. Descending into a subdirectory is a fresh List call on that
// subdirectory.
func List(ctx context.Context, store files.Store, dirPath string) (Listing, error) {
	children, err := store.ReadDir(ctx, dirPath)
	if err != nil {
		return nil, &ScanError{Dir: dirPath, Err: err}
	}
	entries := make(Listing, 0, len(children))
	for _, child := range children {
		entry := files.NewEntry(child, dirPath)
		if child.IsDir() {
			if hasHiddenSegment(entry.FullName()) {
				continue
			}
		} else if !SupportedExtensions[entry.Ext()] {
			continue
		}
		entries = append(entries, entry)
	}
	sortEntries(entries)
	return entries, nil
}

func hasHiddenSegment(path string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}

var collator = collate.New(language.Und, collate.IgnoreCase)

func sortEntries(entries Listing) {
	slices.SortFunc(entries, func(a, b files.Entry) int {
		// Directories first
		if a.IsDir() != b.IsDir() {
			if a.IsDir() {
				return -1
			}
			return 1
		}
		// Then by full path
		return collator.CompareString(a.FullName(), b.FullName())
	})
}
