package editor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/moesbr-222/tree-text-editor/pkg/files"
)

// State is the session's position in the open-file lifecycle.
type State int

const (
	// StateEmpty means no file is open.
	StateEmpty State = iota
	// StateClean means a file is open and the buffer matches disk.
	StateClean
	// StateDirty means a file is open with unsaved modifications.
	StateDirty
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateClean:
		return "clean"
	case StateDirty:
		return "dirty"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type SessionOption func(*Session)

// WithResetOnFailedDelete controls whether deleting the open file resets
// the session even when the underlying removal fails (default true: the
// file is gone regardless of error origin).
func WithResetOnFailedDelete(reset bool) SessionOption {
	return func(s *Session) {
		s.resetOnFailedDelete = reset
	}
}

// Session tracks the single open file, its last-saved content and the
// edit buffer. One operation is in flight at a time; the caller
// serializes commands.
type Session struct {
	store   files.Store
	confirm Confirmer
	notify  Notifier

	openFile      *files.Entry
	savedContent  string
	bufferContent string

	resetOnFailedDelete bool
}

func NewSession(store files.Store, confirm Confirmer, notify Notifier, o ...SessionOption) *Session {
	if notify == nil {
		notify = NopNotifier{}
	}
	s := &Session{
		store:               store,
		confirm:             confirm,
		notify:              notify,
		resetOnFailedDelete: true,
	}
	for _, opt := range o {
		opt(s)
	}
	return s
}

// OpenFile returns the entry currently loaded, or nil.
func (s *Session) OpenFile() *files.Entry {
	return s.openFile
}

// Buffer returns the current edit buffer content.
func (s *Session) Buffer() string {
	return s.bufferContent
}

// SavedContent returns the content as last read from or written to disk.
func (s *Session) SavedContent() string {
	return s.savedContent
}

// IsDirty reports whether the buffer differs from the saved content.
func (s *Session) IsDirty() bool {
	return s.openFile != nil && s.bufferContent != s.savedContent
}

func (s *Session) State() State {
	switch {
	case s.openFile == nil:
		return StateEmpty
	case s.bufferContent != s.savedContent:
		return StateDirty
	}
	return StateClean
}

// Open loads entry into the session. Unsaved changes must be confirmed
// away first; declining aborts with no state change. On a read failure
// the session keeps its previous file and a ReadError is returned.
func (s *Session) Open(ctx context.Context, entry files.Entry) error {
	if !s.confirmDiscard() {
		return nil
	}
	data, err := s.store.ReadFile(ctx, entry.FullName())
	if err != nil {
		return &ReadError{Path: entry.FullName(), Err: err}
	}
	content := string(data)
	s.openFile = &entry
	s.savedContent = content
	s.bufferContent = content
	return nil
}

// Edit replaces the buffer content. It is a no-op when no file is open:
// keystrokes without an open file have nothing to edit.
func (s *Session) Edit(text string) {
	if s.openFile == nil {
		return
	}
	s.bufferContent = text
}

// Save writes the buffer to the open file. Saving a clean session is a
// no-op without a write. On failure the session stays dirty and the
// buffer is kept.
func (s *Session) Save(ctx context.Context) error {
	if s.openFile == nil || s.bufferContent == s.savedContent {
		return nil
	}
	path := s.openFile.FullName()
	if err := s.store.WriteFile(ctx, path, []byte(s.bufferContent)); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	s.savedContent = s.bufferContent
	s.notify.Notify("Saved " + s.openFile.Name())
	return nil
}

// Create makes an empty file named name in dir and returns its path. An
// existing file at that path is a CreateError, never silently reused.
// The session itself is not touched; the caller rescans the directory.
func (s *Session) Create(ctx context.Context, dir, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &CreateError{Path: dir, Err: errEmptyName}
	}
	path := filepath.Join(dir, name)
	if err := s.store.CreateFile(ctx, path); err != nil {
		return "", &CreateError{Path: path, Err: err}
	}
	s.notify.Notify("Created " + name)
	return path, nil
}

var errEmptyName = fmt.Errorf("file name is empty")

// Delete removes entry after confirmation; declining aborts with no
// effect. Deleting the open file resets the session to empty even if it
// was dirty: there is nothing left to save to.
func (s *Session) Delete(ctx context.Context, entry files.Entry) error {
	path := entry.FullName()
	if !s.confirm.Confirm("Delete file", fmt.Sprintf("Delete %s?", entry.Name())) {
		return nil
	}
	err := s.store.Delete(ctx, path)
	if s.openFile != nil && s.openFile.FullName() == path {
		if err == nil || s.resetOnFailedDelete {
			s.reset()
		}
	}
	if err != nil {
		return &DeleteError{Path: path, Err: err}
	}
	s.notify.Notify("Deleted " + entry.Name())
	return nil
}

// Close drops the open file. Unsaved changes must be confirmed away;
// declining keeps the session as is. Reports whether the file was closed.
func (s *Session) Close() bool {
	if s.openFile == nil {
		return true
	}
	if !s.confirmDiscard() {
		return false
	}
	s.reset()
	return true
}

func (s *Session) confirmDiscard() bool {
	if s.State() != StateDirty {
		return true
	}
	return s.confirm.Confirm("Discard changes",
		fmt.Sprintf("%s has unsaved changes. Discard them?", s.openFile.Name()))
}

func (s *Session) reset() {
	s.openFile = nil
	s.savedContent = ""
	s.bufferContent = ""
}
