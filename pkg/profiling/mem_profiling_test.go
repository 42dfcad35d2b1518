package profiling

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func restoreMemSeams(t *testing.T) {
	t.Helper()
	origCreate, origInterval, origWrite := osCreate, memProfilingInterval, pprofWriteHeapProfile
	t.Cleanup(func() {
		// Let the snapshot goroutine finish reading the seams.
		time.Sleep(200 * time.Millisecond)
		osCreate = origCreate
		memProfilingInterval = origInterval
		pprofWriteHeapProfile = origWrite
	})
	memProfilingInterval = time.Hour
}

func TestDoMemProfiling(t *testing.T) {
	restoreMemSeams(t)
	profileFile := filepath.Join(t.TempDir(), "mem.prof")

	writeMemProfile := DoMemProfiling(profileFile)
	if writeMemProfile == nil {
		t.Fatal("writeMemProfile must not be nil")
	}
	writeMemProfile()

	if _, err := os.Stat(profileFile); err != nil {
		t.Errorf("expected profile file to be created: %v", err)
	}
}

func TestDoMemProfiling_CreateError(t *testing.T) {
	restoreMemSeams(t)
	osCreate = func(string) (*os.File, error) {
		return nil, errors.New("mock error")
	}

	// Must not panic, the failure only goes to stderr.
	DoMemProfiling("unused")()
}

func TestDoMemProfiling_WriteError(t *testing.T) {
	restoreMemSeams(t)
	pprofWriteHeapProfile = func(io.Writer) error {
		return errors.New("mock pprof error")
	}
	profileFile := filepath.Join(t.TempDir(), "mem.prof")

	DoMemProfiling(profileFile)()
}
