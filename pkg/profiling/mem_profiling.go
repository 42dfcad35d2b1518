package profiling

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"
)

var memProfilingInterval = 30 * time.Second
var pprofWriteHeapProfile = pprof.WriteHeapProfile

// DoMemProfiling periodically snapshots the heap profile into the named
// file and returns a function that writes a snapshot on demand.
func DoMemProfiling(fileName string) func() {
	writeMemProfile := func() {
		f, err := osCreate(fileName)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "could not create memory profile: %v\n", err)
			return
		}
		defer func() {
			_ = f.Close()
		}()
		runtime.GC()
		if err := pprofWriteHeapProfile(f); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "could not write memory profile: %v\n", err)
		}
	}

	go func() {
		for {
			time.Sleep(memProfilingInterval)
			writeMemProfile()
		}
	}()

	return writeMemProfile
}
