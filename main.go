package main

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime/pprof"

	"github.com/rivo/tview"

	"github.com/moesbr-222/tree-text-editor/pkg/profiling"
	"github.com/moesbr-222/tree-text-editor/pkg/treetext"
)

var (
	rootDir    = flag.String("root", "", "directory to browse (defaults to the home directory)")
	cpuProfile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memProfile = flag.String("memprofile", "", "write memory profile to `file`")
	pprofAddr  = flag.String("pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")
)

var httpListenAndServe = http.ListenAndServe
var osExit = os.Exit
var pprofStopCPUProfile = pprof.StopCPUProfile

func main() {
	run(newEditorApp())
}

func newEditorApp() (app *tview.Application) {
	flag.Parse()

	if *pprofAddr != "" {
		go startPprofServer(*pprofAddr)
	}

	// The terminal is in raw mode once the app runs, so a panic would
	// otherwise leave it unusable and swallow the profile.
	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Recovered from panic: %v\n", r)
			pprofStopCPUProfile()
			osExit(1)
		}
	}()

	if *cpuProfile != "" {
		defer profiling.DoCPUProfiling(*cpuProfile)()
	}
	if *memProfile != "" {
		defer profiling.DoMemProfiling(*memProfile)()
	}

	return newApp()
}

func startPprofServer(addr string) {
	if err := httpListenAndServe(addr, nil); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "pprof server error: %v\n", err)
	}
}

var setupApp = treetext.SetupApp

var newApp = func() *tview.Application {
	app := tview.NewApplication()
	setupApp(app, *rootDir)
	return app
}

type application interface{ Run() error }

var run = func(app application) {
	if err := app.Run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
	}
}
