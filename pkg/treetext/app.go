package treetext

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rivo/tview"

	"github.com/moesbr-222/tree-text-editor/pkg/files/osfile"
	"github.com/moesbr-222/tree-text-editor/pkg/fsutils"
	"github.com/moesbr-222/tree-text-editor/pkg/treetext/edstate"
)

var loadState = edstate.GetState

func Main() {
	app := tview.NewApplication()
	SetupApp(app, "")
	if err := app.Run(); err != nil {
		fmt.Print(err)
	}
}

// SetupApp wires the browser into app. rootDir is the browsing ceiling;
// empty means the user's home. The last browsed directory is restored
// when it still exists under the root.
func SetupApp(app *tview.Application, rootDir string) *Browser {
	if rootDir == "" {
		rootDir = "~"
	}
	rootDir = fsutils.ExpandHome(rootDir)

	store := osfile.NewStore(rootDir)
	browser := NewBrowser(app, store, rootDir)

	if state, err := loadState(); err == nil {
		restoreSavedDir(browser, rootDir, state.CurrentDir)
	}

	browser.queueUpdateDraw = func(f func()) {
		app.QueueUpdateDraw(f)
	}

	app.EnableMouse(true)
	app.SetRoot(browser.Root(), true)
	return browser
}

// restoreSavedDir navigates to the last browsed directory when it still
// exists strictly under the root. The separator is part of the prefix
// check so that a sibling like /home/ab does not pass for root /home/a.
func restoreSavedDir(b *Browser, rootDir, saved string) {
	if saved == "" || saved == rootDir {
		return
	}
	if !strings.HasPrefix(saved, rootDir+string(filepath.Separator)) {
		return
	}
	if exists, err := fsutils.DirExists(saved); err == nil && exists {
		b.goDir(saved)
	}
}
