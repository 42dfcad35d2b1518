package treetext

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/moesbr-222/tree-text-editor/pkg/editor"
	"github.com/moesbr-222/tree-text-editor/pkg/files"
	"github.com/moesbr-222/tree-text-editor/pkg/fsutils"
	"github.com/moesbr-222/tree-text-editor/pkg/gitmark"
	"github.com/moesbr-222/tree-text-editor/pkg/listing"
	"github.com/moesbr-222/tree-text-editor/pkg/treetext/edstate"
)

const parentEntryText = ".."

var saveCurrentDir = edstate.SaveCurrentDir

// Browser is the single-pane file list with the editor next to it. It
// owns the one edit session and serializes editor commands: a new
// command is ignored while another is in flight.
type Browser struct {
	*tview.Flex

	app     *tview.Application
	store   files.Store
	session *editor.Session

	currentDir string
	rootDir    string
	entries    listing.Listing
	marks      *gitmark.DirStatus

	pages    *tview.Pages
	list     *tview.List
	textArea *tview.TextArea
	header   *tview.TextView
	status   *tview.TextView

	// queueUpdateDraw is nil until the application event loop starts;
	// queueUpdate then executes callbacks inline.
	queueUpdateDraw func(func())

	inFlight atomic.Bool
}

func NewBrowser(app *tview.Application, store files.Store, rootDir string) *Browser {
	b := &Browser{
		app:     app,
		store:   store,
		rootDir: rootDir,
	}
	b.session = editor.NewSession(store, b, b)

	b.header = tview.NewTextView().SetDynamicColors(true)
	b.status = tview.NewTextView().SetDynamicColors(true).
		SetTextColor(tcell.ColorSlateGray)

	b.list = tview.NewList().ShowSecondaryText(false)
	b.list.SetBorder(true).SetTitle(store.RootTitle())
	b.list.SetSelectedFunc(func(int, string, string, rune) {
		b.activateSelection()
	})
	b.list.SetInputCapture(b.listInputCapture)

	b.textArea = tview.NewTextArea()
	b.textArea.SetBorder(true).SetTitle("No file open")
	b.textArea.SetChangedFunc(func() {
		b.session.Edit(b.textArea.GetText())
		b.renderEditorTitle()
	})
	b.textArea.SetInputCapture(b.editorInputCapture)

	columns := tview.NewFlex().
		AddItem(b.list, 0, 1, true).
		AddItem(b.textArea, 0, 2, false)

	b.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(b.header, 1, 0, false).
		AddItem(columns, 0, 1, true).
		AddItem(b.status, 1, 0, false)

	b.pages = tview.NewPages().AddPage("main", b.Flex, true, true)

	b.goDir(rootDir)
	return b
}

// Root returns the primitive to install as the application root.
func (b *Browser) Root() tview.Primitive {
	return b.pages
}

// goDir rescans dirPath and replaces the displayed listing. On a scan
// failure the previous listing stays on screen.
func (b *Browser) goDir(dirPath string) {
	ctx := context.Background()
	entries, err := listing.List(ctx, b.store, dirPath)
	if err != nil {
		// Keep the previous listing on screen, fail-soft.
		b.showError(err)
		return
	}
	b.currentDir = dirPath
	b.entries = entries
	b.marks = gitmark.Status(ctx, dirPath)
	saveCurrentDir(dirPath)
	b.renderList()
	b.renderHeader()
}

// rescan refreshes the current directory after a mutating operation.
func (b *Browser) rescan() {
	b.goDir(b.currentDir)
}

func (b *Browser) renderList() {
	b.list.Clear()
	if b.currentDir != b.rootDir {
		b.list.AddItem(parentEntryText, "", 0, nil)
	}
	for _, entry := range b.entries {
		b.list.AddItem(b.entryText(entry), "", 0, nil)
	}
}

func (b *Browser) entryText(entry files.Entry) string {
	var text string
	if entry.IsDir() {
		text = fmt.Sprintf("[lightskyblue]%s/[-]", entry.Name())
	} else {
		color := GetColorByFileExt(entry.Name())
		text = fmt.Sprintf("[#%06x]%s[-]", color.Hex(), entry.Name())
		if info, err := entry.Info(); err == nil && info != nil {
			text += fmt.Sprintf(" [gray]%s[-]", fsutils.GetSizeShortText(info.Size()))
		}
	}
	if mark := b.marks.Mark(entry.Name()); mark != "" {
		text += fmt.Sprintf(" [yellow]%s[-]", mark)
	}
	return text
}

func (b *Browser) renderHeader() {
	text := b.currentDir
	if b.marks != nil && b.marks.Branch != "" {
		text += fmt.Sprintf("  [darkgray]%s[-]", b.marks.Branch)
	}
	b.header.SetText(text)
}

func (b *Browser) renderEditorTitle() {
	openFile := b.session.OpenFile()
	if openFile == nil {
		b.textArea.SetTitle("No file open")
		return
	}
	title := openFile.Name()
	if b.session.IsDirty() {
		title += " [modified]"
	}
	b.textArea.SetTitle(title)
}

// selectedEntry returns the entry under the cursor, or nil for the
// parent item.
func (b *Browser) selectedEntry() *files.Entry {
	i := b.list.GetCurrentItem()
	if b.currentDir != b.rootDir {
		if i == 0 {
			return nil
		}
		i--
	}
	if i < 0 || i >= len(b.entries) {
		return nil
	}
	return &b.entries[i]
}

func (b *Browser) activateSelection() {
	entry := b.selectedEntry()
	if entry == nil {
		if b.currentDir != b.rootDir {
			b.goDir(filepath.Dir(b.currentDir))
		}
		return
	}
	if entry.IsDir() {
		b.goDir(entry.FullName())
		return
	}
	b.openFile(*entry)
}

func (b *Browser) listInputCapture(event *tcell.EventKey) *tcell.EventKey {
	if b.inFlight.Load() {
		return nil
	}
	switch {
	case event.Key() == tcell.KeyTab:
		b.app.SetFocus(b.textArea)
		return nil
	case event.Key() == tcell.KeyDelete, event.Rune() == 'd' && event.Modifiers()&tcell.ModAlt != 0:
		if entry := b.selectedEntry(); entry != nil && !entry.IsDir() {
			b.deleteFile(*entry)
		}
		return nil
	case event.Key() == tcell.KeyCtrlN:
		b.promptNewFile()
		return nil
	}
	return event
}

func (b *Browser) editorInputCapture(event *tcell.EventKey) *tcell.EventKey {
	if b.inFlight.Load() {
		return nil
	}
	switch event.Key() {
	case tcell.KeyTab:
		b.app.SetFocus(b.list)
		return nil
	case tcell.KeyCtrlS:
		b.saveFile()
		return nil
	}
	return event
}
