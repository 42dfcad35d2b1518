package treetext

import (
	"context"

	"github.com/moesbr-222/tree-text-editor/pkg/files"
	"github.com/moesbr-222/tree-text-editor/pkg/treetext/edstate"
)

var saveCurrentFileName = edstate.SaveCurrentFileName

// Editor commands run off the UI goroutine because they may suspend on
// a confirmation modal. The inFlight flag keeps one command at a time;
// input is dropped while a command runs.

func (b *Browser) runCommand(command func(ctx context.Context)) {
	if !b.inFlight.CompareAndSwap(false, true) {
		return
	}
	go func() {
		command(context.Background())
		b.inFlight.Store(false)
	}()
}

func (b *Browser) openFile(entry files.Entry) {
	b.runCommand(func(ctx context.Context) {
		err := b.session.Open(ctx, entry)
		b.queueUpdate(func() {
			if err != nil {
				b.showError(err)
				return
			}
			if openFile := b.session.OpenFile(); openFile != nil {
				b.textArea.SetText(b.session.Buffer(), false)
				saveCurrentFileName(openFile.Name())
			}
			b.renderEditorTitle()
			b.app.SetFocus(b.textArea)
		})
	})
}

func (b *Browser) saveFile() {
	b.runCommand(func(ctx context.Context) {
		err := b.session.Save(ctx)
		b.queueUpdate(func() {
			if err != nil {
				b.showError(err)
			}
			b.renderEditorTitle()
		})
	})
}

func (b *Browser) deleteFile(entry files.Entry) {
	b.runCommand(func(ctx context.Context) {
		err := b.session.Delete(ctx, entry)
		b.queueUpdate(func() {
			if err != nil {
				b.showError(err)
			}
			if b.session.OpenFile() == nil {
				b.textArea.SetText("", false)
			}
			b.renderEditorTitle()
			b.rescan()
		})
	})
}

func (b *Browser) promptNewFile() {
	b.runCommand(func(ctx context.Context) {
		name, ok := b.PromptText("New file", "name.txt")
		if !ok || name == "" {
			return
		}
		_, err := b.session.Create(ctx, b.currentDir, name)
		b.queueUpdate(func() {
			if err != nil {
				b.showError(err)
				return
			}
			b.rescan()
		})
	})
}
