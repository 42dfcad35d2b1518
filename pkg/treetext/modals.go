package treetext

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/moesbr-222/tree-text-editor/pkg/editor"
)

var _ editor.Confirmer = (*Browser)(nil)
var _ editor.Prompter = (*Browser)(nil)
var _ editor.Notifier = (*Browser)(nil)

// queueUpdate schedules f on the UI goroutine. Before the application
// runs there is no event loop yet, so f executes inline.
func (b *Browser) queueUpdate(f func()) {
	if b.queueUpdateDraw != nil {
		b.queueUpdateDraw(f)
		return
	}
	f()
}

const confirmPage = "confirm"
const promptPage = "prompt"

// Confirm shows a yes/no modal and blocks until the user decides.
// Dismissing the modal counts as no. Must not be called from the UI
// goroutine; editor commands run in their own goroutine.
func (b *Browser) Confirm(title, message string) bool {
	result := make(chan bool, 1)
	b.queueUpdate(func() {
		modal := tview.NewModal().
			SetText(title + "\n\n" + message).
			AddButtons([]string{"Yes", "No"}).
			SetDoneFunc(func(_ int, label string) {
				b.pages.RemovePage(confirmPage)
				b.app.SetFocus(b.list)
				result <- label == "Yes"
			})
		b.pages.AddPage(confirmPage, modal, true, true)
		b.app.SetFocus(modal)
	})
	return <-result
}

// PromptText shows a one-line input and blocks until the user submits
// or cancels. Same goroutine restriction as Confirm.
func (b *Browser) PromptText(title, hint string) (string, bool) {
	type answer struct {
		text string
		ok   bool
	}
	result := make(chan answer, 1)
	b.queueUpdate(func() {
		input := tview.NewInputField().
			SetLabel(title + ": ").
			SetPlaceholder(hint).
			SetFieldWidth(40)
		input.SetDoneFunc(func(key tcell.Key) {
			b.pages.RemovePage(promptPage)
			b.app.SetFocus(b.list)
			if key == tcell.KeyEnter {
				result <- answer{text: input.GetText(), ok: true}
				return
			}
			result <- answer{}
		})
		input.SetBorder(true)

		// Center the input box over the main page.
		row := tview.NewFlex().
			AddItem(nil, 0, 1, false).
			AddItem(input, 50, 0, true).
			AddItem(nil, 0, 1, false)
		box := tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(row, 3, 0, true).
			AddItem(nil, 0, 1, false)
		b.pages.AddPage(promptPage, box, true, true)
		b.app.SetFocus(input)
	})
	a := <-result
	return a.text, a.ok
}

// Notify shows a transient message in the status bar. Safe to call from
// command goroutines; the session uses it for success notifications.
func (b *Browser) Notify(text string) {
	b.queueUpdate(func() {
		b.showStatus(text)
	})
}

// NotifyErr shows an error in the status bar. Errors are recoverable at
// this boundary, never fatal. Safe to call from command goroutines.
func (b *Browser) NotifyErr(err error) {
	if err == nil {
		return
	}
	b.queueUpdate(func() {
		b.showError(err)
	})
}

// showStatus and showError mutate widgets and must run on the UI
// goroutine only.

func (b *Browser) showStatus(text string) {
	b.status.SetTextColor(tcell.ColorSlateGray)
	b.status.SetText(text)
}

func (b *Browser) showError(err error) {
	b.status.SetTextColor(tcell.ColorRed)
	b.status.SetText(err.Error())
}
