package editor

// Confirmer asks the user a yes/no question. Implementations must return
// false when the prompt is dismissed without an explicit choice.
type Confirmer interface {
	Confirm(title, message string) bool
}

// Prompter asks the user for a line of text. ok is false when the prompt
// was cancelled or dismissed.
type Prompter interface {
	PromptText(title, hint string) (text string, ok bool)
}

// Notifier receives fire-and-forget messages for display. It is purely
// observational and never part of control flow.
type Notifier interface {
	Notify(text string)
	NotifyErr(err error)
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(title, message string) bool

func (f ConfirmFunc) Confirm(title, message string) bool {
	return f(title, message)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Notify(string)   {}
func (NopNotifier) NotifyErr(error) {}
