package state

// Action is the base interface for all session mutations
type Action interface{}

type RevealAction struct{}

type SelectNextAction struct{}
type SelectPrevAction struct{}
type SelectIndexAction struct {
	Index int
}

type HelpToggleAction struct{}
type HelpHideAction struct{}

type ResizeAction struct {
	Width  int
	Height int
}

type QuitAction struct{}

// SuspendAction stops the viewer and returns to the shell (Ctrl-Z).
type SuspendAction struct{}
