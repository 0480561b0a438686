//go:build windows

package app

// No SIGTSTP/SIGCONT on Windows; suspend is a no-op.
func (app *Application) suspendToShell() {
}

func (app *Application) resumeAfterStop() bool {
	return false
}
