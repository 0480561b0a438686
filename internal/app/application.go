package app

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/wordhunt/internal/state"
	inputui "github.com/kk-code-lab/wordhunt/internal/ui/input"
	renderui "github.com/kk-code-lab/wordhunt/internal/ui/render"
)

// Application is the full-screen puzzle viewer.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.Session
	reducer    *statepkg.SessionReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	shouldQuit bool
}

// NewApplication opens the terminal screen for session.
func NewApplication(session *statepkg.Session) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	return newApplication(screen, session), nil
}

func newApplication(screen tcell.Screen, session *statepkg.Session) *Application {
	w, h := screen.Size()
	session.ScreenWidth = w
	session.ScreenHeight = h

	actionCh := make(chan statepkg.Action, 10)
	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetState(session)

	return &Application{
		screen:   screen,
		state:    session,
		reducer:  statepkg.NewSessionReducer(),
		renderer: renderui.NewRenderer(screen),
		input:    inputHandler,
		actionCh: actionCh,
	}
}

// Close cleans up resources.
func (app *Application) Close() error {
	app.screen.Fini()
	return nil
}

// Session returns the session the viewer operates on.
func (app *Application) Session() *statepkg.Session {
	return app.state
}
