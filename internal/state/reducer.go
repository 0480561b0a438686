package state

import "fmt"

// SessionReducer applies actions to a Session.
type SessionReducer struct{}

// NewSessionReducer creates a reducer.
func NewSessionReducer() *SessionReducer {
	return &SessionReducer{}
}

// Reduce applies an action to the session and returns it.
func (r *SessionReducer) Reduce(s *Session, action Action) (*Session, error) {
	switch a := action.(type) {
	case RevealAction:
		s.Reveal()
		s.SelectedIndex = 0
		return s, nil

	case SelectNextAction:
		if !s.Revealed || len(s.Results) == 0 {
			return s, nil
		}
		if s.SelectedIndex < len(s.Results)-1 {
			s.SelectedIndex++
		}
		return s, nil

	case SelectPrevAction:
		if !s.Revealed || len(s.Results) == 0 {
			return s, nil
		}
		if s.SelectedIndex > 0 {
			s.SelectedIndex--
		}
		return s, nil

	case SelectIndexAction:
		if !s.Revealed || a.Index < 0 || a.Index >= len(s.Results) {
			return s, nil
		}
		s.SelectedIndex = a.Index
		return s, nil

	case HelpToggleAction:
		s.HelpVisible = !s.HelpVisible
		return s, nil

	case HelpHideAction:
		s.HelpVisible = false
		return s, nil

	case ResizeAction:
		s.ScreenWidth = a.Width
		s.ScreenHeight = a.Height
		return s, nil

	case QuitAction:
		s.Quit = true
		return s, nil

	case SuspendAction:
		// Handled by the application loop; nothing to record.
		return s, nil

	default:
		err := fmt.Errorf("unknown action: %T", action)
		debugf("reduce: %v", err)
		return s, err
	}
}
