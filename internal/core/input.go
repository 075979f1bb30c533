package core

// Action is a semantic input intent, abstracted from physical keys and clicks.
type Action int

const (
	ActionNone       Action = iota
	ActionJump              // Space, Up, W, left click
	ActionConfirm           // Enter - start a run from the menu
	ActionPause             // P, Escape - pause/resume
	ActionRestart           // R - restart from pause or game over
	ActionMute              // M - toggle music
	ActionScreenshot        // Ctrl+S
	ActionQuit              // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionMute:
		return "Mute"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
