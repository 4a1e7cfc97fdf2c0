package tui

// Key bindings.
const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyEnter    = "enter"
	keyEsc      = "esc"
	keySlash    = "/"
	keyUp       = "up"
	keyDown     = "down"
	keyK        = "k"
	keyJ        = "j"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
	keyDownload = "d"
	keyPgUp     = "pgup"
	keyPgDown   = "pgdown"
)
