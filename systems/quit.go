package systems

var quitRequested bool

// RequestQuit asks the game loop to stop after the current frame.
func RequestQuit() {
	quitRequested = true
}

func QuitRequested() bool {
	return quitRequested
}
