package core

// Visual identifies what a draw request shows. Frontends map visuals to
// sprites or shapes using the session's asset set.
type Visual int

const (
	VisualGround Visual = iota
	VisualPipe
	VisualCoin
	VisualPlayer
	VisualDigit
	VisualGetReady
	VisualGameOver
)

// String returns a human-readable name for the visual.
func (v Visual) String() string {
	switch v {
	case VisualGround:
		return "Ground"
	case VisualPipe:
		return "Pipe"
	case VisualCoin:
		return "Coin"
	case VisualPlayer:
		return "Player"
	case VisualDigit:
		return "Digit"
	case VisualGetReady:
		return "GetReady"
	case VisualGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Layer orders draw requests. Lower layers are drawn first; the background is
// implicit and always painted by the frontend before layer 0.
type Layer int

const (
	LayerPipes   Layer = 5
	LayerGround  Layer = 6
	LayerCoins   Layer = 9
	LayerPlayer  Layer = 10
	LayerScore   Layer = 11
	LayerOverlay Layer = 12
)

// DrawRequest declares one visual at a screen position.
type DrawRequest struct {
	Visual Visual
	Frame  int  // animation frame, or digit value for VisualDigit
	Rect   Rect // destination in screen pixels
	FlipY  bool // draw upside down (top pipe, dying player)
	Layer  Layer
}
