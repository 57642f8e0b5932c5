package config

// DisplayConfig holds settings related to board display.
type DisplayConfig struct {
	// Flip draws the board from Black's side
	Flip bool

	// Index prints file letters and rank numbers around the board
	Index bool

	// Colour paints square backgrounds with terminal colours
	Colour bool

	// ShowBoard redraws the board after every move
	ShowBoard bool

	// ShowCaptured prints the captured pieces under the board
	ShowCaptured bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Index:        true,
		ShowBoard:    true,
		ShowCaptured: true,
	}
}
