package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// MaxLineLength wraps move lists
	MaxLineLength int

	// UseColour renders the board with terminal colours
	UseColour bool

	// ShowBoard prints the board after the moves are applied
	ShowBoard bool

	// ShowLegalMoves lists the legal moves of the side to move
	ShowLegalMoves bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MaxLineLength:  80,
		UseColour:      true,
		ShowBoard:      true,
		ShowLegalMoves: true,
	}
}
