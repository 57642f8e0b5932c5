package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithPlayers sets who plays each side.
func (b *ConfigBuilder) WithPlayers(white, black PlayerKind) *ConfigBuilder {
	b.cfg.Players.White = white
	b.cfg.Players.Black = black
	return b
}

// WithSeed sets the random player seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Players.Seed = seed
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Limits.StartFEN = fen
	return b
}

// WithMaxPlies sets the ply limit.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.Limits.MaxPlies = n
	return b
}

// WithDeadPositionStop ends games that neither side can win.
func (b *ConfigBuilder) WithDeadPositionStop(enabled bool) *ConfigBuilder {
	b.cfg.Limits.StopOnDeadPosition = enabled
	return b
}

// WithFlip draws the board from Black's side.
func (b *ConfigBuilder) WithFlip(enabled bool) *ConfigBuilder {
	b.cfg.Display.Flip = enabled
	return b
}

// WithIndex controls the board indices.
func (b *ConfigBuilder) WithIndex(enabled bool) *ConfigBuilder {
	b.cfg.Display.Index = enabled
	return b
}

// WithColour enables coloured squares.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Display.Colour = enabled
	return b
}

// WithBoardDisplay controls whether the board is drawn after each move.
func (b *ConfigBuilder) WithBoardDisplay(enabled bool) *ConfigBuilder {
	b.cfg.Display.ShowBoard = enabled
	return b
}

// WithPerft selects perft mode.
func (b *ConfigBuilder) WithPerft(depth, workers int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Workers = workers
	return b
}

// WithGameName sets the game label.
func (b *ConfigBuilder) WithGameName(name string) *ConfigBuilder {
	b.cfg.GameName = name
	return b
}

// WithInput sets the input reader.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.InputFile = r
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
