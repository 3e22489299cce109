package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat writes board state as JSON instead of a text diagram
	JSONFormat bool `env:"DICECHESS_JSON"`

	// ShowBoard writes the board after every applied chain
	ShowBoard bool `env:"DICECHESS_SHOW_BOARD"`

	// NoColor disables coloured status lines
	NoColor bool `env:"NO_COLOR"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{}
}
