package config

// OutputConfig holds settings related to result output.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text lines
	JSONFormat bool

	// ShowBoard prints the final board after each script
	ShowBoard bool

	// SVGFile receives an SVG rendering of the final board when set
	SVGFile string

	// Filename is the result file; empty means the configured writer
	Filename string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard: true,
	}
}
