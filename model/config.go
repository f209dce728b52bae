package model

import "github.com/jsphweid/bopset/constants"

// Config is the immutable run configuration handed to the builder and
// transformer at construction. Mutating a copy has no effect on a running
// pipeline.
type Config struct {
	DBPath string
	OutDir string

	MelodyType string
	Styles     []string
	Signature  string

	GridPerBeat int
	GridPerBar  int
}

func DefaultConfig() Config {
	return Config{
		DBPath:      constants.GetDBPath(),
		OutDir:      constants.GetOutDir(),
		MelodyType:  constants.DefaultMelodyType,
		Styles:      constants.DefaultStyles,
		Signature:   constants.DefaultSignature,
		GridPerBeat: constants.GridPerBeat,
		GridPerBar:  constants.GridPerBar,
	}
}
