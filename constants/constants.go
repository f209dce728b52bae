package constants

import "os"

// Pitch class spellings, index == pitch class (0=C ... 11=B).
// Flat spellings are tried first; that is how the corpus writes
// most chord symbols.
var NoteNames = []string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}
var NoteNamesSharp = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Chord quality indexes. Parsing scans QualitySuffixes in this order
// and the first hit wins, so order matters.
const (
	QualityMajor = iota
	QualityMinor
	QualityDominant
	QualityHalfDim
)

var QualityNames = []string{"Maj", "min", "dom", "half-dim"}

// QualitySuffixes[q] lists the literal quality tokens that map to quality q.
var QualitySuffixes = [][]string{
	{"j7", "6", "69"},
	{"-", "-7", "-6"},
	{"7", "79b", "7913"},
	{"m7b5"},
}

// NoChord is the corpus sentinel for "no harmony at this position".
const NoChord = "NC"

// Rhythm grid. One beat splits into 12 units so both 16ths and triplets
// land on integer positions; 4/4 gives 48 units per bar.
const (
	GridPerBeat = 12
	GridPerBar  = 48
)

// Default solo filter: 4/4 bebop and hardbop solos.
const (
	DefaultMelodyType = "SOLO"
	DefaultSignature  = "4/4"
)

var DefaultStyles = []string{"BEBOP", "HARDBOP"}

// Output artifact names inside the out dir.
const (
	SnapshotName = "dataset.gob"
	CSVName      = "dataset.csv"
	ManifestName = "manifest.json"
)

func GetDBPath() string {
	path := os.Getenv("WJD_DB_PATH")
	if path != "" {
		return path
	}
	return "data/wjazzd.db"
}

func GetOutDir() string {
	path := os.Getenv("BOPSET_OUT_DIR")
	if path != "" {
		return path
	}
	return "./out"
}
