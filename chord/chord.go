package chord

import (
	"strings"

	"github.com/jsphweid/bopset/constants"
)

// Chord is a canonical (root pitch class, quality index) pair.
type Chord struct {
	Root    int // 0-11, 0=C
	Quality int // constants.QualityMajor..QualityHalfDim
}

// IsValid reports whether the symbol names an actual harmony, i.e. is
// neither empty nor the no-chord sentinel.
func IsValid(symbol string) bool {
	return symbol != "" && symbol != constants.NoChord
}

// Parse extracts root and quality from a chord symbol like "Ebj7", "F-7"
// or "Gm7b5". It is total over strings: ok is false only for empty/NC
// input, and unrecognized root or quality tokens degrade to pitch class 0
// and Major rather than failing. Annotation typos must never halt a batch.
func Parse(symbol string) (Chord, bool) {
	if !IsValid(symbol) {
		return Chord{}, false
	}

	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return Chord{}, false
	}

	var root, quality string
	if len(symbol) >= 2 && (symbol[1] == '#' || symbol[1] == 'b') {
		root = symbol[:2]
		quality = symbol[2:]
	} else {
		root = symbol[:1]
		quality = symbol[1:]
	}

	var c Chord
	c.Root = rootPitchClass(root)
	c.Quality = qualityIndex(quality)
	return c, true
}

// SecondaryDominant returns the dominant chord a perfect fifth above the
// target root, used to harmonize pickup measures.
func SecondaryDominant(targetRoot int) Chord {
	return Chord{
		Root:    (targetRoot + 7) % 12,
		Quality: constants.QualityDominant,
	}
}

// Symbol spells a secondary-dominant style chord as text, e.g. root 7 -> "G7".
func Symbol(root int) string {
	return constants.NoteNames[((root%12)+12)%12] + "7"
}

func rootPitchClass(root string) int {
	for i, name := range constants.NoteNames {
		if root == name {
			return i
		}
	}
	for i, name := range constants.NoteNamesSharp {
		if root == name {
			return i
		}
	}
	return 0
}

func qualityIndex(quality string) int {
	for idx, suffixes := range constants.QualitySuffixes {
		for _, s := range suffixes {
			if quality == s {
				return idx
			}
		}
	}
	return constants.QualityMajor
}
