package model

import (
	"database/sql"
	"strconv"
)

// Row is one output record: a beat position joined with at most one
// melody event, plus broadcast solo metadata and derived features.
// sql.Null fields are nullable: invalid means the value is genuinely
// absent (a rest, an unresolved chord), distinct from zero. The Null
// wrappers also survive the gob snapshot, where a plain pointer to a
// zero value would not.
type Row struct {
	EventID  sql.NullInt64
	MelID    int
	BeatID   int
	Bar      int
	Beat     int
	ChorusID sql.NullInt64

	Pitch    sql.NullInt64
	Onset    sql.NullFloat64
	Duration sql.NullFloat64

	PosGrid      int
	DurGrid      int
	PrevInterval int

	Chord            string
	ChordRoot        sql.NullInt64
	ChordQuality     sql.NullInt64
	NextChord        string
	NextChordRoot    sql.NullInt64
	NextChordQuality sql.NullInt64
	ChordRelPitch    sql.NullInt64
	KeyCenter        int
	KeyShift         int

	Key       string
	AvgTempo  sql.NullFloat64
	Performer string
	Style     string
	Title     string
	Signature string
}

// Columns is the output column order, fixed for every sink.
func Columns() []string {
	return []string{
		"eventid", "melid", "beatid",
		"bar", "beat", "chorus_id",
		"pitch", "onset", "duration",
		"pos_grid", "dur_grid",
		"prev_interval",
		"chord", "chord_root", "chord_quality",
		"next_chord", "next_chord_root", "next_chord_quality",
		"chord_rel_pitch", "key_center", "key_shift",
		"key", "avgtempo", "performer", "style", "title", "signature",
	}
}

// Record renders the row in Columns() order for delimited output.
// Absent values render as empty cells.
func (r Row) Record() []string {
	return []string{
		optInt(r.EventID),
		strconv.Itoa(r.MelID),
		strconv.Itoa(r.BeatID),
		strconv.Itoa(r.Bar),
		strconv.Itoa(r.Beat),
		optInt(r.ChorusID),
		optInt(r.Pitch),
		optFloat(r.Onset),
		optFloat(r.Duration),
		strconv.Itoa(r.PosGrid),
		strconv.Itoa(r.DurGrid),
		strconv.Itoa(r.PrevInterval),
		r.Chord,
		optInt(r.ChordRoot),
		optInt(r.ChordQuality),
		r.NextChord,
		optInt(r.NextChordRoot),
		optInt(r.NextChordQuality),
		optInt(r.ChordRelPitch),
		strconv.Itoa(r.KeyCenter),
		strconv.Itoa(r.KeyShift),
		r.Key,
		optFloat(r.AvgTempo),
		r.Performer,
		r.Style,
		r.Title,
		r.Signature,
	}
}

func optInt(v sql.NullInt64) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatInt(v.Int64, 10)
}

func optFloat(v sql.NullFloat64) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float64, 'g', -1, 64)
}
