package solo

import (
	"database/sql"
	"math"

	"github.com/jsphweid/bopset/chord"
	"github.com/jsphweid/bopset/model"
	"github.com/jsphweid/bopset/util"
)

// Transformer runs the per-solo pipeline: flatten the three record sets
// into one beat-indexed row slice, resolve harmony, then derive the
// rhythmic, melodic and harmonic feature columns. Every stage is a total
// pass over the rows; malformed annotations degrade to documented
// defaults and never abort a solo.
type Transformer struct {
	cfg model.Config
}

func NewTransformer(cfg model.Config) *Transformer {
	return &Transformer{cfg: cfg}
}

// row is the working shape: the output row plus the annotation fields
// that only feed grid math and get dropped at projection.
type row struct {
	model.Row
	tatum    sql.NullFloat64
	division sql.NullFloat64
	beatdur  sql.NullFloat64
}

// Run transforms one solo into its final rows. The result has exactly one
// row per beat event, in (bar, beat) order.
func (t *Transformer) Run(raw model.RawSolo) []model.Row {
	rows := t.flatten(raw)
	t.alignChords(rows)
	t.addLookahead(rows)
	t.fillPickup(rows)
	t.addRhythmicFeatures(rows)
	t.addMelodicFeatures(rows)
	t.addHarmonicFeatures(rows, raw.Info.Key)
	return project(rows)
}

// flatten uses beats as the base so no metric position is dropped, then
// left-joins melody on exact (bar, beat) and broadcasts the solo metadata
// onto every row. The corpus has at most one melody event per beat
// position; should that ever not hold, the first by eventid wins.
func (t *Transformer) flatten(raw model.RawSolo) []row {
	type pos struct {
		bar  int
		beat int
	}

	melodyAt := make(map[pos]model.MelodyEvent)
	for _, ev := range raw.Melody {
		k := pos{ev.Bar, ev.Beat}
		if _, ok := melodyAt[k]; !ok {
			melodyAt[k] = ev
		}
	}

	rows := make([]row, 0, len(raw.Beats))
	for _, b := range raw.Beats {
		var r row
		r.MelID = raw.MelID
		r.BeatID = b.BeatID
		r.Bar = b.Bar
		r.Beat = b.Beat
		r.ChorusID = b.ChorusID
		r.Chord = b.Chord
		r.Signature = b.Signature

		if ev, ok := melodyAt[pos{b.Bar, b.Beat}]; ok {
			r.EventID = util.NullInt(int64(ev.EventID))
			r.Pitch = util.IntFromFloat(ev.Pitch)
			r.Onset = ev.Onset
			r.Duration = ev.Duration
			r.tatum = ev.Tatum
			r.division = ev.Division
			r.beatdur = ev.Beatdur
		}

		r.Key = raw.Info.Key
		r.AvgTempo = raw.Info.AvgTempo
		r.Performer = raw.Info.Performer
		r.Style = raw.Info.Style
		r.Title = raw.Info.Title

		rows = append(rows, r)
	}
	return rows
}

// alignChords parses every row's chord text, then sweeps forward so each
// row inherits the most recently stated chord. Rows before the first
// stated chord stay unresolved; fillPickup handles them. Idempotent on
// already-aligned input.
func (t *Transformer) alignChords(rows []row) {
	for i := range rows {
		if c, ok := chord.Parse(rows[i].Chord); ok {
			rows[i].ChordRoot = util.NullInt(int64(c.Root))
			rows[i].ChordQuality = util.NullInt(int64(c.Quality))
		}
	}

	last := -1
	for i := range rows {
		if rows[i].Chord != "" {
			last = i
		}
		if last >= 0 && last != i {
			rows[i].Chord = rows[last].Chord
			rows[i].ChordRoot = rows[last].ChordRoot
			rows[i].ChordQuality = rows[last].ChordQuality
		}
	}
}

// addLookahead sweeps backward assigning each row the chord of the next
// distinct chord region. The final region's rows point at themselves.
func (t *Transformer) addLookahead(rows []row) {
	n := len(rows)
	if n == 0 {
		return
	}

	cur := rows[n-1].Chord
	next := n - 1
	for i := n - 1; i >= 0; i-- {
		if rows[i].Chord != cur {
			next = i + 1
			cur = rows[i].Chord
		}
		rows[i].NextChord = rows[next].Chord
		rows[i].NextChordRoot = rows[next].ChordRoot
		rows[i].NextChordQuality = rows[next].ChordQuality
	}
}

// fillPickup harmonizes rows preceding the first real chord with the
// secondary dominant of that chord. A solo with no real chord anywhere
// keeps its harmony unresolved throughout.
func (t *Transformer) fillPickup(rows []row) {
	first := -1
	for i := range rows {
		if chord.IsValid(rows[i].Chord) {
			first = i
			break
		}
	}
	if first <= 0 {
		return
	}

	root := 0
	if rows[first].ChordRoot.Valid {
		root = int(rows[first].ChordRoot.Int64)
	}
	dom := chord.SecondaryDominant(root)
	symbol := chord.Symbol(dom.Root)

	for i := 0; i < first; i++ {
		rows[i].Chord = symbol
		rows[i].ChordRoot = util.NullInt(int64(dom.Root))
		rows[i].ChordQuality = util.NullInt(int64(dom.Quality))
	}
}

func (t *Transformer) addRhythmicFeatures(rows []row) {
	for i := range rows {
		rows[i].PosGrid = t.positionGrid(rows[i].Beat, rows[i].tatum, rows[i].division)
		rows[i].DurGrid = t.durationGrid(rows[i].Duration, rows[i].beatdur)
	}
}

// positionGrid quantizes a metric position onto the bar grid:
// (beat-1)*12 + round((tatum-1)/division*12), clipped to [0, 47].
func (t *Transformer) positionGrid(beat int, tatum, division sql.NullFloat64) int {
	tat := util.SafeInt(tatum, 1)
	div := util.SafeInt(division, 1)
	if div == 0 {
		div = 1
	}

	sub := math.Round(float64(tat-1) / float64(div) * float64(t.cfg.GridPerBeat))
	pos := (beat-1)*t.cfg.GridPerBeat + int(sub)
	return util.Clip(pos, 0, t.cfg.GridPerBar-1)
}

// durationGrid converts a duration in seconds to grid units via the beat
// duration, clipped to [1, 48]. Missing or zero-length beats short-circuit
// to the minimum duration.
func (t *Transformer) durationGrid(duration, beatdur sql.NullFloat64) int {
	if !duration.Valid || !beatdur.Valid || beatdur.Float64 == 0 {
		return 1
	}

	ratio := util.SafeDivide(duration.Float64, beatdur.Float64, 1.0)
	g := int(math.Round(ratio * float64(t.cfg.GridPerBeat)))
	return util.Clip(g, 1, t.cfg.GridPerBar)
}

// addMelodicFeatures sets the semitone interval from the previous row's
// pitch. The first row, and any row where either pitch is missing, gets 0.
func (t *Transformer) addMelodicFeatures(rows []row) {
	for i := range rows {
		if i == 0 || !rows[i].Pitch.Valid || !rows[i-1].Pitch.Valid {
			continue
		}
		rows[i].PrevInterval = int(rows[i].Pitch.Int64 - rows[i-1].Pitch.Int64)
	}
}

// addHarmonicFeatures parses the solo key once for key_center, reserves
// key_shift at 0, and derives the chord-relative pitch class. A row with
// no resolved chord gets relative pitch 0; a resolved chord under a rest
// leaves it absent.
func (t *Transformer) addHarmonicFeatures(rows []row, key string) {
	keyCenter := 0
	if c, ok := chord.Parse(key); ok {
		keyCenter = c.Root
	}

	for i := range rows {
		rows[i].KeyCenter = keyCenter
		rows[i].KeyShift = 0

		switch {
		case !rows[i].ChordRoot.Valid:
			rows[i].ChordRelPitch = util.NullInt(0)
		case rows[i].Pitch.Valid:
			rel := ((rows[i].Pitch.Int64-rows[i].ChordRoot.Int64)%12 + 12) % 12
			rows[i].ChordRelPitch = util.NullInt(rel)
		}
	}
}

// project retains only the output column set; working annotation fields
// (tatum, division, beatdur) fall away here. Column types are already
// normalized by the Row struct itself: nullable ints as sql.NullInt64,
// times and tempo as floats, text as strings.
func project(rows []row) []model.Row {
	res := make([]model.Row, len(rows))
	for i := range rows {
		res[i] = rows[i].Row
	}
	return res
}
