package midi

import (
	"fmt"
	"os"
	"sort"

	"github.com/jsphweid/bopset/model"
	"github.com/jsphweid/bopset/util"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	ticksPerQuarter = 480
	defaultTempo    = 120.0
	velocity        = 90
)

type noteEvent struct {
	ticks uint64
	off   bool
	key   uint8
}

// Render turns a transformed solo into a single-track SMF for auditioning.
// Note timing comes from the grid features: one grid unit is 1/12 of a
// quarter note (40 ticks at 480 TPQ), so the rendering reflects exactly
// what the quantization kept, not the original onset seconds.
func Render(rows []model.Row, gridPerBar, gridPerBeat int) *smf.SMF {
	ticksPerGrid := ticksPerQuarter / gridPerBeat

	tempo := defaultTempo
	minBar := 0
	if len(rows) > 0 {
		minBar = rows[0].Bar
	}
	for _, r := range rows {
		if r.Bar < minBar {
			minBar = r.Bar
		}
		if tempo == defaultTempo && r.AvgTempo.Valid && r.AvgTempo.Float64 > 0 {
			tempo = r.AvgTempo.Float64
		}
	}

	var events []noteEvent
	for _, r := range rows {
		if !r.Pitch.Valid {
			continue
		}
		start := uint64((r.Bar-minBar)*gridPerBar+r.PosGrid) * uint64(ticksPerGrid)
		end := start + uint64(r.DurGrid*ticksPerGrid)
		key := uint8(util.Clip(r.Pitch.Int64, 0, 127))
		events = append(events,
			noteEvent{ticks: start, off: false, key: key},
			noteEvent{ticks: end, off: true, key: key},
		)
	}

	// note-offs first on ties so repeated pitches retrigger
	sort.Slice(events, func(i, j int) bool {
		if events[i].ticks != events[j].ticks {
			return events[i].ticks < events[j].ticks
		}
		return events[i].off && !events[j].off
	})

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(tempo))
	var prev uint64
	for _, ev := range events {
		delta := uint32(ev.ticks - prev)
		prev = ev.ticks
		if ev.off {
			tr.Add(delta, midi.NoteOff(0, ev.key))
		} else {
			tr.Add(delta, midi.NoteOn(0, ev.key, velocity))
		}
	}
	tr.Close(0)
	s.Add(tr)

	return s
}

// WriteFile saves the rendered SMF.
func WriteFile(s *smf.SMF, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create midi file %v: %w", path, err)
	}
	defer f.Close()

	if _, err := s.WriteTo(f); err != nil {
		return fmt.Errorf("could not write midi file %v: %w", path, err)
	}
	return nil
}
