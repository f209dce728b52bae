package e2e_test

import (
	"path/filepath"
	"testing"

	"github.com/jsphweid/bopset/dataset"
	bopdb "github.com/jsphweid/bopset/db"
	"github.com/jsphweid/bopset/model"
	"github.com/jsphweid/bopset/util"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func fixtureBeats(melid int, signature string, chords []string) []model.BeatEvent {
	var res []model.BeatEvent
	for i, c := range chords {
		res = append(res, model.BeatEvent{
			BeatID:    melid*1000 + i,
			MelID:     melid,
			Bar:       i/4 + 1,
			Beat:      i%4 + 1,
			Chord:     c,
			Signature: signature,
		})
	}
	return res
}

func createFixtureDB(t *testing.T, path string) {
	orm, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	assert.NoError(t, err)

	err = orm.AutoMigrate(
		&model.MelodyType{},
		&model.SoloInfo{},
		&model.BeatEvent{},
		&model.MelodyEvent{},
	)
	assert.NoError(t, err)

	types := []model.MelodyType{
		{MelID: 1, Type: "SOLO"},
		{MelID: 2, Type: "SOLO"},
		{MelID: 3, Type: "LICK"},
		{MelID: 4, Type: "SOLO"},
		{MelID: 5, Type: "SOLO"},
	}
	assert.NoError(t, orm.Create(&types).Error)

	infos := []model.SoloInfo{
		{MelID: 1, Key: "F", AvgTempo: util.NullFloat(230), Performer: "Charlie Parker", Style: "BEBOP", Title: "Ko-Ko"},
		{MelID: 2, Key: "Bb", AvgTempo: util.NullFloat(180), Performer: "Clifford Brown", Style: "HARDBOP", Title: "Sandu"},
		{MelID: 3, Key: "C", Performer: "Someone", Style: "BEBOP", Title: "Lick"},
		{MelID: 4, Key: "C", Performer: "Someone Else", Style: "SWING", Title: "Other"},
		{MelID: 5, Key: "C", Performer: "Waltz Player", Style: "BEBOP", Title: "Threes"},
	}
	assert.NoError(t, orm.Create(&infos).Error)

	var beats []model.BeatEvent
	// solo 1 opens with two pickup beats before the first stated chord
	beats = append(beats, fixtureBeats(1, "4/4", []string{"", "", "C7", "", "F-7", "", "", ""})...)
	beats = append(beats, fixtureBeats(2, "4/4", []string{"Bb7", "", "", "Ebj7"})...)
	beats = append(beats, fixtureBeats(3, "4/4", []string{"C7", ""})...)
	beats = append(beats, fixtureBeats(4, "4/4", []string{"C7", ""})...)
	beats = append(beats, fixtureBeats(5, "3/4", []string{"C7", "", ""})...)
	assert.NoError(t, orm.Create(&beats).Error)

	melody := []model.MelodyEvent{
		{EventID: 1, MelID: 1, Pitch: util.NullFloat(63), Onset: util.NullFloat(0.1),
			Duration: util.NullFloat(0.2), Bar: 1, Beat: 1,
			Tatum: util.NullFloat(1), Division: util.NullFloat(2), Beatdur: util.NullFloat(0.26)},
		{EventID: 2, MelID: 1, Pitch: util.NullFloat(65), Onset: util.NullFloat(0.62),
			Duration: util.NullFloat(0.13), Bar: 1, Beat: 2,
			Tatum: util.NullFloat(3), Division: util.NullFloat(4), Beatdur: util.NullFloat(0.26)},
		{EventID: 3, MelID: 2, Pitch: util.NullFloat(70), Onset: util.NullFloat(0.0),
			Duration: util.NullFloat(0.33), Bar: 1, Beat: 1,
			Tatum: util.NullFloat(1), Division: util.NullFloat(1), Beatdur: util.NullFloat(0.33)},
	}
	assert.NoError(t, orm.Create(&melody).Error)
}

func TestBuildAndWriteFromFixtureCorpus(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "wjazzd.db")
	createFixtureDB(t, dbPath)

	cfg := model.DefaultConfig()
	cfg.DBPath = dbPath
	cfg.OutDir = filepath.Join(dir, "out")

	source, err := bopdb.Open(cfg.DBPath)
	assert.NoError(t, err)

	melids, err := source.TargetSoloIDs(cfg.MelodyType, cfg.Styles, cfg.Signature)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2}, melids)

	res, err := dataset.NewBuilder(cfg, source).Build()
	assert.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(8+4, len(res.Rows))

	// pickup beats of solo 1 got the secondary dominant of C7
	assert.Equal("G7", res.Rows[0].Chord)
	assert.Equal(util.NullInt(7), res.Rows[0].ChordRoot)
	assert.Equal("C7", res.Rows[0].NextChord)

	// eventid 2: beat 2, tatum 3 of 4 -> pos (2-1)*12 + 6 = 18; dur 0.13/0.26 -> 6
	r := res.Rows[1]
	assert.Equal(util.NullInt(2), r.EventID)
	assert.Equal(18, r.PosGrid)
	assert.Equal(6, r.DurGrid)
	assert.Equal(2, r.PrevInterval) // 65 - 63

	// solo 2 rows carry their own metadata
	last := res.Rows[len(res.Rows)-1]
	assert.Equal(2, last.MelID)
	assert.Equal("Clifford Brown", last.Performer)
	assert.Equal(10, last.KeyCenter) // key "Bb"

	m, err := dataset.Write(cfg, res)
	assert.NoError(err)
	assert.Equal(2, m.NumSolos)
	assert.Equal(12, m.TotalRows)

	back, err := dataset.ReadSnapshot(filepath.Join(cfg.OutDir, "dataset.gob"))
	assert.NoError(err)
	assert.Equal(12, len(back))
}

func TestOpenFailsForMissingDatabase(t *testing.T) {
	_, err := bopdb.Open(filepath.Join(t.TempDir(), "nope.db"))
	assert.Error(t, err)
}
