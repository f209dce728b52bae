package model

import "database/sql"

// Source records, mapped 1:1 onto the wjazzd SQLite schema. Numeric
// annotation columns that can be absent in the corpus are sql.Null types
// so that "missing" survives loading instead of collapsing to 0.

type MelodyEvent struct {
	EventID  int             `gorm:"column:eventid;primaryKey"`
	MelID    int             `gorm:"column:melid"`
	Pitch    sql.NullFloat64 `gorm:"column:pitch"`
	Onset    sql.NullFloat64 `gorm:"column:onset"`
	Duration sql.NullFloat64 `gorm:"column:duration"`
	Bar      int             `gorm:"column:bar"`
	Beat     int             `gorm:"column:beat"`
	Tatum    sql.NullFloat64 `gorm:"column:tatum"`
	Division sql.NullFloat64 `gorm:"column:division"`
	Beatdur  sql.NullFloat64 `gorm:"column:beatdur"`
}

func (MelodyEvent) TableName() string { return "melody" }

type BeatEvent struct {
	BeatID    int           `gorm:"column:beatid;primaryKey"`
	MelID     int           `gorm:"column:melid"`
	Bar       int           `gorm:"column:bar"`
	Beat      int           `gorm:"column:beat"`
	Chord     string        `gorm:"column:chord"`
	Signature string        `gorm:"column:signature"`
	ChorusID  sql.NullInt64 `gorm:"column:chorus_id"`
}

func (BeatEvent) TableName() string { return "beats" }

type SoloInfo struct {
	MelID     int             `gorm:"column:melid;primaryKey"`
	Key       string          `gorm:"column:key"`
	AvgTempo  sql.NullFloat64 `gorm:"column:avgtempo"`
	Performer string          `gorm:"column:performer"`
	Style     string          `gorm:"column:style"`
	Title     string          `gorm:"column:title"`
}

func (SoloInfo) TableName() string { return "solo_info" }

type MelodyType struct {
	MelID int    `gorm:"column:melid"`
	Type  string `gorm:"column:type"`
}

func (MelodyType) TableName() string { return "melody_type" }

// RawSolo bundles the three record sets of one solo as loaded from the
// database: melody ordered by eventid, beats ordered by (bar, beat).
type RawSolo struct {
	MelID  int
	Melody []MelodyEvent
	Beats  []BeatEvent
	Info   SoloInfo
}
