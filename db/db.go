package db

import (
	"fmt"
	"os"

	"github.com/jsphweid/bopset/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is read-only access to a wjazzd SQLite corpus.
type DB struct {
	orm *gorm.DB
}

// Open connects to the corpus at path. A missing or unreadable file is
// fatal before any processing starts; the pipeline never partially
// recovers from a bad source.
func Open(path string) (*DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("database not found at %v: %w", path, err)
	}

	orm, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("could not open database %v: %w", path, err)
	}

	return &DB{orm: orm}, nil
}

// TargetSoloIDs returns the melids of solos matching melody type, style
// allow-list and time signature, ascending.
func (d *DB) TargetSoloIDs(melodyType string, styles []string, signature string) ([]int, error) {
	var melids []int
	err := d.orm.Raw(`
		SELECT DISTINCT m.melid
		FROM melody_type m
		JOIN solo_info s ON m.melid = s.melid
		JOIN beats b ON m.melid = b.melid
		WHERE m.type = ?
		AND s.style IN ?
		AND b.signature = ?
		ORDER BY m.melid`,
		melodyType, styles, signature,
	).Scan(&melids).Error
	if err != nil {
		return nil, fmt.Errorf("could not query target melids: %w", err)
	}
	return melids, nil
}

// LoadSolo returns the three record sets of one solo: melody ordered by
// eventid, beats ordered by (bar, beat), and its metadata record.
func (d *DB) LoadSolo(melid int) (model.RawSolo, error) {
	raw := model.RawSolo{MelID: melid}

	err := d.orm.
		Where("melid = ?", melid).
		Order("eventid").
		Find(&raw.Melody).Error
	if err != nil {
		return raw, fmt.Errorf("could not load melody for melid %v: %w", melid, err)
	}

	err = d.orm.
		Where("melid = ?", melid).
		Order("bar, beat").
		Find(&raw.Beats).Error
	if err != nil {
		return raw, fmt.Errorf("could not load beats for melid %v: %w", melid, err)
	}

	err = d.orm.
		Where("melid = ?", melid).
		Take(&raw.Info).Error
	if err != nil {
		return raw, fmt.Errorf("could not load solo_info for melid %v: %w", melid, err)
	}

	return raw, nil
}
