package dataset

import (
	"encoding/csv"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/bopset/constants"
	"github.com/jsphweid/bopset/model"
)

// Manifest describes one build run, written next to the snapshot.
type Manifest struct {
	RunID      string      `json:"runId"`
	DBPath     string      `json:"dbPath"`
	MelodyType string      `json:"melodyType"`
	Styles     []string    `json:"styles"`
	Signature  string      `json:"signature"`
	NumSolos   int         `json:"numSolos"`
	TotalRows  int         `json:"totalRows"`
	Solos      []SoloCount `json:"solos"`
}

// Write persists a build result into cfg.OutDir: a gob snapshot, a CSV
// rendering, and a JSON manifest tagged with a fresh run id.
func Write(cfg model.Config, res *Result) (Manifest, error) {
	var m Manifest

	if err := os.MkdirAll(cfg.OutDir, 0777); err != nil {
		return m, fmt.Errorf("could not create output dir: %w", err)
	}

	if err := WriteSnapshot(filepath.Join(cfg.OutDir, constants.SnapshotName), res.Rows); err != nil {
		return m, err
	}
	if err := WriteCSV(filepath.Join(cfg.OutDir, constants.CSVName), res.Rows); err != nil {
		return m, err
	}

	m = Manifest{
		RunID:      uuid.New().String(),
		DBPath:     cfg.DBPath,
		MelodyType: cfg.MelodyType,
		Styles:     cfg.Styles,
		Signature:  cfg.Signature,
		NumSolos:   len(res.Solos),
		TotalRows:  len(res.Rows),
		Solos:      res.Solos,
	}
	if err := writeManifest(filepath.Join(cfg.OutDir, constants.ManifestName), m); err != nil {
		return m, err
	}

	return m, nil
}

func WriteSnapshot(path string, rows []model.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create snapshot %v: %w", path, err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(rows); err != nil {
		return fmt.Errorf("could not encode snapshot: %w", err)
	}
	return nil
}

func ReadSnapshot(path string) ([]model.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open snapshot %v: %w", path, err)
	}
	defer f.Close()

	var rows []model.Row
	if err := gob.NewDecoder(f).Decode(&rows); err != nil {
		return nil, fmt.Errorf("could not decode snapshot: %w", err)
	}
	return rows, nil
}

func WriteCSV(path string, rows []model.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create csv %v: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(model.Columns()); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.Write(r.Record()); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeManifest(path string, m Manifest) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create manifest %v: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}
