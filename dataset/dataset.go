package dataset

import (
	"fmt"

	"github.com/jsphweid/bopset/model"
	"github.com/jsphweid/bopset/solo"
)

// SoloSource is what the builder needs from the corpus. db.DB satisfies
// it; tests substitute an in-memory source.
type SoloSource interface {
	TargetSoloIDs(melodyType string, styles []string, signature string) ([]int, error)
	LoadSolo(melid int) (model.RawSolo, error)
}

// SoloCount records how many rows one solo contributed.
type SoloCount struct {
	MelID int
	Rows  int
}

// Result is the built table plus per-solo bookkeeping for the manifest.
type Result struct {
	Rows  []model.Row
	Solos []SoloCount
}

// Builder runs the transformer over every solo matching the configured
// filter and concatenates the results, preserving melid order and
// within-solo row order.
type Builder struct {
	cfg         model.Config
	src         SoloSource
	transformer *solo.Transformer
}

func NewBuilder(cfg model.Config, src SoloSource) *Builder {
	return &Builder{
		cfg:         cfg,
		src:         src,
		transformer: solo.NewTransformer(cfg),
	}
}

func (b *Builder) Build() (*Result, error) {
	melids, err := b.src.TargetSoloIDs(b.cfg.MelodyType, b.cfg.Styles, b.cfg.Signature)
	if err != nil {
		return nil, err
	}

	var res Result
	for i, melid := range melids {
		fmt.Printf("Processing %v of %v solos (melid %v)\n", i+1, len(melids), melid)
		raw, err := b.src.LoadSolo(melid)
		if err != nil {
			return nil, err
		}
		rows := b.transformer.Run(raw)
		res.Rows = append(res.Rows, rows...)
		res.Solos = append(res.Solos, SoloCount{MelID: melid, Rows: len(rows)})
	}

	return &res, nil
}
