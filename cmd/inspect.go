package cmd

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/jsphweid/bopset/db"
	"github.com/jsphweid/bopset/model"
	"github.com/jsphweid/bopset/solo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <melid>",
	Short: "Inspects one transformed solo",
	Long:  `Runs the pipeline on a single solo and prints its rows.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(runInspect(args[0]))
	},
}

func runInspect(arg string) error {
	melid, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("melid must be an integer, got %v", arg)
	}

	cfg := model.DefaultConfig()
	source, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}

	raw, err := source.LoadSolo(melid)
	if err != nil {
		return err
	}

	rows := solo.NewTransformer(cfg).Run(raw)

	fmt.Printf("melid %v: %v / %v (%v, key %v)\n",
		melid, raw.Info.Performer, raw.Info.Title, raw.Info.Style, raw.Info.Key)
	fmt.Printf("%v beat events, %v melody events, %v output rows\n",
		len(raw.Beats), len(raw.Melody), len(rows))

	for _, r := range rows {
		fmt.Printf("bar %3d beat %v pos %2d dur %2d pitch %4s chord %-7s next %-7s rel %s\n",
			r.Bar, r.Beat, r.PosGrid, r.DurGrid,
			fmtOpt(r.Pitch), r.Chord, r.NextChord, fmtOpt(r.ChordRelPitch))
	}
	return nil
}

func fmtOpt(v sql.NullInt64) string {
	if !v.Valid {
		return "-"
	}
	return strconv.FormatInt(v.Int64, 10)
}
