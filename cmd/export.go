package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/bopset/db"
	"github.com/jsphweid/bopset/midi"
	"github.com/jsphweid/bopset/model"
	"github.com/jsphweid/bopset/solo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <melid> <file.mid>",
	Short: "Exports one solo as MIDI",
	Long:  `Renders the quantized grid of a transformed solo to a Standard MIDI File.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(runExport(args[0], args[1]))
	},
}

func runExport(arg, outPath string) error {
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
	s := midi.Render(rows, cfg.GridPerBar, cfg.GridPerBeat)
	if err := midi.WriteFile(s, outPath); err != nil {
		return err
	}

	fmt.Printf("Exported melid %v (%v rows) to %v\n", melid, len(rows), outPath)
	return nil
}
