package cmd

import (
	"fmt"

	"github.com/jsphweid/bopset/dataset"
	"github.com/jsphweid/bopset/db"
	"github.com/jsphweid/bopset/model"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the dataset",
	Long:  `Extracts all matching solos, derives features and writes snapshot, csv and manifest.`,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(runBuild())
	},
}

func runBuild() error {
	cfg := model.DefaultConfig()

	source, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}

	res, err := dataset.NewBuilder(cfg, source).Build()
	if err != nil {
		return err
	}

	m, err := dataset.Write(cfg, res)
	if err != nil {
		return err
	}

	fmt.Printf("Processed %v rows across %v solos\n", m.TotalRows, m.NumSolos)
	fmt.Printf("Saved outputs to %v (run %v)\n", cfg.OutDir, m.RunID)
	return nil
}
