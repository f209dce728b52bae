package cmd

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/jsphweid/bopset/constants"
	"github.com/jsphweid/bopset/dataset"
	"github.com/jsphweid/bopset/model"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long:  `Summarizes the last built snapshot.`,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(runReport())
	},
}

type snapshotReport struct {
	numRows         int
	numSolos        int
	numNotes        int
	numRests        int
	rowsByPerformer map[string]int
	rowsByStyle     map[string]int
}

func analyzeSnapshot(rows []model.Row) snapshotReport {
	report := snapshotReport{
		rowsByPerformer: make(map[string]int),
		rowsByStyle:     make(map[string]int),
	}

	melids := make(map[int]bool)
	for _, r := range rows {
		report.numRows += 1
		melids[r.MelID] = true
		if r.Pitch.Valid {
			report.numNotes += 1
		} else {
			report.numRests += 1
		}
		report.rowsByPerformer[r.Performer] += 1
		report.rowsByStyle[r.Style] += 1
	}
	report.numSolos = len(melids)
	return report
}

func printSorted(label string, m map[string]int) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %v %v: %v\n", label, k, m[k])
	}
}

func runReport() error {
	path := filepath.Join(constants.GetOutDir(), constants.SnapshotName)
	rows, err := dataset.ReadSnapshot(path)
	if err != nil {
		return err
	}

	report := analyzeSnapshot(rows)
	fmt.Printf("report.numRows: %v\n", report.numRows)
	fmt.Printf("report.numSolos: %v\n", report.numSolos)
	fmt.Printf("report.numNotes: %v\n", report.numNotes)
	fmt.Printf("report.numRests: %v\n", report.numRests)
	printSorted("performer", report.rowsByPerformer)
	printSorted("style", report.rowsByStyle)
	return nil
}
