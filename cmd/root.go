package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bopset",
	Short: "Bebop solo dataset builder",
	Long:  `Builds a per-note feature table from the Weimar Jazz Database for sequence-model training.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
