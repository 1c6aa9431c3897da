package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kalexmills/gratesheet/internal/cliutil"
)

var (
	sheetFile string
	verbose   bool
	log       *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:           "gratesheet",
	Short:         "A command-line front end for the gratesheet cell engine",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = cliutil.NewLogger(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sheetFile, "sheet", "sheet.tsv", "sheet script file to read and write")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(setCmd, getCmd, clearCmd, printCmd)
}
