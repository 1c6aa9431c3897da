package main

import (
	"github.com/spf13/cobra"

	"github.com/kalexmills/gratesheet/internal/cliutil"
)

var printTextsFlag bool

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the sheet's printable rectangle",
	Args:  cobra.NoArgs,
	RunE:  runPrint,
}

func init() {
	printCmd.Flags().BoolVar(&printTextsFlag, "texts", false, "print raw cell texts instead of computed values")
}

func runPrint(cmd *cobra.Command, args []string) error {
	sheet, err := cliutil.LoadSheet(sheetFile)
	if err != nil {
		return err
	}
	if printTextsFlag {
		return sheet.PrintTexts(cmd.OutOrStdout())
	}
	return sheet.PrintValues(cmd.OutOrStdout())
}
