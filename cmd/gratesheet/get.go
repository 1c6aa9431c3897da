package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kalexmills/gratesheet"
	"github.com/kalexmills/gratesheet/internal/cliutil"
)

var getCmd = &cobra.Command{
	Use:   "get <A1>",
	Short: "Print a single cell's value and text",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	pos, err := gratesheet.ParsePosition(args[0])
	if err != nil {
		return err
	}

	sheet, err := cliutil.LoadSheet(sheetFile)
	if err != nil {
		return err
	}

	cell, err := sheet.GetCell(pos)
	if err != nil {
		return err
	}
	if cell == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "(empty)")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", cell.GetText(), cell.GetValue())
	return nil
}
