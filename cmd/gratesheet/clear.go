package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kalexmills/gratesheet"
	"github.com/kalexmills/gratesheet/internal/cliutil"
)

var clearCmd = &cobra.Command{
	Use:   "clear <A1>",
	Short: "Clear a cell, dropping it entirely once nothing references it",
	Args:  cobra.ExactArgs(1),
	RunE:  runClear,
}

func runClear(cmd *cobra.Command, args []string) error {
	pos, err := gratesheet.ParsePosition(args[0])
	if err != nil {
		return err
	}

	sheet, err := cliutil.LoadSheet(sheetFile)
	if err != nil {
		return err
	}

	if err := sheet.ClearCell(pos); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"cell": pos.String(), "op": "clear"}).Info("cell cleared")

	return cliutil.SaveSheet(sheetFile, sheet)
}
