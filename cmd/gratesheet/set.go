package main

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kalexmills/gratesheet"
	"github.com/kalexmills/gratesheet/internal/cliutil"
)

var setCmd = &cobra.Command{
	Use:   "set <A1> <text>",
	Short: "Set a cell's text, which may be a bare value or a =formula",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	pos, text, err := parseSetArgs(args)
	if err != nil {
		return err
	}

	sheet, err := cliutil.LoadSheet(sheetFile)
	if err != nil {
		return err
	}

	if err := sheet.SetCell(pos, text); err != nil {
		log.WithFields(logrus.Fields{"cell": pos.String(), "op": "set", "text": text}).Warn(err)
		return err
	}
	log.WithFields(logrus.Fields{"cell": pos.String(), "op": "set", "text": text}).Info("cell updated")

	return cliutil.SaveSheet(sheetFile, sheet)
}

// parseSetArgs accepts either two args ("A1", "text") or a single
// "A1=expr" argument as shorthand for a formula, so a shell invocation
// doesn't need to quote the leading '='.
func parseSetArgs(args []string) (gratesheet.Position, string, error) {
	if len(args) >= 2 {
		pos, err := gratesheet.ParsePosition(args[0])
		if err != nil {
			return gratesheet.Position{}, "", err
		}
		return pos, strings.Join(args[1:], " "), nil
	}
	addr, expr, ok := strings.Cut(args[0], "=")
	if !ok {
		pos, err := gratesheet.ParsePosition(args[0])
		if err != nil {
			return gratesheet.Position{}, "", err
		}
		return pos, "", nil
	}
	pos, err := gratesheet.ParsePosition(addr)
	if err != nil {
		return gratesheet.Position{}, "", err
	}
	return pos, "=" + expr, nil
}
