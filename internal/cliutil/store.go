package cliutil

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/kalexmills/gratesheet"
)

// ErrMalformedLine is wrapped by LoadSheet for a script line that isn't
// "<position>\t<text>".
var ErrMalformedLine = fmt.Errorf("malformed sheet script line")

// LoadSheet reads a sheet script file, one "<A1>\t<text>" line per
// non-empty cell, into a fresh Sheet. A missing file yields an empty
// Sheet, matching a brand-new spreadsheet.
func LoadSheet(path string) (*gratesheet.Sheet, error) {
	sheet := gratesheet.CreateSheet()

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return sheet, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "opening sheet file %q", path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		addr, text, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, errors.Wrapf(ErrMalformedLine, "%s:%d: %q", path, lineNo, line)
		}
		pos, err := gratesheet.ParsePosition(addr)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d: parsing position %q", path, lineNo, addr)
		}
		if err := sheet.SetCell(pos, text); err != nil {
			return nil, errors.Wrapf(err, "%s:%d: setting %s", path, lineNo, addr)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading sheet file %q", path)
	}
	return sheet, nil
}

// SaveSheet writes every non-empty cell in sheet back to path in the
// same "<A1>\t<text>" format LoadSheet reads.
func SaveSheet(path string, sheet *gratesheet.Sheet) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating sheet file %q", path)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, pos := range sortedPositions(sheet) {
		cell, err := sheet.GetCell(pos)
		if err != nil || cell == nil {
			continue
		}
		text := cell.GetText()
		if text == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", pos.String(), text); err != nil {
			return errors.Wrapf(err, "writing sheet file %q", path)
		}
	}
	return w.Flush()
}

func sortedPositions(sheet *gratesheet.Sheet) []gratesheet.Position {
	positions := sheet.Positions()
	for i := 1; i < len(positions); i++ {
		for j := i; j > 0 && positions[j-1].Compare(positions[j]) > 0; j-- {
			positions[j-1], positions[j] = positions[j], positions[j-1]
		}
	}
	return positions
}
