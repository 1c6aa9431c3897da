// Package gratesheet is the public façade over the cell engine: it
// re-exports the Sheet factory and the interfaces a library consumer
// needs, since the engine itself lives under internal/ and cannot be
// imported directly from outside this module.
package gratesheet

import (
	"github.com/kalexmills/gratesheet/formulaerror"
	"github.com/kalexmills/gratesheet/internal/engine"
	"github.com/kalexmills/gratesheet/position"
)

// Position is a (row, column) coordinate; see package position.
type Position = position.Position

// FormulaError is a closed evaluation-failure category; see package
// formulaerror.
type FormulaError = formulaerror.FormulaError

// CellValue is the tagged result of reading a cell.
type CellValue = engine.CellValue

// Cell is the read surface exposed for a single grid slot.
type Cell = engine.CellHandle

// Sheet is the grid container: sets, reads, clears cells, and renders
// the printable rectangle.
type Sheet = engine.Sheet

// CreateSheet returns a new, empty Sheet.
func CreateSheet() *Sheet {
	return engine.CreateSheet()
}

// ParsePosition parses the A1-style textual form of a Position.
func ParsePosition(s string) (Position, error) {
	return position.Parse(s)
}
