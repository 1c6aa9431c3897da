// Package engine implements the cell engine's core: CellContent
// variants, the Cell edit protocol, the bidirectional dependency
// graph, cycle detection, transitive cache invalidation, and the
// Sheet grid that owns every Cell.
package engine

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/kalexmills/gratesheet/formulaerror"
	"github.com/kalexmills/gratesheet/position"
)

// CellHandle is the read surface callers use once they have a *Cell
// from the Sheet; it is implemented by *Cell.
type CellHandle interface {
	GetValue() CellValue
	GetText() string
	GetReferencedCells() []position.Position
	IsReferenced() bool
}

// Sheet is the grid container: a sparse store of Cells keyed by
// Position. It owns every Cell it creates; Cells only ever hold
// non-owning pointers to their peers.
type Sheet struct {
	cells map[position.Position]*Cell
}

// CreateSheet returns a new, empty Sheet.
func CreateSheet() *Sheet {
	return &Sheet{cells: make(map[position.Position]*Cell)}
}

// SetCell validates pos, materializes the target Cell if absent, and
// delegates to Cell.Set. If Set fails, the Sheet is unchanged except
// that a freshly materialized Empty cell at pos may remain; it has no
// observable content effect.
func (s *Sheet) SetCell(pos position.Position, text string) error {
	if !pos.IsValid() {
		return newInvalidPositionError(pos)
	}
	cell := s.materialize(pos)
	return cell.Set(text)
}

// GetCell validates pos and returns the existing Cell, or nil if none
// is present.
func (s *Sheet) GetCell(pos position.Position) (CellHandle, error) {
	if !pos.IsValid() {
		return nil, newInvalidPositionError(pos)
	}
	cell, ok := s.cells[pos]
	if !ok {
		return nil, nil
	}
	return cell, nil
}

// ClearCell validates pos and, if a cell exists there, sets its content
// to Empty; if nothing references it afterward, the storage slot is
// dropped entirely rather than kept around as an empty placeholder.
// Cells the cleared content used to reference are dropped too when they
// are Empty and nothing references them any more.
func (s *Sheet) ClearCell(pos position.Position) error {
	if !pos.IsValid() {
		return newInvalidPositionError(pos)
	}
	cell, ok := s.cells[pos]
	if !ok {
		return nil
	}
	prevTargets := maps.Keys(cell.outgoing)
	cell.Clear()
	if !cell.IsReferenced() {
		delete(s.cells, pos)
	}
	for _, target := range prevTargets {
		if target.content.kind == contentEmpty && !target.IsReferenced() {
			delete(s.cells, target.pos)
		}
	}
	return nil
}

// GetPrintableSize returns the smallest rows x cols rectangle anchored
// at (0,0) that covers every cell whose text is non-empty.
func (s *Sheet) GetPrintableSize() (rows, cols int) {
	for pos, cell := range s.cells {
		if cell.GetText() == "" {
			continue
		}
		if pos.Row+1 > rows {
			rows = pos.Row + 1
		}
		if pos.Col+1 > cols {
			cols = pos.Col + 1
		}
	}
	return rows, cols
}

// PrintValues writes the printable rectangle's values, tab-separated
// within a row and newline-terminated per row. Absent cells print
// nothing between their surrounding tabs.
func (s *Sheet) PrintValues(w io.Writer) error {
	return s.print(w, func(c *Cell) string { return c.GetValue().String() })
}

// PrintTexts writes the printable rectangle's raw texts, same layout as
// PrintValues.
func (s *Sheet) PrintTexts(w io.Writer) error {
	return s.print(w, func(c *Cell) string { return c.GetText() })
}

func (s *Sheet) print(w io.Writer, render func(*Cell) string) error {
	rows, cols := s.GetPrintableSize()
	var sb strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c > 0 {
				sb.WriteByte('\t')
			}
			if cell, ok := s.cells[position.New(r, c)]; ok {
				sb.WriteString(render(cell))
			}
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// materialize returns the Cell at pos, creating it as Empty if absent.
// Called both by SetCell (the direct target) and by relink (a newly
// referenced position).
func (s *Sheet) materialize(pos position.Position) *Cell {
	if cell, ok := s.cells[pos]; ok {
		return cell
	}
	cell := newCell(s, pos)
	s.cells[pos] = cell
	return cell
}

// lookupCell returns the Cell at pos without materializing it, or nil.
// Used by the cycle checker, which must never mutate the Sheet ahead of
// a Set call that might still fail.
func (s *Sheet) lookupCell(pos position.Position) *Cell {
	return s.cells[pos]
}

// lookup is the function every Formula's Evaluate is given to resolve
// a referenced position to a number.
func (s *Sheet) lookup(pos position.Position) (float64, *formulaerror.FormulaError) {
	if !pos.IsValid() {
		e := formulaerror.NewRef()
		return 0, &e
	}
	cell, ok := s.cells[pos]
	if !ok {
		return 0, nil
	}
	v := cell.GetValue()
	switch v.Kind {
	case KindNumber:
		return v.Number, nil
	case KindError:
		return 0, &v.Err
	case KindText:
		if v.Text == "" {
			return 0, nil
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(v.Text), 64)
		if err != nil {
			e := formulaerror.NewValue()
			return 0, &e
		}
		return n, nil
	default:
		return 0, nil
	}
}

// CellCount reports how many cells are currently materialized; a small
// diagnostic for tests that inspect the sparse grid.
func (s *Sheet) CellCount() int {
	return len(s.cells)
}

// Positions returns every materialized position, for callers (the CLI's
// save path, tests) that need to enumerate the sparse grid directly
// rather than scanning the printable rectangle.
func (s *Sheet) Positions() []position.Position {
	return maps.Keys(s.cells)
}
