package engine

import (
	"math"
	"strconv"

	"github.com/kalexmills/gratesheet/formula"
	"github.com/kalexmills/gratesheet/formulaerror"
	"github.com/kalexmills/gratesheet/position"
)

// formulaMarker introduces a formula expression; escapeMarker makes a
// text literal out of what would otherwise look like one.
const (
	formulaMarker = '='
	escapeMarker  = '\''
)

// CellValue is the public result of reading a cell: exactly one of
// Number, Text, or Err is meaningful, distinguished by Kind.
type CellValue struct {
	Kind   ValueKind
	Number float64
	Text   string
	Err    formulaerror.FormulaError
}

// ValueKind tags which field of a CellValue is populated.
type ValueKind int

const (
	KindNumber ValueKind = iota
	KindText
	KindError
)

func numberValue(n float64) CellValue { return CellValue{Kind: KindNumber, Number: n} }
func textValue(s string) CellValue    { return CellValue{Kind: KindText, Text: s} }
func errorValue(e formulaerror.FormulaError) CellValue {
	return CellValue{Kind: KindError, Err: e}
}

// String renders a CellValue the way Sheet.PrintValues does: a number
// in default float formatting, a string verbatim, an error as its code.
func (v CellValue) String() string {
	switch v.Kind {
	case KindNumber:
		return formatNumber(v.Number)
	case KindText:
		return v.Text
	case KindError:
		return v.Err.Error()
	default:
		return ""
	}
}

// content is the tagged CellContent variant: exactly one of empty,
// text, or formula holds the cell's current state. Only the formula
// variant memoizes; cache validity is tracked by cacheValid rather than
// a pointer-nilness check so isCacheValid can distinguish "never
// evaluated" from "evaluated to zero".
type content struct {
	kind contentKind

	text string // raw text for Text content

	expr    formula.Formula // parsed formula for Formula content
	exprSrc string          // canonical "=<expr>" text, cached at construction

	cacheValid bool
	cache      CellValue
}

type contentKind int

const (
	contentEmpty contentKind = iota
	contentText
	contentFormula
)

// classify builds the candidate content for a raw Set(text) call,
// following the classification rules verbatim from the edit protocol:
// empty string -> Empty; "=" alone -> Text("="); "=" followed by more
// -> Formula; anything else -> Text.
func classify(text string) (content, error) {
	if text == "" {
		return content{kind: contentEmpty}, nil
	}
	if text[0] == formulaMarker {
		if len(text) == 1 {
			return content{kind: contentText, text: text}, nil
		}
		f, err := formula.Parse(text[1:])
		if err != nil {
			return content{}, newFormulaParseError(text, err)
		}
		return content{kind: contentFormula, expr: f, exprSrc: "=" + f.Expression()}, nil
	}
	return content{kind: contentText, text: text}, nil
}

// referencedPositions returns the sorted, deduplicated positions this
// content's formula (if any) references. Empty/Text content references
// nothing.
func (c content) referencedPositions() []position.Position {
	if c.kind != contentFormula {
		return nil
	}
	return c.expr.ReferencedCells()
}

// textOf returns the content's GetText() value.
func (c content) textOf() string {
	switch c.kind {
	case contentEmpty:
		return ""
	case contentText:
		return c.text
	case contentFormula:
		return c.exprSrc
	default:
		return ""
	}
}

// valueOf computes (or returns the cached) CellValue. lookup resolves a
// referenced position to a number; it is only invoked for Formula
// content.
func (c *content) valueOf(lookup formula.Lookup) CellValue {
	switch c.kind {
	case contentEmpty:
		return textValue("")
	case contentText:
		if c.text != "" && c.text[0] == escapeMarker {
			return textValue(c.text[1:])
		}
		return textValue(c.text)
	case contentFormula:
		if c.cacheValid {
			return c.cache
		}
		n, ferr := c.expr.Evaluate(lookup)
		var v CellValue
		if ferr != nil {
			v = errorValue(*ferr)
		} else {
			v = numberValue(n)
		}
		c.cache = v
		c.cacheValid = true
		return v
	default:
		return textValue("")
	}
}

// hasCacheConcept reports whether this content variant memoizes at all;
// Empty/Text never do, so invalidation has nothing to clear in them,
// but the propagation signal still passes through them.
func (c content) hasCacheConcept() bool {
	return c.kind == contentFormula
}

// invalidate clears a Formula content's cache. It is a no-op for
// Empty/Text, and a no-op if the cache is already clear (callers should
// check isCacheValid first to get the correct pruning behavior).
func (c *content) invalidate() {
	if c.kind == contentFormula {
		c.cacheValid = false
		c.cache = CellValue{}
	}
}

func (c content) isCacheValid() bool {
	return c.kind == contentFormula && c.cacheValid
}

// formatNumber renders a float64 the way a spreadsheet cell's number
// value is conventionally printed: integral values with no trailing
// decimal point, everything else in Go's shortest round-trip form.
func formatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
