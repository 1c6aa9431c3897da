package engine

import (
	"github.com/kalexmills/gratesheet/position"
)

// Cell is one grid slot. It owns its content and its two adjacency
// sets: outgoing (cells this cell's content currently references) and
// incoming (cells whose content currently references this one). Both
// sets hold Cell identities, never copies, so the mirror property
// (B in A.outgoing iff A in B.incoming) is maintained by construction
// at every edit.
type Cell struct {
	pos     position.Position
	sheet   *Sheet
	content content

	outgoing map[*Cell]struct{}
	incoming map[*Cell]struct{}
}

func newCell(sheet *Sheet, pos position.Position) *Cell {
	return &Cell{
		pos:      pos,
		sheet:    sheet,
		content:  content{kind: contentEmpty},
		outgoing: make(map[*Cell]struct{}),
		incoming: make(map[*Cell]struct{}),
	}
}

// Set classifies text, checks the edit for cycles, and only if both
// succeed commits the new content, rewires the dependency graph, and
// invalidates downstream caches. On any error the cell's prior content
// and graph edges are completely unchanged.
func (c *Cell) Set(text string) error {
	candidate, err := classify(text)
	if err != nil {
		return err
	}

	refs := candidate.referencedPositions()
	if c.wouldCycle(refs) {
		return newCircularDependencyError(c.pos)
	}

	c.content = candidate
	c.relink(refs)
	c.invalidateCache()
	return nil
}

// Clear replaces the cell's content with Empty, preserving incoming
// edges (callers that still reference this cell must keep resolving to
// zero, not to a dangling handle). Sheet.ClearCell is responsible for
// dropping the storage slot once IsReferenced is false.
func (c *Cell) Clear() {
	if c.content.kind == contentEmpty {
		return
	}
	c.content = content{kind: contentEmpty}
	c.relink(nil)
	c.invalidateCache()
}

// GetValue computes (memoizing Formula results) the cell's current
// value, resolving any references through the owning Sheet's lookup
// contract.
func (c *Cell) GetValue() CellValue {
	return c.content.valueOf(c.sheet.lookup)
}

// GetText returns the cell's raw textual form.
func (c *Cell) GetText() string {
	return c.content.textOf()
}

// GetReferencedCells returns the ascending, deduplicated positions the
// cell's current content references.
func (c *Cell) GetReferencedCells() []position.Position {
	return c.content.referencedPositions()
}

// IsReferenced reports whether any cell currently depends on this one.
func (c *Cell) IsReferenced() bool {
	return len(c.incoming) > 0
}

// relink brings outgoing/incoming up to date with refs, the position
// list of the cell's already-committed content. Referenced positions
// not yet present in the Sheet are materialized here, after the edit
// is already known to be cycle-free.
func (c *Cell) relink(refs []position.Position) {
	newOutgoing := make(map[*Cell]struct{}, len(refs))
	for _, pos := range refs {
		target := c.sheet.materialize(pos)
		newOutgoing[target] = struct{}{}
	}
	for old := range c.outgoing {
		if _, stillReferenced := newOutgoing[old]; !stillReferenced {
			delete(old.incoming, c)
		}
	}
	for target := range newOutgoing {
		target.incoming[c] = struct{}{}
	}
	c.outgoing = newOutgoing
}

// wouldCycle walks forward from c along *incoming* edges; if any
// visited cell resolves to one of refs (or refs contains c's own
// position, a self-reference), installing content with these
// references would create a cycle. Positions in refs that have no
// existing Cell cannot participate in a pre-existing cycle, so they
// are simply absent from the target set built below. No
// materialization happens here.
func (c *Cell) wouldCycle(refs []position.Position) bool {
	if len(refs) == 0 {
		return false
	}
	targets := make(map[*Cell]struct{}, len(refs))
	for _, pos := range refs {
		if pos == c.pos {
			return true
		}
		if target := c.sheet.lookupCell(pos); target != nil {
			targets[target] = struct{}{}
		}
	}
	if len(targets) == 0 {
		return false
	}

	visited := map[*Cell]struct{}{c: {}}
	stack := []*Cell{c}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for dep := range cur.incoming {
			if _, seen := visited[dep]; seen {
				continue
			}
			if _, hit := targets[dep]; hit {
				return true
			}
			visited[dep] = struct{}{}
			stack = append(stack, dep)
		}
	}
	return false
}

// invalidateCache clears this cell's own cache (Set/Clear always
// invalidate the edited cell, whether or not it held a valid cache),
// then walks every cell that depends on it via propagateInvalidate,
// which prunes as soon as it reaches a cell with nothing left to
// invalidate.
func (c *Cell) invalidateCache() {
	c.content.invalidate()
	for dep := range c.incoming {
		dep.propagateInvalidate()
	}
}

// propagateInvalidate is the recursive step of the invalidation walk.
// Empty/Text cells have no cache to clear but still propagate the
// signal onward; Formula cells prune the walk once their own cache is
// already invalid, which keeps the walk linear in the transitively
// dirty set.
func (c *Cell) propagateInvalidate() {
	if c.content.hasCacheConcept() && !c.content.isCacheValid() {
		return
	}
	c.content.invalidate()
	for dep := range c.incoming {
		dep.propagateInvalidate()
	}
}
