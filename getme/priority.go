package getme

import (
	"fmt"
	"io"
	"math"

	"github.com/google/btree"
	"github.com/meshforge/blocksmoother/blockmesh"
)

// qualityItem is one (quality, CellId) entry of the ordered quality_map of
// spec.md 3/4.5/9. CellId breaks ties between equal-quality cells so the
// btree, which treats mutually-non-Less items as equal, never collapses two
// distinct cells' entries into one.
type qualityItem struct {
	quality float64
	cell    blockmesh.CellId
}

func lessQualityItem(a, b qualityItem) bool {
	if a.quality != b.quality {
		return a.quality < b.quality
	}
	return a.cell < b.cell
}

// qualityIndex is the ordered quality_map plus the cell_quality map,
// maintaining the invariant of spec.md 3: for every CellId c, exactly one
// (k, c) entry exists in the tree with k == cellQuality[c].
type qualityIndex struct {
	tree         *btree.BTreeG[qualityItem]
	cellQuality  map[blockmesh.CellId]float64
	log          io.Writer
}

func newQualityIndex(log io.Writer) *qualityIndex {
	return &qualityIndex{
		tree:        btree.NewG(32, lessQualityItem),
		cellQuality: make(map[blockmesh.CellId]float64),
		log:         log,
	}
}

// insert adds a fresh (quality, cell) entry. Used to build the initial
// priority state, and by refresh for a cell it does not yet track; refresh
// is used for all subsequent updates.
func (qi *qualityIndex) insert(cell blockmesh.CellId, quality float64) {
	qi.tree.ReplaceOrInsert(qualityItem{quality: quality, cell: cell})
	qi.cellQuality[cell] = quality
}

// min returns the worst (lowest-key) cell currently in the index.
func (qi *qualityIndex) min() (blockmesh.CellId, float64, bool) {
	item, ok := qi.tree.Min()
	if !ok {
		return 0, 0, false
	}
	return item.cell, item.quality, true
}

// findByApproxKey scans the ordered range [oldKey-eps, oldKey+eps] for the
// unique entry belonging to cell, mirroring the original's
// my_equal_range + linear scan over the multimap (spec.md 4.5 step 4,
// design notes 9). Returns false, logging a defensive "cell not found"
// message, if the invariant has somehow been violated.
func (qi *qualityIndex) findByApproxKey(oldKey float64, cell blockmesh.CellId) (qualityItem, bool) {
	var found qualityItem
	ok := false
	lo := qualityItem{quality: oldKey - Epsilon, cell: math.MinInt}
	hi := qualityItem{quality: oldKey + Epsilon, cell: math.MaxInt}
	qi.tree.AscendRange(lo, hi, func(it qualityItem) bool {
		if it.cell == cell {
			found = it
			ok = true
			return false
		}
		return true
	})
	if !ok && qi.log != nil {
		fmt.Fprintf(qi.log, "cell not found: %d at key %g\n", cell, oldKey)
	}
	return found, ok
}

// refresh updates cell's stored key to newKey, replacing its entry in the
// tree. It looks the old entry up by approximate key the way the original
// std::multimap implementation does, rather than deleting by the
// (oldKey, cell) pair directly, so the "cell not found" defensive branch of
// spec.md 7 is reachable exactly the way the spec describes.
func (qi *qualityIndex) refresh(cell blockmesh.CellId, newKey float64) {
	oldKey, ok := qi.cellQuality[cell]
	if !ok {
		// Cell has never been inserted; treat as a fresh insert.
		qi.insert(cell, newKey)
		return
	}
	item, found := qi.findByApproxKey(oldKey, cell)
	if found {
		qi.tree.Delete(item)
	}
	qi.tree.ReplaceOrInsert(qualityItem{quality: newKey, cell: cell})
	qi.cellQuality[cell] = newKey
}

// len returns the number of tracked cells, for tests.
func (qi *qualityIndex) len() int {
	return qi.tree.Len()
}
