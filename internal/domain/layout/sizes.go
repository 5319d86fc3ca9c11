package layout

import (
	"math"
	"slices"

	"github.com/bnema/dockyard/internal/domain/entity"
)

const (
	// MinSize is the smallest share a split child may hold.
	MinSize = 0.1
	// NewPaneShare is the share given to a pane docked against an edge.
	NewPaneShare = 0.35
	// ExistingShare is what the previous content keeps after an edge dock.
	ExistingShare = 1 - NewPaneShare

	// SizeTolerance bounds the drift allowed when summing shares.
	SizeTolerance = 1e-6
)

func equalSizes(n int) []float64 {
	if n == 0 {
		return nil
	}
	sizes := make([]float64, n)
	for i := range sizes {
		sizes[i] = 1 / float64(n)
	}
	return sizes
}

// floorFor returns the effective minimum share for n children. Past ten
// children the fixed floor cannot hold, so every child gets an equal share.
func floorFor(n int) float64 {
	if n == 0 {
		return 0
	}
	return math.Min(MinSize, 1/float64(n))
}

// normalizeSizes rescales shares to sum to 1 and lifts every share to the
// floor. Negative or non-finite entries count as zero; an all-zero input
// yields equal shares.
func normalizeSizes(sizes []float64) []float64 {
	n := len(sizes)
	if n == 0 {
		return nil
	}

	out := make([]float64, n)
	total := 0.0
	for i, s := range sizes {
		if s > 0 && !math.IsInf(s, 0) && !math.IsNaN(s) {
			out[i] = s
			total += s
		}
	}
	if total <= 0 {
		return equalSizes(n)
	}
	for i := range out {
		out[i] /= total
	}
	return clampFloor(out)
}

// clampFloor pins shares under the floor to it and redistributes the rest
// proportionally among the others, repeating until no share falls under.
// Input must already sum to 1.
func clampFloor(sizes []float64) []float64 {
	n := len(sizes)
	floor := floorFor(n)
	pinned := make([]bool, n)

	for {
		free := 1.0
		freeSum := 0.0
		unpinned := 0
		for i, s := range sizes {
			if pinned[i] {
				free -= floor
				continue
			}
			freeSum += s
			unpinned++
		}

		share := func(s float64) float64 {
			if freeSum <= 0 {
				return free / float64(unpinned)
			}
			return s / freeSum * free
		}

		changed := false
		for i, s := range sizes {
			if !pinned[i] && share(s) < floor-SizeTolerance {
				pinned[i] = true
				changed = true
			}
		}
		if changed {
			continue
		}

		out := make([]float64, n)
		for i, s := range sizes {
			if pinned[i] {
				out[i] = floor
			} else {
				out[i] = share(s)
			}
		}
		return out
	}
}

// SetSplitSizes replaces the shares of the split with the given id.
// Shares are normalized and floor-clamped. The tree is unchanged when the
// id is unknown, names a tabs container, or the count does not match.
func SetSplitSizes(node entity.LayoutNode, splitID string, sizes []float64) entity.LayoutNode {
	return rewrite(node, splitID, func(n entity.LayoutNode) entity.LayoutNode {
		split, ok := n.(*entity.SplitNode)
		if !ok || len(sizes) != len(split.Children) {
			return n
		}
		normalized := normalizeSizes(sizes)
		if slices.Equal(normalized, split.Sizes) {
			return n
		}
		return &entity.SplitNode{
			ID:        split.ID,
			Direction: split.Direction,
			Children:  split.Children,
			Sizes:     normalized,
		}
	})
}
