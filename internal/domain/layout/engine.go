// Package layout implements the dock layout tree engine: pure, copy-on-write
// transforms over entity.LayoutNode trees.
//
// Functions that only rearrange existing nodes are package-level. Functions
// that may create nodes hang off Engine, which owns the id generator.
// None of them fail: unknown panel or container ids leave the tree unchanged
// and the same root pointer is returned.
package layout

import (
	"fmt"
	"sync/atomic"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// IDGenerator returns a fresh node id for the given kind.
type IDGenerator func(kind entity.NodeKind) string

// Sequence hands out ids of the form "<kind>-<n>" from a single
// monotonically increasing counter shared by every node kind.
type Sequence struct {
	n atomic.Uint64
}

// NewSequence creates a counter starting at 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next implements IDGenerator.
func (s *Sequence) Next(kind entity.NodeKind) string {
	return fmt.Sprintf("%s-%d", kind, s.n.Add(1))
}

// DefaultSequence backs every Engine built without WithIDGenerator, so ids
// stay unique for the whole process.
var DefaultSequence = NewSequence()

// Engine builds new nodes and performs the tree rewrites that need them.
type Engine struct {
	newID IDGenerator
}

// Option configures an Engine.
type Option func(*Engine)

// WithIDGenerator replaces the process-wide sequence.
func WithIDGenerator(gen IDGenerator) Option {
	return func(e *Engine) {
		if gen != nil {
			e.newID = gen
		}
	}
}

// New creates an engine drawing ids from the process-wide sequence.
func New(opts ...Option) *Engine {
	e := &Engine{newID: DefaultSequence.Next}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MakeTabs creates a container holding exactly panelID, active.
func (e *Engine) MakeTabs(panelID string) *entity.TabsNode {
	return &entity.TabsNode{
		ID:          e.newID(entity.KindTabs),
		Tabs:        []string{panelID},
		ActiveTabID: panelID,
	}
}

// MakeSplit creates a split over children. Without sizes, or when the count
// does not match the children, space is shared equally.
func (e *Engine) MakeSplit(dir entity.Direction, children []entity.LayoutNode, sizes ...float64) *entity.SplitNode {
	var normalized []float64
	if len(sizes) == len(children) {
		normalized = normalizeSizes(sizes)
	} else {
		normalized = equalSizes(len(children))
	}
	return &entity.SplitNode{
		ID:        e.newID(entity.KindSplit),
		Direction: dir,
		Children:  children,
		Sizes:     normalized,
	}
}
