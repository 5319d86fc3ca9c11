package script

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/dockyard/internal/application/arrangement"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/layout"
	"github.com/bnema/dockyard/internal/logging"
)

// ErrInvariant is returned by checked runs when a step leaves the
// arrangement inconsistent.
var ErrInvariant = errors.New("arrangement invariant violated")

// rootTarget names the root split in sizes steps.
const rootTarget = "root"

// StepResult describes one replayed step.
type StepResult struct {
	Index   int // 1-based
	Step    Step
	Changed bool
}

// Runner replays scripts against a store.
type Runner struct {
	store  *arrangement.Store
	check  bool
	onStep func(StepResult)
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithCheck validates the arrangement after every step.
func WithCheck(enabled bool) RunnerOption {
	return func(r *Runner) { r.check = enabled }
}

// WithStepHook is called after every successful step.
func WithStepHook(fn func(StepResult)) RunnerOption {
	return func(r *Runner) { r.onStep = fn }
}

// NewRunner creates a runner for store.
func NewRunner(store *arrangement.Store, opts ...RunnerOption) *Runner {
	r := &Runner{store: store}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run applies every step in order, stopping at the first error or when ctx
// is cancelled.
func (r *Runner) Run(ctx context.Context, s *Script) error {
	log := logging.FromContext(ctx)

	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		changed, err := r.apply(ctx, step)
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
		if r.check {
			if err := CheckArrangement(r.store.Snapshot()); err != nil {
				return fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
			}
		}

		log.Trace().
			Int("step", i+1).
			Str("op", string(step.Op)).
			Bool("changed", changed).
			Msg("script step applied")
		if r.onStep != nil {
			r.onStep(StepResult{Index: i + 1, Step: step, Changed: changed})
		}
	}
	return nil
}

func (r *Runner) apply(ctx context.Context, step Step) (bool, error) {
	s := r.store

	switch step.Op {
	case OpRegister:
		return s.RegisterPanel(ctx, entity.PanelRegistration{
			ID:        step.Panel,
			Title:     cmp.Or(step.Title, step.Panel),
			Icon:      step.Icon,
			MinWidth:  step.MinWidth,
			MinHeight: step.MinHeight,
		}), nil
	case OpOpen:
		return s.OpenPanel(ctx, step.Panel), nil
	case OpClose:
		return s.ClosePanel(ctx, step.Panel), nil
	case OpFloat:
		return s.ToggleFloat(ctx, step.Panel), nil
	case OpFocus:
		return s.FocusWindow(ctx, step.Panel), nil
	case OpMoveWindow:
		return s.MoveWindow(ctx, step.Panel, step.DX, step.DY), nil
	case OpResizeWindow:
		return s.ResizeWindow(ctx, step.Panel, step.DX, step.DY), nil
	case OpDrag:
		return s.SetDragSource(ctx, step.Panel), nil
	case OpTheme:
		return s.SetTheme(ctx, step.Theme), nil
	case OpReplace:
		return s.ReplacePanel(ctx, step.Panel, step.With), nil
	case OpReset:
		return s.Reset(ctx), nil

	case OpDock:
		zone, err := parseZone(step.Zone)
		if err != nil {
			return false, err
		}
		return s.DockPanel(ctx, step.Panel, zone), nil

	case OpDrop:
		zone, err := parseZone(step.Zone)
		if err != nil {
			return false, err
		}
		target, err := r.resolveTabs(step.Target)
		if err != nil {
			return false, err
		}
		return s.DropPanel(ctx, step.Panel, target, zone), nil

	case OpAttach:
		target, err := r.resolveTabs(step.Target)
		if err != nil {
			return false, err
		}
		return s.AttachToTabs(ctx, step.Panel, target), nil

	case OpActive:
		target, err := r.resolveTabs(step.Target)
		if err != nil {
			return false, err
		}
		return s.SetActiveTab(ctx, target, step.Panel), nil

	case OpSizes:
		target, err := r.resolveSplit(step.Target)
		if err != nil {
			return false, err
		}
		return s.SetSplitSizes(ctx, target, step.Sizes), nil

	case OpMenu:
		group := entity.MenuGroup{ID: step.ID, Label: cmp.Or(step.Label, step.ID), Order: step.Order}
		for _, item := range step.Items {
			group.Items = append(group.Items, item.toEntity())
		}
		return s.RegisterMenu(ctx, group), nil
	}

	return false, fmt.Errorf("%w %q", ErrUnknownOp, step.Op)
}

// resolveTabs turns "@panel" into the id of the container holding it.
func (r *Runner) resolveTabs(target string) (string, error) {
	panelID, ok := strings.CutPrefix(target, "@")
	if !ok {
		return target, nil
	}
	holder := layout.FindPanel(r.store.Snapshot().Layout, panelID)
	if holder == nil {
		return "", fmt.Errorf("%w: %s is not docked", ErrUnresolvedTarget, panelID)
	}
	return holder.ID, nil
}

// resolveSplit turns "root" into the root split and "@panel" into the split
// directly containing the panel's container.
func (r *Runner) resolveSplit(target string) (string, error) {
	root := r.store.Snapshot().Layout

	if target == rootTarget {
		split, ok := root.(*entity.SplitNode)
		if !ok {
			return "", fmt.Errorf("%w: layout root is not a split", ErrUnresolvedTarget)
		}
		return split.ID, nil
	}

	panelID, ok := strings.CutPrefix(target, "@")
	if !ok {
		return target, nil
	}
	holder := layout.FindPanel(root, panelID)
	if holder == nil {
		return "", fmt.Errorf("%w: %s is not docked", ErrUnresolvedTarget, panelID)
	}
	parent := layout.Parent(root, holder.ID)
	if parent == nil {
		return "", fmt.Errorf("%w: %s is not inside a split", ErrUnresolvedTarget, panelID)
	}
	return parent.ID, nil
}

func parseZone(s string) (entity.DockZone, error) {
	zone, err := entity.ParseDockZone(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidZone, s)
	}
	return zone, nil
}

// CheckArrangement verifies the tree invariants plus the placement rules
// that tie the tree to the rest of the snapshot: every docked or floating
// panel is registered and no panel is both docked and floating.
func CheckArrangement(a entity.Arrangement) error {
	if err := layout.Validate(a.Layout); err != nil {
		return fmt.Errorf("%w: %w", ErrInvariant, err)
	}

	for _, id := range layout.Panels(a.Layout) {
		if !a.IsRegistered(id) {
			return fmt.Errorf("%w: docked panel %s is not registered", ErrInvariant, id)
		}
	}

	seen := make(map[string]bool, len(a.Windows))
	for _, w := range a.Windows {
		switch {
		case seen[w.PanelID]:
			return fmt.Errorf("%w: panel %s has two windows", ErrInvariant, w.PanelID)
		case !a.IsRegistered(w.PanelID):
			return fmt.Errorf("%w: floating panel %s is not registered", ErrInvariant, w.PanelID)
		case layout.ContainsPanel(a.Layout, w.PanelID):
			return fmt.Errorf("%w: panel %s is both docked and floating", ErrInvariant, w.PanelID)
		case w.Z > a.NextZ:
			return fmt.Errorf("%w: window %s is above the stacking counter", ErrInvariant, w.PanelID)
		}
		seen[w.PanelID] = true
	}

	if a.DraggingPanelID != "" && !a.IsRegistered(a.DraggingPanelID) {
		return fmt.Errorf("%w: drag source %s is not registered", ErrInvariant, a.DraggingPanelID)
	}
	return nil
}
