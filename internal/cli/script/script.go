// Package script decodes TOML intent scripts and replays them against an
// arrangement store.
//
// A script is a list of [[step]] tables, each naming one store intent:
//
//	[[step]]
//	op = "register"
//	panel = "scene"
//	title = "Scene"
//
//	[[step]]
//	op = "dock"
//	panel = "assets"
//	zone = "left"
//
// Container targets may be literal node ids or "@panel", which resolves to
// the container currently holding that panel when the step runs.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/bnema/dockyard/internal/domain/entity"
)

var (
	// ErrUnknownOp is returned for a step whose op is not an intent.
	ErrUnknownOp = errors.New("unknown op")
	// ErrInvalidZone is returned for a dock or drop step with a bad zone.
	ErrInvalidZone = errors.New("invalid dock zone")
	// ErrMissingField is returned when a step lacks a required field.
	ErrMissingField = errors.New("missing field")
	// ErrUnresolvedTarget is returned when "@panel" names a panel that is
	// not docked at the time the step runs.
	ErrUnresolvedTarget = errors.New("unresolved target")
	// ErrUnknownField is returned for keys the decoder does not recognise.
	ErrUnknownField = errors.New("unknown field")
)

// Op names an intent.
type Op string

// Supported ops.
const (
	OpRegister     Op = "register"
	OpOpen         Op = "open"
	OpClose        Op = "close"
	OpFloat        Op = "float"
	OpMoveWindow   Op = "move-window"
	OpResizeWindow Op = "resize-window"
	OpFocus        Op = "focus"
	OpDock         Op = "dock"
	OpDrop         Op = "drop"
	OpAttach       Op = "attach"
	OpDrag         Op = "drag"
	OpActive       Op = "active"
	OpSizes        Op = "sizes"
	OpMenu         Op = "menu"
	OpTheme        Op = "theme"
	OpReplace      Op = "replace"
	OpReset        Op = "reset"
)

// Ops lists every supported op.
var Ops = []Op{
	OpRegister, OpOpen, OpClose, OpFloat, OpMoveWindow, OpResizeWindow, OpFocus,
	OpDock, OpDrop, OpAttach, OpDrag, OpActive, OpSizes, OpMenu, OpTheme,
	OpReplace, OpReset,
}

// Script is a decoded intent script.
type Script struct {
	Name  string `toml:"name"`
	Steps []Step `toml:"step"`
}

// Step is a single intent. Which fields apply depends on Op.
type Step struct {
	Op        Op        `toml:"op"`
	Panel     string    `toml:"panel"`
	Title     string    `toml:"title"`
	Icon      string    `toml:"icon"`
	MinWidth  int       `toml:"min_width"`
	MinHeight int       `toml:"min_height"`
	Zone      string    `toml:"zone"`
	Target    string    `toml:"target"`
	Sizes     []float64 `toml:"sizes"`
	DX        int       `toml:"dx"`
	DY        int       `toml:"dy"`
	With      string    `toml:"with"`
	Theme     string    `toml:"theme"`

	// Menu groups
	ID    string     `toml:"id"`
	Label string     `toml:"label"`
	Order *int       `toml:"order"`
	Items []MenuItem `toml:"items"`
}

// MenuItem is a menu entry declared inside a menu step.
type MenuItem struct {
	ID        string     `toml:"id"`
	Label     string     `toml:"label"`
	Separator bool       `toml:"separator"`
	Disabled  bool       `toml:"disabled"`
	Order     *int       `toml:"order"`
	Submenu   []MenuItem `toml:"submenu"`
}

func (m MenuItem) toEntity() entity.MenuItem {
	item := entity.MenuItem{
		ID:        m.ID,
		Label:     m.Label,
		Separator: m.Separator,
		Enabled:   !m.Disabled,
		Order:     m.Order,
	}
	for _, sub := range m.Submenu {
		item.Submenu = append(item.Submenu, sub.toEntity())
	}
	return item
}

// Parse decodes and checks a script.
func Parse(r io.Reader) (*Script, error) {
	var s Script
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, strings.Join(keys, ", "))
	}
	for i, step := range s.Steps {
		if err := step.check(); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
	}
	return &s, nil
}

// ParseFile reads and parses the script at path. The script name defaults
// to the path.
func ParseFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

func (s Step) check() error {
	if !slices.Contains(Ops, s.Op) {
		return fmt.Errorf("%w %q", ErrUnknownOp, s.Op)
	}

	switch s.Op {
	case OpRegister, OpOpen, OpClose, OpFloat, OpMoveWindow, OpResizeWindow, OpFocus:
		return requireField("panel", s.Panel)
	case OpDock:
		if err := requireField("panel", s.Panel); err != nil {
			return err
		}
		return checkZone(s.Zone)
	case OpDrop:
		if err := requireField("panel", s.Panel); err != nil {
			return err
		}
		if err := requireField("target", s.Target); err != nil {
			return err
		}
		return checkZone(s.Zone)
	case OpAttach, OpActive:
		if err := requireField("panel", s.Panel); err != nil {
			return err
		}
		return requireField("target", s.Target)
	case OpSizes:
		if err := requireField("target", s.Target); err != nil {
			return err
		}
		if len(s.Sizes) == 0 {
			return fmt.Errorf("%w: sizes", ErrMissingField)
		}
	case OpMenu:
		return requireField("id", s.ID)
	case OpTheme:
		return requireField("theme", s.Theme)
	case OpReplace:
		if err := requireField("panel", s.Panel); err != nil {
			return err
		}
		return requireField("with", s.With)
	}
	return nil
}

func requireField(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	return nil
}

func checkZone(zone string) error {
	if _, err := entity.ParseDockZone(zone); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidZone, zone)
	}
	return nil
}
