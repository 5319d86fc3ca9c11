package script

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/arrangement"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/layout"
)

func newTestStore(t *testing.T) *arrangement.Store {
	t.Helper()
	var n atomic.Uint64
	gen := func(kind entity.NodeKind) string {
		return fmt.Sprintf("%s-%d", kind, n.Add(1))
	}
	return arrangement.New(context.Background(), arrangement.WithEngine(layout.New(layout.WithIDGenerator(gen))))
}

func mustParse(t *testing.T, src string) *Script {
	t.Helper()
	s, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	return s
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{
			name: "unknown op",
			src:  "[[step]]\nop = \"explode\"\npanel = \"a\"\n",
			want: ErrUnknownOp,
		},
		{
			name: "invalid zone",
			src:  "[[step]]\nop = \"dock\"\npanel = \"a\"\nzone = \"north\"\n",
			want: ErrInvalidZone,
		},
		{
			name: "missing panel",
			src:  "[[step]]\nop = \"open\"\n",
			want: ErrMissingField,
		},
		{
			name: "drop without target",
			src:  "[[step]]\nop = \"drop\"\npanel = \"a\"\nzone = \"left\"\n",
			want: ErrMissingField,
		},
		{
			name: "sizes without values",
			src:  "[[step]]\nop = \"sizes\"\ntarget = \"root\"\n",
			want: ErrMissingField,
		},
		{
			name: "replace without replacement",
			src:  "[[step]]\nop = \"replace\"\npanel = \"a\"\n",
			want: ErrMissingField,
		},
		{
			name: "unknown field",
			src:  "[[step]]\nop = \"open\"\npanel = \"a\"\ncolour = \"red\"\n",
			want: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse_MalformedTOML(t *testing.T) {
	_, err := Parse(strings.NewReader("[[step]\nop = "))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode script")
}

func TestParse_ReportsStepNumber(t *testing.T) {
	src := "[[step]]\nop = \"register\"\npanel = \"a\"\n\n[[step]]\nop = \"dock\"\npanel = \"a\"\nzone = \"up\"\n"
	_, err := Parse(strings.NewReader(src))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 2 (dock)")
}

func TestParseFile_DefaultsNameToPath(t *testing.T) {
	s, err := ParseFile("testdata/editor.toml")
	require.NoError(t, err)
	assert.Equal(t, "editor", s.Name)
	assert.Len(t, s.Steps, 13)

	_, err = ParseFile("testdata/missing.toml")
	require.Error(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "anon.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[step]]\nop = \"reset\"\n"), 0o644))
	s, err = ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Name)
}

func TestRunner_ReplaysEditorScript(t *testing.T) {
	ctx := context.Background()
	s, err := ParseFile("testdata/editor.toml")
	require.NoError(t, err)

	store := newTestStore(t)
	var results []StepResult
	runner := NewRunner(store, WithCheck(true), WithStepHook(func(r StepResult) {
		results = append(results, r)
	}))
	require.NoError(t, runner.Run(ctx, s))
	require.Len(t, results, len(s.Steps))
	assert.Equal(t, 1, results[0].Index)

	snap := store.Snapshot()

	root, ok := snap.Layout.(*entity.SplitNode)
	require.True(t, ok)
	assert.Equal(t, "split-3", root.ID)
	assert.Equal(t, entity.Horizontal, root.Direction)
	require.Len(t, root.Children, 2)
	assert.InDeltaSlice(t, []float64{1.0 / 3, 2.0 / 3}, root.Sizes, 1e-9)

	assert.Equal(t, "tabs-4", root.Children[0].NodeID())
	column, ok := root.Children[1].(*entity.SplitNode)
	require.True(t, ok)
	assert.Equal(t, entity.Vertical, column.Direction)
	assert.Equal(t, []string{"tabs-1", "tabs-5"}, []string{column.Children[0].NodeID(), column.Children[1].NodeID()})

	require.Len(t, snap.Windows, 1)
	assert.Equal(t, entity.PanelWindow{PanelID: "inspector", X: 140, Y: 140, Width: 280, Height: 360, Z: 11}, snap.Windows[0])
	assert.Empty(t, snap.DraggingPanelID)

	require.Len(t, snap.MenuBar, 2)
	assert.Equal(t, "file", snap.MenuBar[0].ID)
	assert.Equal(t, "view", snap.MenuBar[1].ID)
	require.Len(t, snap.MenuBar[1].Items, 2)
	assert.True(t, snap.MenuBar[1].Items[0].Enabled)
	assert.True(t, snap.MenuBar[1].Items[1].Separator)
}

func TestRunner_ResolvesPanelTargets(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	s := mustParse(t, `
[[step]]
op = "register"
panel = "scene"

[[step]]
op = "register"
panel = "assets"

[[step]]
op = "attach"
panel = "assets"
target = "@scene"

[[step]]
op = "active"
panel = "scene"
target = "@assets"
`)
	require.NoError(t, NewRunner(store).Run(ctx, s))

	tabs, ok := store.Snapshot().Layout.(*entity.TabsNode)
	require.True(t, ok)
	assert.Equal(t, []string{"scene", "assets"}, tabs.Tabs)
	assert.Equal(t, "scene", tabs.ActiveTabID)
}

func TestRunner_SizesBySiblingPanel(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	s := mustParse(t, `
[[step]]
op = "register"
panel = "scene"

[[step]]
op = "register"
panel = "assets"

[[step]]
op = "dock"
panel = "assets"
zone = "left"

[[step]]
op = "sizes"
target = "@assets"
sizes = [1, 3]
`)
	require.NoError(t, NewRunner(store).Run(ctx, s))

	root := store.Snapshot().Layout.(*entity.SplitNode)
	assert.InDeltaSlice(t, []float64{0.25, 0.75}, root.Sizes, 1e-9)
}

func TestRunner_UnresolvedTargets(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		src  string
	}{
		{
			name: "panel not docked",
			src:  "[[step]]\nop = \"attach\"\npanel = \"a\"\ntarget = \"@ghost\"\n",
		},
		{
			name: "root is not a split",
			src:  "[[step]]\nop = \"register\"\npanel = \"a\"\n\n[[step]]\nop = \"sizes\"\ntarget = \"root\"\nsizes = [1]\n",
		},
		{
			name: "panel outside any split",
			src:  "[[step]]\nop = \"register\"\npanel = \"a\"\n\n[[step]]\nop = \"sizes\"\ntarget = \"@a\"\nsizes = [1]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRunner(newTestStore(t)).Run(ctx, mustParse(t, tt.src))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnresolvedTarget)
		})
	}
}

func TestRunner_ReportsUnchangedSteps(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	var changed []bool
	runner := NewRunner(store, WithStepHook(func(r StepResult) { changed = append(changed, r.Changed) }))

	s := mustParse(t, `
[[step]]
op = "register"
panel = "scene"

[[step]]
op = "open"
panel = "scene"

[[step]]
op = "close"
panel = "ghost"
`)
	require.NoError(t, runner.Run(ctx, s))
	assert.Equal(t, []bool{true, false, false}, changed)
}

func TestRunner_StopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := newTestStore(t)
	err := NewRunner(store).Run(ctx, mustParse(t, "[[step]]\nop = \"register\"\npanel = \"a\"\n"))
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, store.Snapshot().Registry)
}

func TestCheckArrangement(t *testing.T) {
	registry := map[string]entity.PanelRegistration{"a": {ID: "a"}, "b": {ID: "b"}}
	docked := &entity.TabsNode{ID: "tabs-1", Tabs: []string{"a"}, ActiveTabID: "a"}

	tests := []struct {
		name    string
		a       entity.Arrangement
		wantErr bool
	}{
		{
			name: "consistent",
			a: entity.Arrangement{
				Registry: registry,
				Layout:   docked,
				Windows:  []entity.PanelWindow{{PanelID: "b", Z: 11}},
				NextZ:    11,
			},
		},
		{
			name:    "unregistered docked panel",
			a:       entity.Arrangement{Layout: docked},
			wantErr: true,
		},
		{
			name: "docked and floating",
			a: entity.Arrangement{
				Registry: registry,
				Layout:   docked,
				Windows:  []entity.PanelWindow{{PanelID: "a", Z: 11}},
				NextZ:    11,
			},
			wantErr: true,
		},
		{
			name: "duplicate window",
			a: entity.Arrangement{
				Registry: registry,
				Windows:  []entity.PanelWindow{{PanelID: "b", Z: 11}, {PanelID: "b", Z: 12}},
				NextZ:    12,
			},
			wantErr: true,
		},
		{
			name: "window above counter",
			a: entity.Arrangement{
				Registry: registry,
				Windows:  []entity.PanelWindow{{PanelID: "b", Z: 12}},
				NextZ:    11,
			},
			wantErr: true,
		},
		{
			name:    "unknown drag source",
			a:       entity.Arrangement{Registry: registry, DraggingPanelID: "ghost"},
			wantErr: true,
		},
		{
			name: "invalid tree",
			a: entity.Arrangement{
				Registry: registry,
				Layout:   &entity.TabsNode{ID: "tabs-1", Tabs: []string{"a"}, ActiveTabID: "b"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckArrangement(tt.a)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvariant)
				return
			}
			assert.NoError(t, err)
		})
	}
}
