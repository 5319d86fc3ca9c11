// Package arrangement holds the observable store that owns the current dock
// layout and the UI state around it. Each intent reads the current snapshot,
// computes the next one through the layout engine, replaces it, and notifies
// observers.
package arrangement

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/layout"
	"github.com/bnema/dockyard/internal/logging"
)

// WindowDefaults controls where new floating windows appear and how small
// they may be resized.
type WindowDefaults struct {
	X, Y      int
	Width     int
	Height    int
	MinWidth  int
	MinHeight int
	InitialZ  int // Stacking index before the first window is created
}

// DefaultWindowDefaults returns the built-in floating window geometry.
func DefaultWindowDefaults() WindowDefaults {
	return WindowDefaults{
		X:         140,
		Y:         140,
		Width:     420,
		Height:    320,
		MinWidth:  240,
		MinHeight: 160,
		InitialZ:  10,
	}
}

// Option configures a Store.
type Option func(*Store)

// WithEngine sets the layout engine, mostly to control node ids in tests.
func WithEngine(e *layout.Engine) Option {
	return func(s *Store) { s.engine = e }
}

// WithThemeProvider sets the palette source used by SetTheme.
func WithThemeProvider(p port.ThemeProvider) Option {
	return func(s *Store) { s.themes = p }
}

// WithWindowDefaults overrides floating window geometry.
func WithWindowDefaults(d WindowDefaults) Option {
	return func(s *Store) { s.windows = d }
}

// WithLogger sets how intents resolve their logger.
func WithLogger(fn port.LoggerFromContext) Option {
	return func(s *Store) { s.logger = fn }
}

type subscription struct {
	id       int
	observer port.ArrangementObserver
}

// Store is the single owner of an arrangement. Intents are serialized by a
// mutex; observers run synchronously on the intent's goroutine after the
// state lock is released. Publications never overlap, so every observer sees
// snapshots in the order they were produced. Observers may read Snapshot but
// must not run intents synchronously.
type Store struct {
	id      string
	engine  *layout.Engine
	themes  port.ThemeProvider
	windows WindowDefaults
	logger  port.LoggerFromContext
	logs    atomic.Pointer[childLogger]

	// publishMu is taken before mu and held until observers return.
	publishMu sync.Mutex
	mu        sync.Mutex
	state     entity.Arrangement
	subs      []subscription
	nextSub   int
}

// New creates an empty store.
func New(ctx context.Context, opts ...Option) *Store {
	s := &Store{
		id:      uuid.NewString(),
		windows: DefaultWindowDefaults(),
		logger:  logging.FromContext,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.engine == nil {
		s.engine = layout.New()
	}
	s.state = s.initialState()

	s.log(ctx).Debug().
		Str("theme", s.state.Theme.Name).
		Int("initial_z", s.windows.InitialZ).
		Msg("arrangement store created")
	return s
}

func (s *Store) initialState() entity.Arrangement {
	var theme entity.Theme
	if s.themes != nil {
		theme = s.themes.DefaultTheme()
	}
	return entity.Arrangement{
		Registry: map[string]entity.PanelRegistration{},
		Theme:    theme,
		NextZ:    s.windows.InitialZ,
	}
}

// ID identifies the store in logs when a process runs several of them.
func (s *Store) ID() string {
	return s.id
}

// Snapshot returns the current arrangement.
func (s *Store) Snapshot() entity.Arrangement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers an observer and returns the function removing it.
// The observer is not called with the current snapshot; use Snapshot.
func (s *Store) Subscribe(observer port.ArrangementObserver) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscription{id: id, observer: observer})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.subs = slices.DeleteFunc(slices.Clone(s.subs), func(sub subscription) bool {
				return sub.id == id
			})
		})
	}
}

// SubscribeFunc is Subscribe for plain functions.
func (s *Store) SubscribeFunc(fn func(entity.Arrangement)) (unsubscribe func()) {
	return s.Subscribe(port.ArrangementObserverFunc(fn))
}

// mutation computes the next state. It returns false when nothing changed,
// in which case no snapshot is published.
type mutation func(state entity.Arrangement) (entity.Arrangement, bool)

// apply runs one intent as a read-modify-publish cycle.
func (s *Store) apply(ctx context.Context, intent string, fn mutation) bool {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	s.mu.Lock()
	next, changed := fn(s.state)
	var subs []subscription
	if changed {
		s.replace(ctx, intent, next)
		subs = s.subs
	}
	s.mu.Unlock()

	if !changed {
		s.log(ctx).Trace().Str("intent", intent).Msg("intent left arrangement unchanged")
		return false
	}
	for _, sub := range subs {
		sub.observer.ArrangementChanged(next)
	}
	return true
}

// replace swaps the held state. Must be called with s.mu held.
func (s *Store) replace(ctx context.Context, intent string, next entity.Arrangement) {
	log := s.log(ctx)
	if log.GetLevel() <= zerolog.DebugLevel {
		if err := layout.Validate(next.Layout); err != nil {
			log.Error().Err(err).Str("intent", intent).Msg("layout invariant violated")
		}
	}
	s.state = next

	log.Debug().
		Str("intent", intent).
		Int("docked", len(layout.Panels(next.Layout))).
		Int("floating", len(next.Windows)).
		Msg("arrangement updated")
}

// childLogger caches the store's logger for the last parent seen.
type childLogger struct {
	parent *zerolog.Logger
	child  *zerolog.Logger
}

// log returns the ctx logger with the store's component and id attached.
// The child is rebuilt only when ctx carries a different logger.
func (s *Store) log(ctx context.Context) *zerolog.Logger {
	parent := s.logger(ctx)
	if c := s.logs.Load(); c != nil && c.parent == parent {
		return c.child
	}
	child := parent.With().
		Str("component", "arrangement").
		Str("store_id", s.id).
		Logger()
	s.logs.Store(&childLogger{parent: parent, child: &child})
	return &child
}
