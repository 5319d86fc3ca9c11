package port

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// LoggerFromContext resolves the logger carried by ctx.
type LoggerFromContext func(ctx context.Context) *zerolog.Logger

// ArrangementObserver receives every snapshot published by the arrangement
// store. Implemented by hosts that re-render from the new state.
type ArrangementObserver interface {
	// ArrangementChanged is called synchronously after an intent changed the
	// arrangement. The snapshot must be treated as read-only.
	ArrangementChanged(snapshot entity.Arrangement)
}

// ArrangementObserverFunc adapts a plain function to ArrangementObserver.
type ArrangementObserverFunc func(snapshot entity.Arrangement)

// ArrangementChanged implements ArrangementObserver.
func (f ArrangementObserverFunc) ArrangementChanged(snapshot entity.Arrangement) {
	f(snapshot)
}
