// README: Trip persistence service — save, fetch, list recent.
package trips

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"wayfare/internal/modules/planner"
	"wayfare/internal/types"
)

var (
	ErrNotFound   = errors.New("trip not found")
	ErrBadRequest = errors.New("invalid trip")
)

const defaultListLimit = 20

type Store interface {
	Insert(ctx context.Context, trip Trip) error
	Get(ctx context.Context, id types.ID) (Trip, error)
	ListRecent(ctx context.Context, limit int) ([]Trip, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Save persists a finished itinerary and returns it with its assigned id.
func (s *Service) Save(ctx context.Context, destination string, itinerary []planner.DayPlan) (Trip, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" || len(itinerary) == 0 {
		return Trip{}, ErrBadRequest
	}
	trip := Trip{
		ID:          newID(),
		Destination: destination,
		Days:        len(itinerary),
		Itinerary:   itinerary,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.Insert(ctx, trip); err != nil {
		return Trip{}, err
	}
	return trip, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (Trip, error) {
	if strings.TrimSpace(string(id)) == "" {
		return Trip{}, ErrBadRequest
	}
	return s.store.Get(ctx, id)
}

func (s *Service) ListRecent(ctx context.Context, limit int) ([]Trip, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultListLimit
	}
	return s.store.ListRecent(ctx, limit)
}

func newID() types.ID {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return types.ID("trip_" + hex.EncodeToString(buf))
}
