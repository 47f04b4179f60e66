// README: Postgres store for saved trips; itineraries are stored as JSONB.
package trips

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"wayfare/internal/modules/planner"
	"wayfare/internal/types"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Insert(ctx context.Context, trip Trip) error {
	itinerary, err := json.Marshal(trip.Itinerary)
	if err != nil {
		return fmt.Errorf("trips: encode itinerary: %w", err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO saved_trips (id, destination, days, itinerary, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, string(trip.ID), trip.Destination, trip.Days, itinerary, trip.CreatedAt)
	if err != nil {
		return fmt.Errorf("trips: insert: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id types.ID) (Trip, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, destination, days, itinerary, created_at
		FROM saved_trips
		WHERE id = $1
	`, string(id))
	trip, err := scanTrip(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Trip{}, ErrNotFound
	}
	if err != nil {
		return Trip{}, fmt.Errorf("trips: get: %w", err)
	}
	return trip, nil
}

func (s *PostgresStore) ListRecent(ctx context.Context, limit int) ([]Trip, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, destination, days, itinerary, created_at
		FROM saved_trips
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("trips: list: %w", err)
	}
	defer rows.Close()

	var out []Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("trips: scan: %w", err)
		}
		out = append(out, trip)
	}
	return out, rows.Err()
}

func scanTrip(row pgx.Row) (Trip, error) {
	var (
		trip Trip
		id   string
		raw  []byte
	)
	if err := row.Scan(&id, &trip.Destination, &trip.Days, &raw, &trip.CreatedAt); err != nil {
		return Trip{}, err
	}
	trip.ID = types.ID(id)
	if err := json.Unmarshal(raw, &trip.Itinerary); err != nil {
		return Trip{}, err
	}
	if trip.Itinerary == nil {
		trip.Itinerary = []planner.DayPlan{}
	}
	return trip, nil
}
