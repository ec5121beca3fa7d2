package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/travel-planner/internal/domain"
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

// StopRepo defines the persistence operations for Stops.
// All write and single-read operations are scoped by tripID to enforce ownership.
type StopRepo interface {
	// Create inserts a new stop and returns the persisted record.
	// Returns domain.ErrValidation if the position is already taken on the trip.
	Create(ctx context.Context, stop domain.Stop) (domain.Stop, error)

	// GetByID retrieves a single stop by its UUID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no stop with that ID exists under that trip.
	GetByID(ctx context.Context, tripID, stopID uuid.UUID) (domain.Stop, error)

	// ListByTripID returns all stops for a trip ordered by position.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Stop, error)

	// Update overwrites the mutable fields of a stop, scoped to stop.TripID.
	// Returns domain.ErrNotFound if no stop with that ID exists under that trip.
	Update(ctx context.Context, stop domain.Stop) (domain.Stop, error)

	// Delete removes a stop by ID, scoped to the given tripID. Activities cascade.
	// Returns domain.ErrNotFound if no stop with that ID exists under that trip.
	Delete(ctx context.Context, tripID, stopID uuid.UUID) error
}

// pgStopRepo is the Postgres implementation of StopRepo.
type pgStopRepo struct {
	db db
}

// NewStopRepo constructs a StopRepo backed by the provided db connection.
func NewStopRepo(db db) StopRepo {
	return &pgStopRepo{db: db}
}

const stopColumns = `id, trip_id, position, location_name, arrival_at, departure_at, budget,
		created_at, updated_at`

func (r *pgStopRepo) Create(ctx context.Context, stop domain.Stop) (domain.Stop, error) {
	q := `
		INSERT INTO stops (trip_id, position, location_name, arrival_at, departure_at, budget)
		VALUES (@trip_id, @position, @location_name, @arrival_at, @departure_at, @budget)
		RETURNING ` + stopColumns

	result, err := scanStop(r.db.QueryRow(ctx, q, stopArgs(stop)))
	if err != nil {
		return domain.Stop{}, fmt.Errorf("repo.StopRepo.Create: %w", positionConflict(err))
	}
	return result, nil
}

func (r *pgStopRepo) GetByID(ctx context.Context, tripID, stopID uuid.UUID) (domain.Stop, error) {
	q := `SELECT ` + stopColumns + `
		FROM stops
		WHERE id = @id AND trip_id = @trip_id`

	result, err := scanStop(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": stopID, "trip_id": tripID}))
	if err != nil {
		return domain.Stop{}, fmt.Errorf("repo.StopRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgStopRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Stop, error) {
	q := `SELECT ` + stopColumns + `
		FROM stops
		WHERE trip_id = @trip_id
		ORDER BY position, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.StopRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	stops := []domain.Stop{}
	for rows.Next() {
		s, err := scanStop(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.StopRepo.ListByTripID: scan: %w", err)
		}
		stops = append(stops, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.StopRepo.ListByTripID: rows: %w", err)
	}
	return stops, nil
}

func (r *pgStopRepo) Update(ctx context.Context, stop domain.Stop) (domain.Stop, error) {
	q := `
		UPDATE stops
		SET position      = @position,
		    location_name = @location_name,
		    arrival_at    = @arrival_at,
		    departure_at  = @departure_at,
		    budget        = @budget,
		    updated_at    = now()
		WHERE id = @id AND trip_id = @trip_id
		RETURNING ` + stopColumns

	args := stopArgs(stop)
	args["id"] = stop.ID
	result, err := scanStop(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Stop{}, fmt.Errorf("repo.StopRepo.Update: %w", positionConflict(err))
	}
	return result, nil
}

func (r *pgStopRepo) Delete(ctx context.Context, tripID, stopID uuid.UUID) error {
	const q = `DELETE FROM stops WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": stopID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.StopRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.StopRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func stopArgs(stop domain.Stop) pgx.NamedArgs {
	return pgx.NamedArgs{
		"trip_id":       stop.TripID,
		"position":      stop.Position,
		"location_name": stop.LocationName,
		"arrival_at":    stop.ArrivalAt,
		"departure_at":  stop.DepartureAt,
		"budget":        stop.Budget,
	}
}

// positionConflict turns a (trip_id, position) unique violation into a
// validation error so the caller can report it as bad input.
func positionConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: position is already used by another stop on this trip", domain.ErrValidation)
	}
	return err
}

// scanStop maps a single database row into a domain.Stop.
func scanStop(s scanner) (domain.Stop, error) {
	var (
		st     domain.Stop
		id     pgtype.UUID
		tripID pgtype.UUID
	)
	err := s.Scan(&id, &tripID, &st.Position, &st.LocationName, &st.ArrivalAt, &st.DepartureAt,
		&st.Budget, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Stop{}, domain.ErrNotFound
		}
		return domain.Stop{}, err
	}
	st.ID = uuid.UUID(id.Bytes)
	st.TripID = uuid.UUID(tripID.Bytes)
	return st, nil
}
