package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/travel-planner/internal/domain"
)

// ActivityRepo defines the persistence operations for Activities.
// Single-row operations are scoped by stopID.
type ActivityRepo interface {
	// Create inserts a new activity and returns the persisted record.
	Create(ctx context.Context, a domain.Activity) (domain.Activity, error)

	// GetByID retrieves an activity scoped to the given stopID.
	// Returns domain.ErrNotFound if it does not exist under that stop.
	GetByID(ctx context.Context, stopID, activityID uuid.UUID) (domain.Activity, error)

	// ListByStopID returns all activities of a stop ordered by position.
	ListByStopID(ctx context.Context, stopID uuid.UUID) ([]domain.Activity, error)

	// Update overwrites the mutable fields of an activity, scoped to a.StopID.
	Update(ctx context.Context, a domain.Activity) (domain.Activity, error)

	// Delete removes an activity scoped to stopID.
	Delete(ctx context.Context, stopID, activityID uuid.UUID) error
}

type pgActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db connection.
func NewActivityRepo(db db) ActivityRepo {
	return &pgActivityRepo{db: db}
}

const activityColumns = `id, stop_id, title, cost, category, position, created_at, updated_at`

func (r *pgActivityRepo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	q := `
		INSERT INTO activities (stop_id, title, cost, category, position)
		VALUES (@stop_id, @title, @cost, @category, @position)
		RETURNING ` + activityColumns

	result, err := scanActivity(r.db.QueryRow(ctx, q, activityArgs(a)))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) GetByID(ctx context.Context, stopID, activityID uuid.UUID) (domain.Activity, error) {
	q := `SELECT ` + activityColumns + `
		FROM activities
		WHERE id = @id AND stop_id = @stop_id`

	result, err := scanActivity(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": activityID, "stop_id": stopID}))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) ListByStopID(ctx context.Context, stopID uuid.UUID) ([]domain.Activity, error) {
	q := `SELECT ` + activityColumns + `
		FROM activities
		WHERE stop_id = @stop_id
		ORDER BY position, created_at, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"stop_id": stopID})
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByStopID: %w", err)
	}
	defer rows.Close()

	activities := []domain.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ActivityRepo.ListByStopID: scan: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByStopID: rows: %w", err)
	}
	return activities, nil
}

func (r *pgActivityRepo) Update(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	q := `
		UPDATE activities
		SET title      = @title,
		    cost       = @cost,
		    category   = @category,
		    position   = @position,
		    updated_at = now()
		WHERE id = @id AND stop_id = @stop_id
		RETURNING ` + activityColumns

	args := activityArgs(a)
	args["id"] = a.ID
	result, err := scanActivity(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) Delete(ctx context.Context, stopID, activityID uuid.UUID) error {
	const q = `DELETE FROM activities WHERE id = @id AND stop_id = @stop_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": activityID, "stop_id": stopID})
	if err != nil {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func activityArgs(a domain.Activity) pgx.NamedArgs {
	return pgx.NamedArgs{
		"stop_id":  a.StopID,
		"title":    a.Title,
		"cost":     a.Cost, // invalid NullDecimal becomes NULL
		"category": a.Category,
		"position": a.Position,
	}
}

func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a      domain.Activity
		id     pgtype.UUID
		stopID pgtype.UUID
	)
	err := s.Scan(&id, &stopID, &a.Title, &a.Cost, &a.Category, &a.Position, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Activity{}, domain.ErrNotFound
		}
		return domain.Activity{}, err
	}
	a.ID = uuid.UUID(id.Bytes)
	a.StopID = uuid.UUID(stopID.Bytes)
	return a, nil
}
