package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/srgjo27/experience_booking/internal/core/domain"
)

type ExperienceRepository struct {
	db *sql.DB
}

func NewExperienceRepository(db *sql.DB) *ExperienceRepository {
	return &ExperienceRepository{db: db}
}

func (r *ExperienceRepository) List(ctx context.Context, search string) ([]domain.Experience, error) {
	query := `
	SELECT id, title, description, location, price, image_url, created_at
	FROM experiences
	`

	var args []any
	if term := strings.TrimSpace(search); term != "" {
		query += `WHERE title ILIKE $1 OR location ILIKE $1
	`
		args = append(args, containsPattern(term))
	}

	query += `ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}

	defer rows.Close()

	experiences := make([]domain.Experience, 0)
	for rows.Next() {
		var exp domain.Experience
		if err := rows.Scan(
			&exp.ID,
			&exp.Title,
			&exp.Description,
			&exp.Location,
			&exp.Price,
			&exp.ImageURL,
			&exp.CreatedAt,
		); err != nil {
			return nil, err
		}

		experiences = append(experiences, exp)
	}

	return experiences, rows.Err()
}

func (r *ExperienceRepository) GetWithAvailableSlots(ctx context.Context, experienceID uuid.UUID) (*domain.ExperienceWithSlots, error) {
	query := `
	SELECT id, title, description, location, price, image_url, created_at
	FROM experiences
	WHERE id = $1
	`

	var out domain.ExperienceWithSlots
	err := r.db.QueryRowContext(ctx, query, experienceID).Scan(
		&out.ID,
		&out.Title,
		&out.Description,
		&out.Location,
		&out.Price,
		&out.ImageURL,
		&out.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}

		return nil, fmt.Errorf("failed to load experience %s: %w", experienceID, err)
	}

	slots, err := r.availableSlots(ctx, experienceID)
	if err != nil {
		return nil, err
	}

	out.Slots = slots

	return &out, nil
}

func (r *ExperienceRepository) availableSlots(ctx context.Context, experienceID uuid.UUID) ([]domain.Slot, error) {
	query := `
	SELECT id, experience_id, start_time, end_time, is_available, version
	FROM slots
	WHERE experience_id = $1 AND is_available = TRUE
	ORDER BY start_time ASC
	`

	rows, err := r.db.QueryContext(ctx, query, experienceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}

	defer rows.Close()

	slots := make([]domain.Slot, 0)
	for rows.Next() {
		var slot domain.Slot
		if err := rows.Scan(
			&slot.ID,
			&slot.ExperienceID,
			&slot.StartTime,
			&slot.EndTime,
			&slot.IsAvailable,
			&slot.Version,
		); err != nil {
			return nil, err
		}

		slots = append(slots, slot)
	}

	return slots, rows.Err()
}

// SeedExperience inserts an experience and all of its slots in one
// transaction. Rows whose id already exists are left alone.
func (r *ExperienceRepository) SeedExperience(ctx context.Context, experience *domain.Experience, slots []domain.Slot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	queryExperience := `
	INSERT INTO experiences (id, title, description, location, price, image_url, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO NOTHING
	`

	_, err = tx.ExecContext(ctx, queryExperience,
		experience.ID,
		experience.Title,
		experience.Description,
		experience.Location,
		experience.Price,
		experience.ImageURL,
		experience.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert experience %q: %w", experience.Title, err)
	}

	querySlot := `
	INSERT INTO slots (id, experience_id, start_time, end_time, is_available, version)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (id) DO NOTHING
	`

	stmt, err := tx.PrepareContext(ctx, querySlot)
	if err != nil {
		return fmt.Errorf("failed to prepare slot statement: %w", err)
	}

	defer stmt.Close()

	for _, slot := range slots {
		_, err := stmt.ExecContext(ctx, slot.ID, experience.ID, slot.StartTime, slot.EndTime, slot.IsAvailable, slot.Version)
		if err != nil {
			return fmt.Errorf("failed to insert slot %s: %w", slot.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
