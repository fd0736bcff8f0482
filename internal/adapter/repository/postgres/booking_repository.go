package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/srgjo27/experience_booking/internal/core/domain"
)

type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// ReserveSlot runs the whole reservation in one transaction. The slot row is
// locked with FOR UPDATE so a concurrent reservation waits and then sees it
// booked; the version guard and the unique slot_id constraint catch anything
// that slips past the lock.
func (r *BookingRepository) ReserveSlot(ctx context.Context, booking *domain.Booking) (*domain.Slot, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	querySlot := `
	SELECT id, experience_id, start_time, end_time, is_available, version
	FROM slots
	WHERE id = $1
	FOR UPDATE
	`

	var slot domain.Slot
	err = tx.QueryRowContext(ctx, querySlot, booking.SlotID).Scan(
		&slot.ID,
		&slot.ExperienceID,
		&slot.StartTime,
		&slot.EndTime,
		&slot.IsAvailable,
		&slot.Version,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotUnavailable
		}
		if isConflict(err) {
			return nil, domain.ErrSlotUnavailable
		}

		return nil, fmt.Errorf("failed to load slot %s: %w", booking.SlotID, err)
	}

	if !slot.IsAvailable {
		return nil, domain.ErrSlotUnavailable
	}

	queryLock := `
	UPDATE slots
	SET is_available = FALSE,
		version = version + 1
	WHERE id = $1 AND version = $2 AND is_available = TRUE
	`

	result, err := tx.ExecContext(ctx, queryLock, slot.ID, slot.Version)
	if err != nil {
		if isConflict(err) {
			return nil, domain.ErrSlotUnavailable
		}

		return nil, fmt.Errorf("failed to mark slot %s booked: %w", slot.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}

	if rowsAffected == 0 {
		return nil, domain.ErrSlotUnavailable
	}

	queryBooking := `
	INSERT INTO bookings (id, slot_id, customer_name, customer_email, promo_code, final_price, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = tx.ExecContext(ctx, queryBooking,
		booking.ID,
		booking.SlotID,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.PromoCode,
		booking.FinalPrice,
		booking.CreatedAt,
	)
	if err != nil {
		if isConflict(err) {
			return nil, domain.ErrSlotUnavailable
		}

		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		if isConflict(err) {
			return nil, domain.ErrSlotUnavailable
		}

		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	slot.Reserve()

	return &slot, nil
}
