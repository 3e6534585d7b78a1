package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clinicops/timeclock-backend-go/internal/domain/shift"
	"github.com/clinicops/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

// Create implements shift.ShiftRepository.
func (r *shiftRepository) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, staff_id, clock_in)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, s.ID, s.StaffID, s.ClockIn).
		Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return s, nil
}

// CloseShift implements shift.ShiftRepository.
func (r *shiftRepository) CloseShift(ctx context.Context, id string, clockOut time.Time) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET clock_out = $2, updated_at = NOW()
		WHERE id = $1 AND clock_out IS NULL
		RETURNING id, staff_id, clock_in, clock_out, created_at, updated_at
	`

	var s shift.Shift
	err := q.QueryRow(ctx, query, id, clockOut).Scan(
		&s.ID, &s.StaffID, &s.ClockIn, &s.ClockOut, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to close shift: %w", err)
	}

	return s, nil
}

// LockStaffLedger implements shift.ShiftRepository. The advisory lock is
// transaction-scoped and released automatically on commit or rollback; a
// plain SELECT under READ COMMITTED cannot see a racing uncommitted
// insert, so the open-shift check needs this serialization.
func (r *shiftRepository) LockStaffLedger(ctx context.Context, staffID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, staffID); err != nil {
		return fmt.Errorf("failed to lock staff ledger: %w", err)
	}
	return nil
}

// GetOpenShift implements shift.ShiftRepository.
func (r *shiftRepository) GetOpenShift(ctx context.Context, staffID string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, clock_in, clock_out, created_at, updated_at
		FROM shifts
		WHERE staff_id = $1
		  AND clock_out IS NULL
		ORDER BY clock_in DESC
		LIMIT 1
	`

	var s shift.Shift
	err := q.QueryRow(ctx, query, staffID).Scan(
		&s.ID, &s.StaffID, &s.ClockIn, &s.ClockOut, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get open shift: %w", err)
	}

	return s, nil
}

// ListByStaff implements shift.ShiftRepository.
func (r *shiftRepository) ListByStaff(ctx context.Context, staffID string) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.staff_id, s.clock_in, s.clock_out, s.created_at, s.updated_at, st.username
		FROM shifts s
		JOIN staff st ON st.id = s.staff_id
		WHERE s.staff_id = $1
		ORDER BY s.clock_in DESC
	`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	return scanShiftRows(rows)
}

// ListAll implements shift.ShiftRepository.
func (r *shiftRepository) ListAll(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.staff_id, s.clock_in, s.clock_out, s.created_at, s.updated_at, st.username
		FROM shifts s
		JOIN staff st ON st.id = s.staff_id
		ORDER BY s.clock_in DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	return scanShiftRows(rows)
}

func scanShiftRows(rows pgx.Rows) ([]shift.Shift, error) {
	var result []shift.Shift
	for rows.Next() {
		var s shift.Shift
		if err := rows.Scan(
			&s.ID, &s.StaffID, &s.ClockIn, &s.ClockOut, &s.CreatedAt, &s.UpdatedAt, &s.StaffName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift row: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shift rows: %w", err)
	}
	return result, nil
}
