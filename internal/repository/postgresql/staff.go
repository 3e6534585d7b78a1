package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/clinicops/timeclock-backend-go/internal/domain/staff"
	"github.com/clinicops/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type staffRepository struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepository{db: db}
}

// GetByID implements staff.StaffRepository.
func (r *staffRepository) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, created_at, updated_at
		FROM staff
		WHERE id = $1
	`

	var s staff.Staff
	err := q.QueryRow(ctx, query, id).Scan(&s.ID, &s.Username, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff member: %w", err)
	}

	return s, nil
}

// List implements staff.StaffRepository.
func (r *staffRepository) List(ctx context.Context) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, created_at, updated_at
		FROM staff
		ORDER BY username ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	var result []staff.Staff
	for rows.Next() {
		var s staff.Staff
		if err := rows.Scan(&s.ID, &s.Username, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan staff row: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate staff rows: %w", err)
	}

	return result, nil
}
