package shift

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clinicops/timeclock-backend-go/internal/domain/shift"
	"github.com/clinicops/timeclock-backend-go/internal/domain/staff"
	"github.com/clinicops/timeclock-backend-go/internal/pkg/database"
	"github.com/clinicops/timeclock-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
)

type TimeclockServiceImpl struct {
	shiftRepo shift.ShiftRepository
	staffRepo staff.StaffRepository
	now       func() time.Time
	inTx      func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewTimeclockService(db *database.DB, shiftRepo shift.ShiftRepository, staffRepo staff.StaffRepository) shift.TimeclockService {
	return &TimeclockServiceImpl{
		shiftRepo: shiftRepo,
		staffRepo: staffRepo,
		now:       func() time.Time { return time.Now().UTC() },
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// ClockIn implements shift.TimeclockService.
func (s *TimeclockServiceImpl) ClockIn(ctx context.Context, req shift.ClockInRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	member, err := s.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	// The per-staff ledger lock serializes racing clock-ins; without it
	// both would pass the open-shift check and insert.
	var created shift.Shift
	err = s.inTx(ctx, func(ctx context.Context) error {
		if err := s.shiftRepo.LockStaffLedger(ctx, member.ID); err != nil {
			return err
		}

		_, err := s.shiftRepo.GetOpenShift(ctx, member.ID)
		if err == nil {
			return shift.ErrAlreadyClockedIn
		}
		if !errors.Is(err, shift.ErrShiftNotFound) {
			return fmt.Errorf("failed to check open shift: %w", err)
		}

		created, err = s.shiftRepo.Create(ctx, shift.Shift{
			ID:      uuid.NewString(),
			StaffID: member.ID,
			ClockIn: s.now(),
		})
		if err != nil {
			return fmt.Errorf("failed to create shift: %w", err)
		}
		return nil
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	created.StaffName = &member.Username
	return shift.ToResponse(created), nil
}

// ClockOut implements shift.TimeclockService.
func (s *TimeclockServiceImpl) ClockOut(ctx context.Context, req shift.ClockOutRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	member, err := s.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	var closed shift.Shift
	err = s.inTx(ctx, func(ctx context.Context) error {
		if err := s.shiftRepo.LockStaffLedger(ctx, member.ID); err != nil {
			return err
		}

		open, err := s.shiftRepo.GetOpenShift(ctx, member.ID)
		if err != nil {
			if errors.Is(err, shift.ErrShiftNotFound) {
				return shift.ErrNotClockedIn
			}
			return fmt.Errorf("failed to get open shift: %w", err)
		}

		clockOut := s.now()
		if clockOut.Before(open.ClockIn) {
			// Clock skew between app servers; refuse to write a negative shift.
			return shift.ErrClockOutBeforeClockIn
		}

		closed, err = s.shiftRepo.CloseShift(ctx, open.ID, clockOut)
		if err != nil {
			// The open shift was closed by another request between the
			// read and the write.
			if errors.Is(err, shift.ErrShiftNotFound) {
				return shift.ErrNotClockedIn
			}
			return fmt.Errorf("failed to close shift: %w", err)
		}
		return nil
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	closed.StaffName = &member.Username
	return shift.ToResponse(closed), nil
}

// ListShifts implements shift.TimeclockService.
func (s *TimeclockServiceImpl) ListShifts(ctx context.Context, staffID string) ([]shift.ShiftResponse, error) {
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		return nil, err
	}

	shifts, err := s.shiftRepo.ListByStaff(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	return toResponses(shifts), nil
}

// ListAllShifts implements shift.TimeclockService.
func (s *TimeclockServiceImpl) ListAllShifts(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.shiftRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	return toResponses(shifts), nil
}

func toResponses(shifts []shift.Shift) []shift.ShiftResponse {
	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		responses = append(responses, shift.ToResponse(s))
	}
	return responses
}
