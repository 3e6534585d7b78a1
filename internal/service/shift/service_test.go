package shift

import (
	"context"
	"testing"
	"time"

	"github.com/clinicops/timeclock-backend-go/internal/domain/shift"
	"github.com/clinicops/timeclock-backend-go/internal/domain/staff"
	"github.com/clinicops/timeclock-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStaffRepo struct {
	members map[string]staff.Staff
}

func (r *fakeStaffRepo) GetByID(_ context.Context, id string) (staff.Staff, error) {
	m, ok := r.members[id]
	if !ok {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return m, nil
}

func (r *fakeStaffRepo) List(_ context.Context) ([]staff.Staff, error) {
	out := make([]staff.Staff, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, m)
	}
	return out, nil
}

type fakeShiftRepo struct {
	shifts   []shift.Shift
	closeErr error
	calls    []string
}

func (r *fakeShiftRepo) Create(_ context.Context, s shift.Shift) (shift.Shift, error) {
	r.calls = append(r.calls, "create")
	r.shifts = append(r.shifts, s)
	return s, nil
}

func (r *fakeShiftRepo) CloseShift(_ context.Context, id string, clockOut time.Time) (shift.Shift, error) {
	r.calls = append(r.calls, "close")
	if r.closeErr != nil {
		return shift.Shift{}, r.closeErr
	}
	for i, s := range r.shifts {
		if s.ID == id && s.ClockOut == nil {
			out := clockOut
			r.shifts[i].ClockOut = &out
			return r.shifts[i], nil
		}
	}
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (r *fakeShiftRepo) LockStaffLedger(_ context.Context, _ string) error {
	r.calls = append(r.calls, "lock")
	return nil
}

func (r *fakeShiftRepo) GetOpenShift(_ context.Context, staffID string) (shift.Shift, error) {
	r.calls = append(r.calls, "get_open")
	for _, s := range r.shifts {
		if s.StaffID == staffID && s.ClockOut == nil {
			return s, nil
		}
	}
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (r *fakeShiftRepo) ListByStaff(_ context.Context, staffID string) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, s := range r.shifts {
		if s.StaffID == staffID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeShiftRepo) ListAll(_ context.Context) ([]shift.Shift, error) {
	return r.shifts, nil
}

func newTestService(staffRepo *fakeStaffRepo, shiftRepo *fakeShiftRepo, now time.Time) *TimeclockServiceImpl {
	return &TimeclockServiceImpl{
		shiftRepo: shiftRepo,
		staffRepo: staffRepo,
		now:       func() time.Time { return now },
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

func testStaff() (staff.Staff, *fakeStaffRepo) {
	member := staff.Staff{ID: uuid.NewString(), Username: "alice"}
	return member, &fakeStaffRepo{members: map[string]staff.Staff{member.ID: member}}
}

func TestTimeclockService_ClockIn(t *testing.T) {
	t.Parallel()

	member, staffRepo := testStaff()
	shiftRepo := &fakeShiftRepo{}
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	svc := newTestService(staffRepo, shiftRepo, now)

	resp, err := svc.ClockIn(context.Background(), shift.ClockInRequest{StaffID: member.ID})
	require.NoError(t, err)

	assert.True(t, resp.Active)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, member.ID, resp.StaffID)
	assert.Equal(t, "alice", resp.StaffName)
	assert.Equal(t, now.Format(time.RFC3339), resp.ClockIn)
	assert.Nil(t, resp.ClockOut)
	assert.Nil(t, resp.DurationHours)
	require.Len(t, shiftRepo.shifts, 1)
}

func TestTimeclockService_ClockIn_AlreadyClockedIn(t *testing.T) {
	t.Parallel()

	member, staffRepo := testStaff()
	shiftRepo := &fakeShiftRepo{}
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	svc := newTestService(staffRepo, shiftRepo, now)

	_, err := svc.ClockIn(context.Background(), shift.ClockInRequest{StaffID: member.ID})
	require.NoError(t, err)

	_, err = svc.ClockIn(context.Background(), shift.ClockInRequest{StaffID: member.ID})
	assert.ErrorIs(t, err, shift.ErrAlreadyClockedIn)
	assert.Len(t, shiftRepo.shifts, 1)
}

func TestTimeclockService_ClockIn_UnknownStaff(t *testing.T) {
	t.Parallel()

	_, staffRepo := testStaff()
	svc := newTestService(staffRepo, &fakeShiftRepo{}, time.Now().UTC())

	_, err := svc.ClockIn(context.Background(), shift.ClockInRequest{StaffID: uuid.NewString()})
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestTimeclockService_ClockIn_InvalidRequest(t *testing.T) {
	t.Parallel()

	_, staffRepo := testStaff()
	svc := newTestService(staffRepo, &fakeShiftRepo{}, time.Now().UTC())

	_, err := svc.ClockIn(context.Background(), shift.ClockInRequest{StaffID: "not-a-uuid"})
	require.Error(t, err)
	var vErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &vErrs)
}

func TestTimeclockService_ClockOut(t *testing.T) {
	t.Parallel()

	member, staffRepo := testStaff()
	shiftRepo := &fakeShiftRepo{}
	clockIn := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	svc := newTestService(staffRepo, shiftRepo, clockIn)
	_, err := svc.ClockIn(context.Background(), shift.ClockInRequest{StaffID: member.ID})
	require.NoError(t, err)

	clockOut := clockIn.Add(8 * time.Hour)
	svc.now = func() time.Time { return clockOut }

	resp, err := svc.ClockOut(context.Background(), shift.ClockOutRequest{StaffID: member.ID})
	require.NoError(t, err)

	assert.False(t, resp.Active)
	require.NotNil(t, resp.ClockOut)
	assert.Equal(t, clockOut.Format(time.RFC3339), *resp.ClockOut)
	require.NotNil(t, resp.DurationHours)
	assert.Equal(t, 8.0, *resp.DurationHours)
}

// Racing clock-ins are only prevented if the per-staff ledger lock is
// taken inside the transaction, before the open-shift check.
func TestTimeclockService_ClockIn_LocksLedgerBeforeOpenCheck(t *testing.T) {
	t.Parallel()

	member, staffRepo := testStaff()
	shiftRepo := &fakeShiftRepo{}
	svc := newTestService(staffRepo, shiftRepo, time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC))
	svc.inTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		shiftRepo.calls = append(shiftRepo.calls, "tx_begin")
		err := fn(ctx)
		shiftRepo.calls = append(shiftRepo.calls, "tx_end")
		return err
	}

	_, err := svc.ClockIn(context.Background(), shift.ClockInRequest{StaffID: member.ID})
	require.NoError(t, err)

	assert.Equal(t, []string{"tx_begin", "lock", "get_open", "create", "tx_end"}, shiftRepo.calls)
}

func TestTimeclockService_ClockOut_LocksLedgerBeforeOpenCheck(t *testing.T) {
	t.Parallel()

	member, staffRepo := testStaff()
	clockIn := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	shiftRepo := &fakeShiftRepo{shifts: []shift.Shift{
		{ID: uuid.NewString(), StaffID: member.ID, ClockIn: clockIn},
	}}
	svc := newTestService(staffRepo, shiftRepo, clockIn.Add(8*time.Hour))
	svc.inTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		shiftRepo.calls = append(shiftRepo.calls, "tx_begin")
		err := fn(ctx)
		shiftRepo.calls = append(shiftRepo.calls, "tx_end")
		return err
	}

	_, err := svc.ClockOut(context.Background(), shift.ClockOutRequest{StaffID: member.ID})
	require.NoError(t, err)

	assert.Equal(t, []string{"tx_begin", "lock", "get_open", "close", "tx_end"}, shiftRepo.calls)
}

func TestTimeclockService_ClockOut_NotClockedIn(t *testing.T) {
	t.Parallel()

	member, staffRepo := testStaff()
	svc := newTestService(staffRepo, &fakeShiftRepo{}, time.Now().UTC())

	_, err := svc.ClockOut(context.Background(), shift.ClockOutRequest{StaffID: member.ID})
	assert.ErrorIs(t, err, shift.ErrNotClockedIn)
}

// A shift closed between the open-shift read and the update reports the
// same condition as never having been clocked in, not a missing record.
func TestTimeclockService_ClockOut_ShiftClosedMidFlight(t *testing.T) {
	t.Parallel()

	member, staffRepo := testStaff()
	clockIn := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	shiftRepo := &fakeShiftRepo{
		shifts:   []shift.Shift{{ID: uuid.NewString(), StaffID: member.ID, ClockIn: clockIn}},
		closeErr: shift.ErrShiftNotFound,
	}
	svc := newTestService(staffRepo, shiftRepo, clockIn.Add(8*time.Hour))

	_, err := svc.ClockOut(context.Background(), shift.ClockOutRequest{StaffID: member.ID})
	assert.ErrorIs(t, err, shift.ErrNotClockedIn)
}

func TestTimeclockService_ClockOut_ClockSkew(t *testing.T) {
	t.Parallel()

	member, staffRepo := testStaff()
	shiftRepo := &fakeShiftRepo{}
	clockIn := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	svc := newTestService(staffRepo, shiftRepo, clockIn)
	_, err := svc.ClockIn(context.Background(), shift.ClockInRequest{StaffID: member.ID})
	require.NoError(t, err)

	svc.now = func() time.Time { return clockIn.Add(-time.Minute) }

	_, err = svc.ClockOut(context.Background(), shift.ClockOutRequest{StaffID: member.ID})
	assert.ErrorIs(t, err, shift.ErrClockOutBeforeClockIn)

	// The open shift must be left untouched
	open, err := shiftRepo.GetOpenShift(context.Background(), member.ID)
	require.NoError(t, err)
	assert.Nil(t, open.ClockOut)
}

func TestTimeclockService_ClockInAgainAfterClockOut(t *testing.T) {
	t.Parallel()

	member, staffRepo := testStaff()
	shiftRepo := &fakeShiftRepo{}
	clockIn := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	svc := newTestService(staffRepo, shiftRepo, clockIn)

	_, err := svc.ClockIn(context.Background(), shift.ClockInRequest{StaffID: member.ID})
	require.NoError(t, err)

	svc.now = func() time.Time { return clockIn.Add(8 * time.Hour) }
	_, err = svc.ClockOut(context.Background(), shift.ClockOutRequest{StaffID: member.ID})
	require.NoError(t, err)

	svc.now = func() time.Time { return clockIn.AddDate(0, 0, 1) }
	resp, err := svc.ClockIn(context.Background(), shift.ClockInRequest{StaffID: member.ID})
	require.NoError(t, err)
	assert.True(t, resp.Active)
	assert.Len(t, shiftRepo.shifts, 2)
}

func TestTimeclockService_ListShifts(t *testing.T) {
	t.Parallel()

	member, staffRepo := testStaff()
	other := uuid.NewString()
	clockIn := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	clockOut := clockIn.Add(4 * time.Hour)
	shiftRepo := &fakeShiftRepo{shifts: []shift.Shift{
		{ID: uuid.NewString(), StaffID: member.ID, ClockIn: clockIn, ClockOut: &clockOut},
		{ID: uuid.NewString(), StaffID: other, ClockIn: clockIn},
	}}
	svc := newTestService(staffRepo, shiftRepo, clockIn)

	responses, err := svc.ListShifts(context.Background(), member.ID)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, member.ID, responses[0].StaffID)
	require.NotNil(t, responses[0].DurationHours)
	assert.Equal(t, 4.0, *responses[0].DurationHours)
}

func TestTimeclockService_ListShifts_UnknownStaff(t *testing.T) {
	t.Parallel()

	_, staffRepo := testStaff()
	svc := newTestService(staffRepo, &fakeShiftRepo{}, time.Now().UTC())

	_, err := svc.ListShifts(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestTimeclockService_ListAllShifts(t *testing.T) {
	t.Parallel()

	member, staffRepo := testStaff()
	clockIn := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	shiftRepo := &fakeShiftRepo{shifts: []shift.Shift{
		{ID: uuid.NewString(), StaffID: member.ID, ClockIn: clockIn},
		{ID: uuid.NewString(), StaffID: uuid.NewString(), ClockIn: clockIn.Add(time.Hour)},
	}}
	svc := newTestService(staffRepo, shiftRepo, clockIn)

	responses, err := svc.ListAllShifts(context.Background())
	require.NoError(t, err)
	assert.Len(t, responses, 2)
}
