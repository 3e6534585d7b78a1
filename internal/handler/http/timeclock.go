package http

import (
	"encoding/json"
	"net/http"

	"github.com/clinicops/timeclock-backend-go/internal/domain/shift"
	"github.com/clinicops/timeclock-backend-go/internal/handler/http/response"
)

type TimeclockHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
}

type timeclockHandlerImpl struct {
	timeclockService shift.TimeclockService
}

func NewTimeclockHandler(timeclockService shift.TimeclockService) TimeclockHandler {
	return &timeclockHandlerImpl{
		timeclockService: timeclockService,
	}
}

// ClockIn handles POST /timeclock/clock-in
func (h *timeclockHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req shift.ClockInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	result, err := h.timeclockService.ClockIn(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in", result)
}

// ClockOut handles POST /timeclock/clock-out
func (h *timeclockHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req shift.ClockOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	result, err := h.timeclockService.ClockOut(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListShifts handles GET /timeclock/shifts with an optional staff_id filter
func (h *timeclockHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	staffID := r.URL.Query().Get("staff_id")

	var (
		result []shift.ShiftResponse
		err    error
	)
	if staffID != "" {
		result, err = h.timeclockService.ListShifts(ctx, staffID)
	} else {
		result, err = h.timeclockService.ListAllShifts(ctx)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
