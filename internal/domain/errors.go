package domain

import "errors"

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrClientNotFound      = errors.New("client not found")
	ErrRoomNotFound        = errors.New("room not found")
)

var (
	ErrSchedulingConflict  = errors.New("room already has a reservation in this period")
	ErrConcurrencyConflict = errors.New("record was modified concurrently")
	ErrInvalidState        = errors.New("discount can only be changed on future reservations")
)

var (
	ErrClientHasReservations = errors.New("client has reservations and cannot be deleted")
)

var (
	ErrValidation = errors.New("validation error")
)
