package domain

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrDuplicateEmail      = errors.New("email already exists")
	ErrDuplicateAttendance = errors.New("attendance record already exists for this day")
	ErrAlreadyPunchedIn    = errors.New("already punched in today")
	ErrAlreadyPunchedOut   = errors.New("already punched out today")
	ErrNotPunchedIn        = errors.New("not punched in yet")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidInput        = errors.New("invalid input")
)
