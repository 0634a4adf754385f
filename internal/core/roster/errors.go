package roster

import "errors"

var (
	ErrInvalidHourBounds = errors.New("roster: employee hour bounds must satisfy 0 <= min <= opt <= max")
	ErrInvalidTimeslot   = errors.New("roster: timeslot day/hour out of range")
	ErrDuplicateTimeslot = errors.New("roster: duplicate timeslot for day/hour pair")
	ErrInvalidWorkload   = errors.New("roster: workload amounts must satisfy 0 <= min <= opt")
	ErrNoEmployees       = errors.New("roster: no employees loaded")
	ErrNoTimeslots       = errors.New("roster: no timeslots loaded")
)
