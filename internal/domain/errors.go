package domain

import "errors"

var (
	// ErrVehicleNotFound is returned by catalog lookups for unknown vehicle ids.
	ErrVehicleNotFound = errors.New("vehicle not found")
)
