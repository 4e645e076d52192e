// Package domain holds the error taxonomy shared between the usecase layer
// and the HTTP adapter.
package domain

import "errors"

var (
	// ErrMissingField is returned when a create request omits a required
	// launch property.
	ErrMissingField = errors.New("missing required launch property")

	// ErrInvalidDate is returned when a launch date does not parse to a
	// valid calendar date.
	ErrInvalidDate = errors.New("invalid launch date")

	// ErrPlanetNotFound is returned when a launch targets a planet that
	// was never ingested.
	ErrPlanetNotFound = errors.New("no matching planet found")

	// ErrLaunchNotFound is returned when no launch has the given flight
	// number.
	ErrLaunchNotFound = errors.New("launch not found")

	// ErrLaunchNotAborted is returned when an abort modified zero records,
	// e.g. the launch was already aborted by a racing request.
	ErrLaunchNotAborted = errors.New("launch not aborted")
)
