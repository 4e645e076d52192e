package entity

import (
	"strconv"
)

// Planet is the persisted record for a habitable candidate, keyed by keplerName.
type Planet struct {
	KeplerName string `bson:"keplerName" json:"keplerName"`
}

// Observation is one raw row of the Kepler observation dataset. Fields stay
// in string form as decoded; numeric values are parsed only when the
// habitability predicate needs them.
type Observation struct {
	KeplerName      string
	Disposition     string
	InsolationFlux  string
	PlanetaryRadius string
}

// IsHabitable reports whether the observation satisfies the fixed
// disposition, insolation flux, and planetary radius bounds. Missing or
// non-numeric fields fail the predicate rather than erroring.
func (o Observation) IsHabitable() bool {
	if o.Disposition != "CONFIRMED" {
		return false
	}
	insol, err := strconv.ParseFloat(o.InsolationFlux, 64)
	if err != nil {
		return false
	}
	prad, err := strconv.ParseFloat(o.PlanetaryRadius, 64)
	if err != nil {
		return false
	}
	return insol > 0.36 && insol < 1.11 && prad < 1.6
}
