package entity

import (
	"time"
)

// Launch is a scheduled or historical launch record, keyed by flightNumber.
type Launch struct {
	FlightNumber int       `bson:"flightNumber" json:"flightNumber"`
	Mission      string    `bson:"mission" json:"mission"`
	Rocket       string    `bson:"rocket" json:"rocket"`
	LaunchDate   time.Time `bson:"launchDate" json:"launchDate"`
	Target       string    `bson:"target,omitempty" json:"target,omitempty"`
	Customers    []string  `bson:"customers" json:"customers"`
	Upcoming     bool      `bson:"upcoming" json:"upcoming"`
	Success      bool      `bson:"success" json:"success"`
}
