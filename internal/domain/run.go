package domain

import "time"

// Run records one completed generation for the history store. Config holds
// the resolved parameters, including the seed that actually drove the run,
// so a lost dataset file can be regenerated byte for byte.
type Run struct {
	ID        string
	CreatedAt time.Time
	Config    Config
	Rows      int
}
