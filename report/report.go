// Package report carries point-in-time diagnostic snapshots of a resource
// cache, plus pluggable encoders for shipping them to frame profilers.
package report

import "time"

// Counters accumulate over a cache's lifetime.
type Counters struct {
	Adds          uint64 `json:"adds" msgpack:"adds"`
	Refreshes     uint64 `json:"refreshes" msgpack:"refreshes"` // Add on an existing key
	Hits          uint64 `json:"hits" msgpack:"hits"`
	Misses        uint64 `json:"misses" msgpack:"misses"`
	Invalidations uint64 `json:"invalidations" msgpack:"invalidations"`
	Underflows    uint64 `json:"underflows" msgpack:"underflows"` // Invalidate on an age-0 entry
	Evictions     uint64 `json:"evictions" msgpack:"evictions"`
}

// Report is one snapshot of a cache, typically taken at a Collect boundary.
type Report struct {
	Cache   string    `json:"cache" msgpack:"cache"`
	TakenAt time.Time `json:"taken_at" msgpack:"taken_at"`

	Entries int `json:"entries" msgpack:"entries"`
	// AgeHistogram maps entry age -> count of live entries at that age.
	AgeHistogram map[int]int `json:"age_histogram,omitempty" msgpack:"age_histogram,omitempty"`
	// OldestAccess is the earliest last-access timestamp among entries that
	// were read at least once; zero when no entry was ever read.
	OldestAccess time.Time `json:"oldest_access" msgpack:"oldest_access"`

	Counters Counters `json:"counters" msgpack:"counters"`
}
