package domain

import "time"

// CacheRecord is one persisted detection result: the moment a registry scan
// finished and every server identifier it discovered. The set is recorded
// before eligibility filtering so that later runs can re-filter it against
// the current options without a rescan.
type CacheRecord struct {
	// Timestamp is when the detection scan completed.
	Timestamp time.Time

	// Servers holds every identifier discovered by the scan.
	Servers []ServerID
}

// Expired reports whether the record is too old to use at the given moment.
// A record is valid strictly less than ttl after its timestamp; a record
// aged exactly ttl is expired.
func (r CacheRecord) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(r.Timestamp) >= ttl
}
