package extract

import (
	"math"
	"time"
)

// Seconds between the family epochs and the Unix epoch.
const (
	chromiumEpochOffset = 11644473600 // 1601-01-01 -> 1970-01-01
	cocoaEpochOffset    = 978307200   // 1970-01-01 -> 2001-01-01
)

// Timestamps past this point are treated as malformed rather than real
// visits (year 3000).
const maxUnixSeconds = 32503680000

// ChromiumTime converts microseconds since 1601-01-01 UTC, the encoding
// Chrome and Edge share. Returns nil on malformed input; the caller keeps
// the row but skips window filtering for it.
func ChromiumTime(micros int64) *time.Time {
	if micros < 0 {
		return nil
	}
	sec := micros/1e6 - chromiumEpochOffset
	if sec > maxUnixSeconds {
		return nil
	}
	t := time.Unix(sec, (micros%1e6)*1000).UTC()
	return &t
}

// FirefoxTime converts microseconds since the Unix epoch (moz_places).
func FirefoxTime(micros int64) *time.Time {
	if micros < 0 || micros/1e6 > maxUnixSeconds {
		return nil
	}
	t := time.Unix(micros/1e6, (micros%1e6)*1000).UTC()
	return &t
}

// SafariTime converts fractional seconds since 2001-01-01 UTC (Cocoa).
func SafariTime(seconds float64) *time.Time {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return nil
	}
	// Range-check as float first: converting an out-of-range float64 to
	// int64 yields an implementation-specific value, not an error.
	if seconds > float64(maxUnixSeconds-cocoaEpochOffset) {
		return nil
	}
	sec := int64(seconds) + cocoaEpochOffset
	if sec > maxUnixSeconds {
		return nil
	}
	frac := seconds - math.Floor(seconds)
	t := time.Unix(sec, int64(frac*1e9)).UTC()
	return &t
}
