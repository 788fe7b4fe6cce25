// Package extract pulls history rows out of located browser profiles and
// turns catalog matches into findings.
package extract

import (
	"strconv"
	"strings"
	"time"

	"aiscout/catalog"
	"aiscout/history"
	"aiscout/profiles"
	"aiscout/report"
)

// Extractor produces findings for one browser family.
type Extractor interface {
	Browser() string
	Extract(daysBack int, allUsers bool) []report.Finding
}

// ForBrowser returns the extractor for a browser identifier, or false for
// browsers this build does not know.
func ForBrowser(name string, reader history.Reader) (Extractor, bool) {
	switch name {
	case profiles.Chrome, profiles.Edge:
		return newChromium(name, reader), true
	case profiles.Firefox:
		return newFirefox(reader), true
	case profiles.Safari:
		return newSafari(reader), true
	}
	return nil, false
}

// windowCutoff returns the oldest admissible visit time, or zero when
// daysBack disables filtering.
func windowCutoff(now time.Time, daysBack int) time.Time {
	if daysBack <= 0 {
		return time.Time{}
	}
	return now.AddDate(0, 0, -daysBack)
}

// inWindow keeps rows without a decodable timestamp: they are reported,
// just never filtered by recency.
func inWindow(ts *time.Time, cutoff time.Time) bool {
	if ts == nil || cutoff.IsZero() {
		return true
	}
	return !ts.Before(cutoff)
}

func parseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func buildFinding(browser string, loc profiles.Location, p catalog.ToolPattern, row map[string]string, ts *time.Time) report.Finding {
	return report.Finding{
		Browser:    browser,
		Username:   loc.Username,
		Profile:    loc.Profile,
		Tool:       p.Name,
		Category:   p.Category,
		URL:        row["url"],
		Title:      row["title"],
		VisitCount: parseCount(row["visit_count"]),
		Timestamp:  ts,
	}
}
