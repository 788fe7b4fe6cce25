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

const firefoxQuery = `SELECT url, title, visit_count, last_visit_date ` +
	`FROM moz_places WHERE last_visit_date IS NOT NULL AND last_visit_date != 0 ` +
	`ORDER BY last_visit_date DESC`

type firefoxExtractor struct {
	reader history.Reader
	locate func(browser string, allUsers bool) []profiles.Location
	now    func() time.Time
}

func newFirefox(reader history.Reader) *firefoxExtractor {
	return &firefoxExtractor{
		reader: reader,
		locate: profiles.Locate,
		now:    time.Now,
	}
}

func (e *firefoxExtractor) Browser() string { return profiles.Firefox }

func (e *firefoxExtractor) Extract(daysBack int, allUsers bool) []report.Finding {
	cutoff := windowCutoff(e.now().UTC(), daysBack)
	var findings []report.Finding
	for _, loc := range e.locate(profiles.Firefox, allUsers) {
		for _, row := range e.reader.Query(loc.HistoryPath, firefoxQuery) {
			url := row["url"]
			// place: rows are synthetic queries (tag folders, smart
			// bookmarks), not real visits.
			if url == "" || strings.HasPrefix(url, "place:") {
				continue
			}
			pattern, ok := catalog.Match(url)
			if !ok {
				continue
			}
			var ts *time.Time
			if raw, err := strconv.ParseInt(row["last_visit_date"], 10, 64); err == nil {
				ts = FirefoxTime(raw)
			}
			if !inWindow(ts, cutoff) {
				continue
			}
			findings = append(findings, buildFinding(profiles.Firefox, loc, pattern, row, ts))
		}
	}
	return findings
}
