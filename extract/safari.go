package extract

import (
	"strconv"
	"time"

	"aiscout/catalog"
	"aiscout/history"
	"aiscout/profiles"
	"aiscout/report"
)

// One history item can have many visit rows; the descending order means
// the first row seen per URL is its latest visit.
const safariQuery = `SELECT i.url AS url, v.title AS title, i.visit_count AS visit_count, ` +
	`v.visit_time AS visit_time FROM history_items i ` +
	`JOIN history_visits v ON v.history_item = i.id ` +
	`ORDER BY v.visit_time DESC`

type safariExtractor struct {
	reader history.Reader
	locate func(browser string, allUsers bool) []profiles.Location
	now    func() time.Time
}

func newSafari(reader history.Reader) *safariExtractor {
	return &safariExtractor{
		reader: reader,
		locate: profiles.Locate,
		now:    time.Now,
	}
}

func (e *safariExtractor) Browser() string { return profiles.Safari }

func (e *safariExtractor) Extract(daysBack int, allUsers bool) []report.Finding {
	cutoff := windowCutoff(e.now().UTC(), daysBack)
	var findings []report.Finding
	for _, loc := range e.locate(profiles.Safari, allUsers) {
		seen := make(map[string]bool)
		for _, row := range e.reader.Query(loc.HistoryPath, safariQuery) {
			url := row["url"]
			if url == "" || seen[url] {
				continue
			}
			seen[url] = true
			pattern, ok := catalog.Match(url)
			if !ok {
				continue
			}
			var ts *time.Time
			if raw, err := strconv.ParseFloat(row["visit_time"], 64); err == nil {
				ts = SafariTime(raw)
			}
			if !inWindow(ts, cutoff) {
				continue
			}
			findings = append(findings, buildFinding(profiles.Safari, loc, pattern, row, ts))
		}
	}
	return findings
}
