package extract

import (
	"strconv"
	"time"

	"aiscout/catalog"
	"aiscout/history"
	"aiscout/profiles"
	"aiscout/report"
)

// Ordering is for determinism and readable output, not correctness.
const chromiumQuery = `SELECT url, title, visit_count, last_visit_time ` +
	`FROM urls WHERE last_visit_time IS NOT NULL AND last_visit_time != 0 ` +
	`ORDER BY last_visit_time DESC`

// chromiumExtractor serves both Chrome and Edge; the two share the same
// History schema and differ only in where the profile directories live.
type chromiumExtractor struct {
	browser string
	reader  history.Reader
	locate  func(browser string, allUsers bool) []profiles.Location
	now     func() time.Time
}

func newChromium(browser string, reader history.Reader) *chromiumExtractor {
	return &chromiumExtractor{
		browser: browser,
		reader:  reader,
		locate:  profiles.Locate,
		now:     time.Now,
	}
}

func (e *chromiumExtractor) Browser() string { return e.browser }

func (e *chromiumExtractor) Extract(daysBack int, allUsers bool) []report.Finding {
	cutoff := windowCutoff(e.now().UTC(), daysBack)
	var findings []report.Finding
	for _, loc := range e.locate(e.browser, allUsers) {
		for _, row := range e.reader.Query(loc.HistoryPath, chromiumQuery) {
			if row["url"] == "" {
				continue
			}
			pattern, ok := catalog.Match(row["url"])
			if !ok {
				continue
			}
			var ts *time.Time
			if raw, err := strconv.ParseInt(row["last_visit_time"], 10, 64); err == nil {
				ts = ChromiumTime(raw)
			}
			if !inWindow(ts, cutoff) {
				continue
			}
			findings = append(findings, buildFinding(e.browser, loc, pattern, row, ts))
		}
	}
	return findings
}
