package export

import (
	"encoding/csv"
	"io"
	"time"

	"aiscout/report"
)

var csvHeader = []string{
	"Machine", "ScanTime", "Username", "Browser", "Profile",
	"Tool", "Category", "Url", "Title", "Timestamp",
}

// WriteCSV renders one row per finding. A report with zero findings
// yields exactly the header line.
func WriteCSV(rep *report.ScanReport, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	scanTime := rep.ScanTime.UTC().Format(time.RFC3339)
	for _, browser := range sortedBrowsers(rep) {
		for _, f := range rep.Findings[browser] {
			record := []string{
				rep.Hostname,
				scanTime,
				f.Username,
				f.Browser,
				f.Profile,
				f.Tool,
				f.Category,
				f.URL,
				f.Title,
				formatTimestamp(f.Timestamp),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
