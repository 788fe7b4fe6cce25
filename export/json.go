package export

import (
	"encoding/json"
	"io"
	"time"

	"aiscout/report"
)

// JSONFinding is the exported finding shape. Timestamp is ISO-8601 or
// null, never a zero-value sentinel.
type JSONFinding struct {
	URL       string  `json:"url"`
	Title     string  `json:"title"`
	Tool      string  `json:"tool"`
	Category  string  `json:"category"`
	Timestamp *string `json:"timestamp"`
	Username  string  `json:"username"`
	Profile   string  `json:"profile"`
}

type JSONReport struct {
	Machine  string                   `json:"machine"`
	Platform string                   `json:"platform"`
	ScanTime string                   `json:"scan_time"`
	DaysBack int                      `json:"days_back"`
	AllUsers bool                     `json:"all_users"`
	Browsers map[string][]JSONFinding `json:"browsers"`
	Errors   []string                 `json:"errors"`
	Summary  report.Summary           `json:"summary"`
}

// WriteJSON renders the report as a single indented JSON document.
func WriteJSON(rep *report.ScanReport, w io.Writer) error {
	out := JSONReport{
		Machine:  rep.Hostname,
		Platform: rep.Platform,
		ScanTime: rep.ScanTime.UTC().Format(time.RFC3339),
		DaysBack: rep.DaysBack,
		AllUsers: rep.AllUsers,
		Browsers: make(map[string][]JSONFinding, len(rep.Findings)),
		Errors:   rep.Errors,
		Summary:  rep.Summary,
	}
	for browser, findings := range rep.Findings {
		converted := make([]JSONFinding, 0, len(findings))
		for _, f := range findings {
			jf := JSONFinding{
				URL:      f.URL,
				Title:    f.Title,
				Tool:     f.Tool,
				Category: f.Category,
				Username: f.Username,
				Profile:  f.Profile,
			}
			if f.Timestamp != nil {
				s := f.Timestamp.UTC().Format(time.RFC3339)
				jf.Timestamp = &s
			}
			converted = append(converted, jf)
		}
		out.Browsers[browser] = converted
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
