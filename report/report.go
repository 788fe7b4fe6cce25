package report

import (
	"sort"
	"time"
)

// Finding is one visited URL classified as belonging to a known AI tool.
// Immutable once created; owned by the ScanReport after aggregation.
type Finding struct {
	Browser    string     `json:"browser"`
	Username   string     `json:"username"`
	Profile    string     `json:"profile"`
	Tool       string     `json:"tool"`
	Category   string     `json:"category"`
	URL        string     `json:"url"`
	Title      string     `json:"title"`
	VisitCount int        `json:"visit_count"`
	Timestamp  *time.Time `json:"timestamp"` // nil when the native value could not be decoded
}

// Summary holds statistics derived from the findings. It is always
// recomputed from the finding lists, never maintained incrementally.
type Summary struct {
	TotalFindings   int            `json:"total_findings"`
	UniqueTools     int            `json:"unique_tools"`
	Tools           []string       `json:"tools"`
	Categories      map[string]int `json:"categories"`
	BrowsersScanned int            `json:"browsers_scanned"`
}

// ScanReport is the output of one scan pass and the sole boundary to
// the export and display layers, which treat it as read-only.
type ScanReport struct {
	Hostname string               `json:"hostname"`
	Platform string               `json:"platform"`
	ScanTime time.Time            `json:"scan_time"`
	DaysBack int                  `json:"days_back"`
	AllUsers bool                 `json:"all_users"`
	Findings map[string][]Finding `json:"findings"` // browser name -> findings
	Errors   []string             `json:"errors"`
	Summary  Summary              `json:"summary"`
}

func New(hostname, platform string, daysBack int, allUsers bool) *ScanReport {
	return &ScanReport{
		Hostname: hostname,
		Platform: platform,
		ScanTime: time.Now().UTC(),
		DaysBack: daysBack,
		AllUsers: allUsers,
		Findings: make(map[string][]Finding),
	}
}

// ComputeSummary recomputes the derived summary from the current findings.
func (r *ScanReport) ComputeSummary() {
	s := Summary{
		Categories:      make(map[string]int),
		BrowsersScanned: len(r.Findings),
	}
	tools := make(map[string]struct{})
	for _, findings := range r.Findings {
		for _, f := range findings {
			s.TotalFindings++
			tools[f.Tool] = struct{}{}
			s.Categories[f.Category]++
		}
	}
	s.UniqueTools = len(tools)
	s.Tools = make([]string, 0, len(tools))
	for name := range tools {
		s.Tools = append(s.Tools, name)
	}
	sort.Strings(s.Tools)
	r.Summary = s
}

// AllFindings returns every finding across browsers in stable browser-name
// order, preserving per-browser ordering.
func (r *ScanReport) AllFindings() []Finding {
	names := make([]string, 0, len(r.Findings))
	for name := range r.Findings {
		names = append(names, name)
	}
	sort.Strings(names)

	var all []Finding
	for _, name := range names {
		all = append(all, r.Findings[name]...)
	}
	return all
}
