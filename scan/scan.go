// Package scan runs extractors for a requested browser set and aggregates
// their findings into a single report. Failures stay scoped to one
// browser; the scan itself never aborts.
package scan

import (
	"fmt"
	"strings"

	"aiscout/extract"
	"aiscout/history"
	"aiscout/logger"
	"aiscout/profiles"
	"aiscout/report"
	"aiscout/sysinfo"
)

type Scanner struct {
	reader history.Reader

	// Seams for tests; production wiring stays in New.
	forBrowser      func(name string, r history.Reader) (extract.Extractor, bool)
	elevated        func() bool
	runningBrowsers func() map[string]bool
	machine         func() sysinfo.Machine

	// OnBrowser, when set, is called after each browser finishes. The CLI
	// drives its progress bar from it.
	OnBrowser func(browser string)
}

func New() *Scanner {
	return &Scanner{
		reader:          history.NewReader(),
		forBrowser:      extract.ForBrowser,
		elevated:        profiles.Elevated,
		runningBrowsers: sysinfo.RunningBrowsers,
		machine:         sysinfo.GetMachine,
	}
}

// Scan processes the requested browsers one at a time and returns the
// aggregated report. Browser names are case-insensitive.
func (s *Scanner) Scan(browsers []string, daysBack int, allUsers bool) *report.ScanReport {
	m := s.machine()
	rep := report.New(m.Hostname, m.Platform, daysBack, allUsers)

	if allUsers && !s.elevated() {
		logger.Warn("all-users scan without elevated privileges: some user directories will be inaccessible")
	}

	running := s.runningBrowsers()
	for _, requested := range browsers {
		name, ok := normalizeBrowser(requested)
		if !ok {
			rep.Errors = append(rep.Errors, fmt.Sprintf("%s: unsupported browser", requested))
			continue
		}
		if _, seen := rep.Findings[name]; seen {
			continue
		}
		if running[name] {
			logger.Debugf("%s appears to be running; its history database may be locked", name)
		}
		rep.Findings[name] = s.extractBrowser(name, daysBack, allUsers, rep)
		if s.OnBrowser != nil {
			s.OnBrowser(name)
		}
	}

	rep.ComputeSummary()
	return rep
}

// extractBrowser isolates one browser's extraction. A panic inside an
// extractor becomes a report-level error entry and an empty finding list.
func (s *Scanner) extractBrowser(name string, daysBack int, allUsers bool, rep *report.ScanReport) (findings []report.Finding) {
	defer func() {
		if r := recover(); r != nil {
			rep.Errors = append(rep.Errors, fmt.Sprintf("%s: %v", name, r))
			findings = []report.Finding{}
		}
	}()

	ext, ok := s.forBrowser(name, s.reader)
	if !ok {
		rep.Errors = append(rep.Errors, fmt.Sprintf("%s: no extractor available", name))
		return []report.Finding{}
	}
	findings = ext.Extract(daysBack, allUsers)
	if findings == nil {
		findings = []report.Finding{}
	}
	return findings
}

func normalizeBrowser(name string) (string, bool) {
	for _, known := range profiles.Supported() {
		if strings.EqualFold(name, known) {
			return known, true
		}
	}
	return "", false
}
