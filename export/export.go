// Package export renders a ScanReport into JSON, CSV, or Markdown. All
// three are plain projections of the same model; nothing here mutates the
// report.
package export

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"time"

	"aiscout/report"
)

// Formats accepted by Write.
const (
	FormatJSON     = "json"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
)

// Extension returns the file extension for a format.
func Extension(format string) string {
	switch format {
	case FormatCSV:
		return ".csv"
	case FormatMarkdown:
		return ".md"
	default:
		return ".json"
	}
}

// Write renders the report to path in the given format.
func Write(rep *report.ScanReport, path, format string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	buf := bufio.NewWriter(f)
	switch format {
	case FormatJSON:
		err = WriteJSON(rep, buf)
	case FormatCSV:
		err = WriteCSV(rep, buf)
	case FormatMarkdown:
		err = WriteMarkdown(rep, buf)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return err
	}
	return buf.Flush()
}

func formatTimestamp(ts *time.Time) string {
	if ts == nil {
		return ""
	}
	return ts.UTC().Format(time.RFC3339)
}

// truncateURL cuts long URLs for table display: anything over 50 runes
// becomes the first 47 plus an ellipsis marker.
func truncateURL(url string) string {
	runes := []rune(url)
	if len(runes) <= 50 {
		return url
	}
	return string(runes[:47]) + "..."
}

func sortedBrowsers(rep *report.ScanReport) []string {
	names := make([]string, 0, len(rep.Findings))
	for name := range rep.Findings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
