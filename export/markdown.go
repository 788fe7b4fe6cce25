package export

import (
	"fmt"
	"io"
	"sort"
	"time"

	"aiscout/report"
)

// WriteMarkdown renders per-browser sections with one table per category.
func WriteMarkdown(rep *report.ScanReport, w io.Writer) error {
	fmt.Fprintf(w, "# AI Usage Report - %s\n\n", rep.Hostname)
	fmt.Fprintf(w, "Scanned %s (last %d days)\n\n", rep.ScanTime.UTC().Format(time.RFC3339), rep.DaysBack)
	fmt.Fprintf(w, "**%d findings, %d unique tools, %d browsers scanned**\n\n",
		rep.Summary.TotalFindings, rep.Summary.UniqueTools, rep.Summary.BrowsersScanned)

	for _, browser := range sortedBrowsers(rep) {
		findings := rep.Findings[browser]
		fmt.Fprintf(w, "## %s\n\n", browser)
		if len(findings) == 0 {
			fmt.Fprint(w, "No findings.\n\n")
			continue
		}

		byCategory := make(map[string][]report.Finding)
		for _, f := range findings {
			byCategory[f.Category] = append(byCategory[f.Category], f)
		}
		categories := make([]string, 0, len(byCategory))
		for c := range byCategory {
			categories = append(categories, c)
		}
		sort.Strings(categories)

		for _, category := range categories {
			fmt.Fprintf(w, "### %s\n\n", category)
			fmt.Fprint(w, "| User | Tool | URL | Timestamp |\n")
			fmt.Fprint(w, "|------|------|-----|-----------|\n")
			for _, f := range byCategory[category] {
				fmt.Fprintf(w, "| %s | %s | %s | %s |\n",
					f.Username, f.Tool, truncateURL(f.URL), formatTimestamp(f.Timestamp))
			}
			fmt.Fprint(w, "\n")
		}
	}

	if len(rep.Errors) > 0 {
		fmt.Fprint(w, "## Errors\n\n")
		for _, e := range rep.Errors {
			fmt.Fprintf(w, "- %s\n", e)
		}
		fmt.Fprint(w, "\n")
	}
	return nil
}
