package main

import (
	"fmt"
	"os"
	"time"

	"aiscout/catalog"
	"aiscout/config"
	"aiscout/export"
	"aiscout/logger"
	"aiscout/scan"

	"github.com/schollz/progressbar/v3"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.LogLevel)

	if cfg.ListTools {
		listTools()
		return
	}

	startTime := time.Now()
	scanner := scan.New()

	var bar *progressbar.ProgressBar
	if !cfg.NoProgress {
		bar = progressbar.NewOptions(len(cfg.Browsers),
			progressbar.OptionSetDescription("Scanning browsers"),
			progressbar.OptionShowCount(),
			progressbar.OptionFullWidth(),
		)
		scanner.OnBrowser = func(string) { bar.Add(1) }
	}

	rep := scanner.Scan(cfg.Browsers, cfg.DaysBack, cfg.AllUsers)
	if bar != nil {
		bar.Finish()
		fmt.Fprintln(os.Stderr)
	}

	formats := []string{cfg.OutputFormat}
	if cfg.OutputFormat == "all" {
		formats = []string{export.FormatJSON, export.FormatCSV, export.FormatMarkdown}
	}
	for _, format := range formats {
		path := cfg.OutputFileName + export.Extension(format)
		if err := export.Write(rep, path, format); err != nil {
			logger.Fatalf("Failed to write report: %v", err)
		}
		logger.Infof("Report written to %s", path)
	}

	for _, e := range rep.Errors {
		logger.Warnf("Scan error: %s", e)
	}
	logger.Infof("Scanned %d browsers in %s: %d findings across %d tools",
		rep.Summary.BrowsersScanned, time.Since(startTime).Round(time.Millisecond),
		rep.Summary.TotalFindings, rep.Summary.UniqueTools)
}

func listTools() {
	byCategory := make(map[string][]string)
	var order []string
	for _, p := range catalog.Patterns() {
		if _, ok := byCategory[p.Category]; !ok {
			order = append(order, p.Category)
		}
		byCategory[p.Category] = append(byCategory[p.Category], p.Name)
	}
	for _, category := range order {
		fmt.Printf("%s:\n", category)
		for _, name := range byCategory[category] {
			fmt.Printf("  %s\n", name)
		}
	}
	fmt.Printf("\n%d tools in catalog\n", len(catalog.Patterns()))
}
