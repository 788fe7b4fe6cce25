package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"aiscout/profiles"
	"aiscout/version"
)

type Config struct {
	Browsers       []string `json:"browsers"`
	DaysBack       int      `json:"days_back"`
	AllUsers       bool     `json:"all_users"`
	OutputFormat   string   `json:"output_format"`
	OutputFileName string   `json:"output_file_name"`
	LogLevel       string   `json:"log_level"`
	NoProgress     bool     `json:"no_progress"`
	ListTools      bool     `json:"list_tools"`
	ConfigFile     string   `json:"-"`
}

func LoadConfig() (*Config, error) {
	timestamp := time.Now().UTC().Format("20060102-150405")
	cfg := &Config{
		Browsers:       profiles.Supported(),
		DaysBack:       90,
		OutputFormat:   "json",
		OutputFileName: fmt.Sprintf("aiscout-%s", timestamp),
		LogLevel:       "info",
	}

	browsers := flag.String("browsers", strings.Join(cfg.Browsers, ","), fmt.Sprintf("Comma-separated list of browsers to scan (default: %s).", strings.Join(cfg.Browsers, ",")))
	days := flag.Int("days", cfg.DaysBack, fmt.Sprintf("Only report visits within this many days; 0 disables the window (default: %d).", cfg.DaysBack))
	allUsers := flag.Bool("all-users", cfg.AllUsers, fmt.Sprintf("Scan every local user account, not just the current one (default: %t).", cfg.AllUsers))
	format := flag.String("format", cfg.OutputFormat, fmt.Sprintf("Report format: json, csv, markdown, or all (default: %s).", cfg.OutputFormat))
	output := flag.String("output", cfg.OutputFileName, "Report file name without extension (default: aiscout-<timestamp>).")
	logLevel := flag.String("log-level", cfg.LogLevel, fmt.Sprintf("Log level: debug, info, warn, error, fatal, or panic (default: %s).", cfg.LogLevel))
	noProgress := flag.Bool("no-progress", cfg.NoProgress, fmt.Sprintf("Disable the progress bar (default: %t).", cfg.NoProgress))
	listTools := flag.Bool("list-tools", cfg.ListTools, "Print the AI tool catalog and exit.")
	configFile := flag.String("config", "", "Path to JSON configuration file (default: none).")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = displayHelp
	flag.Parse()

	if *showVersion {
		fmt.Printf("aiscout version %s\n", version.Version)
		os.Exit(0)
	}

	if *configFile != "" {
		cfg.ConfigFile = *configFile
		if err := cfg.loadFromFile(cfg.ConfigFile); err != nil {
			return nil, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "browsers":
			cfg.Browsers = parseCommaSeparated(*browsers)
		case "days":
			cfg.DaysBack = *days
		case "all-users":
			cfg.AllUsers = *allUsers
		case "format":
			cfg.OutputFormat = *format
		case "output":
			cfg.OutputFileName = *output
		case "log-level":
			cfg.LogLevel = *logLevel
		case "no-progress":
			cfg.NoProgress = *noProgress
		case "list-tools":
			cfg.ListTools = *listTools
		}
	})

	cfg.normalize()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize cleans up values regardless of whether they arrived via flags
// or the JSON config file.
func (cfg *Config) normalize() {
	cfg.OutputFormat = strings.ToLower(strings.TrimSpace(cfg.OutputFormat))
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "json"
	}
	if len(cfg.Browsers) == 0 {
		cfg.Browsers = profiles.Supported()
	}
}

func displayHelp() {
	fmt.Println("aiscout - AI Usage Discovery Scanner")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  aiscout [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  aiscout")
	fmt.Println("  aiscout --browsers Chrome,Firefox --days 30")
	fmt.Println("  aiscout --all-users --format all --output company-audit")
}

func (cfg *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read config file: %v", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("invalid config file format: %v", err)
	}
	return nil
}

func (cfg *Config) validate() error {
	if cfg.DaysBack < 0 {
		return fmt.Errorf("days must be zero or positive, got %d", cfg.DaysBack)
	}
	switch cfg.OutputFormat {
	case "json", "csv", "markdown", "all":
	default:
		return fmt.Errorf("invalid output format %q (want json, csv, markdown, or all)", cfg.OutputFormat)
	}
	for _, b := range cfg.Browsers {
		if !knownBrowser(b) {
			return fmt.Errorf("unknown browser %q (supported: %s)", b, strings.Join(profiles.Supported(), ", "))
		}
	}
	if cfg.OutputFileName == "" {
		return fmt.Errorf("output file name must not be empty")
	}
	return nil
}

func knownBrowser(name string) bool {
	for _, known := range profiles.Supported() {
		if strings.EqualFold(name, known) {
			return true
		}
	}
	return false
}

func parseCommaSeparated(input string) []string {
	parts := strings.Split(input, ",")
	var result []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
