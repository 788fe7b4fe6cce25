package config

import (
	"os"
	"testing"
)

func TestParseCommaSeparated(t *testing.T) {
	res := parseCommaSeparated("Chrome,Edge , Firefox")
	if len(res) != 3 || res[1] != "Edge" {
		t.Fatalf("unexpected result: %v", res)
	}
	if res := parseCommaSeparated(""); len(res) != 0 {
		t.Fatalf("expected empty slice, got %v", res)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmp, err := os.CreateTemp("", "cfg*.json")
	if err != nil {
		t.Fatalf("temp: %v", err)
	}
	tmp.WriteString(`{"browsers":["Chrome"],"days_back":30,"all_users":true}`)
	tmp.Close()
	defer os.Remove(tmp.Name())

	cfg := &Config{}
	if err := cfg.loadFromFile(tmp.Name()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Browsers) != 1 || cfg.Browsers[0] != "Chrome" || cfg.DaysBack != 30 || !cfg.AllUsers {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg := &Config{}
	if err := cfg.loadFromFile("/does/not/exist.json"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{Browsers: []string{"Chrome"}, DaysBack: -1, OutputFormat: "json", OutputFileName: "x"}
	if err := cfg.validate(); err == nil {
		t.Fatal("expected error for negative days")
	}
	cfg = &Config{Browsers: []string{"Chrome"}, OutputFormat: "xml", OutputFileName: "x"}
	if err := cfg.validate(); err == nil {
		t.Fatal("expected invalid output format error")
	}
	cfg = &Config{Browsers: []string{"Netscape"}, OutputFormat: "json", OutputFileName: "x"}
	if err := cfg.validate(); err == nil {
		t.Fatal("expected unknown browser error")
	}
	cfg = &Config{Browsers: []string{"chrome", "SAFARI"}, DaysBack: 7, OutputFormat: "all", OutputFileName: "x"}
	if err := cfg.validate(); err != nil {
		t.Fatalf("expected case-insensitive browser names to pass: %v", err)
	}
}

// Format values from a config file must be accepted regardless of case,
// same as values from the -format flag.
func TestNormalizeFormatFromConfigFile(t *testing.T) {
	tmp, err := os.CreateTemp("", "cfg*.json")
	if err != nil {
		t.Fatalf("temp: %v", err)
	}
	tmp.WriteString(`{"output_format":"CSV"}`)
	tmp.Close()
	defer os.Remove(tmp.Name())

	cfg := &Config{OutputFileName: "x"}
	if err := cfg.loadFromFile(tmp.Name()); err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.normalize()
	if cfg.OutputFormat != "csv" {
		t.Fatalf("expected lowercased format, got %q", cfg.OutputFormat)
	}
	if err := cfg.validate(); err != nil {
		t.Fatalf("normalized format must validate: %v", err)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := &Config{OutputFileName: "x"}
	cfg.normalize()
	if cfg.OutputFormat != "json" {
		t.Errorf("expected json default, got %q", cfg.OutputFormat)
	}
	if len(cfg.Browsers) == 0 {
		t.Error("expected browser list to default to all supported")
	}
}
