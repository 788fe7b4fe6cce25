package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"aiscout/report"
)

func sampleReport() *report.ScanReport {
	rep := report.New("test-host", "testos", 90, false)
	ts := time.Date(2024, 1, 9, 3, 0, 0, 0, time.UTC)
	rep.Findings["Chrome"] = []report.Finding{
		{
			Browser: "Chrome", Username: "alice", Profile: "Default",
			Tool: "ChatGPT", Category: "Generative AI",
			URL: "https://chat.openai.com/c/abc", Title: "ChatGPT",
			VisitCount: 4, Timestamp: &ts,
		},
		{
			Browser: "Chrome", Username: "alice", Profile: "Profile 1",
			Tool: "Claude", Category: "Generative AI",
			URL: "https://claude.ai/chat/" + strings.Repeat("x", 60), Title: "Claude",
			VisitCount: 1, Timestamp: nil,
		},
	}
	rep.Findings["Firefox"] = []report.Finding{}
	rep.Errors = append(rep.Errors, "Edge: no extractor available")
	rep.ComputeSummary()
	return rep
}

type triple struct{ username, tool, url string }

func TestJSONRoundTrip(t *testing.T) {
	rep := sampleReport()
	var buf bytes.Buffer
	if err := WriteJSON(rep, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var parsed JSONReport
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := map[triple]bool{}
	for _, f := range rep.AllFindings() {
		want[triple{f.Username, f.Tool, f.URL}] = true
	}
	got := map[triple]bool{}
	for _, findings := range parsed.Browsers {
		for _, f := range findings {
			got[triple{f.Username, f.Tool, f.URL}] = true
		}
	}
	if len(got) != len(want) {
		t.Fatalf("triple sets differ: got %v want %v", got, want)
	}
	for k := range want {
		if !got[k] {
			t.Errorf("missing triple %+v", k)
		}
	}

	if parsed.Browsers["Chrome"][0].Timestamp == nil {
		t.Error("expected ISO timestamp on first finding")
	}
	if parsed.Browsers["Chrome"][1].Timestamp != nil {
		t.Error("expected null timestamp on second finding")
	}
	if parsed.Summary.TotalFindings != 2 {
		t.Errorf("summary not carried: %+v", parsed.Summary)
	}
}

func TestCSVEmptyReportIsHeaderOnly(t *testing.T) {
	rep := report.New("test-host", "testos", 30, false)
	rep.ComputeSummary()

	var buf bytes.Buffer
	if err := WriteCSV(rep, &buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected header only, got %d lines:\n%s", len(lines), buf.String())
	}
	if lines[0] != "Machine,ScanTime,Username,Browser,Profile,Tool,Category,Url,Title,Timestamp" {
		t.Errorf("unexpected header: %s", lines[0])
	}
}

func TestCSVRows(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(sampleReport(), &buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "test-host") || !strings.Contains(lines[1], "ChatGPT") {
		t.Errorf("unexpected first row: %s", lines[1])
	}
}

func TestMarkdownTruncatesLongURLs(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMarkdown(sampleReport(), &buf); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "## Chrome") || !strings.Contains(out, "### Generative AI") {
		t.Error("missing browser/category sections")
	}
	if !strings.Contains(out, "| User | Tool | URL | Timestamp |") {
		t.Error("missing table header")
	}
	longURL := "https://claude.ai/chat/" + strings.Repeat("x", 60)
	if strings.Contains(out, longURL) {
		t.Error("long URL was not truncated")
	}
	if !strings.Contains(out, longURL[:47]+"...") {
		t.Error("expected 47-char prefix plus ellipsis")
	}
	if !strings.Contains(out, "## Errors") {
		t.Error("missing errors section")
	}
}

func TestTruncateURL(t *testing.T) {
	short := "https://claude.ai/"
	if truncateURL(short) != short {
		t.Error("short URL must pass through")
	}
	long := strings.Repeat("a", 51)
	got := truncateURL(long)
	if len(got) != 50 || !strings.HasSuffix(got, "...") {
		t.Errorf("unexpected truncation: %q (len %d)", got, len(got))
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	rep := sampleReport()
	for _, format := range []string{FormatJSON, FormatCSV, FormatMarkdown} {
		path := filepath.Join(dir, "out"+Extension(format))
		if err := Write(rep, path, format); err != nil {
			t.Fatalf("Write(%s): %v", format, err)
		}
		data, err := os.ReadFile(path)
		if err != nil || len(data) == 0 {
			t.Fatalf("empty or unreadable %s export: %v", format, err)
		}
	}
	if err := Write(rep, filepath.Join(dir, "x"), "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}
